package models_test

import (
	"github.com/lumenledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPreferenceValueFallback() {
	user := suite.createTestUser(models.User{})

	value, err := models.PreferenceValue(models.DB, user.ID, "listPageSize", 50)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 50, value)
}

func (suite *TestSuiteStandard) TestPreferenceRoundTrip() {
	user := suite.createTestUser(models.User{})

	require.Nil(suite.T(), models.SetPreference(models.DB, user.ID, "listPageSize", 100))

	value, err := models.PreferenceValue(models.DB, user.ID, "listPageSize", 50)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 100, value)
}

func (suite *TestSuiteStandard) TestPreferenceOverwrite() {
	user := suite.createTestUser(models.User{})

	require.Nil(suite.T(), models.SetPreference(models.DB, user.ID, "darkMode", "dark"))
	require.Nil(suite.T(), models.SetPreference(models.DB, user.ID, "darkMode", "light"))

	value, err := models.PreferenceValue(models.DB, user.ID, "darkMode", "browser")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "light", value)

	// Overwriting must not create a second row
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Preference{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestPreferenceValueWrongShape() {
	user := suite.createTestUser(models.User{})

	// A stored string must not break readers expecting a number
	require.Nil(suite.T(), models.SetPreference(models.DB, user.ID, "listPageSize", "a lot"))

	value, err := models.PreferenceValue(models.DB, user.ID, "listPageSize", 50)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 50, value)
}

func (suite *TestSuiteStandard) TestPreferenceValueSlice() {
	user := suite.createTestUser(models.User{})

	require.Nil(suite.T(), models.SetPreference(models.DB, user.ID, "frontpageAccounts", []uint64{3, 7}))

	value, err := models.PreferenceValue(models.DB, user.ID, "frontpageAccounts", []uint64{})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), []uint64{3, 7}, value)
}

func (suite *TestSuiteStandard) TestPreferencePerUser() {
	first := suite.createTestUser(models.User{})
	second := suite.createTestUser(models.User{})

	require.Nil(suite.T(), models.SetPreference(models.DB, first.ID, "language", "de_DE"))

	value, err := models.PreferenceValue(models.DB, second.ID, "language", "en_US")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "en_US", value)
}
