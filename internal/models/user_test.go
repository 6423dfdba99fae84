package models_test

import (
	"strings"

	"github.com/lumenledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserTrimWhitespace() {
	email := "  jacqueline@example.com \t"

	user := suite.createTestUser(models.User{Email: email})

	assert.Equal(suite.T(), strings.TrimSpace(email), user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser(models.User{Email: "unique@example.com"})

	err := models.DB.Create(&models.User{Email: "unique@example.com"}).Error
	require.ErrorIs(suite.T(), err, models.ErrUserEmailNotUnique)
}

func (suite *TestSuiteStandard) TestUserRoleNamesEmpty() {
	user := suite.createTestUser(models.User{})

	names, err := user.RoleNames(models.DB)
	require.Nil(suite.T(), err)
	assert.Empty(suite.T(), names)
}

func (suite *TestSuiteStandard) TestUserAddRole() {
	user := suite.createTestUser(models.User{})

	err := user.AddRole(models.DB, models.RoleOwner)
	require.Nil(suite.T(), err)

	names, err := user.RoleNames(models.DB)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), []string{models.RoleOwner}, names)
}

func (suite *TestSuiteStandard) TestUserAddRoleShared() {
	// Two users being members of the same role must share one role record
	first := suite.createTestUser(models.User{})
	second := suite.createTestUser(models.User{})

	require.Nil(suite.T(), first.AddRole(models.DB, models.RoleDemo))
	require.Nil(suite.T(), second.AddRole(models.DB, models.RoleDemo))

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Role{}).Where("name = ?", models.RoleDemo).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestUserNotFound() {
	var user models.User

	err := models.DB.First(&user, 9714).Error
	require.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no user matching your query", err.Error())
}
