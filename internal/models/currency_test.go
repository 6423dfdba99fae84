package models_test

import (
	"github.com/lumenledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCurrencyNormalizeCode() {
	currency := suite.createTestCurrency(models.Currency{
		UserGroupID: 1,
		Name:        " Euro ",
		Code:        " eur ",
		Symbol:      " € ",
	})

	assert.Equal(suite.T(), "EUR", currency.Code)
	assert.Equal(suite.T(), "Euro", currency.Name)
	assert.Equal(suite.T(), "€", currency.Symbol)
}

func (suite *TestSuiteStandard) TestCurrencyCodeUnique() {
	_ = suite.createTestCurrency(models.Currency{UserGroupID: 1, Code: "EUR"})

	err := models.DB.Create(&models.Currency{UserGroupID: 1, Code: "eur"}).Error
	require.ErrorIs(suite.T(), err, models.ErrCurrencyCodeNotUnique)

	// The same code is fine in another user group
	err = models.DB.Create(&models.Currency{UserGroupID: 2, Code: "EUR"}).Error
	require.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCurrencyPrimaryUnique() {
	first := suite.createTestCurrency(models.Currency{UserGroupID: 1, Code: "EUR", IsPrimary: true})
	second := suite.createTestCurrency(models.Currency{UserGroupID: 1, Code: "USD", IsPrimary: true})

	primary, ok, err := models.PrimaryCurrency(models.DB, 1)
	require.Nil(suite.T(), err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), second.ID, primary.ID)

	// The previous primary currency must have lost the flag
	var reloaded models.Currency
	require.Nil(suite.T(), models.DB.First(&reloaded, first.ID).Error)
	assert.False(suite.T(), reloaded.IsPrimary)
}

func (suite *TestSuiteStandard) TestCurrencyPrimaryPerGroup() {
	_ = suite.createTestCurrency(models.Currency{UserGroupID: 1, Code: "EUR", IsPrimary: true})
	other := suite.createTestCurrency(models.Currency{UserGroupID: 2, Code: "USD", IsPrimary: true})

	var reloaded models.Currency
	require.Nil(suite.T(), models.DB.First(&reloaded, other.ID).Error)
	assert.True(suite.T(), reloaded.IsPrimary, "primary flags must be independent between user groups")
}

func (suite *TestSuiteStandard) TestPrimaryCurrencyNone() {
	_ = suite.createTestCurrency(models.Currency{UserGroupID: 1, Code: "EUR"})

	_, ok, err := models.PrimaryCurrency(models.DB, 1)
	require.Nil(suite.T(), err)
	assert.False(suite.T(), ok)
}
