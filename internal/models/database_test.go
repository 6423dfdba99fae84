package models_test

import (
	"github.com/lumenledger/backend/internal/models"
	"github.com/lumenledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestConnectInvalidDSN() {
	err := models.Connect("/this/directory/does/not/exist/db")
	assert.NotNil(suite.T(), err)

	// Reconnect so that TearDownTest has a database to close
	require.Nil(suite.T(), models.Connect(test.TmpFile(suite.T())))
}

func (suite *TestSuiteStandard) TestNotFoundResourceName() {
	var currency models.Currency

	// The "currencies" table name must be singularized in the message
	err := models.DB.First(&currency, 42).Error
	require.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no currency matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	var user models.User
	err := models.DB.First(&user, 1).Error
	require.ErrorIs(suite.T(), err, models.ErrGeneral)
}
