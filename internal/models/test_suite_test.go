package models_test

import (
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/lumenledger/backend/internal/models"
	"github.com/lumenledger/backend/test"
	"github.com/stretchr/testify/suite"
)

type TestSuiteStandard struct {
	suite.Suite
}

// Pseudo-Test run by go test that runs the test suite.
func TestSuite(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

func (suite *TestSuiteStandard) SetupSuite() {
	os.Setenv("LOG_FORMAT", "human")
	os.Setenv("GIN_MODE", "debug")
}

// TearDownTest is called after each test in the suite.
func (suite *TestSuiteStandard) TearDownTest() {
	sqlDB, _ := models.DB.DB()
	sqlDB.Close()
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	err := models.Connect(test.TmpFile(suite.T()))
	if err != nil {
		log.Fatalf("Database connection failed with: %#v", err)
	}
}

// CloseDB closes the database connection. This enables testing the handling
// of database errors.
func (suite *TestSuiteStandard) CloseDB() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		suite.Assert().FailNowf("Failed to get database resource for teardown: %v", err.Error())
	}
	sqlDB.Close()
}

func (suite *TestSuiteStandard) createTestUser(user models.User) models.User {
	if user.Email == "" {
		user.Email = uuid.New().String() + "@example.com"
	}

	err := models.DB.Create(&user).Error
	if err != nil {
		suite.Assert().FailNow("User could not be saved", "Error: %s, User: %#v", err, user)
	}

	return user
}

func (suite *TestSuiteStandard) createTestCurrency(currency models.Currency) models.Currency {
	err := models.DB.Create(&currency).Error
	if err != nil {
		suite.Assert().FailNow("Currency could not be saved", "Error: %s, Currency: %#v", err, currency)
	}

	return currency
}
