package controllers_test

import (
	"log"
	"net/http"
	"testing"

	"github.com/lumenledger/backend/internal/controllers"
	"github.com/lumenledger/backend/internal/models"
	"github.com/lumenledger/backend/internal/session"
	"github.com/lumenledger/backend/internal/sharedprops"
	"github.com/lumenledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TestSuiteStandard struct {
	suite.Suite

	sessions *session.Store
}

// Pseudo-Test run by go test that runs the test suite.
func TestSuite(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

func (suite *TestSuiteStandard) SetupTest() {
	err := models.Connect(test.TmpFile(suite.T()))
	if err != nil {
		log.Fatalf("Database connection failed with: %#v", err)
	}

	suite.sessions = session.NewStore()
}

func (suite *TestSuiteStandard) TearDownTest() {
	sqlDB, _ := models.DB.DB()
	sqlDB.Close()
}

func (suite *TestSuiteStandard) CloseDB() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		suite.Assert().FailNowf("Failed to get database resource for teardown: %v", err.Error())
	}
	sqlDB.Close()
}

func (suite *TestSuiteStandard) createTestUser(user models.User) models.User {
	if user.Email == "" {
		user.Email = "test@example.com"
	}

	err := models.DB.Create(&user).Error
	if err != nil {
		suite.Assert().FailNow("User could not be saved", "Error: %s, User: %#v", err, user)
	}

	return user
}

func (suite *TestSuiteStandard) login(user models.User) *session.Session {
	sess := suite.sessions.Create()
	sess.Login(user.ID)

	return sess
}

func (suite *TestSuiteStandard) TestOptionsShared() {
	recorder := test.Request(suite.T(), suite.sessions, http.MethodOptions, "/v1/shared", nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetSharedUnauthenticated() {
	recorder := test.Request(suite.T(), suite.sessions, http.MethodGet, "/v1/shared", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SharedResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Nil(suite.T(), response.Error)
	assert.False(suite.T(), response.Data.Auth.Authenticated)
	assert.Nil(suite.T(), response.Data.Auth.User)
	assert.Nil(suite.T(), response.Data.Preferences)
	assert.Nil(suite.T(), response.Data.Currency)
	assert.NotEmpty(suite.T(), response.Data.Version)
	assert.NotEmpty(suite.T(), response.Data.Options.DarkModes)
}

func (suite *TestSuiteStandard) TestGetSharedAuthenticated() {
	user := suite.createTestUser(models.User{UserGroupID: 1})
	require.Nil(suite.T(), user.AddRole(models.DB, models.RoleOwner))
	require.Nil(suite.T(), models.SetPreference(models.DB, user.ID, "darkMode", "dark"))
	require.Nil(suite.T(), models.DB.Create(&models.Currency{
		UserGroupID: 1, Name: "Euro", Code: "EUR", Symbol: "€", DecimalPlaces: 2, IsPrimary: true,
	}).Error)

	sess := suite.login(user)
	recorder := test.Request(suite.T(), suite.sessions, http.MethodGet, "/v1/shared", nil, test.SessionCookie(sess))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SharedResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Auth.Authenticated)
	require.NotNil(suite.T(), response.Data.Auth.User)
	assert.Equal(suite.T(), user.Email, response.Data.Auth.User.Email)
	assert.True(suite.T(), response.Data.Auth.User.IsAdmin)

	require.NotNil(suite.T(), response.Data.Preferences)
	assert.Equal(suite.T(), "dark", response.Data.Preferences.DarkMode)
	assert.Equal(suite.T(), sharedprops.DefaultListPageSize, response.Data.Preferences.ListPageSize)

	require.NotNil(suite.T(), response.Data.Currency)
	assert.Equal(suite.T(), "EUR", response.Data.Currency.Code)
}

func (suite *TestSuiteStandard) TestGetSharedFlash() {
	sess := suite.sessions.Create()
	sess.Flash(session.SlotSuccess, "Account created")

	recorder := test.Request(suite.T(), suite.sessions, http.MethodGet, "/v1/shared", nil, test.SessionCookie(sess))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SharedResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	require.NotNil(suite.T(), response.Data.Flash.Success)
	assert.Equal(suite.T(), "Account created", *response.Data.Flash.Success)

	// The next navigation does not see the message again
	recorder = test.Request(suite.T(), suite.sessions, http.MethodGet, "/v1/shared", nil, test.SessionCookie(sess))
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Nil(suite.T(), response.Data.Flash.Success)
}

func (suite *TestSuiteStandard) TestGetSharedMissingUser() {
	sess := suite.sessions.Create()
	sess.Login(857)

	recorder := test.Request(suite.T(), suite.sessions, http.MethodGet, "/v1/shared", nil, test.SessionCookie(sess))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	var response controllers.SharedResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Nil(suite.T(), response.Data)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "there is no user matching your query", *response.Error)
}

func (suite *TestSuiteStandard) TestGetSharedGeneralError() {
	user := suite.createTestUser(models.User{UserGroupID: 1})
	sess := suite.login(user)

	suite.CloseDB()

	recorder := test.Request(suite.T(), suite.sessions, http.MethodGet, "/v1/shared", nil, test.SessionCookie(sess))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
