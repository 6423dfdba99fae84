package healthz_test

import (
	"net/http"
	"testing"

	"github.com/lumenledger/backend/internal/models"
	"github.com/lumenledger/backend/internal/session"
	"github.com/lumenledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectDB(t *testing.T) {
	require.Nil(t, models.Connect(test.TmpFile(t)), "Database connection failed")

	t.Cleanup(func() {
		sqlDB, _ := models.DB.DB()
		sqlDB.Close()
	})
}

func TestOptions(t *testing.T) {
	connectDB(t)
	recorder := test.Request(t, session.NewStore(), http.MethodOptions, "/healthz", nil)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "GET", recorder.Header().Get("allow"))
}

func TestGetHealthy(t *testing.T) {
	connectDB(t)
	recorder := test.Request(t, session.NewStore(), http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestGetUnhealthy(t *testing.T) {
	connectDB(t)

	sqlDB, err := models.DB.DB()
	require.Nil(t, err)
	sqlDB.Close()

	recorder := test.Request(t, session.NewStore(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
