package meta_test

import (
	"net/http"
	"testing"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/meta"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthResponse struct {
	Status string `json:"status"`
	Checks struct {
		Database struct {
			Status string `json:"status"`
			Driver string `json:"driver"`
			Error  string `json:"error"`
		} `json:"database"`
	} `json:"checks"`
}

func TestHealth(t *testing.T) {
	// Given
	cfg := testutil.NewTestConfig()
	db := &database.DB{DB: testutil.SetupTestDB(t)}

	router := testutil.SetupTestRouter()
	router.GET("/health", meta.NewHandler(cfg, db).Health)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp healthResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "up", resp.Checks.Database.Status)
	assert.Equal(t, "sqlite", resp.Checks.Database.Driver)
}

func TestHealth_DatabaseDown(t *testing.T) {
	// Given: closed connection pool
	cfg := testutil.NewTestConfig()
	gormDB := testutil.SetupTestDB(t)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)

	router := testutil.SetupTestRouter()
	router.GET("/health", meta.NewHandler(cfg, &database.DB{DB: gormDB}).Health)
	require.NoError(t, sqlDB.Close())

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})

	// Then
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var resp healthResponse
	testutil.ParseResponse(t, recorder, &resp)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "down", resp.Checks.Database.Status)
	assert.NotEmpty(t, resp.Checks.Database.Error)
}
