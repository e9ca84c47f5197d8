package bootstrap_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/bootstrap"
	sharedError "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupEngine_RecoversAnyPanicValue(t *testing.T) {
	boot := bootstrap.NewBootstrap(testutil.NewTestConfig())
	t.Cleanup(boot.Close)

	engine := boot.SetupEngine()
	engine.GET("/panic-error", func(c *gin.Context) { panic(assert.AnError) })
	engine.GET("/panic-string", func(c *gin.Context) { panic("boom") })

	for _, url := range []string{"/panic-error", "/panic-string"} {
		recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{Method: http.MethodGet, URL: url})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code, url)

		var errorResponse sharedError.ErrorResponse
		testutil.ParseResponse(t, recorder, &errorResponse)
		assert.Equal(t, sharedError.InternalServerError.Code, errorResponse.Code)
	}
}

func TestBootstrap_CloseIsIdempotent(t *testing.T) {
	boot := bootstrap.NewBootstrap(testutil.NewTestConfig())

	assert.NotPanics(t, func() {
		boot.Close()
		boot.Close()
	})
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	// Given: random free port
	cfg := testutil.NewTestConfig()
	cfg.App.Port = 0
	cfg.Server.GracefulTimeout = time.Second

	srv := bootstrap.New(cfg, http.NotFoundHandler())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// When
	time.Sleep(50 * time.Millisecond)
	cancel()

	// Then
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
