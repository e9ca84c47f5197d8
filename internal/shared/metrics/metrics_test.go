package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOrderCreated(t *testing.T) {
	beforeOrders := testutil.ToFloat64(ordersCreated)
	beforeStamps := testutil.ToFloat64(stampsAccrued)

	RecordOrderCreated(5)
	RecordOrderCreated(0)

	assert.Equal(t, beforeOrders+2, testutil.ToFloat64(ordersCreated))
	assert.Equal(t, beforeStamps+5, testutil.ToFloat64(stampsAccrued))
}

func TestObserveHTTP_UnmatchedRoute(t *testing.T) {
	ObserveHTTP(http.MethodGet, "", "404", 10*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordOrderCancelled()

	recorder := httptest.NewRecorder()
	Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "coffee_order_orders_cancelled_total")
}
