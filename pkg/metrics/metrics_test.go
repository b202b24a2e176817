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

func TestMetricsCounters(t *testing.T) {
	m := New("parking-test")

	m.IncSpotOperation("reserve", "bike", "success")
	m.IncSpotOperation("reserve", "bike", "success")
	m.IncNotification("reservation", "failed")
	m.IncPassOperation("register", "success")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/branches", http.StatusOK, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.spotOperations.WithLabelValues("reserve", "bike", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("reservation", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.passOperations.WithLabelValues("register", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/v1/branches", "200")))
}

func TestMetricsBranchUnits(t *testing.T) {
	m := New("parking-test")

	m.SetBranchUnits("trichy", 7, 15, 2)

	assert.Equal(t, 7.0, testutil.ToFloat64(m.branchUnits.WithLabelValues("trichy", "available_car_spots")))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.branchUnits.WithLabelValues("trichy", "available_bike_slots")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.branchUnits.WithLabelValues("trichy", "occupied_units")))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncSpotOperation("cancel", "car", "success")
		m.SetBranchUnits("chennai", 1, 1, 1)
		m.IncNotification("cancellation", "success")
		m.SetNotificationQueueLength(3)
		m.IncPassOperation("cancel", "failed")
		m.ObserveHTTPRequest(http.MethodPost, "/x", http.StatusCreated, time.Second)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New("parking-test")
	m.IncSpotOperation("extend", "car", "success")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "parking_spot_operations_total")
}
