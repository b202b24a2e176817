package reservationservice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

func newTestClient(url string, timeout time.Duration) *Client {
	return NewClient(url, timeout, logger.NewWithWriter(io.Discard, logger.LevelError))
}

func TestNotifyReservation(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/reservations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL+"/", time.Second)
	err := c.NotifyReservation(context.Background(), ReservationNotification{
		SpotID:        3,
		Name:          "Alice",
		Email:         "alice@example.com",
		StartTime:     "22:00",
		EndTime:       "02:00",
		VehicleType:   "car",
		DurationHours: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(3), got["spotId"])
	assert.Equal(t, "Alice", got["name"])
	assert.Equal(t, float64(4), got["durationHours"])
	assert.NotContains(t, got, "password")
}

func TestNotifyCancellation(t *testing.T) {
	var got CancellationNotification
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reservations/cancel", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second)
	err := c.NotifyCancellation(context.Background(), CancellationNotification{SpotID: 9, Type: "bike", Count: 2})
	require.NoError(t, err)
	assert.Equal(t, CancellationNotification{SpotID: 9, Type: "bike", Count: 2}, got)
}

func TestNotifyNon2xxFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second)
	err := c.NotifyCancellation(context.Background(), CancellationNotification{SpotID: 1, Type: "car", Count: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotificationFailed)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "502")
}

func TestNotifyUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(url, time.Second)
	err := c.NotifyReservation(context.Background(), ReservationNotification{SpotID: 1})
	assert.ErrorIs(t, err, ErrNotificationFailed)
}

func TestNotifyRespectsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := newTestClient(srv.URL, 5*time.Second)
	err := c.NotifyReservation(ctx, ReservationNotification{SpotID: 1})
	assert.ErrorIs(t, err, ErrNotificationFailed)
}
