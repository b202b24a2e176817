package notifications

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/integrations/reservationservice"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type fakeClient struct {
	mu            sync.Mutex
	reservations  []reservationservice.ReservationNotification
	cancellations []reservationservice.CancellationNotification
	err           error
	block         chan struct{}
}

func (f *fakeClient) NotifyReservation(ctx context.Context, n reservationservice.ReservationNotification) error {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reservations = append(f.reservations, n)
	return f.err
}

func (f *fakeClient) NotifyCancellation(_ context.Context, n reservationservice.CancellationNotification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancellations = append(f.cancellations, n)
	return f.err
}

type fakeMetrics struct {
	mu      sync.Mutex
	results map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{results: map[string]int{}}
}

func (m *fakeMetrics) IncNotification(kind, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[kind+"/"+result]++
}

func (m *fakeMetrics) SetNotificationQueueLength(int) {}

func (m *fakeMetrics) get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.results[key]
}

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, logger.LevelError)
}

func TestDispatcherDeliversAll(t *testing.T) {
	client := &fakeClient{}
	m := newFakeMetrics()
	d := NewDispatcher(client, Config{Workers: 3, QueueSize: 10, Timeout: time.Second}, m, quietLogger())
	d.Start()

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, d.NotifyReserved(reservationservice.ReservationNotification{SpotID: i}))
	}
	require.NoError(t, d.NotifyCancelled(reservationservice.CancellationNotification{SpotID: 9, Type: "bike", Count: 1}))

	require.NoError(t, d.Shutdown(context.Background()))

	assert.Len(t, client.reservations, 5)
	assert.Len(t, client.cancellations, 1)
	assert.Equal(t, 5, m.get("reserved/delivered"))
	assert.Equal(t, 1, m.get("cancelled/delivered"))
}

func TestDispatcherCountsFailures(t *testing.T) {
	client := &fakeClient{err: errors.New("remote down")}
	m := newFakeMetrics()
	d := NewDispatcher(client, Config{Workers: 1, QueueSize: 4}, m, quietLogger())
	d.Start()

	require.NoError(t, d.NotifyCancelled(reservationservice.CancellationNotification{SpotID: 1, Type: "car", Count: 1}))
	require.NoError(t, d.Shutdown(context.Background()))

	assert.Equal(t, 1, m.get("cancelled/failed"))
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	client := &fakeClient{block: make(chan struct{})}
	m := newFakeMetrics()
	d := NewDispatcher(client, Config{Workers: 1, QueueSize: 1}, m, quietLogger())

	// Воркеры не запущены: первая задача занимает очередь, вторая отбрасывается
	require.NoError(t, d.NotifyReserved(reservationservice.ReservationNotification{SpotID: 1}))
	err := d.NotifyReserved(reservationservice.ReservationNotification{SpotID: 2})
	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, 1, m.get("reserved/dropped"))

	d.Start()
	close(client.block)
	require.NoError(t, d.Shutdown(context.Background()))
	assert.Len(t, client.reservations, 1)
}

func TestDispatcherRejectsAfterShutdown(t *testing.T) {
	d := NewDispatcher(&fakeClient{}, Config{}, newFakeMetrics(), quietLogger())
	d.Start()
	require.NoError(t, d.Shutdown(context.Background()))
	require.NoError(t, d.Shutdown(context.Background()))

	err := d.NotifyReserved(reservationservice.ReservationNotification{SpotID: 1})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestDispatcherTimeoutAppliesPerDelivery(t *testing.T) {
	client := &fakeClient{block: make(chan struct{})}
	defer close(client.block)
	m := newFakeMetrics()
	d := NewDispatcher(client, Config{Workers: 1, QueueSize: 2, Timeout: 20 * time.Millisecond}, m, quietLogger())
	d.Start()

	require.NoError(t, d.NotifyReserved(reservationservice.ReservationNotification{SpotID: 1}))
	require.NoError(t, d.Shutdown(context.Background()))

	assert.Equal(t, 1, m.get("reserved/failed"))
	assert.Empty(t, client.reservations)
}

func TestDispatcherShutdownHonoursContext(t *testing.T) {
	client := &fakeClient{block: make(chan struct{})}
	defer close(client.block)
	d := NewDispatcher(client, Config{Workers: 1, QueueSize: 2}, newFakeMetrics(), quietLogger())
	d.Start()

	require.NoError(t, d.NotifyReserved(reservationservice.ReservationNotification{SpotID: 1}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Shutdown(ctx), context.DeadlineExceeded)
}
