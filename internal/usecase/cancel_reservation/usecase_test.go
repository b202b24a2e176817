package cancel_reservation

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/reservationservice"
	"github.com/m04kA/SMC-ParkingService/internal/service/branches"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type fakeNotifier struct {
	sent []reservationservice.CancellationNotification
	err  error
}

func (f *fakeNotifier) NotifyCancelled(n reservationservice.CancellationNotification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

type fakeMetrics struct {
	ops map[string]int
}

func (m *fakeMetrics) IncSpotOperation(operation, spotType, result string) {
	m.ops[operation+"/"+spotType+"/"+result]++
}

func (m *fakeMetrics) SetBranchUnits(string, int, int, int) {}

type fixture struct {
	uc       *UseCase
	registry *spots.Registry
	notifier *fakeNotifier
	metrics  *fakeMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.NewWithWriter(io.Discard, logger.LevelError)
	directory := branches.NewDirectory(domain.DefaultBranches(), domain.DefaultSpotLayout(), log)
	registry, err := directory.Open("bangalore")
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	m := &fakeMetrics{ops: map[string]int{}}
	uc := NewUseCase(directory, notifier, m, noop.NewTracerProvider().Tracer("test"), log)

	return &fixture{uc: uc, registry: registry, notifier: notifier, metrics: m}
}

func (f *fixture) reserve(t *testing.T, spotID int64, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	_, _, err = f.registry.Reserve(spotID, domain.ReservationDetails{
		Name:         "holder",
		Email:        email,
		PasswordHash: hash,
		StartTime:    "09:00",
		EndTime:      "10:00",
	})
	require.NoError(t, err)
}

func TestCancelCarSpot(t *testing.T) {
	f := newFixture(t)
	f.reserve(t, 2, "alice@example.com", "secret")

	resp, err := f.uc.Execute(context.Background(), &Request{
		Branch:   "bangalore",
		SpotID:   2,
		Email:    "Alice@Example.com",
		Password: "secret",
		Count:    ptr.Ptr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Released)
	assert.Zero(t, resp.Spot.Occupancy)
	assert.Equal(t, domain.SpotStatusAvailable, resp.Spot.Status)
	assert.Nil(t, resp.Spot.Reservation)
	assert.True(t, resp.NotificationQueued)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, reservationservice.CancellationNotification{
		SpotID: 2, Branch: "bangalore", Type: "car", Count: 5,
	}, f.notifier.sent[0])
	assert.Equal(t, 1, f.metrics.ops["cancel/car/success"])
}

func TestCancelCarSpotWrongCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "alice@example.com", password: "guess"},
		{name: "wrong email", email: "bob@example.com", password: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.reserve(t, 2, "alice@example.com", "secret")

			_, err := f.uc.Execute(context.Background(), &Request{
				Branch: "bangalore", SpotID: 2, Email: tt.email, Password: tt.password,
			})
			assert.ErrorIs(t, err, ErrInvalidCredentials)

			spot, err := f.registry.SelectSpot(2)
			require.NoError(t, err)
			assert.Equal(t, 1, spot.Occupancy)
			assert.Empty(t, f.notifier.sent)
		})
	}
}

func TestCancelBikeReleasesCount(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		f.reserve(t, 11, "rider@example.com", "pw")
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		Branch:      "bangalore",
		SpotID:      11,
		Email:       "someone-else@example.com",
		Password:    "any",
		VehicleType: "bike",
		Count:       ptr.Ptr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Released)
	assert.Equal(t, 1, resp.Spot.Occupancy)
	assert.NotNil(t, resp.Spot.Reservation)

	resp, err = f.uc.Execute(context.Background(), &Request{
		Branch: "bangalore", SpotID: 11, Email: "x@example.com", Password: "any", VehicleType: "bike", Count: ptr.Ptr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Released)
	assert.Equal(t, domain.SpotStatusAvailable, resp.Spot.Status)
}

func TestCancelDefaults(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		Branch: "bangalore", SpotID: 1, Email: "a@b.c", Password: "p",
	})
	require.NoError(t, err)
	assert.Zero(t, resp.Released)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "car", f.notifier.sent[0].Type)
	assert.Equal(t, 1, f.notifier.sent[0].Count)
}

func TestCancelErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "missing email", req: &Request{Branch: "bangalore", SpotID: 1, Password: "p"}, wantErr: ErrCredentialsRequired},
		{name: "missing password", req: &Request{Branch: "bangalore", SpotID: 1, Email: "a@b.c"}, wantErr: ErrCredentialsRequired},
		{name: "bad spot id", req: &Request{Branch: "bangalore", SpotID: -1, Email: "a@b.c", Password: "p"}, wantErr: ErrInvalidInput},
		{name: "unknown branch", req: &Request{Branch: "nowhere", SpotID: 1, Email: "a@b.c", Password: "p"}, wantErr: ErrBranchNotFound},
		{name: "unknown spot", req: &Request{Branch: "bangalore", SpotID: 13, Email: "a@b.c", Password: "p"}, wantErr: ErrSpotNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.notifier.sent)
		})
	}
}

func TestCancelNotificationFailureKeepsLocalState(t *testing.T) {
	f := newFixture(t)
	f.reserve(t, 4, "alice@example.com", "secret")
	f.notifier.err = errors.New("dispatcher stopped")

	resp, err := f.uc.Execute(context.Background(), &Request{
		Branch: "bangalore", SpotID: 4, Email: "alice@example.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.False(t, resp.NotificationQueued)

	spot, err := f.registry.SelectSpot(4)
	require.NoError(t, err)
	assert.Equal(t, domain.SpotStatusAvailable, spot.Status)
}

func TestCancelBikeZeroCountKeepsOccupancy(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 2; i++ {
		f.reserve(t, 10, "rider@example.com", "pw")
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		Branch: "bangalore", SpotID: 10, Email: "x@example.com", Password: "any", VehicleType: "bike", Count: ptr.Ptr(0),
	})
	require.NoError(t, err)
	assert.Zero(t, resp.Released)
	assert.Equal(t, 2, resp.Spot.Occupancy)

	resp, err = f.uc.Execute(context.Background(), &Request{
		Branch: "bangalore", SpotID: 10, Email: "x@example.com", Password: "any", VehicleType: "bike",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Released, "omitted count releases one unit")
	assert.Equal(t, 1, resp.Spot.Occupancy)
}

func TestCancelCarSpotWithBikeTypeStillChecksCredentials(t *testing.T) {
	f := newFixture(t)
	f.reserve(t, 1, "owner@x.io", "secret")

	_, err := f.uc.Execute(context.Background(), &Request{
		Branch:      "bangalore",
		SpotID:      1,
		Email:       "attacker@x.io",
		Password:    "wrong",
		VehicleType: "bike",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	spot, err := f.registry.SelectSpot(1)
	require.NoError(t, err)
	assert.Equal(t, 1, spot.Occupancy)
	assert.Equal(t, domain.SpotStatusOccupied, spot.Status)
	require.NotNil(t, spot.Reservation)
	assert.Equal(t, "owner@x.io", spot.Reservation.Email)
	assert.Empty(t, f.notifier.sent)
}

func TestCancelChecksCredentialsOfCurrentReservation(t *testing.T) {
	f := newFixture(t)
	f.reserve(t, 3, "first@example.com", "one")
	f.reserve(t, 3, "second@example.com", "two")

	_, err := f.uc.Execute(context.Background(), &Request{
		Branch: "bangalore", SpotID: 3, Email: "first@example.com", Password: "one",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := f.uc.Execute(context.Background(), &Request{
		Branch: "bangalore", SpotID: 3, Email: "second@example.com", Password: "two",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Released)
}
