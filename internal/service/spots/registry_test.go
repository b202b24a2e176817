package spots

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

const (
	firstCarID  int64 = 1
	firstBikeID int64 = 9
)

func newDefaultRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(domain.DefaultSpotLayout())
	require.NoError(t, err)
	return r
}

func details(name string) domain.ReservationDetails {
	return domain.ReservationDetails{
		Name:          name,
		Email:         name + "@example.com",
		StartTime:     types.TimeString("09:00"),
		EndTime:       types.TimeString("11:00"),
		VehicleType:   domain.SpotTypeCar,
		VehicleNumber: "TN-01-1234",
		DurationHours: 2,
	}
}

func TestNewRegistryDefaultLayout(t *testing.T) {
	r := newDefaultRegistry(t)

	spots := r.ListSpots()
	require.Len(t, spots, 12)

	for i, spot := range spots {
		assert.Equal(t, int64(i+1), spot.ID)
		assert.Equal(t, domain.SpotStatusAvailable, spot.Status)
		assert.Zero(t, spot.Occupancy)
		assert.Nil(t, spot.Reservation)
		if i < 8 {
			assert.Equal(t, domain.SpotTypeCar, spot.Type)
			assert.Equal(t, 1, spot.Capacity)
		} else {
			assert.Equal(t, domain.SpotTypeBike, spot.Type)
			assert.Equal(t, 4, spot.Capacity)
		}
	}

	assert.Equal(t, domain.SpotStats{AvailableCarSpots: 8, AvailableBikeSlots: 16}, r.Stats())
}

func TestNewRegistryInvalidLayout(t *testing.T) {
	tests := []struct {
		name   string
		layout domain.SpotLayout
	}{
		{name: "empty", layout: domain.SpotLayout{}},
		{name: "negative cars", layout: domain.SpotLayout{CarSpots: -1, BikeSpots: 1, BikeCapacity: 4}},
		{name: "zero car capacity", layout: domain.SpotLayout{CarSpots: 2}},
		{name: "zero bike capacity", layout: domain.SpotLayout{BikeSpots: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.layout)
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestSelectSpot(t *testing.T) {
	r := newDefaultRegistry(t)

	spot, err := r.SelectSpot(firstBikeID)
	require.NoError(t, err)
	assert.Equal(t, domain.SpotTypeBike, spot.Type)

	before := r.ListSpots()
	_, err = r.SelectSpot(99)
	assert.ErrorIs(t, err, ErrSpotNotFound)
	assert.Equal(t, before, r.ListSpots())
}

func TestReturnedSpotsAreCopies(t *testing.T) {
	r := newDefaultRegistry(t)

	spot, _, err := r.Reserve(firstCarID, details("alice"))
	require.NoError(t, err)

	spot.Occupancy = 0
	spot.Reservation.Name = "mallory"

	stored, err := r.SelectSpot(firstCarID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Occupancy)
	assert.Equal(t, "alice", stored.Reservation.Name)
}

func TestReserveCarOverwritesPreviousReservation(t *testing.T) {
	r := newDefaultRegistry(t)

	_, _, err := r.Reserve(firstCarID, details("alice"))
	require.NoError(t, err)

	spot, previous, err := r.Reserve(firstCarID, details("bob"))
	require.NoError(t, err)

	assert.Equal(t, 1, previous)
	assert.Equal(t, 1, spot.Occupancy)
	assert.Equal(t, domain.SpotStatusOccupied, spot.Status)
	require.NotNil(t, spot.Reservation)
	assert.Equal(t, "bob", spot.Reservation.Name)
}

func TestReserveBikeClampsAtCapacity(t *testing.T) {
	r := newDefaultRegistry(t)

	var spot *domain.ParkingSpot
	var err error
	for i := 1; i <= 4; i++ {
		var previous int
		spot, previous, err = r.Reserve(firstBikeID, details("rider"))
		require.NoError(t, err)
		assert.Equal(t, i-1, previous)
		assert.Equal(t, i, spot.Occupancy)
		assert.Equal(t, domain.SpotStatusOccupied, spot.Status)
	}

	before := spot.Occupancy
	spot, previous, err := r.Reserve(firstBikeID, details("late"))
	require.NoError(t, err)
	assert.Equal(t, before, previous)
	assert.Equal(t, before, spot.Occupancy, "full bike spot keeps its occupancy")
	assert.Equal(t, "late", spot.Reservation.Name, "latest payload replaces the previous one")

	assert.Equal(t, 12, r.Stats().AvailableBikeSlots)
	assert.Equal(t, 4, r.Stats().TotalOccupied)
}

func TestReserveUnknownSpot(t *testing.T) {
	r := newDefaultRegistry(t)

	_, _, err := r.Reserve(0, details("alice"))
	assert.ErrorIs(t, err, ErrSpotNotFound)
	assert.Equal(t, 0, r.Stats().TotalOccupied)
}

func TestCancelBike(t *testing.T) {
	tests := []struct {
		name          string
		reserved      int
		count         int
		wantOccupancy int
		wantStatus    domain.SpotStatus
	}{
		{name: "release one", reserved: 3, count: 1, wantOccupancy: 2, wantStatus: domain.SpotStatusOccupied},
		{name: "release two", reserved: 3, count: 2, wantOccupancy: 1, wantStatus: domain.SpotStatusOccupied},
		{name: "release more than occupied", reserved: 2, count: 5, wantOccupancy: 0, wantStatus: domain.SpotStatusAvailable},
		{name: "release on empty spot", reserved: 0, count: 1, wantOccupancy: 0, wantStatus: domain.SpotStatusAvailable},
		{name: "zero count releases nothing", reserved: 2, count: 0, wantOccupancy: 2, wantStatus: domain.SpotStatusOccupied},
		{name: "negative count releases nothing", reserved: 2, count: -3, wantOccupancy: 2, wantStatus: domain.SpotStatusOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newDefaultRegistry(t)
			for i := 0; i < tt.reserved; i++ {
				_, _, err := r.Reserve(firstBikeID, details("rider"))
				require.NoError(t, err)
			}

			spot, released, err := r.Cancel(firstBikeID, domain.SpotTypeBike, tt.count, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.reserved-tt.wantOccupancy, released)
			assert.Equal(t, tt.wantOccupancy, spot.Occupancy)
			assert.Equal(t, tt.wantStatus, spot.Status)
			if tt.reserved > 0 {
				assert.NotNil(t, spot.Reservation, "bike cancellation keeps reservation details")
			}
		})
	}
}

func TestCancelCarResetsRegardlessOfCount(t *testing.T) {
	for _, count := range []int{0, 1, 3} {
		r := newDefaultRegistry(t)
		_, _, err := r.Reserve(firstCarID, details("alice"))
		require.NoError(t, err)

		spot, released, err := r.Cancel(firstCarID, domain.SpotTypeCar, count, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, released)
		assert.Zero(t, spot.Occupancy)
		assert.Equal(t, domain.SpotStatusAvailable, spot.Status)
		assert.Nil(t, spot.Reservation)
	}
}

func TestCancelUnknownTypeTakesCarPath(t *testing.T) {
	r := newDefaultRegistry(t)
	for i := 0; i < 3; i++ {
		_, _, err := r.Reserve(firstBikeID, details("rider"))
		require.NoError(t, err)
	}

	spot, _, err := r.Cancel(firstBikeID, domain.SpotType("truck"), 1, nil)
	require.NoError(t, err)
	assert.Zero(t, spot.Occupancy)
	assert.Nil(t, spot.Reservation)
}

func TestCancelUnknownSpot(t *testing.T) {
	r := newDefaultRegistry(t)

	_, _, err := r.Cancel(42, domain.SpotTypeCar, 1, nil)
	assert.ErrorIs(t, err, ErrSpotNotFound)
}

func TestExtend(t *testing.T) {
	r := newDefaultRegistry(t)

	_, _, err := r.Extend(firstCarID)
	assert.ErrorIs(t, err, ErrNoReservation)

	_, _, err = r.Extend(100)
	assert.ErrorIs(t, err, ErrSpotNotFound)

	d := details("alice")
	d.StartTime = "21:00"
	d.EndTime = "22:45"
	_, _, err = r.Reserve(firstCarID, d)
	require.NoError(t, err)

	spot, previous, err := r.Extend(firstCarID)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("22:45"), previous)
	assert.Equal(t, types.TimeString("23:45"), spot.Reservation.EndTime)
	assert.InDelta(t, 2.75, spot.Reservation.DurationHours, 1e-9)

	spot, previous, err = r.Extend(firstCarID)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("23:45"), previous)
	assert.Equal(t, types.TimeString("23:45"), spot.Reservation.EndTime)
}

func TestStatsAfterMutations(t *testing.T) {
	r := newDefaultRegistry(t)

	_, _, err := r.Reserve(1, details("a"))
	require.NoError(t, err)
	_, _, err = r.Reserve(2, details("b"))
	require.NoError(t, err)
	_, _, err = r.Reserve(firstBikeID, details("c"))
	require.NoError(t, err)
	_, _, err = r.Reserve(firstBikeID, details("d"))
	require.NoError(t, err)

	assert.Equal(t, domain.SpotStats{
		AvailableCarSpots:  6,
		AvailableBikeSlots: 14,
		TotalOccupied:      4,
	}, r.Stats())
}

func TestCustomLayoutOrdering(t *testing.T) {
	r, err := NewRegistry(domain.SpotLayout{CarSpots: 2, CarCapacity: 1, BikeSpots: 3, BikeCapacity: 6})
	require.NoError(t, err)

	spots := r.ListSpots()
	require.Len(t, spots, 5)
	assert.Equal(t, domain.SpotTypeCar, spots[1].Type)
	assert.Equal(t, domain.SpotTypeBike, spots[2].Type)
	assert.Equal(t, 6, spots[4].Capacity)
}

func TestRandomSequencesKeepOccupancyInBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	r := newDefaultRegistry(t)

	for step := 0; step < 2000; step++ {
		id := int64(rnd.Intn(12) + 1)
		spot, err := r.SelectSpot(id)
		require.NoError(t, err)

		if rnd.Intn(2) == 0 {
			_, _, err = r.Reserve(id, details("x"))
		} else {
			count := rnd.Intn(4)
			before := spot.Occupancy
			var after *domain.ParkingSpot
			var released int
			after, released, err = r.Cancel(id, spot.Type, count, nil)
			if err == nil && spot.Type == domain.SpotTypeBike {
				assert.Equal(t, min(count, before), released)
				assert.Equal(t, min(count, before), before-after.Occupancy)
			}
		}
		require.NoError(t, err)

		for _, s := range r.ListSpots() {
			assert.GreaterOrEqual(t, s.Occupancy, 0)
			assert.LessOrEqual(t, s.Occupancy, s.Capacity)
			assert.Equal(t, s.Occupancy == 0, s.Status == domain.SpotStatusAvailable)
		}
	}
}

func TestConcurrentReservationsAreSerialized(t *testing.T) {
	r := newDefaultRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = r.Reserve(firstBikeID, details("rider"))
			_, _ = r.SelectSpot(firstBikeID)
		}()
	}
	wg.Wait()

	spot, err := r.SelectSpot(firstBikeID)
	require.NoError(t, err)
	assert.Equal(t, 4, spot.Occupancy)
}

func TestCancelVerifyRejectsWithoutChanges(t *testing.T) {
	r := newDefaultRegistry(t)
	_, _, err := r.Reserve(firstCarID, details("alice"))
	require.NoError(t, err)

	errDenied := errors.New("denied")
	var seen *domain.ParkingSpot
	_, _, err = r.Cancel(firstCarID, domain.SpotTypeCar, 1, func(spot *domain.ParkingSpot) error {
		seen = spot
		return errDenied
	})
	assert.ErrorIs(t, err, errDenied)

	require.NotNil(t, seen)
	assert.Equal(t, "alice", seen.Reservation.Name)

	stored, err := r.SelectSpot(firstCarID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Occupancy)
	assert.Equal(t, "alice", stored.Reservation.Name)
}

func TestNextAvailable(t *testing.T) {
	r, err := NewRegistry(domain.SpotLayout{CarSpots: 2, CarCapacity: 1, BikeSpots: 2, BikeCapacity: 2})
	require.NoError(t, err)

	spot, err := r.NextAvailable(domain.SpotTypeCar)
	require.NoError(t, err)
	assert.Equal(t, int64(1), spot.ID)

	_, _, err = r.Reserve(1, details("a"))
	require.NoError(t, err)
	spot, err = r.NextAvailable(domain.SpotTypeCar)
	require.NoError(t, err)
	assert.Equal(t, int64(2), spot.ID)

	_, _, err = r.Reserve(2, details("b"))
	require.NoError(t, err)
	_, err = r.NextAvailable(domain.SpotTypeCar)
	assert.ErrorIs(t, err, ErrNoAvailableSpot)

	_, _, err = r.Reserve(3, details("rider"))
	require.NoError(t, err)
	spot, err = r.NextAvailable(domain.SpotTypeBike)
	require.NoError(t, err)
	assert.Equal(t, int64(3), spot.ID, "partially occupied bike spot still has free units")

	_, _, err = r.Reserve(3, details("rider"))
	require.NoError(t, err)
	spot, err = r.NextAvailable(domain.SpotTypeBike)
	require.NoError(t, err)
	assert.Equal(t, int64(4), spot.ID)

	_, err = r.NextAvailable(domain.SpotType("truck"))
	assert.ErrorIs(t, err, ErrNoAvailableSpot)
}

func TestReallocateCar(t *testing.T) {
	r := newDefaultRegistry(t)
	_, _, err := r.Reserve(firstCarID, details("alice"))
	require.NoError(t, err)
	_, _, err = r.Reserve(2, details("bob"))
	require.NoError(t, err)

	from, to, err := r.Reallocate(firstCarID, nil)
	require.NoError(t, err)

	assert.Equal(t, firstCarID, from.ID)
	assert.Zero(t, from.Occupancy)
	assert.Equal(t, domain.SpotStatusAvailable, from.Status)
	assert.Nil(t, from.Reservation)

	assert.Equal(t, int64(3), to.ID, "first free car spot after the occupied ones")
	assert.Equal(t, 1, to.Occupancy)
	require.NotNil(t, to.Reservation)
	assert.Equal(t, "alice", to.Reservation.Name)

	assert.Equal(t, 2, r.Stats().TotalOccupied)
}

func TestReallocateBikeMovesOneUnit(t *testing.T) {
	r := newDefaultRegistry(t)
	for i := 0; i < 2; i++ {
		_, _, err := r.Reserve(firstBikeID, details("rider"))
		require.NoError(t, err)
	}

	from, to, err := r.Reallocate(firstBikeID, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, from.Occupancy)
	assert.NotNil(t, from.Reservation)
	assert.Equal(t, firstBikeID+1, to.ID)
	assert.Equal(t, 1, to.Occupancy)
	assert.Equal(t, 2, r.Stats().TotalOccupied)
}

func TestReallocateErrors(t *testing.T) {
	r, err := NewRegistry(domain.SpotLayout{CarSpots: 2, CarCapacity: 1})
	require.NoError(t, err)

	_, _, err = r.Reallocate(7, nil)
	assert.ErrorIs(t, err, ErrSpotNotFound)

	_, _, err = r.Reallocate(1, nil)
	assert.ErrorIs(t, err, ErrNoReservation)

	_, _, err = r.Reserve(1, details("a"))
	require.NoError(t, err)
	_, _, err = r.Reserve(2, details("b"))
	require.NoError(t, err)

	_, _, err = r.Reallocate(1, nil)
	assert.ErrorIs(t, err, ErrNoAvailableSpot)

	_, _, err = r.Cancel(2, domain.SpotTypeCar, 1, nil)
	require.NoError(t, err)

	errDenied := errors.New("denied")
	_, _, err = r.Reallocate(1, func(*domain.ParkingSpot) error { return errDenied })
	assert.ErrorIs(t, err, errDenied)

	spot, err := r.SelectSpot(1)
	require.NoError(t, err)
	assert.Equal(t, "a", spot.Reservation.Name)
	assert.Equal(t, 1, r.Stats().TotalOccupied)
}

func TestConcurrentExtendWhileReservationChurns(t *testing.T) {
	r := newDefaultRegistry(t)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			_, _, _ = r.Reserve(firstCarID, details("alice"))
			_, _, _ = r.Cancel(firstCarID, domain.SpotTypeCar, 1, nil)
		}
	}()

	for i := 0; i < 5000; i++ {
		spot, previous, err := r.Extend(firstCarID)
		if err != nil {
			require.ErrorIs(t, err, ErrNoReservation)
			continue
		}
		require.NotNil(t, spot.Reservation)
		assert.False(t, previous.IsZero())
	}
	close(done)
	wg.Wait()
}
