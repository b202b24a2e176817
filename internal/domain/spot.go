package domain

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// SpotType represents the kind of vehicle a spot is built for
type SpotType string

const (
	SpotTypeCar  SpotType = "car"
	SpotTypeBike SpotType = "bike"
)

// SpotStatus represents the availability label of a spot
type SpotStatus string

const (
	SpotStatusAvailable SpotStatus = "available"
	// SpotStatusPartial and SpotStatusReserved are part of the model but
	// no transition currently produces them.
	SpotStatusPartial  SpotStatus = "partial"
	SpotStatusOccupied SpotStatus = "occupied"
	SpotStatusReserved SpotStatus = "reserved"
)

// IsValid returns true for car and bike
func (t SpotType) IsValid() bool {
	return t == SpotTypeCar || t == SpotTypeBike
}

// ReservationDetails is the payload attached to a spot by the latest reservation
type ReservationDetails struct {
	Name          string
	Email         string
	PasswordHash  []byte
	StartTime     types.TimeString
	EndTime       types.TimeString
	VehicleType   SpotType
	VehicleNumber string
	DurationHours float64
	ReservedAt    time.Time
}

// ParkingSpot represents a single parking location
type ParkingSpot struct {
	ID          int64
	Type        SpotType
	Capacity    int
	Occupancy   int
	Status      SpotStatus
	Reservation *ReservationDetails
}

// IsAvailable returns true if nothing occupies the spot
func (s *ParkingSpot) IsAvailable() bool {
	return s.Status == SpotStatusAvailable
}

// IsFull returns true if occupancy reached capacity
func (s *ParkingSpot) IsFull() bool {
	return s.Occupancy >= s.Capacity
}

// FreeUnits returns capacity minus occupancy
func (s *ParkingSpot) FreeUnits() int {
	return s.Capacity - s.Occupancy
}

// HasReservation returns true if reservation details are attached
func (s *ParkingSpot) HasReservation() bool {
	return s.Reservation != nil
}

// Clone returns a deep copy of the spot
func (s *ParkingSpot) Clone() *ParkingSpot {
	if s == nil {
		return nil
	}
	c := *s
	if s.Reservation != nil {
		r := *s.Reservation
		if s.Reservation.PasswordHash != nil {
			r.PasswordHash = append([]byte(nil), s.Reservation.PasswordHash...)
		}
		c.Reservation = &r
	}
	return &c
}

// StatusForOccupancy derives the status the default rules assign to an occupancy value
func StatusForOccupancy(occupancy int) SpotStatus {
	if occupancy > 0 {
		return SpotStatusOccupied
	}
	return SpotStatusAvailable
}

// SpotLayout describes how many spots of each kind a dashboard is built with
type SpotLayout struct {
	CarSpots     int
	CarCapacity  int
	BikeSpots    int
	BikeCapacity int
}

// DefaultSpotLayout 8 single car spots followed by 4 bike spots of 4 slots each
func DefaultSpotLayout() SpotLayout {
	return SpotLayout{
		CarSpots:     DefaultCarSpots,
		CarCapacity:  DefaultCarCapacity,
		BikeSpots:    DefaultBikeSpots,
		BikeCapacity: DefaultBikeCapacity,
	}
}

// SpotStats aggregate counters shown on the dashboard header
type SpotStats struct {
	AvailableCarSpots  int
	AvailableBikeSlots int
	TotalOccupied      int
}
