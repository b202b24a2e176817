package handlers

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotResponse место парковки для API; хэш пароля наружу не отдается
type SpotResponse struct {
	ID          int64                `json:"id"`
	Type        string               `json:"type"`
	Capacity    int                  `json:"capacity"`
	Occupancy   int                  `json:"occupancy"`
	Status      string               `json:"status"`
	Reservation *ReservationResponse `json:"reservationDetails,omitempty"`
}

// ReservationResponse детали последнего бронирования места
type ReservationResponse struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	VehicleType   string  `json:"vehicleType"`
	VehicleNumber string  `json:"vehicleNumber,omitempty"`
	DurationHours float64 `json:"durationHours"`
	ReservedAt    string  `json:"reservedAt"`
}

// NewSpotResponse конвертирует domain.ParkingSpot в SpotResponse
func NewSpotResponse(spot *domain.ParkingSpot) *SpotResponse {
	if spot == nil {
		return nil
	}

	resp := &SpotResponse{
		ID:        spot.ID,
		Type:      string(spot.Type),
		Capacity:  spot.Capacity,
		Occupancy: spot.Occupancy,
		Status:    string(spot.Status),
	}

	if r := spot.Reservation; r != nil {
		resp.Reservation = &ReservationResponse{
			Name:          r.Name,
			Email:         r.Email,
			StartTime:     r.StartTime.String(),
			EndTime:       r.EndTime.String(),
			VehicleType:   string(r.VehicleType),
			VehicleNumber: r.VehicleNumber,
			DurationHours: r.DurationHours,
			ReservedAt:    r.ReservedAt.Format(time.RFC3339),
		}
	}

	return resp
}

// StatsResponse агрегаты дашборда
type StatsResponse struct {
	AvailableCarSpots  int `json:"availableCarSpots"`
	AvailableBikeSlots int `json:"availableBikeSlots"`
	TotalOccupied      int `json:"totalOccupied"`
}

// DashboardResponse состояние дашборда филиала
type DashboardResponse struct {
	Branch string          `json:"branch"`
	Spots  []*SpotResponse `json:"spots"`
	Stats  StatsResponse   `json:"stats"`
}

// NewDashboardResponse собирает ответ дашборда из мест и агрегатов
func NewDashboardResponse(branch string, spots []*domain.ParkingSpot, stats domain.SpotStats) *DashboardResponse {
	resp := &DashboardResponse{
		Branch: branch,
		Spots:  make([]*SpotResponse, 0, len(spots)),
		Stats: StatsResponse{
			AvailableCarSpots:  stats.AvailableCarSpots,
			AvailableBikeSlots: stats.AvailableBikeSlots,
			TotalOccupied:      stats.TotalOccupied,
		},
	}
	for _, spot := range spots {
		resp.Spots = append(resp.Spots, NewSpotResponse(spot))
	}
	return resp
}
