package extend_reservation

import (
	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	extendReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/extend_reservation"
)

// ExtendReservationResponse HTTP response model
type ExtendReservationResponse struct {
	Spot            *handlers.SpotResponse `json:"spot"`
	PreviousEndTime string                 `json:"previousEndTime"`
	NewEndTime      string                 `json:"newEndTime"`
	Clamped         bool                   `json:"clamped"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *extendReservation.Response) *ExtendReservationResponse {
	return &ExtendReservationResponse{
		Spot:            handlers.NewSpotResponse(resp.Spot),
		PreviousEndTime: resp.PreviousEndTime.String(),
		NewEndTime:      resp.NewEndTime.String(),
		Clamped:         resp.Clamped,
	}
}
