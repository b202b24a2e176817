package cancel_reservation

import (
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	cancelReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	VehicleType string `json:"vehicleType,omitempty"` // "car" по умолчанию
	Count       *int   `json:"count,omitempty"`       // 1, если не передан
}

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	Spot               *handlers.SpotResponse `json:"spot"`
	Released           int                    `json:"released"`
	NotificationQueued bool                   `json:"notificationQueued"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelReservationRequest) ToUseCaseRequest(branch string, spotID int64) *cancelReservation.Request {
	return &cancelReservation.Request{
		Branch:      branch,
		SpotID:      spotID,
		Email:       strings.TrimSpace(r.Email),
		Password:    r.Password,
		VehicleType: strings.ToLower(strings.TrimSpace(r.VehicleType)),
		Count:       r.Count,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelReservationResponse {
	return &CancelReservationResponse{
		Spot:               handlers.NewSpotResponse(resp.Spot),
		Released:           resp.Released,
		NotificationQueued: resp.NotificationQueued,
	}
}
