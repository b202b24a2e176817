package reallocate_reservation

import (
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	reallocateReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/reallocate_reservation"
)

// ReallocateReservationRequest HTTP request model
type ReallocateReservationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ReallocateReservationResponse HTTP response model
type ReallocateReservationResponse struct {
	From               *handlers.SpotResponse `json:"from"`
	To                 *handlers.SpotResponse `json:"to"`
	NotificationQueued bool                   `json:"notificationQueued"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReallocateReservationRequest) ToUseCaseRequest(branch string, spotID int64) *reallocateReservation.Request {
	return &reallocateReservation.Request{
		Branch:   branch,
		SpotID:   spotID,
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reallocateReservation.Response) *ReallocateReservationResponse {
	return &ReallocateReservationResponse{
		From:               handlers.NewSpotResponse(resp.From),
		To:                 handlers.NewSpotResponse(resp.To),
		NotificationQueued: resp.NotificationQueued,
	}
}
