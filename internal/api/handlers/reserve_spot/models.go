package reserve_spot

import (
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	reserveSpot "github.com/m04kA/SMC-ParkingService/internal/usecase/reserve_spot"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// ReserveSpotRequest HTTP request model
type ReserveSpotRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	StartTime     string `json:"startTime"` // "09:00"
	EndTime       string `json:"endTime"`   // "18:00"
	VehicleType   string `json:"vehicleType,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
}

// ReserveSpotResponse HTTP response model
type ReserveSpotResponse struct {
	Spot               *handlers.SpotResponse `json:"spot"`
	DurationHours      float64                `json:"durationHours"`
	AlreadyFull        bool                   `json:"alreadyFull"`
	NotificationQueued bool                   `json:"notificationQueued"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Формат времени проверяет use case, чтобы ошибка называла нарушенное правило.
func (r *ReserveSpotRequest) ToUseCaseRequest(branch string, spotID int64) *reserveSpot.Request {
	return &reserveSpot.Request{
		Branch:        branch,
		SpotID:        spotID,
		Name:          strings.TrimSpace(r.Name),
		Email:         strings.TrimSpace(r.Email),
		Password:      r.Password,
		StartTime:     types.TimeString(strings.TrimSpace(r.StartTime)),
		EndTime:       types.TimeString(strings.TrimSpace(r.EndTime)),
		VehicleType:   strings.ToLower(strings.TrimSpace(r.VehicleType)),
		VehicleNumber: strings.TrimSpace(r.VehicleNumber),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSpot.Response) *ReserveSpotResponse {
	return &ReserveSpotResponse{
		Spot:               handlers.NewSpotResponse(resp.Spot),
		DurationHours:      resp.DurationHours,
		AlreadyFull:        resp.AlreadyFull,
		NotificationQueued: resp.NotificationQueued,
	}
}
