package register_pass

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	registerPass "github.com/m04kA/SMC-ParkingService/internal/usecase/register_pass"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// RegisterPassRequest HTTP request model
type RegisterPassRequest struct {
	PassType      string `json:"passType"` // "monthly" | "yearly"
	UserRole      string `json:"userRole,omitempty"`
	UserName      string `json:"userName"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile,omitempty"`
	Age           int    `json:"age,omitempty"`
	VehicleNumber string `json:"vehicleNumber"`
	StartDate     string `json:"startDate"` // "2024-01-01"
	EndDate       string `json:"endDate"`   // "2024-01-31"
	StartTime     string `json:"startTime"` // "09:00"
	EndTime       string `json:"endTime"`   // "15:00"
}

// RegisterPassResponse HTTP response model
type RegisterPassResponse struct {
	ID            int64  `json:"passId"`
	PassType      string `json:"passType"`
	UserRole      string `json:"userRole"`
	UserName      string `json:"userName"`
	Email         string `json:"email"`
	VehicleNumber string `json:"vehicleNumber"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
	Days          int    `json:"days"`
	WindowMinutes int    `json:"windowMinutes"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *RegisterPassRequest) ToUseCaseRequest() (*registerPass.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, strings.TrimSpace(r.StartDate))
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}

	endDate, err := time.Parse(domain.DateFormat, strings.TrimSpace(r.EndDate))
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	return &registerPass.Request{
		PassType:      strings.ToLower(strings.TrimSpace(r.PassType)),
		UserRole:      strings.ToLower(strings.TrimSpace(r.UserRole)),
		UserName:      strings.TrimSpace(r.UserName),
		Email:         strings.TrimSpace(r.Email),
		Mobile:        strings.TrimSpace(r.Mobile),
		Age:           r.Age,
		VehicleNumber: strings.TrimSpace(r.VehicleNumber),
		StartDate:     startDate,
		EndDate:       endDate,
		StartTime:     types.TimeString(strings.TrimSpace(r.StartTime)),
		EndTime:       types.TimeString(strings.TrimSpace(r.EndTime)),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerPass.Response) *RegisterPassResponse {
	return &RegisterPassResponse{
		ID:            resp.ID,
		PassType:      resp.PassType,
		UserRole:      resp.UserRole,
		UserName:      resp.UserName,
		Email:         resp.Email,
		VehicleNumber: resp.VehicleNumber,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		Status:        resp.Status,
		Days:          resp.Days,
		WindowMinutes: resp.WindowMinutes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
