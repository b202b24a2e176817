package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// PassResponse данные абонемента для API
type PassResponse struct {
	ID                 int64     `json:"passId"`
	PassType           string    `json:"passType"`
	UserRole           string    `json:"userRole"`
	UserName           string    `json:"userName"`
	Email              string    `json:"email"`
	Mobile             string    `json:"mobile,omitempty"`
	Age                int       `json:"age,omitempty"`
	VehicleNumber      string    `json:"vehicleNumber"`
	StartDate          string    `json:"startDate"`
	EndDate            string    `json:"endDate"`
	StartTime          string    `json:"startTime"`
	EndTime            string    `json:"endTime"`
	Status             string    `json:"status"`
	Arrived            bool      `json:"arrived"`
	ExtensionRequested bool      `json:"extensionRequested"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ResolveExtensionRequest решение администратора по запросу продления
type ResolveExtensionRequest struct {
	Approve bool
}

// FromDomainPass конвертирует domain.Pass в PassResponse
func FromDomainPass(p *domain.Pass) *PassResponse {
	return &PassResponse{
		ID:                 p.ID,
		PassType:           string(p.PassType),
		UserRole:           string(p.UserRole),
		UserName:           p.UserName,
		Email:              p.Email,
		Mobile:             p.Mobile,
		Age:                p.Age,
		VehicleNumber:      p.VehicleNumber,
		StartDate:          p.StartDate.Format(domain.DateFormat),
		EndDate:            p.EndDate.Format(domain.DateFormat),
		StartTime:          p.StartTime.String(),
		EndTime:            p.EndTime.String(),
		Status:             string(p.Status),
		Arrived:            p.Arrived,
		ExtensionRequested: p.ExtensionRequested,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
