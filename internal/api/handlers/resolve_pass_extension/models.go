package resolve_pass_extension

import (
	"github.com/m04kA/SMC-ParkingService/internal/service/passes/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// ResolveExtensionRequest HTTP request model; approve обязателен
type ResolveExtensionRequest struct {
	Approve *bool `json:"approve"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ResolveExtensionRequest) ToServiceRequest() *models.ResolveExtensionRequest {
	return &models.ResolveExtensionRequest{Approve: ptr.Value(r.Approve)}
}
