package resolve_pass_extension

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/passes/models"
)

type PassService interface {
	ResolveExtension(ctx context.Context, id int64, req *models.ResolveExtensionRequest) (*models.PassResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
