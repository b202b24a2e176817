package register_pass

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// PassRepository интерфейс репозитория абонементов
type PassRepository interface {
	Create(ctx context.Context, p *domain.Pass) (*domain.Pass, error)
}

// Metrics интерфейс метрик операций с абонементами
type Metrics interface {
	IncPassOperation(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
