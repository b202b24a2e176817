package passes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// PassRepository интерфейс репозитория абонементов
type PassRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Pass, error)
	TransitionStatus(ctx context.Context, id int64, from, to domain.PassStatus, extensionRequested bool) error
	MarkArrived(ctx context.Context, id int64) error
	ExpireFinished(ctx context.Context, today time.Time) (int64, error)
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
