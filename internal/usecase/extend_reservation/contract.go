package extend_reservation

import "github.com/m04kA/SMC-ParkingService/internal/service/spots"

// BranchDirectory интерфейс справочника филиалов
type BranchDirectory interface {
	Open(code string) (*spots.Registry, error)
}

// Metrics интерфейс метрик операций с местами
type Metrics interface {
	IncSpotOperation(operation, spotType, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
