package reserve_spot

import (
	"github.com/m04kA/SMC-ParkingService/internal/integrations/reservationservice"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
)

// BranchDirectory интерфейс справочника филиалов
type BranchDirectory interface {
	Open(code string) (*spots.Registry, error)
}

// Notifier интерфейс фоновой доставки уведомлений в Reservation Service
type Notifier interface {
	NotifyReserved(n reservationservice.ReservationNotification) error
}

// Metrics интерфейс метрик операций с местами
type Metrics interface {
	IncSpotOperation(operation, spotType, result string)
	SetBranchUnits(branch string, availableCars, availableBikeSlots, occupied int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
