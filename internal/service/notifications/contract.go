package notifications

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/integrations/reservationservice"
)

// ReservationServiceClient интерфейс клиента удаленного Reservation Service
type ReservationServiceClient interface {
	NotifyReservation(ctx context.Context, n reservationservice.ReservationNotification) error
	NotifyCancellation(ctx context.Context, n reservationservice.CancellationNotification) error
}

// Metrics интерфейс метрик доставки уведомлений
type Metrics interface {
	IncNotification(kind, result string)
	SetNotificationQueueLength(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
