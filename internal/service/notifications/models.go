package notifications

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/integrations/reservationservice"
)

// Kind тип уведомления
type Kind string

const (
	KindReserved  Kind = "reserved"
	KindCancelled Kind = "cancelled"
)

// Результаты доставки для метрик
const (
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
	ResultDropped   = "dropped"
)

// Config параметры диспетчера
type Config struct {
	Workers   int
	QueueSize int
	Timeout   time.Duration
}

type task struct {
	kind         Kind
	reservation  reservationservice.ReservationNotification
	cancellation reservationservice.CancellationNotification
}

func (t task) spotID() int64 {
	if t.kind == KindReserved {
		return t.reservation.SpotID
	}
	return t.cancellation.SpotID
}
