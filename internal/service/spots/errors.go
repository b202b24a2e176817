package spots

import "errors"

var (
	// ErrSpotNotFound возвращается, когда место с указанным ID не существует
	ErrSpotNotFound = errors.New("spots: spot not found")

	// ErrNoReservation возвращается при продлении места без данных бронирования
	ErrNoReservation = errors.New("spots: spot has no reservation")

	// ErrNoAvailableSpot возвращается, когда свободного места нужного типа нет
	ErrNoAvailableSpot = errors.New("spots: no available spot")

	// ErrInvalidLayout возвращается при некорректной конфигурации мест
	ErrInvalidLayout = errors.New("spots: invalid layout")
)
