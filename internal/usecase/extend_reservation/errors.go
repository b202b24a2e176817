package extend_reservation

import "errors"

var (
	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("extend_reservation: branch not found")

	// ErrSpotNotFound возвращается, когда место не найдено
	ErrSpotNotFound = errors.New("extend_reservation: spot not found")

	// ErrNoReservation возвращается, когда у места нет бронирования для продления
	ErrNoReservation = errors.New("extend_reservation: spot has no reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("extend_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("extend_reservation: internal error")
)
