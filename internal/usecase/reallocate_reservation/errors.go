package reallocate_reservation

import "errors"

var (
	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("reallocate_reservation: branch not found")

	// ErrSpotNotFound возвращается, когда место не найдено
	ErrSpotNotFound = errors.New("reallocate_reservation: spot not found")

	// ErrNoReservation возвращается, когда на месте нечего переносить
	ErrNoReservation = errors.New("reallocate_reservation: spot has no reservation")

	// ErrNoAvailableSpot возвращается, когда свободного места того же типа нет
	ErrNoAvailableSpot = errors.New("reallocate_reservation: no alternate spot available")

	// ErrCredentialsRequired возвращается, если не переданы email или пароль
	ErrCredentialsRequired = errors.New("reallocate_reservation: email and password are required")

	// ErrInvalidCredentials возвращается, если email или пароль не совпали с бронированием
	ErrInvalidCredentials = errors.New("reallocate_reservation: invalid credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reallocate_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reallocate_reservation: internal error")
)
