package cancel_reservation

import "errors"

var (
	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("cancel_reservation: branch not found")

	// ErrSpotNotFound возвращается, когда место не найдено
	ErrSpotNotFound = errors.New("cancel_reservation: spot not found")

	// ErrCredentialsRequired возвращается, когда не указаны email или пароль для подтверждения
	ErrCredentialsRequired = errors.New("cancel_reservation: email and password are required")

	// ErrInvalidCredentials возвращается, когда email или пароль не совпадают с бронированием
	ErrInvalidCredentials = errors.New("cancel_reservation: invalid credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
