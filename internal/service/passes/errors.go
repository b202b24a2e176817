package passes

import "errors"

var (
	// ErrPassNotFound возвращается, когда абонемент не найден
	ErrPassNotFound = errors.New("pass not found")

	// ErrCannotCancel возвращается, когда абонемент не активен и не может быть отменен
	ErrCannotCancel = errors.New("pass cannot be cancelled")

	// ErrCannotRequestExtension возвращается, когда продление можно запросить только для активного абонемента
	ErrCannotRequestExtension = errors.New("extension can only be requested for an active pass")

	// ErrNoPendingExtension возвращается, когда у абонемента нет запроса на продление
	ErrNoPendingExtension = errors.New("pass has no pending extension")

	// ErrConflict возвращается, когда статус изменился параллельным запросом
	ErrConflict = errors.New("pass status changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
