package reservationservice

import "errors"

var (
	// ErrNotificationFailed возвращается, когда удаленный сервис не принял уведомление
	ErrNotificationFailed = errors.New("reservationservice: notification failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reservationservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("reservationservice client: invalid response")
)
