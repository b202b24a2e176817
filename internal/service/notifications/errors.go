package notifications

import "errors"

var (
	// ErrQueueFull возвращается, когда очередь уведомлений переполнена и задача отброшена
	ErrQueueFull = errors.New("notifications: queue is full")

	// ErrStopped возвращается при постановке задачи после остановки диспетчера
	ErrStopped = errors.New("notifications: dispatcher is stopped")
)
