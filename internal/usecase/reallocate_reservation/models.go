package reallocate_reservation

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// Request модель запроса на перенос бронирования
type Request struct {
	Branch   string // Код филиала
	SpotID   int64  // ID текущего места
	Email    string // Email для подтверждения
	Password string // Пароль для подтверждения
}

// Response результат переноса
type Response struct {
	From               *domain.ParkingSpot // Исходное место после переноса
	To                 *domain.ParkingSpot // Новое место
	NotificationQueued bool                // Оба уведомления поставлены в очередь
}
