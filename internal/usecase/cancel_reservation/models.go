package cancel_reservation

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// Request модель запроса на отмену бронирования
type Request struct {
	Branch      string // Код филиала
	SpotID      int64  // ID места
	Email       string // Email для подтверждения
	Password    string // Пароль для подтверждения
	VehicleType string // Тип транспорта; пусто означает car
	Count       *int   // Сколько единиц освободить; nil означает 1, отрицательное значение 0
}

// Response результат отмены
type Response struct {
	Spot               *domain.ParkingSpot // Место после отмены
	Released           int                 // Сколько единиц занятости освобождено
	NotificationQueued bool                // Уведомление поставлено в очередь
}
