package reserve_spot

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request модель запроса на бронирование места
type Request struct {
	Branch        string           // Код филиала
	SpotID        int64            // ID места
	Name          string           // Имя
	Email         string           // Email
	Password      string           // Пароль для последующей отмены (хранится только хэш)
	StartTime     types.TimeString // Время начала, "HH:MM"
	EndTime       types.TimeString // Время окончания, "HH:MM"; раньше начала означает переход через полночь
	VehicleType   string           // Тип транспорта; по умолчанию тип места
	VehicleNumber string           // Номер транспорта (опционально)
}

// Response результат бронирования
type Response struct {
	Spot          *domain.ParkingSpot // Место после бронирования
	DurationHours float64             // Длительность бронирования в часах
	// AlreadyFull true, если занятость места не изменилась:
	// место для байков было заполнено или машиноместо было занято и перезаписано
	AlreadyFull        bool
	NotificationQueued bool // Уведомление поставлено в очередь
}
