package register_pass

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request модель запроса на оформление абонемента
type Request struct {
	PassType      string           // monthly или yearly
	UserRole      string           // employee, visitor или guest; по умолчанию visitor
	UserName      string           // Имя владельца
	Email         string           // Email
	Mobile        string           // Телефон (опционально)
	Age           int              // Возраст (опционально)
	VehicleNumber string           // Номер транспорта
	StartDate     time.Time        // Первый день действия
	EndDate       time.Time        // Последний день действия
	StartTime     types.TimeString // Начало ежедневного окна
	EndTime       types.TimeString // Конец ежедневного окна, без перехода через полночь
}

// Response модель ответа с оформленным абонементом
type Response struct {
	ID            int64
	PassType      string
	UserRole      string
	UserName      string
	Email         string
	VehicleNumber string
	StartDate     time.Time
	EndDate       time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        string
	Days          int // Длительность периода в днях
	WindowMinutes int // Длительность ежедневного окна в минутах
	CreatedAt     time.Time
}
