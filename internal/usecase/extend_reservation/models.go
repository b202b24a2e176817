package extend_reservation

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request модель запроса на продление
type Request struct {
	Branch string
	SpotID int64
}

// Response результат продления
type Response struct {
	Spot            *domain.ParkingSpot
	PreviousEndTime types.TimeString
	NewEndTime      types.TimeString
	// Clamped true, если час окончания уже 23 и время не изменилось
	Clamped bool
}
