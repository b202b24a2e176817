package reallocate_reservation

import (
	"context"

	reallocateReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/reallocate_reservation"
)

type ReallocateReservationUseCase interface {
	Execute(ctx context.Context, req *reallocateReservation.Request) (*reallocateReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
