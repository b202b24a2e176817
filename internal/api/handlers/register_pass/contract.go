package register_pass

import (
	"context"

	registerPass "github.com/m04kA/SMC-ParkingService/internal/usecase/register_pass"
)

type RegisterPassUseCase interface {
	Execute(ctx context.Context, req *registerPass.Request) (*registerPass.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
