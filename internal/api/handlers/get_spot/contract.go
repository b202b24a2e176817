package get_spot

import "github.com/m04kA/SMC-ParkingService/internal/service/spots"

type BranchDirectory interface {
	Open(code string) (*spots.Registry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
