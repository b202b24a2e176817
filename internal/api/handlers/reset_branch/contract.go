package reset_branch

import "github.com/m04kA/SMC-ParkingService/internal/service/spots"

type BranchDirectory interface {
	Reset(code string) (*spots.Registry, error)
}

type Metrics interface {
	SetBranchUnits(branch string, availableCars, availableBikeSlots, occupied int)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
