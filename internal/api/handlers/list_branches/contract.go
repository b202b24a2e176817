package list_branches

import "github.com/m04kA/SMC-ParkingService/internal/domain"

type BranchDirectory interface {
	List() []domain.Branch
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
