package jobs

import (
	"context"
	"time"
)

// PassExpirer интерфейс сервиса абонементов
type PassExpirer interface {
	ExpireFinished(ctx context.Context, now time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
