package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// defaultJobTimeout ограничение на один запуск задачи
const defaultJobTimeout = time.Minute

// Scheduler запускает периодические задачи сервиса
type Scheduler struct {
	cron    *cron.Cron
	expirer PassExpirer
	timeout time.Duration
	now     func() time.Time
	logger  Logger
}

// NewScheduler создает планировщик и регистрирует задачу истечения абонементов.
// schedule задается в стандартном формате cron из пяти полей.
func NewScheduler(expirer PassExpirer, schedule string, logger Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		expirer: expirer,
		timeout: defaultJobTimeout,
		now:     time.Now,
		logger:  logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.expirePasses); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, schedule, err)
	}

	return s, nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler: cron jobs started")
}

// Stop останавливает планировщик и ждет завершения выполняющихся задач
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()

	select {
	case <-done:
		s.logger.Info("Scheduler: cron jobs stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Scheduler: stop interrupted while a job was running")
		return ctx.Err()
	}
}

// RunExpiry выполняет задачу истечения абонементов один раз
func (s *Scheduler) RunExpiry(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.expirer.ExpireFinished(ctx, s.now())
}

func (s *Scheduler) expirePasses() {
	s.logger.Info("Scheduler: checking for finished passes...")

	expired, err := s.RunExpiry(context.Background())
	if err != nil {
		s.logger.Error("Scheduler: failed to expire passes: %v", err)
		return
	}

	s.logger.Info("Scheduler: %d pass(es) expired", expired)
}
