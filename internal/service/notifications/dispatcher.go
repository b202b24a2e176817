package notifications

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-ParkingService/internal/integrations/reservationservice"
)

const (
	defaultWorkers   = 2
	defaultQueueSize = 100
)

// Dispatcher доставляет уведомления в Reservation Service в фоне.
// Локальное состояние уже применено к моменту постановки задачи,
// ошибка доставки только логируется и учитывается в метриках.
type Dispatcher struct {
	client  ReservationServiceClient
	cfg     Config
	metrics Metrics
	logger  Logger

	queue chan task
	wg    sync.WaitGroup

	mu      sync.RWMutex
	started bool
	stopped bool
}

// NewDispatcher создает диспетчер; воркеры запускаются методом Start
func NewDispatcher(client ReservationServiceClient, cfg Config, metrics Metrics, logger Logger) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}

	return &Dispatcher{
		client:  client,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
		queue:   make(chan task, cfg.QueueSize),
	}
}

// Start запускает воркеры; повторный вызов ничего не делает
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.stopped {
		return
	}
	d.started = true

	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	d.logger.Info("Dispatcher: started %d workers, queue size=%d", d.cfg.Workers, d.cfg.QueueSize)
}

// NotifyReserved ставит уведомление о бронировании в очередь, не блокируясь
func (d *Dispatcher) NotifyReserved(n reservationservice.ReservationNotification) error {
	return d.enqueue(task{kind: KindReserved, reservation: n})
}

// NotifyCancelled ставит уведомление об отмене в очередь, не блокируясь
func (d *Dispatcher) NotifyCancelled(n reservationservice.CancellationNotification) error {
	return d.enqueue(task{kind: KindCancelled, cancellation: n})
}

// Shutdown закрывает очередь и ждет, пока воркеры доставят оставшиеся задачи
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		d.logger.Info("Dispatcher: stopped before start, %d tasks discarded", len(d.queue))
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("Dispatcher: all workers stopped")
		return nil
	case <-ctx.Done():
		d.logger.Warn("Dispatcher: shutdown interrupted, %d tasks left in queue", len(d.queue))
		return ctx.Err()
	}
}

func (d *Dispatcher) enqueue(t task) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.metrics.IncNotification(string(t.kind), ResultDropped)
		return fmt.Errorf("%w: %s for spot=%d", ErrStopped, t.kind, t.spotID())
	}

	select {
	case d.queue <- t:
		d.metrics.SetNotificationQueueLength(len(d.queue))
		return nil
	default:
		d.logger.Warn("Dispatcher: queue is full, %s notification for spot=%d dropped", t.kind, t.spotID())
		d.metrics.IncNotification(string(t.kind), ResultDropped)
		return fmt.Errorf("%w: %s for spot=%d", ErrQueueFull, t.kind, t.spotID())
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()

	for t := range d.queue {
		d.metrics.SetNotificationQueueLength(len(d.queue))
		d.deliver(id, t)
	}
}

func (d *Dispatcher) deliver(workerID int, t task) {
	ctx := context.Background()
	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}

	var err error
	switch t.kind {
	case KindReserved:
		err = d.client.NotifyReservation(ctx, t.reservation)
	case KindCancelled:
		err = d.client.NotifyCancellation(ctx, t.cancellation)
	}

	if err != nil {
		// Локальное состояние не откатывается
		d.logger.Error("Dispatcher: worker #%d failed to deliver %s notification for spot=%d: %v",
			workerID, t.kind, t.spotID(), err)
		d.metrics.IncNotification(string(t.kind), ResultFailed)
		return
	}

	d.metrics.IncNotification(string(t.kind), ResultDelivered)
}
