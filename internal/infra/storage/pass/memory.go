package pass

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// MemoryRepository хранит абонементы в памяти процесса; используется, когда база данных выключена
type MemoryRepository struct {
	mu     sync.RWMutex
	passes map[int64]*domain.Pass
	nextID int64
	now    func() time.Time
}

// NewMemoryRepository создает пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		passes: make(map[int64]*domain.Pass),
		now:    time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, p *domain.Pass) (*domain.Pass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := r.now()

	stored := *p
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.passes[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*domain.Pass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.passes[id]
	if !ok {
		return nil, ErrPassNotFound
	}

	result := *p
	return &result, nil
}

func (r *MemoryRepository) TransitionStatus(_ context.Context, id int64, from, to domain.PassStatus, extensionRequested bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.passes[id]
	if !ok {
		return ErrPassNotFound
	}
	if p.Status != from {
		return ErrStatusConflict
	}

	p.Status = to
	p.ExtensionRequested = extensionRequested
	p.UpdatedAt = r.now()
	return nil
}

func (r *MemoryRepository) MarkArrived(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.passes[id]
	if !ok {
		return ErrPassNotFound
	}

	p.Arrived = true
	p.UpdatedAt = r.now()
	return nil
}

func (r *MemoryRepository) ExpireFinished(_ context.Context, today time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired int64
	now := r.now()
	for _, p := range r.passes {
		if !isExpirable(p.Status) || !p.EndDate.Before(today) {
			continue
		}
		p.Status = domain.PassStatusExpired
		p.UpdatedAt = now
		expired++
	}
	return expired, nil
}

func isExpirable(status domain.PassStatus) bool {
	for _, s := range domain.ExpirableStatuses {
		if s == status {
			return true
		}
	}
	return false
}
