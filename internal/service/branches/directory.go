package branches

import (
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
)

// Directory справочник филиалов; у каждого филиала свой реестр мест.
// Реестр создается при первом открытии дашборда и пересоздается при Reset.
type Directory struct {
	mu         sync.Mutex
	branches   []domain.Branch
	layout     domain.SpotLayout
	registries map[string]*spots.Registry
	logger     Logger
}

// NewDirectory создает справочник филиалов
func NewDirectory(branches []domain.Branch, layout domain.SpotLayout, logger Logger) *Directory {
	list := make([]domain.Branch, len(branches))
	copy(list, branches)

	return &Directory{
		branches:   list,
		layout:     layout,
		registries: make(map[string]*spots.Registry, len(list)),
		logger:     logger,
	}
}

// List возвращает филиалы в порядке конфигурации
func (d *Directory) List() []domain.Branch {
	result := make([]domain.Branch, len(d.branches))
	copy(result, d.branches)
	return result
}

// Get возвращает филиал по коду
func (d *Directory) Get(code string) (domain.Branch, error) {
	branch, ok := d.find(code)
	if !ok {
		return domain.Branch{}, fmt.Errorf("%w: code=%s", ErrBranchNotFound, code)
	}
	return branch, nil
}

// Open возвращает реестр мест филиала, создавая его при первом обращении
func (d *Directory) Open(code string) (*spots.Registry, error) {
	branch, ok := d.find(code)
	if !ok {
		return nil, fmt.Errorf("%w: code=%s", ErrBranchNotFound, code)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if registry, ok := d.registries[branch.Code]; ok {
		return registry, nil
	}

	registry, err := spots.NewRegistry(d.layout)
	if err != nil {
		d.logger.Error("Open: failed to build registry for branch=%s: %v", branch.Code, err)
		return nil, fmt.Errorf("%w: failed to build registry: %v", ErrInternal, err)
	}
	d.registries[branch.Code] = registry

	d.logger.Info("Open: dashboard initialized for branch=%s", branch.Code)
	return registry, nil
}

// Reset пересоздает реестр филиала из раскладки; все бронирования теряются
func (d *Directory) Reset(code string) (*spots.Registry, error) {
	branch, ok := d.find(code)
	if !ok {
		return nil, fmt.Errorf("%w: code=%s", ErrBranchNotFound, code)
	}

	registry, err := spots.NewRegistry(d.layout)
	if err != nil {
		d.logger.Error("Reset: failed to build registry for branch=%s: %v", branch.Code, err)
		return nil, fmt.Errorf("%w: failed to build registry: %v", ErrInternal, err)
	}

	d.mu.Lock()
	d.registries[branch.Code] = registry
	d.mu.Unlock()

	d.logger.Info("Reset: dashboard re-initialized for branch=%s", branch.Code)
	return registry, nil
}

func (d *Directory) find(code string) (domain.Branch, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, b := range d.branches {
		if b.Code == code {
			return b, true
		}
	}
	return domain.Branch{}, false
}
