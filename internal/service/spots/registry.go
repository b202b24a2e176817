package spots

import (
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/rules"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Registry хранит места одного дашборда и применяет к ним переходы состояний.
// Все операции сериализуются одним мьютексом, наружу отдаются только копии мест.
type Registry struct {
	mu    sync.Mutex
	spots map[int64]*domain.ParkingSpot
	order []int64
}

// NewRegistry создает реестр по раскладке: сначала машиноместа, затем места для байков.
// ID выдаются подряд начиная с 1.
func NewRegistry(layout domain.SpotLayout) (*Registry, error) {
	if err := validateLayout(layout); err != nil {
		return nil, err
	}

	r := &Registry{
		spots: make(map[int64]*domain.ParkingSpot, layout.CarSpots+layout.BikeSpots),
		order: make([]int64, 0, layout.CarSpots+layout.BikeSpots),
	}

	var id int64
	for i := 0; i < layout.CarSpots; i++ {
		id++
		r.add(id, domain.SpotTypeCar, layout.CarCapacity)
	}
	for i := 0; i < layout.BikeSpots; i++ {
		id++
		r.add(id, domain.SpotTypeBike, layout.BikeCapacity)
	}

	r.sortOrder()
	return r, nil
}

// ListSpots возвращает все места: машиноместа по возрастанию ID, затем места для байков
func (r *Registry) ListSpots() []*domain.ParkingSpot {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.ParkingSpot, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.spots[id].Clone())
	}
	return result
}

// Stats считает агрегаты для шапки дашборда
func (r *Registry) Stats() domain.SpotStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stats domain.SpotStats
	for _, spot := range r.spots {
		switch spot.Type {
		case domain.SpotTypeCar:
			if spot.Status == domain.SpotStatusAvailable {
				stats.AvailableCarSpots++
			}
		case domain.SpotTypeBike:
			stats.AvailableBikeSlots += spot.FreeUnits()
		}
		stats.TotalOccupied += spot.Occupancy
	}
	return stats
}

// SelectSpot возвращает место по ID без изменения состояния
func (r *Registry) SelectSpot(id int64) (*domain.ParkingSpot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	spot, ok := r.spots[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrSpotNotFound, id)
	}
	return spot.Clone(), nil
}

// Reserve занимает место и возвращает занятость до изменения.
// Машиноместо занимается целиком и перезаписывает прежнее бронирование.
// Место для байков получает +1 к занятости, но не больше вместимости.
func (r *Registry) Reserve(id int64, details domain.ReservationDetails) (*domain.ParkingSpot, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	spot, ok := r.spots[id]
	if !ok {
		return nil, 0, fmt.Errorf("%w: id=%d", ErrSpotNotFound, id)
	}

	previous := spot.Occupancy
	occupy(spot, details)

	return spot.Clone(), previous, nil
}

// Cancel освобождает место и возвращает число освобожденных единиц.
// verify вызывается под блокировкой с текущим состоянием места; его ошибка возвращается как есть,
// и место не меняется. nil означает отсутствие проверки.
// Для байков занятость уменьшается ровно на min(count, занятость), данные бронирования не трогаются;
// отрицательный count считается нулем.
// Для любого другого типа место полностью сбрасывается независимо от count.
func (r *Registry) Cancel(id int64, vehicleType domain.SpotType, count int, verify func(*domain.ParkingSpot) error) (*domain.ParkingSpot, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	spot, ok := r.spots[id]
	if !ok {
		return nil, 0, fmt.Errorf("%w: id=%d", ErrSpotNotFound, id)
	}

	if verify != nil {
		if err := verify(spot.Clone()); err != nil {
			return nil, 0, err
		}
	}

	previous := spot.Occupancy
	if vehicleType == domain.SpotTypeBike {
		spot.Occupancy -= min(max(count, 0), spot.Occupancy)
		spot.Status = domain.StatusForOccupancy(spot.Occupancy)
		return spot.Clone(), previous - spot.Occupancy, nil
	}

	release(spot)

	return spot.Clone(), previous, nil
}

// Extend продлевает бронирование места на час по правилу ExtendEndTime
// и возвращает время окончания до продления
func (r *Registry) Extend(id int64) (*domain.ParkingSpot, types.TimeString, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	spot, ok := r.spots[id]
	if !ok {
		return nil, "", fmt.Errorf("%w: id=%d", ErrSpotNotFound, id)
	}
	if spot.Reservation == nil {
		return nil, "", fmt.Errorf("%w: id=%d", ErrNoReservation, id)
	}

	previous := spot.Reservation.EndTime

	newEnd, err := rules.ExtendEndTime(previous)
	if err != nil {
		return nil, "", err
	}

	duration, err := rules.StandardDurationHours(spot.Reservation.StartTime, newEnd)
	if err != nil {
		return nil, "", err
	}

	spot.Reservation.EndTime = newEnd
	spot.Reservation.DurationHours = duration

	return spot.Clone(), previous, nil
}

// NextAvailable возвращает первое в порядке дашборда место указанного типа со свободными единицами
func (r *Registry) NextAvailable(spotType domain.SpotType) (*domain.ParkingSpot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	spot := r.firstFree(spotType, 0)
	if spot == nil {
		return nil, fmt.Errorf("%w: type=%s", ErrNoAvailableSpot, spotType)
	}
	return spot.Clone(), nil
}

// Reallocate переносит бронирование с места id на первое свободное место того же типа.
// Машиноместо освобождается целиком, у места для байков освобождается одна единица.
// verify работает так же, как в Cancel. Возвращает исходное и новое место после переноса.
func (r *Registry) Reallocate(id int64, verify func(*domain.ParkingSpot) error) (*domain.ParkingSpot, *domain.ParkingSpot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	from, ok := r.spots[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: id=%d", ErrSpotNotFound, id)
	}
	if from.Occupancy == 0 || from.Reservation == nil {
		return nil, nil, fmt.Errorf("%w: id=%d", ErrNoReservation, id)
	}

	if verify != nil {
		if err := verify(from.Clone()); err != nil {
			return nil, nil, err
		}
	}

	to := r.firstFree(from.Type, id)
	if to == nil {
		return nil, nil, fmt.Errorf("%w: type=%s", ErrNoAvailableSpot, from.Type)
	}

	occupy(to, *from.Reservation)

	if from.Type == domain.SpotTypeBike {
		from.Occupancy--
		from.Status = domain.StatusForOccupancy(from.Occupancy)
	} else {
		release(from)
	}

	return from.Clone(), to.Clone(), nil
}

// firstFree ищет место типа spotType со свободными единицами, пропуская skip
func (r *Registry) firstFree(spotType domain.SpotType, skip int64) *domain.ParkingSpot {
	for _, id := range r.order {
		spot := r.spots[id]
		if id != skip && spot.Type == spotType && spot.FreeUnits() > 0 {
			return spot
		}
	}
	return nil
}

func occupy(spot *domain.ParkingSpot, details domain.ReservationDetails) {
	switch spot.Type {
	case domain.SpotTypeBike:
		spot.Occupancy = min(spot.Capacity, spot.Occupancy+1)
	default:
		spot.Occupancy = 1
	}
	spot.Status = domain.StatusForOccupancy(spot.Occupancy)

	d := details
	spot.Reservation = &d
}

func release(spot *domain.ParkingSpot) {
	spot.Occupancy = 0
	spot.Status = domain.SpotStatusAvailable
	spot.Reservation = nil
}

func (r *Registry) add(id int64, spotType domain.SpotType, capacity int) {
	r.spots[id] = &domain.ParkingSpot{
		ID:       id,
		Type:     spotType,
		Capacity: capacity,
		Status:   domain.SpotStatusAvailable,
	}
	r.order = append(r.order, id)
}

// sortOrder машиноместа первыми, внутри типа по ID
func (r *Registry) sortOrder() {
	sort.SliceStable(r.order, func(i, j int) bool {
		a, b := r.spots[r.order[i]], r.spots[r.order[j]]
		if a.Type != b.Type {
			return a.Type == domain.SpotTypeCar
		}
		return a.ID < b.ID
	})
}

func validateLayout(layout domain.SpotLayout) error {
	if layout.CarSpots < 0 || layout.BikeSpots < 0 {
		return fmt.Errorf("%w: spot counts must not be negative", ErrInvalidLayout)
	}
	if layout.CarSpots+layout.BikeSpots == 0 {
		return fmt.Errorf("%w: layout has no spots", ErrInvalidLayout)
	}
	if layout.CarSpots > 0 && layout.CarCapacity < 1 {
		return fmt.Errorf("%w: car capacity must be positive", ErrInvalidLayout)
	}
	if layout.BikeSpots > 0 && layout.BikeCapacity < 1 {
		return fmt.Errorf("%w: bike capacity must be positive", ErrInvalidLayout)
	}
	return nil
}
