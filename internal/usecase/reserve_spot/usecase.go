package reserve_spot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/reservationservice"
	"github.com/m04kA/SMC-ParkingService/internal/rules"
	"github.com/m04kA/SMC-ParkingService/internal/service/branches"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
)

const operation = "reserve"

// UseCase use case для бронирования места
type UseCase struct {
	directory BranchDirectory
	notifier  Notifier
	metrics   Metrics
	tracer    trace.Tracer
	logger    Logger

	hashCost int
	now      func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	directory BranchDirectory,
	notifier Notifier,
	metrics Metrics,
	tracer trace.Tracer,
	logger Logger,
) *UseCase {
	return &UseCase{
		directory: directory,
		notifier:  notifier,
		metrics:   metrics,
		tracer:    tracer,
		logger:    logger,
		hashCost:  bcrypt.DefaultCost,
		now:       time.Now,
	}
}

// Execute выполняет use case бронирования места.
// Локальное состояние меняется сразу; уведомление удаленного сервиса уходит в фоне
// и его неудача не откатывает бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := uc.tracer.Start(ctx, "ReserveSpot", trace.WithAttributes(
		attribute.String("parking.branch", req.Branch),
		attribute.Int64("parking.spot_id", req.SpotID),
	))
	defer span.End()

	uc.logger.Info("ReserveSpot: branch=%s, spot=%d, time=%s-%s",
		req.Branch, req.SpotID, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSpot: validation failed: %v", err)
		uc.fail(span, "", err)
		return nil, err
	}

	// 2. Длительность с учетом перехода через полночь
	duration, err := rules.StandardDurationHours(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("ReserveSpot: time validation failed: %v", err)
		uc.fail(span, "", err)
		return nil, err
	}

	// Время хранится в нормализованном виде, как его записывает продление
	if err := normalizeTimes(req); err != nil {
		uc.logger.Warn("ReserveSpot: time normalization failed: %v", err)
		uc.fail(span, "", err)
		return nil, err
	}

	// 3. Реестр мест филиала
	registry, err := uc.directory.Open(req.Branch)
	if err != nil {
		if errors.Is(err, branches.ErrBranchNotFound) {
			uc.logger.Warn("ReserveSpot: branch=%s not found", req.Branch)
			uc.fail(span, "", err)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("ReserveSpot: failed to open branch=%s: %v", req.Branch, err)
		uc.fail(span, "", err)
		return nil, fmt.Errorf("%w: failed to open branch: %v", ErrInternal, err)
	}

	// 4. Тип места не меняется, поэтому по нему можно выбрать тип транспорта заранее
	before, err := registry.SelectSpot(req.SpotID)
	if err != nil {
		if errors.Is(err, spots.ErrSpotNotFound) {
			uc.logger.Warn("ReserveSpot: spot=%d not found in branch=%s", req.SpotID, req.Branch)
			uc.fail(span, "", err)
			return nil, ErrSpotNotFound
		}
		uc.logger.Error("ReserveSpot: failed to select spot=%d: %v", req.SpotID, err)
		uc.fail(span, "", err)
		return nil, fmt.Errorf("%w: failed to select spot: %v", ErrInternal, err)
	}

	vehicleType := before.Type
	if req.VehicleType != "" {
		vehicleType = domain.SpotType(req.VehicleType)
	}

	// 5. В реестре хранится только хэш пароля
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.hashCost)
	if err != nil {
		uc.logger.Error("ReserveSpot: failed to hash password: %v", err)
		uc.fail(span, string(before.Type), err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	details := domain.ReservationDetails{
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  hash,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		VehicleType:   vehicleType,
		VehicleNumber: req.VehicleNumber,
		DurationHours: duration,
		ReservedAt:    uc.now(),
	}

	// 6. Применяем переход состояния
	spot, previous, err := registry.Reserve(req.SpotID, details)
	if err != nil {
		if errors.Is(err, spots.ErrSpotNotFound) {
			uc.fail(span, string(before.Type), err)
			return nil, ErrSpotNotFound
		}
		uc.logger.Error("ReserveSpot: failed to reserve spot=%d: %v", req.SpotID, err)
		uc.fail(span, string(before.Type), err)
		return nil, fmt.Errorf("%w: failed to reserve spot: %v", ErrInternal, err)
	}

	alreadyFull := spot.Occupancy == previous
	if alreadyFull {
		uc.logger.Warn("ReserveSpot: spot=%d occupancy unchanged (%d/%d), previous reservation replaced",
			spot.ID, spot.Occupancy, spot.Capacity)
	}

	uc.metrics.IncSpotOperation(operation, string(spot.Type), "success")
	stats := registry.Stats()
	uc.metrics.SetBranchUnits(req.Branch, stats.AvailableCarSpots, stats.AvailableBikeSlots, stats.TotalOccupied)

	// 7. Уведомление удаленного сервиса, без отката при ошибке
	queued := true
	if err := uc.notifier.NotifyReserved(reservationservice.ReservationNotification{
		SpotID:        spot.ID,
		Branch:        req.Branch,
		Name:          req.Name,
		Email:         req.Email,
		StartTime:     req.StartTime.String(),
		EndTime:       req.EndTime.String(),
		VehicleType:   string(vehicleType),
		VehicleNumber: req.VehicleNumber,
		DurationHours: duration,
	}); err != nil {
		uc.logger.Warn("ReserveSpot: notification for spot=%d not queued: %v", spot.ID, err)
		queued = false
	}

	span.SetAttributes(
		attribute.Int("parking.occupancy", spot.Occupancy),
		attribute.Bool("parking.already_full", alreadyFull),
	)

	uc.logger.Info("ReserveSpot: spot=%d reserved, occupancy=%d/%d, duration=%.2fh",
		spot.ID, spot.Occupancy, spot.Capacity, duration)

	return &Response{
		Spot:               spot,
		DurationHours:      duration,
		AlreadyFull:        alreadyFull,
		NotificationQueued: queued,
	}, nil
}

func (uc *UseCase) fail(span trace.Span, spotType string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	uc.metrics.IncSpotOperation(operation, spotType, "error")
}
