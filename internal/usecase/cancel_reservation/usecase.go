package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/reservationservice"
	"github.com/m04kA/SMC-ParkingService/internal/service/branches"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
)

const operation = "cancel"

// UseCase use case для отмены бронирования места
type UseCase struct {
	directory BranchDirectory
	notifier  Notifier
	metrics   Metrics
	tracer    trace.Tracer
	logger    Logger
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
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := uc.tracer.Start(ctx, "CancelReservation", trace.WithAttributes(
		attribute.String("parking.branch", req.Branch),
		attribute.Int64("parking.spot_id", req.SpotID),
	))
	defer span.End()

	uc.logger.Info("CancelReservation: branch=%s, spot=%d, type=%s",
		req.Branch, req.SpotID, req.VehicleType)

	// 1. Валидация и подтверждение учетных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelReservation: validation failed: %v", err)
		uc.fail(span, "", err)
		return nil, err
	}

	vehicleType, count := normalize(req)

	// 2. Реестр мест филиала
	registry, err := uc.directory.Open(req.Branch)
	if err != nil {
		if errors.Is(err, branches.ErrBranchNotFound) {
			uc.logger.Warn("CancelReservation: branch=%s not found", req.Branch)
			uc.fail(span, string(vehicleType), err)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("CancelReservation: failed to open branch=%s: %v", req.Branch, err)
		uc.fail(span, string(vehicleType), err)
		return nil, fmt.Errorf("%w: failed to open branch: %v", ErrInternal, err)
	}

	// 3. Проверка учетных данных и переход состояния под одной блокировкой реестра
	verify := func(spot *domain.ParkingSpot) error {
		return verifyCredentials(spot, req.Email, req.Password)
	}

	spot, released, err := registry.Cancel(req.SpotID, vehicleType, count, verify)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			uc.logger.Warn("CancelReservation: credentials rejected for spot=%d", req.SpotID)
			uc.fail(span, string(vehicleType), err)
			return nil, err
		case errors.Is(err, spots.ErrSpotNotFound):
			uc.logger.Warn("CancelReservation: spot=%d not found in branch=%s", req.SpotID, req.Branch)
			uc.fail(span, string(vehicleType), err)
			return nil, ErrSpotNotFound
		}
		uc.logger.Error("CancelReservation: failed to cancel spot=%d: %v", req.SpotID, err)
		uc.fail(span, string(vehicleType), err)
		return nil, fmt.Errorf("%w: failed to cancel spot: %v", ErrInternal, err)
	}

	uc.metrics.IncSpotOperation(operation, string(vehicleType), "success")
	stats := registry.Stats()
	uc.metrics.SetBranchUnits(req.Branch, stats.AvailableCarSpots, stats.AvailableBikeSlots, stats.TotalOccupied)

	// 4. Уведомление удаленного сервиса, без отката при ошибке
	queued := true
	if err := uc.notifier.NotifyCancelled(reservationservice.CancellationNotification{
		SpotID: spot.ID,
		Branch: req.Branch,
		Type:   string(vehicleType),
		Count:  count,
	}); err != nil {
		uc.logger.Warn("CancelReservation: notification for spot=%d not queued: %v", spot.ID, err)
		queued = false
	}

	span.SetAttributes(attribute.Int("parking.released", released))

	uc.logger.Info("CancelReservation: spot=%d released %d unit(s), occupancy=%d/%d",
		spot.ID, released, spot.Occupancy, spot.Capacity)

	return &Response{
		Spot:               spot,
		Released:           released,
		NotificationQueued: queued,
	}, nil
}

func (uc *UseCase) fail(span trace.Span, spotType string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	uc.metrics.IncSpotOperation(operation, spotType, "error")
}
