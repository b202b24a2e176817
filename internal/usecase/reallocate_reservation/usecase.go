package reallocate_reservation

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

const operation = "reallocate"

// UseCase use case для переноса бронирования на другое свободное место того же типа
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

// Execute выполняет перенос.
// Для удаленного сервиса перенос выглядит как отмена на старом месте и бронирование на новом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	_, span := uc.tracer.Start(ctx, "ReallocateReservation", trace.WithAttributes(
		attribute.String("parking.branch", req.Branch),
		attribute.Int64("parking.spot_id", req.SpotID),
	))
	defer span.End()

	uc.logger.Info("ReallocateReservation: branch=%s, spot=%d", req.Branch, req.SpotID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReallocateReservation: validation failed: %v", err)
		uc.fail(span, err)
		return nil, err
	}

	registry, err := uc.directory.Open(req.Branch)
	if err != nil {
		if errors.Is(err, branches.ErrBranchNotFound) {
			uc.logger.Warn("ReallocateReservation: branch=%s not found", req.Branch)
			uc.fail(span, err)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("ReallocateReservation: failed to open branch=%s: %v", req.Branch, err)
		uc.fail(span, err)
		return nil, fmt.Errorf("%w: failed to open branch: %v", ErrInternal, err)
	}

	verify := func(spot *domain.ParkingSpot) error {
		return verifyCredentials(spot, req.Email, req.Password)
	}

	from, to, err := registry.Reallocate(req.SpotID, verify)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			uc.logger.Warn("ReallocateReservation: credentials rejected for spot=%d", req.SpotID)
			uc.fail(span, err)
			return nil, err
		case errors.Is(err, spots.ErrSpotNotFound):
			uc.logger.Warn("ReallocateReservation: spot=%d not found in branch=%s", req.SpotID, req.Branch)
			uc.fail(span, err)
			return nil, ErrSpotNotFound
		case errors.Is(err, spots.ErrNoReservation):
			uc.logger.Warn("ReallocateReservation: spot=%d has no reservation", req.SpotID)
			uc.fail(span, err)
			return nil, ErrNoReservation
		case errors.Is(err, spots.ErrNoAvailableSpot):
			uc.logger.Warn("ReallocateReservation: no alternate spot for spot=%d", req.SpotID)
			uc.fail(span, err)
			return nil, ErrNoAvailableSpot
		}
		uc.logger.Error("ReallocateReservation: failed to reallocate spot=%d: %v", req.SpotID, err)
		uc.fail(span, err)
		return nil, fmt.Errorf("%w: failed to reallocate spot: %v", ErrInternal, err)
	}

	uc.metrics.IncSpotOperation(operation, string(from.Type), "success")
	stats := registry.Stats()
	uc.metrics.SetBranchUnits(req.Branch, stats.AvailableCarSpots, stats.AvailableBikeSlots, stats.TotalOccupied)

	queued := uc.notify(req.Branch, from, to)

	span.SetAttributes(attribute.Int64("parking.new_spot_id", to.ID))

	uc.logger.Info("ReallocateReservation: spot=%d moved to spot=%d", from.ID, to.ID)

	return &Response{
		From:               from,
		To:                 to,
		NotificationQueued: queued,
	}, nil
}

// notify ставит в очередь отмену старого места и бронирование нового, без отката при ошибке
func (uc *UseCase) notify(branch string, from, to *domain.ParkingSpot) bool {
	queued := true

	if err := uc.notifier.NotifyCancelled(reservationservice.CancellationNotification{
		SpotID: from.ID,
		Branch: branch,
		Type:   string(from.Type),
		Count:  domain.DefaultCancelCount,
	}); err != nil {
		uc.logger.Warn("ReallocateReservation: cancellation for spot=%d not queued: %v", from.ID, err)
		queued = false
	}

	details := to.Reservation
	if err := uc.notifier.NotifyReserved(reservationservice.ReservationNotification{
		SpotID:        to.ID,
		Branch:        branch,
		Name:          details.Name,
		Email:         details.Email,
		StartTime:     details.StartTime.String(),
		EndTime:       details.EndTime.String(),
		VehicleType:   string(details.VehicleType),
		VehicleNumber: details.VehicleNumber,
		DurationHours: details.DurationHours,
	}); err != nil {
		uc.logger.Warn("ReallocateReservation: reservation for spot=%d not queued: %v", to.ID, err)
		queued = false
	}

	return queued
}

func (uc *UseCase) fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	uc.metrics.IncSpotOperation(operation, "", "error")
}
