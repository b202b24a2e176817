package extend_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-ParkingService/internal/rules"
	"github.com/m04kA/SMC-ParkingService/internal/service/branches"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots"
)

const operation = "extend"

// UseCase use case для продления бронирования на час
type UseCase struct {
	directory BranchDirectory
	metrics   Metrics
	tracer    trace.Tracer
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(directory BranchDirectory, metrics Metrics, tracer trace.Tracer, logger Logger) *UseCase {
	return &UseCase{
		directory: directory,
		metrics:   metrics,
		tracer:    tracer,
		logger:    logger,
	}
}

// Execute выполняет use case продления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	_, span := uc.tracer.Start(ctx, "ExtendReservation", trace.WithAttributes(
		attribute.String("parking.branch", req.Branch),
		attribute.Int64("parking.spot_id", req.SpotID),
	))
	defer span.End()

	uc.logger.Info("ExtendReservation: branch=%s, spot=%d", req.Branch, req.SpotID)

	if strings.TrimSpace(req.Branch) == "" || req.SpotID <= 0 {
		err := fmt.Errorf("%w: branch and positive spotId are required", ErrInvalidInput)
		uc.fail(span, "", err)
		return nil, err
	}

	registry, err := uc.directory.Open(req.Branch)
	if err != nil {
		if errors.Is(err, branches.ErrBranchNotFound) {
			uc.logger.Warn("ExtendReservation: branch=%s not found", req.Branch)
			uc.fail(span, "", err)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("ExtendReservation: failed to open branch=%s: %v", req.Branch, err)
		uc.fail(span, "", err)
		return nil, fmt.Errorf("%w: failed to open branch: %v", ErrInternal, err)
	}

	// Чтение прежнего времени и продление выполняются в реестре атомарно
	spot, previous, err := registry.Extend(req.SpotID)
	if err != nil {
		switch {
		case errors.Is(err, spots.ErrNoReservation):
			uc.logger.Warn("ExtendReservation: spot=%d has no reservation", req.SpotID)
			uc.fail(span, "", err)
			return nil, ErrNoReservation
		case errors.Is(err, spots.ErrSpotNotFound):
			uc.logger.Warn("ExtendReservation: spot=%d not found in branch=%s", req.SpotID, req.Branch)
			uc.fail(span, "", err)
			return nil, ErrSpotNotFound
		case errors.Is(err, rules.ErrValidation):
			uc.logger.Warn("ExtendReservation: stored end time rejected: %v", err)
			uc.fail(span, "", err)
			return nil, err
		}
		uc.logger.Error("ExtendReservation: failed to extend spot=%d: %v", req.SpotID, err)
		uc.fail(span, "", err)
		return nil, fmt.Errorf("%w: failed to extend spot: %v", ErrInternal, err)
	}

	current := spot.Reservation.EndTime
	clamped := previous == current

	uc.metrics.IncSpotOperation(operation, string(spot.Type), "success")
	span.SetAttributes(attribute.Bool("parking.clamped", clamped))

	if clamped {
		uc.logger.Info("ExtendReservation: spot=%d end time %s already at the last hour", spot.ID, current)
	} else {
		uc.logger.Info("ExtendReservation: spot=%d end time %s -> %s", spot.ID, previous, current)
	}

	return &Response{
		Spot:            spot,
		PreviousEndTime: previous,
		NewEndTime:      current,
		Clamped:         clamped,
	}, nil
}

func (uc *UseCase) fail(span trace.Span, spotType string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	uc.metrics.IncSpotOperation(operation, spotType, "error")
}
