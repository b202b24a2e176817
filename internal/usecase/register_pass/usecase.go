package register_pass

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/rules"
)

const operation = "register"

// UseCase use case для оформления месячного или годового абонемента
type UseCase struct {
	passRepo PassRepository
	metrics  Metrics
	tracer   trace.Tracer
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(passRepo PassRepository, metrics Metrics, tracer trace.Tracer, logger Logger) *UseCase {
	return &UseCase{
		passRepo: passRepo,
		metrics:  metrics,
		tracer:   tracer,
		logger:   logger,
	}
}

// Execute выполняет use case оформления абонемента.
// Ежедневное окно не может переходить через полночь и длиться больше 6 часов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := uc.tracer.Start(ctx, "RegisterPass", trace.WithAttributes(
		attribute.String("parking.pass_type", req.PassType),
	))
	defer span.End()

	uc.logger.Info("RegisterPass: type=%s, role=%s, period=%s..%s, window=%s-%s",
		req.PassType, req.UserRole,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.StartTime, req.EndTime)

	// 1. Валидация обязательных полей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterPass: validation failed: %v", err)
		return nil, uc.fail(span, err)
	}

	passType := domain.PassType(req.PassType)

	// 2. Ежедневное окно
	windowMinutes, err := rules.ValidateDailyWindow(req.StartTime, req.EndTime, domain.MaxDailyWindowMinutes)
	if err != nil {
		uc.logger.Warn("RegisterPass: daily window rejected: %v", err)
		return nil, uc.fail(span, err)
	}

	// 3. Период действия
	days, err := rules.ValidatePassDates(req.StartDate, req.EndDate, maxDaysFor(passType))
	if err != nil {
		uc.logger.Warn("RegisterPass: date range rejected: %v", err)
		return nil, uc.fail(span, err)
	}

	role := domain.UserRole(req.UserRole)
	if role == "" {
		role = domain.UserRoleVisitor
	}

	// 4. Сохраняем абонемент
	created, err := uc.passRepo.Create(ctx, &domain.Pass{
		PassType:      passType,
		UserRole:      role,
		UserName:      strings.TrimSpace(req.UserName),
		Email:         strings.TrimSpace(req.Email),
		Mobile:        strings.TrimSpace(req.Mobile),
		Age:           req.Age,
		VehicleNumber: strings.TrimSpace(req.VehicleNumber),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        domain.PassStatusActive,
	})
	if err != nil {
		uc.logger.Error("RegisterPass: failed to create pass: %v", err)
		return nil, uc.fail(span, fmt.Errorf("%w: failed to create pass: %v", ErrInternal, err))
	}

	uc.metrics.IncPassOperation(operation, "success")
	span.SetAttributes(attribute.Int64("parking.pass_id", created.ID))

	uc.logger.Info("RegisterPass: pass id=%d registered for %d day(s), window %d minutes",
		created.ID, days, windowMinutes)

	return &Response{
		ID:            created.ID,
		PassType:      string(created.PassType),
		UserRole:      string(created.UserRole),
		UserName:      created.UserName,
		Email:         created.Email,
		VehicleNumber: created.VehicleNumber,
		StartDate:     created.StartDate,
		EndDate:       created.EndDate,
		StartTime:     created.StartTime,
		EndTime:       created.EndTime,
		Status:        string(created.Status),
		Days:          days,
		WindowMinutes: windowMinutes,
		CreatedAt:     created.CreatedAt,
	}, nil
}

func (uc *UseCase) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	uc.metrics.IncPassOperation(operation, "error")
	return err
}
