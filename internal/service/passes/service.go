package passes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	passRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/pass"
	"github.com/m04kA/SMC-ParkingService/internal/service/passes/models"
)

// Service сервис жизненного цикла абонементов
type Service struct {
	passRepo PassRepository
	metrics  Metrics
	logger   Logger
}

// NewService создает новый экземпляр сервиса абонементов
func NewService(passRepo PassRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		passRepo: passRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

// GetByID возвращает текущее состояние абонемента
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PassResponse, error) {
	s.logger.Info("GetByID: fetching pass id=%d", id)

	p, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainPass(p), nil
}

// Cancel отменяет активный абонемент
func (s *Service) Cancel(ctx context.Context, id int64) (*models.PassResponse, error) {
	s.logger.Info("Cancel: cancelling pass id=%d", id)

	p, err := s.get(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !p.CanBeCancelled() {
		s.logger.Warn("Cancel: pass id=%d cannot be cancelled, status=%s", id, p.Status)
		s.metrics.IncPassOperation("cancel", "rejected")
		return nil, ErrCannotCancel
	}

	return s.transition(ctx, "Cancel", "cancel", p, domain.PassStatusCancelled, p.ExtensionRequested)
}

// RequestExtension переводит активный абонемент в ожидание решения по продлению
func (s *Service) RequestExtension(ctx context.Context, id int64) (*models.PassResponse, error) {
	s.logger.Info("RequestExtension: pass id=%d", id)

	p, err := s.get(ctx, "RequestExtension", id)
	if err != nil {
		return nil, err
	}

	if !p.CanRequestExtension() {
		s.logger.Warn("RequestExtension: pass id=%d has status=%s", id, p.Status)
		s.metrics.IncPassOperation("request_extension", "rejected")
		return nil, ErrCannotRequestExtension
	}

	return s.transition(ctx, "RequestExtension", "request_extension", p, domain.PassStatusPendingExtension, true)
}

// ResolveExtension одобряет (extended) или отклоняет (active) запрос на продление
func (s *Service) ResolveExtension(ctx context.Context, id int64, req *models.ResolveExtensionRequest) (*models.PassResponse, error) {
	s.logger.Info("ResolveExtension: pass id=%d, approve=%t", id, req.Approve)

	p, err := s.get(ctx, "ResolveExtension", id)
	if err != nil {
		return nil, err
	}

	if !p.HasPendingExtension() {
		s.logger.Warn("ResolveExtension: pass id=%d has no pending extension, status=%s", id, p.Status)
		s.metrics.IncPassOperation("resolve_extension", "rejected")
		return nil, ErrNoPendingExtension
	}

	target := domain.PassStatusActive
	if req.Approve {
		target = domain.PassStatusExtended
	}

	return s.transition(ctx, "ResolveExtension", "resolve_extension", p, target, false)
}

// MarkArrived отмечает прибытие владельца абонемента
func (s *Service) MarkArrived(ctx context.Context, id int64) (*models.PassResponse, error) {
	s.logger.Info("MarkArrived: pass id=%d", id)

	if err := s.passRepo.MarkArrived(ctx, id); err != nil {
		if errors.Is(err, passRepo.ErrPassNotFound) {
			s.logger.Warn("MarkArrived: pass id=%d not found", id)
			s.metrics.IncPassOperation("mark_arrived", "not_found")
			return nil, ErrPassNotFound
		}
		s.logger.Error("MarkArrived: repository error for pass id=%d: %v", id, err)
		s.metrics.IncPassOperation("mark_arrived", "error")
		return nil, fmt.Errorf("%w: MarkArrived - repository error: %v", ErrInternal, err)
	}

	p, err := s.get(ctx, "MarkArrived", id)
	if err != nil {
		return nil, err
	}

	s.metrics.IncPassOperation("mark_arrived", "success")
	s.logger.Info("MarkArrived: pass id=%d marked as arrived", id)
	return models.FromDomainPass(p), nil
}

// ExpireFinished переводит в expired абонементы, срок которых закончился до текущего дня
func (s *Service) ExpireFinished(ctx context.Context, now time.Time) (int64, error) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	expired, err := s.passRepo.ExpireFinished(ctx, today)
	if err != nil {
		s.logger.Error("ExpireFinished: repository error: %v", err)
		s.metrics.IncPassOperation("expire", "error")
		return 0, fmt.Errorf("%w: ExpireFinished - repository error: %v", ErrInternal, err)
	}

	if expired > 0 {
		s.logger.Info("ExpireFinished: %d pass(es) expired before %s", expired, today.Format(domain.DateFormat))
	}
	s.metrics.IncPassOperation("expire", "success")
	return expired, nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Pass, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: pass id must be positive", ErrInvalidInput)
	}

	p, err := s.passRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, passRepo.ErrPassNotFound) {
			s.logger.Warn("%s: pass id=%d not found", op, id)
			return nil, ErrPassNotFound
		}
		s.logger.Error("%s: repository error for pass id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return p, nil
}

func (s *Service) transition(
	ctx context.Context,
	op string,
	metricOp string,
	p *domain.Pass,
	to domain.PassStatus,
	extensionRequested bool,
) (*models.PassResponse, error) {
	err := s.passRepo.TransitionStatus(ctx, p.ID, p.Status, to, extensionRequested)
	if err != nil {
		if errors.Is(err, passRepo.ErrPassNotFound) {
			s.logger.Warn("%s: pass id=%d disappeared", op, p.ID)
			s.metrics.IncPassOperation(metricOp, "not_found")
			return nil, ErrPassNotFound
		}
		if errors.Is(err, passRepo.ErrStatusConflict) {
			s.logger.Warn("%s: pass id=%d changed concurrently", op, p.ID)
			s.metrics.IncPassOperation(metricOp, "conflict")
			return nil, ErrConflict
		}
		s.logger.Error("%s: repository error for pass id=%d: %v", op, p.ID, err)
		s.metrics.IncPassOperation(metricOp, "error")
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: pass id=%d %s -> %s", op, p.ID, p.Status, to)
	s.metrics.IncPassOperation(metricOp, "success")

	p.Status = to
	p.ExtensionRequested = extensionRequested
	return models.FromDomainPass(p), nil
}
