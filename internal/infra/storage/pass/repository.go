package pass

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// pqCheckViolation и pqNotNullViolation коды ошибок Postgres для нарушений ограничений
const (
	pqCheckViolation   = "23514"
	pqNotNullViolation = "23502"
)

// Repository репозиторий абонементов в Postgres
type Repository struct {
	db  DBExecutor
	now func() time.Time
}

// NewRepository создает новый экземпляр репозитория абонементов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Create сохраняет абонемент и заполняет ID и временные метки
func (r *Repository) Create(ctx context.Context, p *domain.Pass) (*domain.Pass, error) {
	query, args, err := insertQuery(p)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: Create: %v", ErrConstraint, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает абонемент по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Pass, error) {
	query, args, err := selectByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Pass
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.PassType,
		&p.UserRole,
		&p.UserName,
		&p.Email,
		&p.Mobile,
		&p.Age,
		&p.VehicleNumber,
		&p.StartDate,
		&p.EndDate,
		&p.StartTime,
		&p.EndTime,
		&p.Status,
		&p.Arrived,
		&p.ExtensionRequested,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan pass: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// TransitionStatus меняет статус с from на to.
// Если абонемента нет, возвращает ErrPassNotFound, если статус уже другой, ErrStatusConflict.
func (r *Repository) TransitionStatus(ctx context.Context, id int64, from, to domain.PassStatus, extensionRequested bool) error {
	query, args, err := transitionQuery(id, from, to, extensionRequested, r.now())
	if err != nil {
		return fmt.Errorf("%w: TransitionStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: TransitionStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: TransitionStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrStatusConflict
	}

	return nil
}

// MarkArrived отмечает прибытие владельца абонемента
func (r *Repository) MarkArrived(ctx context.Context, id int64) error {
	query, args, err := markArrivedQuery(id, r.now())
	if err != nil {
		return fmt.Errorf("%w: MarkArrived - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkArrived - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkArrived - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPassNotFound
	}

	return nil
}

// ExpireFinished переводит в expired активные и продленные абонементы с end_date раньше today.
// Возвращает количество обновленных записей.
func (r *Repository) ExpireFinished(ctx context.Context, today time.Time) (int64, error) {
	query, args, err := expireQuery(today, r.now())
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireFinished - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireFinished - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireFinished - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqCheckViolation || pqErr.Code == pqNotNullViolation
}
