package pass

import "errors"

var (
	// ErrPassNotFound возвращается, когда абонемент не найден
	ErrPassNotFound = errors.New("pass.repository: pass not found")

	// ErrStatusConflict возвращается, когда статус абонемента изменился до обновления
	ErrStatusConflict = errors.New("pass.repository: pass status changed concurrently")

	// ErrConstraint возвращается, когда запись нарушает ограничения таблицы
	ErrConstraint = errors.New("pass.repository: constraint violation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pass.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pass.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pass.repository: failed to scan row")
)
