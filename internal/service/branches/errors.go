package branches

import "errors"

var (
	// ErrBranchNotFound возвращается, когда филиал с указанным кодом не существует
	ErrBranchNotFound = errors.New("branches: branch not found")

	// ErrInternal возвращается при внутренних ошибках справочника
	ErrInternal = errors.New("branches: internal error")
)
