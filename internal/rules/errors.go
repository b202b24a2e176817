package rules

import (
	"errors"
	"fmt"
)

// ErrValidation базовая ошибка для всех нарушений правил времени и дат
var ErrValidation = errors.New("rules: validation failed")

// Имена правил, попадающие в ValidationError.Rule
const (
	RuleDailyWindow = "daily_time_window"
	RuleDateRange   = "date_range"
	RuleTimeFormat  = "time_format"
)

// ValidationError описывает нарушенное правило и значение, которое его нарушило
type ValidationError struct {
	Rule   string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %s)", e.Rule, e.Reason, e.Value)
}

// Is позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(rule, value, reason string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Rule:   rule,
		Value:  value,
		Reason: fmt.Sprintf(reason, args...),
	}
}
