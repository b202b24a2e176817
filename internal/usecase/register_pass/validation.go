package register_pass

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует обязательные поля запроса.
// Правила окна и периода проверяются отдельно в пакете rules.
func validateRequest(req *Request) error {
	if !domain.IsValidPassType(domain.PassType(req.PassType)) {
		return fmt.Errorf("%w: passType must be monthly or yearly", ErrInvalidInput)
	}

	if req.UserRole != "" && !domain.IsValidUserRole(domain.UserRole(req.UserRole)) {
		return fmt.Errorf("%w: unknown userRole %q", ErrInvalidInput, req.UserRole)
	}

	if strings.TrimSpace(req.UserName) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}

	if req.Age < 0 {
		return fmt.Errorf("%w: age must not be negative", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleNumber) == "" {
		return fmt.Errorf("%w: vehicleNumber is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	return nil
}

// maxDaysFor возвращает допустимую длительность периода для типа абонемента
func maxDaysFor(passType domain.PassType) int {
	if passType == domain.PassTypeYearly {
		return domain.MaxYearlyPassDays
	}
	return domain.MaxMonthlyPassDays
}
