package reserve_spot

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// maxPasswordBytes предел bcrypt на длину пароля
const maxPasswordBytes = 72

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Branch) == "" {
		return fmt.Errorf("%w: branch is required", ErrInvalidInput)
	}

	if req.SpotID <= 0 {
		return fmt.Errorf("%w: spotId must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}

	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	if len(req.Password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must not exceed %d bytes", ErrInvalidInput, maxPasswordBytes)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if req.VehicleType != "" && !domain.SpotType(req.VehicleType).IsValid() {
		return fmt.Errorf("%w: unknown vehicleType %q", ErrInvalidInput, req.VehicleType)
	}

	return nil
}

// normalizeTimes приводит время начала и окончания к виду "HH:MM"
func normalizeTimes(req *Request) error {
	start, err := types.NewTimeStringFromString(req.StartTime.String())
	if err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(req.EndTime.String())
	if err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	req.StartTime, req.EndTime = start, end
	return nil
}
