package reallocate_reservation

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Branch) == "" {
		return fmt.Errorf("%w: branch is required", ErrInvalidInput)
	}

	if req.SpotID <= 0 {
		return fmt.Errorf("%w: spotId must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return ErrCredentialsRequired
	}

	return nil
}

// verifyCredentials сверяет email и пароль с бронированием переносимого места.
// Места для байков не проверяются, как и при отмене.
func verifyCredentials(spot *domain.ParkingSpot, email, password string) error {
	if spot.Type == domain.SpotTypeBike || spot.Reservation == nil {
		return nil
	}

	if !strings.EqualFold(strings.TrimSpace(spot.Reservation.Email), strings.TrimSpace(email)) {
		return ErrInvalidCredentials
	}

	if len(spot.Reservation.PasswordHash) > 0 &&
		bcrypt.CompareHashAndPassword(spot.Reservation.PasswordHash, []byte(password)) != nil {
		return ErrInvalidCredentials
	}

	return nil
}
