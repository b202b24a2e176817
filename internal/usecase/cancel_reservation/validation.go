package cancel_reservation

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

// normalize подставляет значения по умолчанию для типа и количества
func normalize(req *Request) (domain.SpotType, int) {
	vehicleType := domain.SpotType(strings.ToLower(strings.TrimSpace(req.VehicleType)))
	if vehicleType == "" {
		vehicleType = domain.SpotTypeCar
	}

	count := domain.DefaultCancelCount
	if req.Count != nil {
		count = max(*req.Count, 0)
	}

	return vehicleType, count
}

// verifyCredentials сверяет email и пароль с данными бронирования места.
// Места для байков не проверяются: у них хранится только последний запрос, и другие райдеры его не знают.
// Решение принимается по типу места, а не по типу из запроса.
func verifyCredentials(spot *domain.ParkingSpot, email, password string) error {
	if spot.Type == domain.SpotTypeBike || spot.Reservation == nil {
		return nil
	}

	if !strings.EqualFold(strings.TrimSpace(spot.Reservation.Email), strings.TrimSpace(email)) {
		return ErrInvalidCredentials
	}

	if len(spot.Reservation.PasswordHash) == 0 {
		return nil
	}

	if err := bcrypt.CompareHashAndPassword(spot.Reservation.PasswordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}
