package reservationservice

// ReservationNotification тело POST /api/reservations.
// Пароль в удаленный сервис не передается.
type ReservationNotification struct {
	SpotID        int64   `json:"spotId"`
	Branch        string  `json:"branch,omitempty"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	VehicleType   string  `json:"vehicleType"`
	VehicleNumber string  `json:"vehicleNumber,omitempty"`
	DurationHours float64 `json:"durationHours"`
}

// CancellationNotification тело POST /api/reservations/cancel
type CancellationNotification struct {
	SpotID int64  `json:"spotId"`
	Branch string `json:"branch,omitempty"`
	Type   string `json:"type"`
	Count  int    `json:"count"`
}
