package domain

// Default dashboard layout
const (
	DefaultCarSpots     = 8
	DefaultCarCapacity  = 1
	DefaultBikeSpots    = 4
	DefaultBikeCapacity = 4
)

// Pass validation constants
const (
	MaxDailyWindowMinutes = 360 // 6 hours
	MaxMonthlyPassDays    = 30
	MaxYearlyPassDays     = 366
)

// DefaultCancelCount number of occupancy units released when count is omitted
const DefaultCancelCount = 1

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
