package rules

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

const (
	minutesPerDay = 24 * 60
	maxHour       = 23
)

// ValidateDailyWindow проверяет ежедневное окно абонемента.
// Переход через полночь запрещен: end <= start считается ошибкой.
// Возвращает длительность окна в минутах.
func ValidateDailyWindow(start, end types.TimeString, maxMinutes int) (int, error) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return 0, newValidationError(RuleTimeFormat, start.String(), "start time must be HH:MM")
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return 0, newValidationError(RuleTimeFormat, end.String(), "end time must be HH:MM")
	}

	if endMinutes <= startMinutes {
		return 0, newValidationError(RuleDailyWindow, fmt.Sprintf("%s-%s", start, end),
			"end time must be after start time")
	}

	duration := endMinutes - startMinutes
	if duration > maxMinutes {
		return 0, newValidationError(RuleDailyWindow, fmt.Sprintf("%s-%s", start, end),
			"daily slot cannot exceed %.1f hours, current: %.1f hours",
			float64(maxMinutes)/60, float64(duration)/60)
	}

	return duration, nil
}

// ValidatePassDates проверяет период действия абонемента.
// Количество дней округляется вверх; даты сравниваются как календарные дни.
func ValidatePassDates(start, end time.Time, maxDays int) (int, error) {
	startDay := dateOnly(start)
	endDay := dateOnly(end)
	value := fmt.Sprintf("%s..%s", startDay.Format("2006-01-02"), endDay.Format("2006-01-02"))

	if endDay.Before(startDay) {
		return 0, newValidationError(RuleDateRange, value, "end date cannot be before start date")
	}

	days := int(math.Ceil(endDay.Sub(startDay).Hours() / 24))
	if days > maxDays {
		return 0, newValidationError(RuleDateRange, value,
			"pass duration cannot exceed %d days, current: %d days", maxDays, days)
	}

	return days, nil
}

// StandardDurationHours считает длительность обычного бронирования.
// Если end <= start, бронирование переходит через полночь и к концу прибавляются сутки.
func StandardDurationHours(start, end types.TimeString) (float64, error) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return 0, newValidationError(RuleTimeFormat, start.String(), "start time must be HH:MM")
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return 0, newValidationError(RuleTimeFormat, end.String(), "end time must be HH:MM")
	}

	if endMinutes <= startMinutes {
		endMinutes += minutesPerDay
	}

	return float64(endMinutes-startMinutes) / 60, nil
}

// ExtendEndTime сдвигает время окончания на час. Час ограничен 23 и не переходит
// на следующие сутки, минуты не меняются.
func ExtendEndTime(end types.TimeString) (types.TimeString, error) {
	if err := end.Validate(); err != nil {
		return "", newValidationError(RuleTimeFormat, end.String(), "end time must be HH:MM")
	}

	hour := end.Hour() + 1
	if hour > maxHour {
		hour = maxHour
	}

	return types.NewTimeStringFromMinutes(hour*60 + end.Minute())
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
