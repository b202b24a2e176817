package jobs

import "errors"

// ErrInvalidSchedule возвращается, когда cron-выражение не разбирается
var ErrInvalidSchedule = errors.New("jobs: invalid schedule")
