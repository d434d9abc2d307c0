package handlers

import (
	"time"

	domain "github.com/EstudioRosa/nail-scheduler/internal/domain/booking"
	"github.com/EstudioRosa/nail-scheduler/internal/timezone"
)

// parseDate interpreta YYYY-MM-DD no fuso do salão
func parseDate(tz, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		domain.DateLayout,
		dateStr,
		timezone.Location(tz),
	)
}
