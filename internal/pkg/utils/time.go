package utils

import (
	"time"

	"dentassist-service/internal/pkg/constvars"
)

func ParseClinicDate(date string) (time.Time, error) {
	return time.Parse(constvars.ClinicDateLayout, date)
}

func ParseClinicTime(clock string) (time.Time, error) {
	return time.Parse(constvars.ClinicTimeLayout, clock)
}

func FormatClinicDate(t time.Time) string {
	return t.Format(constvars.ClinicDateLayout)
}

// IsFutureClinicDate compares calendar days only, ignoring the clock.
func IsFutureClinicDate(date string, now time.Time) (bool, error) {
	parsed, err := ParseClinicDate(date)
	if err != nil {
		return false, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return parsed.After(today), nil
}
