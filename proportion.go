package main

import (
	"fmt"
	"time"
)

// scale of the fixed-point fraction, five decimal digits
const proportionScale = 100_000

// Proportion returns the elapsed fraction of the period containing t, e.g. "0.500 00".
// The fraction is truncated, never rounded.
func Proportion(t time.Time, p Period) (string, error) {
	elapsed := secondsFromMidnight(t)
	var total int64

	switch p {
	case PeriodDay:
		total = secondsPerDay
	case PeriodWeek:
		elapsed += int64(daysFromMonday(t)) * secondsPerDay
		total = 7 * secondsPerDay
	case PeriodMonth:
		days, err := MonthLength(t.Year(), t.Month())
		if err != nil {
			return "", fmt.Errorf("failed to get month length: %w", err)
		}
		elapsed += int64(t.Day()-1) * secondsPerDay
		total = int64(days) * secondsPerDay
	case PeriodYear:
		elapsed += int64(t.YearDay()-1) * secondsPerDay
		total = int64(YearLength(t.Year())) * secondsPerDay
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownPeriod, int(p))
	}

	return formatFraction(elapsed * proportionScale / total), nil
}

// wall clock seconds, so DST transition days still count as a full day
func secondsFromMidnight(t time.Time) int64 {
	return int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())
}

// monday is 0, sunday is 6
func daysFromMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func formatFraction(scaled int64) string {
	return "0." + GroupFromLeft(fmt.Sprintf("%05d", scaled), 3, ' ')
}
