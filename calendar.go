package main

import (
	"fmt"
	"time"
)

const secondsPerDay = 86_400

// proleptic gregorian rule, any year including zero and negatives
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// returns number of days in the month, months outside 1..12 are rejected
func MonthLength(year int, month time.Month) (int, error) {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31, nil
	case time.April, time.June, time.September, time.November:
		return 30, nil
	case time.February:
		if IsLeapYear(year) {
			return 29, nil
		}
		return 28, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, int(month))
	}
}

func YearLength(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
