package main

import "errors"

type Row struct {
	Label string
	Value string
}

type Period int

const (
	PeriodDay Period = iota
	PeriodWeek
	PeriodMonth
	PeriodYear
)

func (p Period) String() string {
	switch p {
	case PeriodDay:
		return "day"
	case PeriodWeek:
		return "week"
	case PeriodMonth:
		return "month"
	case PeriodYear:
		return "year"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidMonth   = errors.New("invalid month")
	ErrUnknownPeriod  = errors.New("unknown period")
	ErrNoClockReading = errors.New("no clock reading")
)
