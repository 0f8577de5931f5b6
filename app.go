package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

type App struct {
	clock Clock
	log   zerolog.Logger

	// proportion rows, in display order
	periods []Period
}

func NewApp(clock Clock, log zerolog.Logger) *App {
	return &App{
		clock:   clock,
		log:     log,
		periods: []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear},
	}
}

// raises diagnostics to debug level
func (a *App) EnableDebug() {
	a.log = a.log.Level(zerolog.DebugLevel)
}

// Report builds the table rows for now, in display order.
func (a *App) Report(now time.Time) ([]Row, error) {
	utc := now.UTC()

	rows := []Row{
		{"Unix", UnixTime(now)},
		{"ISO-8601 Gregorian (Local)", Gregorian(now)},
		{"ISO-8601 Gregorian (UTC)", Gregorian(utc)},
		{"ISO-8601 Week-date (Local)", WeekDate(now)},
		{"ISO-8601 Week-date (UTC)", WeekDate(utc)},
	}

	for _, p := range a.periods {
		value, err := Proportion(now, p)
		if err != nil {
			return nil, fmt.Errorf("failed to compute %s proportion: %w", p, err)
		}

		rows = append(rows, Row{
			Label: fmt.Sprintf("Proportion of %s elapsed (Local)", p),
			Value: value,
		})
	}

	return rows, nil
}

// Print reads the clock once and writes the rendered report to w.
func (a *App) Print(w io.Writer) error {
	now := a.clock.Now()
	if now.IsZero() {
		return ErrNoClockReading
	}

	a.log.Debug().
		Time("now", now).
		Str("zone", now.Location().String()).
		Msg("captured clock reading")

	rows, err := a.Report(now)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, RenderTable(rows)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
