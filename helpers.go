package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	gregorianLayout = "2006-01-02T15:04:05-07:00"
	clockLayout     = "15:04:05-07:00"
)

// Pad fills text with padChar until it is width runes long, on the left or the
// right. Text that is already long enough is returned unchanged.
func Pad(text string, width int, left bool, padChar rune) string {
	n := width - utf8.RuneCountInString(text)
	if n <= 0 {
		return text
	}

	padding := strings.Repeat(string(padChar), n)
	if left {
		return padding + text
	}
	return text + padding
}

// GroupFromRight splits text into groups of size counted from the right end,
// "1234567" -> "1 234 567".
func GroupFromRight(text string, size int, sep rune) string {
	if size < 1 {
		return text
	}

	runes := []rune(text)
	head := len(runes) % size

	var groups []string
	if head > 0 {
		groups = append(groups, string(runes[:head]))
	}
	for _, chunk := range lo.Chunk(runes[head:], size) {
		groups = append(groups, string(chunk))
	}

	return strings.Join(groups, string(sep))
}

// GroupFromLeft splits text into groups of size counted from the left end,
// "1234567" -> "123 456 7".
func GroupFromLeft(text string, size int, sep rune) string {
	if size < 1 {
		return text
	}

	groups := lo.Map(lo.Chunk([]rune(text), size), func(chunk []rune, _ int) string {
		return string(chunk)
	})

	return strings.Join(groups, string(sep))
}

// RenderTable lays rows out in two columns: labels padded on the right to the
// widest label, values padded on the left to the widest value.
func RenderTable(rows []Row) string {
	labelWidth := lo.Max(lo.Map(rows, func(r Row, _ int) int {
		return utf8.RuneCountInString(r.Label)
	}))
	valueWidth := lo.Max(lo.Map(rows, func(r Row, _ int) int {
		return utf8.RuneCountInString(r.Value)
	}))

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(Pad(row.Label, labelWidth, false, ' '))
		sb.WriteByte(' ')
		sb.WriteString(Pad(row.Value, valueWidth, true, ' '))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// UnixTime returns seconds since the epoch grouped in threes, "1 679 866 623".
func UnixTime(t time.Time) string {
	secs := t.Unix()
	if secs < 0 {
		return "-" + GroupFromRight(strconv.FormatInt(-secs, 10), 3, ' ')
	}
	return GroupFromRight(strconv.FormatInt(secs, 10), 3, ' ')
}

// Gregorian formats t as an ISO-8601 date-time with a numeric offset. UTC is
// written as +00:00.
func Gregorian(t time.Time) string {
	return t.Format(gregorianLayout)
}

// WeekDate formats t as an ISO-8601 week date, "1989-W45-4T22:45:00+01:00".
func WeekDate(t time.Time) string {
	year, week := t.ISOWeek()
	weekday := daysFromMonday(t) + 1

	return fmt.Sprintf("%04d-W%02d-%dT%s", year, week, weekday, t.Format(clockLayout))
}
