package ingest

import (
	"strconv"
	"strings"
	"time"
)

// inferDateOrder samples the parseable cells of the date column and decides
// the component ordering:
//
//   - any non-year first component above 12 forces DayMonthYear,
//   - a YYYY-MM-DD / YYYY/MM/DD shape means YearMonthDay,
//   - otherwise majority vote across the sample, DayMonthYear on a tie.
//
// The tie default is a deliberate heuristic; a column of values like
// 03/04/2024 is genuinely ambiguous.
func inferDateOrder(cells []string) DateOrder {
	sawISO := false
	votes := map[DateOrder]int{}

	for _, cell := range cells {
		comps, ok := splitDateCell(cell)
		if !ok {
			continue
		}
		if len(comps[0]) == 4 {
			sawISO = true
			continue
		}
		first, err := strconv.Atoi(comps[0])
		if err != nil {
			continue
		}
		if first > 12 {
			return DayMonthYear
		}
		for _, order := range []DateOrder{DayMonthYear, MonthDayYear} {
			if _, err := assembleDate(comps, order); err == nil {
				votes[order]++
			}
		}
	}

	if sawISO {
		return YearMonthDay
	}
	if votes[MonthDayYear] > votes[DayMonthYear] {
		return MonthDayYear
	}
	return DayMonthYear
}

// parseDate parses a single date cell under the inferred order.
func parseDate(cell string, order DateOrder) (time.Time, error) {
	comps, ok := splitDateCell(cell)
	if !ok {
		return time.Time{}, &dateParseError{cell: cell}
	}
	return assembleDate(comps, order)
}

type dateParseError struct {
	cell string
}

func (e *dateParseError) Error() string {
	return "unparseable date cell: " + e.cell
}

// splitDateCell breaks a cell into exactly three numeric components on the
// usual separators.
func splitDateCell(s string) ([]string, bool) {
	parts := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '/' || r == '-' || r == '.' || r == ' '
	})
	if len(parts) != 3 {
		return nil, false
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return nil, false
		}
	}
	return parts, true
}

func assembleDate(comps []string, order DateOrder) (time.Time, error) {
	a, _ := strconv.Atoi(comps[0])
	b, _ := strconv.Atoi(comps[1])
	c, _ := strconv.Atoi(comps[2])

	var year, month, day int
	switch order {
	case YearMonthDay:
		year, month, day = a, b, c
	case MonthDayYear:
		month, day, year = a, b, c
	default:
		day, month, year = a, b, c
	}

	// Two-digit years are taken as 2000-2099.
	if year < 100 {
		year += 2000
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, &dateParseError{cell: strings.Join(comps, "/")}
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (Feb 30 becomes Mar 1); reject those.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, &dateParseError{cell: strings.Join(comps, "/")}
	}
	return t, nil
}
