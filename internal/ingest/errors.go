package ingest

import (
	"fmt"
	"strings"
)

// SchemaError means the table's schema could not be identified: no header row,
// no date column, or no recognizable amount pattern. It carries the headers
// seen and the aliases expected so the caller can tell the user what to fix.
type SchemaError struct {
	Missing  string // "header row", "date column", or "amount pattern"
	Headers  []string
	Expected []string
}

func (e *SchemaError) Error() string {
	if len(e.Headers) == 0 {
		return fmt.Sprintf("no %s identified, expected a column named one of: %s",
			e.Missing, strings.Join(e.Expected, ", "))
	}
	return fmt.Sprintf("no %s identified: found columns [%s], expected one of: %s",
		e.Missing, strings.Join(e.Headers, ", "), strings.Join(e.Expected, ", "))
}

// NoDataError means a header row was found but no data row survived parsing.
type NoDataError struct {
	RowsSkipped int
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no valid transactions found, %d rows skipped", e.RowsSkipped)
}
