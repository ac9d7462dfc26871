package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
)

// ParseCSV reads delimited text into a raw table. Field counts are allowed to
// vary between rows since metadata lines above the header rarely match the
// data width.
func ParseCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement csv: %w", err)
	}
	return records, nil
}
