package ingest

import "strings"

// LocateHeader scans rows from the top and returns the index and cells of the
// real header row. Bank exports often carry letterheads, titles, and blank
// separator lines above the header; a row qualifies as the header when its
// non-empty cell count matches the modal width of the rows following it and
// at least one cell matches a known date- or amount-column alias. Data rows
// are measured by width rather than filled cells because a delimited row
// carries every cell even when some are empty, as on debit/credit statements
// where one of the pair is blank on every row.
func LocateHeader(rows [][]string) (int, []string, error) {
	for i, row := range rows {
		if !hasSchemaAlias(row) {
			continue
		}
		rest := rows[i+1:]
		if len(rest) > 0 && nonEmptyCells(row) != modalRowWidth(rest) {
			continue
		}
		header := make([]string, len(row))
		for j, cell := range row {
			header[j] = strings.TrimSpace(cell)
		}
		return i, header, nil
	}
	return 0, nil, &SchemaError{Missing: "header row", Expected: dateAliases}
}

func nonEmptyCells(row []string) int {
	n := 0
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			n++
		}
	}
	return n
}

// modalRowWidth returns the most common cell count among rows, counting
// empty cells. Ties resolve to the larger count so short trailer rows don't
// win.
func modalRowWidth(rows [][]string) int {
	counts := make(map[int]int)
	for _, row := range rows {
		counts[len(row)]++
	}
	mode, best := 0, 0
	for count, freq := range counts {
		if freq > best || (freq == best && count > mode) {
			mode, best = count, freq
		}
	}
	return mode
}
