package ingest

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize turns a raw table into normalized transactions plus a report of
// how the table was interpreted.
//
// It returns a *SchemaError when no header row, date column, or amount
// pattern can be identified, and a *NoDataError when a header was found but
// zero rows parse. Individual malformed rows are never fatal: they are
// skipped and counted into the mapping's RowsSkipped, so a handful of bad
// rows cannot block an otherwise valid statement.
func Normalize(rows [][]string) ([]Transaction, *ColumnMapping, error) {
	headerIdx, headers, err := LocateHeader(rows)
	if err != nil {
		return nil, nil, err
	}
	dataRows := rows[headerIdx+1:]

	dateIdx := findColumn(headers, dateAliases)
	if dateIdx < 0 {
		return nil, nil, &SchemaError{Missing: "date column", Headers: headers, Expected: dateAliases}
	}
	descIdx := findColumn(headers, descriptionAliases)

	mapping := &ColumnMapping{
		DateColumn:  headers[dateIdx],
		RowsSkipped: headerIdx,
	}
	if descIdx >= 0 {
		mapping.DescriptionColumn = headers[descIdx]
	}

	pattern, err := detectAmountPattern(headers, mapping)
	if err != nil {
		return nil, nil, err
	}

	mapping.DateOrder = inferDateOrder(columnCells(dataRows, dateIdx))

	var txns []Transaction
	for _, row := range dataRows {
		date, err := parseDate(cellAt(row, dateIdx), mapping.DateOrder)
		if err != nil {
			mapping.RowsSkipped++
			continue
		}

		amount, ok := pattern.amount(row)
		if !ok {
			mapping.RowsSkipped++
			continue
		}

		desc := strings.TrimSpace(cellAt(row, descIdx))
		if desc == "" {
			desc = PlaceholderDescription
		}

		txns = append(txns, Transaction{Date: date, Description: desc, Amount: amount})
	}

	if len(txns) == 0 {
		return nil, nil, &NoDataError{RowsSkipped: mapping.RowsSkipped}
	}
	return txns, mapping, nil
}

// amountParser resolves a row to a signed amount under one detected pattern.
type amountParser struct {
	pattern  AmountPattern
	dirIdx   int
	amtIdx   int
	debitIdx int
	credIdx  int
}

// detectAmountPattern tries the three layouts in fixed priority order and
// fills the mapping's pattern fields for the first one that matches.
func detectAmountPattern(headers []string, mapping *ColumnMapping) (*amountParser, error) {
	if dirIdx := findColumn(headers, directionAliases); dirIdx >= 0 {
		if amtIdx := findColumn(headers, amountAliases); amtIdx >= 0 {
			mapping.AmountPattern = PatternDrCr
			mapping.AmountColumns = []string{headers[amtIdx]}
			mapping.DirectionColumn = headers[dirIdx]
			return &amountParser{pattern: PatternDrCr, dirIdx: dirIdx, amtIdx: amtIdx}, nil
		}
	}

	debitIdx := findColumn(headers, debitAliases)
	credIdx := findColumn(headers, creditAliases)
	if debitIdx >= 0 && credIdx >= 0 {
		mapping.AmountPattern = PatternDebitCredit
		mapping.AmountColumns = []string{headers[debitIdx], headers[credIdx]}
		return &amountParser{pattern: PatternDebitCredit, debitIdx: debitIdx, credIdx: credIdx}, nil
	}

	if amtIdx := findColumn(headers, signedAliases); amtIdx >= 0 {
		mapping.AmountPattern = PatternSigned
		mapping.AmountColumns = []string{headers[amtIdx]}
		return &amountParser{pattern: PatternSigned, amtIdx: amtIdx}, nil
	}

	return nil, &SchemaError{Missing: "amount pattern", Headers: headers, Expected: signedAliases}
}

// amount computes the signed amount for one data row. ok is false when the
// row is malformed under the pattern and should be skipped.
func (p *amountParser) amount(row []string) (decimal.Decimal, bool) {
	switch p.pattern {
	case PatternDrCr:
		magnitude, err := parseAmountCell(cellAt(row, p.amtIdx))
		if err != nil {
			return decimal.Decimal{}, false
		}
		token := strings.ToUpper(strings.TrimSpace(cellAt(row, p.dirIdx)))
		if _, ok := debitTokens[token]; ok {
			return magnitude.Abs().Neg(), true
		}
		if _, ok := creditTokens[token]; ok {
			return magnitude.Abs(), true
		}
		return decimal.Decimal{}, false

	case PatternDebitCredit:
		debit := strings.TrimSpace(cellAt(row, p.debitIdx))
		credit := strings.TrimSpace(cellAt(row, p.credIdx))
		// A well-formed row fills exactly one of the two.
		if (debit == "") == (credit == "") {
			return decimal.Decimal{}, false
		}
		if debit != "" {
			value, err := parseAmountCell(debit)
			if err != nil {
				return decimal.Decimal{}, false
			}
			return value.Abs().Neg(), true
		}
		value, err := parseAmountCell(credit)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return value.Abs(), true

	default: // PatternSigned
		value, err := parseAmountCell(cellAt(row, p.amtIdx))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return value, true
	}
}

// parseAmountCell parses a numeric cell, tolerating thousands separators.
func parseAmountCell(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return decimal.NewFromString(s)
}

// cellAt is a bounds-checked cell access; short rows read as empty cells.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func columnCells(rows [][]string, idx int) []string {
	cells := make([]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, cellAt(row, idx))
	}
	return cells
}
