package ingest

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmountPattern identifies how a statement encodes transaction direction and magnitude.
type AmountPattern string

const (
	// PatternDrCr is a direction column plus a single unsigned amount column.
	PatternDrCr AmountPattern = "DRCR"
	// PatternDebitCredit is separate debit and credit columns.
	PatternDebitCredit AmountPattern = "DEBIT_CREDIT"
	// PatternSigned is a single column of already-signed amounts.
	PatternSigned AmountPattern = "SIGNED"
)

// DateOrder identifies the component ordering of a numeric date column.
type DateOrder string

const (
	DayMonthYear DateOrder = "DMY"
	MonthDayYear DateOrder = "MDY"
	YearMonthDay DateOrder = "YMD"
)

// PlaceholderDescription is substituted when a statement has no description
// column or the cell is empty.
const PlaceholderDescription = "TRANSACTION"

// Transaction is a normalized statement row. Amounts are signed:
// negative is an outflow, positive is an inflow. Dates are UTC midnight.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// ColumnMapping reports how the raw table was interpreted. It is immutable
// once returned by Normalize.
type ColumnMapping struct {
	DateColumn        string
	DescriptionColumn string // empty when no description column was found
	AmountPattern     AmountPattern
	AmountColumns     []string
	DirectionColumn   string // set only for PatternDrCr
	DateOrder         DateOrder
	RowsSkipped       int // metadata rows above the header plus rows dropped during parsing
}
