package analytics

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shan3520/smartspend/internal/ingest"
)

// FlagStatus is the classification attached to an anomalous month.
type FlagStatus string

const StatusOverspending FlagStatus = "OVERSPENDING"

// OverspendingFlag reports one month whose spending exceeds its historical
// baseline. Spending is reported as a positive magnitude: the negated net sum
// of the month's transactions, so outflow-heavy months score high. The same
// convention feeds the baseline average, both thresholds, and the deviation.
type OverspendingFlag struct {
	Month         string // YYYY-MM
	TotalSpending decimal.Decimal
	AvgSpending   decimal.Decimal
	PctDeviation  float64
	Status        FlagStatus
}

const (
	// minMonths is the history needed before any month can be evaluated.
	minMonths = 4

	pctThresholdFactor = 1.2
	stdFloorFactor     = 0.1
)

// DetectOverspending aggregates net spending per calendar month and flags
// months that exceed either 1.2x the baseline average or the average plus one
// (floored) standard deviation. The baseline for a month is built from
// strictly prior months only, so a spike never inflates its own threshold.
// Fewer than minMonths distinct months yields an empty result, not an error.
func DetectOverspending(txns []ingest.Transaction) []OverspendingFlag {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		month := txn.Date.Format("2006-01")
		totals[month] = totals[month].Add(txn.Amount)
	}
	if len(totals) < minMonths {
		return nil
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	spending := make([]decimal.Decimal, len(months))
	for i, month := range months {
		spending[i] = totals[month].Neg()
	}

	var flags []OverspendingFlag
	for i := minMonths - 1; i < len(months); i++ {
		baseline := make([]float64, i)
		baselineSum := decimal.Zero
		for j := 0; j < i; j++ {
			baseline[j] = spending[j].InexactFloat64()
			baselineSum = baselineSum.Add(spending[j])
		}

		avgSpending := baselineSum.Div(decimal.NewFromInt(int64(i)))
		avg := avgSpending.InexactFloat64()
		if avg == 0 {
			// Deviation from a zero baseline is undefined.
			continue
		}

		stdFloor := math.Max(popStdDev(baseline), stdFloorFactor*math.Abs(avg))
		total := spending[i].InexactFloat64()

		if total <= pctThresholdFactor*avg && total <= avg+stdFloor {
			continue
		}

		flags = append(flags, OverspendingFlag{
			Month:         months[i],
			TotalSpending: spending[i],
			AvgSpending:   avgSpending,
			PctDeviation:  (total - avg) / avg * 100,
			Status:        StatusOverspending,
		})
	}
	return flags
}
