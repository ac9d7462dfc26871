package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shan3520/smartspend/internal/ingest"
)

// Frequency classifies the periodicity of a recurring payment.
type Frequency string

const (
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyWeekly  Frequency = "WEEKLY"
)

// Subscription is a recurring debit detected in a transaction stream.
type Subscription struct {
	Description string
	Amount      decimal.Decimal
	Frequency   Frequency
	AvgGapDays  float64
	Occurrences int
}

const (
	minOccurrences = 3

	monthlyGapMin = 25.0
	monthlyGapMax = 35.0
	weeklyGapMin  = 5.0
	weeklyGapMax  = 9.0

	// gapConsistencyRatio rejects groups whose gap spread is too wide to be a
	// schedule: coincidentally-equal amounts at irregular intervals.
	gapConsistencyRatio = 0.2
)

// DetectSubscriptions groups recurring debits by (description, amount) and
// classifies their periodicity. Result order is not defined. Empty input
// yields empty output; there are no error cases.
func DetectSubscriptions(txns []ingest.Transaction) []Subscription {
	type groupKey struct {
		description string
		amount      string
	}

	type group struct {
		amount decimal.Decimal
		dates  []int64 // unix seconds
	}

	groups := make(map[groupKey]*group)
	for _, txn := range txns {
		if !txn.Amount.IsNegative() {
			continue
		}
		// The placeholder stands in for any row with no merchant text, so
		// identical amounts under it are unrelated payments, not a schedule.
		if txn.Description == ingest.PlaceholderDescription {
			continue
		}
		key := groupKey{description: txn.Description, amount: txn.Amount.String()}
		g, ok := groups[key]
		if !ok {
			g = &group{amount: txn.Amount}
			groups[key] = g
		}
		g.dates = append(g.dates, txn.Date.Unix())
	}

	var subs []Subscription
	for key, g := range groups {
		if len(g.dates) < minOccurrences {
			continue
		}

		sort.Slice(g.dates, func(i, j int) bool { return g.dates[i] < g.dates[j] })

		gaps := make([]float64, 0, len(g.dates)-1)
		for i := 1; i < len(g.dates); i++ {
			gaps = append(gaps, float64(g.dates[i]-g.dates[i-1])/86400)
		}

		avgGap := mean(gaps)

		var frequency Frequency
		switch {
		case avgGap >= monthlyGapMin && avgGap <= monthlyGapMax:
			frequency = FrequencyMonthly
		case avgGap >= weeklyGapMin && avgGap <= weeklyGapMax:
			frequency = FrequencyWeekly
		default:
			continue
		}

		if popStdDev(gaps) >= gapConsistencyRatio*avgGap {
			continue
		}

		subs = append(subs, Subscription{
			Description: key.description,
			Amount:      g.amount,
			Frequency:   frequency,
			AvgGapDays:  avgGap,
			Occurrences: len(g.dates),
		})
	}
	return subs
}
