package ingest

import "strings"

// Column aliases are matched case-insensitively with whitespace collapsed.
// Within a list, earlier aliases win; detection is an ordered linear scan.
var (
	dateAliases = []string{
		"date", "transaction date", "transaction_date", "txn date", "txn_date",
		"txndate", "posting date", "value date",
	}
	descriptionAliases = []string{
		"description", "name", "narration", "merchant", "details",
		"particulars", "remarks",
	}
	directionAliases = []string{
		"drcr", "dr/cr", "type", "transaction type", "transaction_type",
		"txn type", "txn_type",
	}
	amountAliases = []string{
		"amount", "amt", "value", "transaction amount", "transaction_amount",
	}
	debitAliases = []string{
		"debit", "debit amount", "debit_amount", "withdrawal", "dr",
	}
	creditAliases = []string{
		"credit", "credit amount", "credit_amount", "deposit", "cr",
	}
	// signedAliases additionally accepts "balance", which only makes sense
	// once the DrCr and debit/credit layouts have been ruled out.
	signedAliases = append(append([]string{}, amountAliases...), "balance")
)

var debitTokens = map[string]struct{}{
	"DB": {}, "D": {}, "DR": {}, "DEBIT": {}, "WITHDRAWAL": {},
}

var creditTokens = map[string]struct{}{
	"CR": {}, "C": {}, "CREDIT": {}, "DEPOSIT": {},
}

// normalizeCell lowercases a cell and collapses runs of whitespace.
func normalizeCell(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// findColumn returns the index of the header cell matching the first alias
// that matches any header, or -1. The alias list order is the priority order.
func findColumn(headers []string, aliases []string) int {
	for _, alias := range aliases {
		for i, h := range headers {
			if normalizeCell(h) == alias {
				return i
			}
		}
	}
	return -1
}

// hasSchemaAlias reports whether any cell matches a date- or amount-family
// alias. Used to qualify a candidate header row.
func hasSchemaAlias(row []string) bool {
	for _, lists := range [][]string{dateAliases, signedAliases, debitAliases, creditAliases} {
		if findColumn(row, lists) >= 0 {
			return true
		}
	}
	return false
}
