package statement

// MappingReport is the API model of the column mapping inferred during
// ingestion. It is used only for responses.
type MappingReport struct {
	DateColumn        string   `json:"dateColumn" doc:"Header cell used as the transaction date"`
	DescriptionColumn string   `json:"descriptionColumn,omitempty" doc:"Header cell used as the description, absent when none was found"`
	DescriptionNote   string   `json:"descriptionNote,omitempty" doc:"Set when no description column was found and a placeholder was substituted"`
	AmountPattern     string   `json:"amountPattern" doc:"Detected amount encoding: DRCR, DEBIT_CREDIT, or SIGNED"`
	AmountColumns     []string `json:"amountColumns" doc:"Header cells carrying amounts"`
	DateOrder         string   `json:"dateOrder" doc:"Inferred date component order: DMY, MDY, or YMD"`
	RowsSkipped       int      `json:"rowsSkipped" doc:"Metadata rows above the header plus rows dropped during parsing"`
}
