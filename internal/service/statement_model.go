package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/shan3520/smartspend/internal/ingest"
)

// IngestResult reports one successful statement ingestion.
type IngestResult struct {
	SessionID          uuid.UUID
	TransactionsLoaded int
	Mapping            ingest.ColumnMapping
}

// PreviewResult describes a statement's structure without ingesting it.
type PreviewResult struct {
	HeaderRow    int
	Columns      []string
	SampleRows   [][]string
	TotalColumns int
}
