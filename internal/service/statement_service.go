package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/shan3520/smartspend/internal/ingest"
	"github.com/shan3520/smartspend/internal/operator/actions"
	"github.com/shan3520/smartspend/internal/storage/sqlconfig"
)

// ErrUnreadableStatement means the upload could not be read as delimited text
// at all, before any schema inference ran.
var ErrUnreadableStatement = errors.New("statement is not readable as csv")

const previewSampleRows = 5

// actionProcessor is the slice of the operator the statement service needs.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// StatementService handles statement ingestion and preview.
type StatementService struct {
	operator actionProcessor
}

// NewStatementService creates a new StatementService.
func NewStatementService(op actionProcessor) *StatementService {
	return &StatementService{operator: op}
}

// IngestStatement normalizes a raw statement, mints a session, and stores the
// transactions under it. The returned result carries the session key the
// caller needs for analytics plus the column mapping report.
func (s *StatementService) IngestStatement(ctx context.Context, csv []byte) (*IngestResult, error) {
	rows, err := ingest.ParseCSV(bytes.NewReader(csv))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableStatement, err)
	}

	txns, mapping, err := ingest.Normalize(rows)
	if err != nil {
		return nil, err
	}

	sessionID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generating session id: %w", err)
	}

	creates := make([]*sqlconfig.TransactionCreate, len(txns))
	for i, txn := range txns {
		creates[i] = &sqlconfig.TransactionCreate{
			Date:        txn.Date,
			Description: txn.Description,
			Amount:      txn.Amount,
		}
	}

	action := &actions.ReplaceStatement{
		SessionID:    sessionID,
		Transactions: creates,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("storing statement: %w", err)
	}

	return &IngestResult{
		SessionID:          sessionID,
		TransactionsLoaded: len(txns),
		Mapping:            *mapping,
	}, nil
}

// PreviewStatement reports the detected structure of a statement so users can
// diagnose upload problems. Nothing is stored and no session is created.
func (s *StatementService) PreviewStatement(csv []byte) (*PreviewResult, error) {
	rows, err := ingest.ParseCSV(bytes.NewReader(csv))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableStatement, err)
	}

	headerIdx, header, err := ingest.LocateHeader(rows)
	if err != nil {
		return nil, err
	}

	dataRows := rows[headerIdx+1:]
	sampleCount := len(dataRows)
	if sampleCount > previewSampleRows {
		sampleCount = previewSampleRows
	}

	return &PreviewResult{
		HeaderRow:    headerIdx,
		Columns:      header,
		SampleRows:   dataRows[:sampleCount],
		TotalColumns: len(header),
	}, nil
}
