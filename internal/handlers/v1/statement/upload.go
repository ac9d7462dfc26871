package statement

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shan3520/smartspend/internal/ingest"
	"github.com/shan3520/smartspend/internal/logging"
	"github.com/shan3520/smartspend/internal/service"
)

// UploadStatementBody is the request body for uploading a statement.
type UploadStatementBody struct {
	CSV string `json:"csv" required:"true" minLength:"1" doc:"Raw CSV statement content"`
}

// UploadStatementInput is the Huma input for uploading a statement.
type UploadStatementInput struct {
	Body UploadStatementBody
}

// UploadStatementResponse is the response body for uploading a statement.
type UploadStatementResponse struct {
	SessionID          string        `json:"sessionID" doc:"Session key for the analytics endpoints"`
	TransactionsLoaded int           `json:"transactionsLoaded" doc:"Number of normalized transactions stored"`
	Mapping            MappingReport `json:"mapping" doc:"How the statement's columns were interpreted"`
}

// UploadStatementOutput is the Huma output for uploading a statement.
type UploadStatementOutput struct {
	Body UploadStatementResponse
}

// statementIngester is the interface for ingesting statements.
type statementIngester interface {
	IngestStatement(ctx context.Context, csv []byte) (*service.IngestResult, error)
}

// UploadStatementHandler handles POST /v1/statement.
type UploadStatementHandler struct {
	StatementService statementIngester
}

// NewUploadStatementHandler creates a new UploadStatementHandler.
func NewUploadStatementHandler(svc statementIngester) *UploadStatementHandler {
	return &UploadStatementHandler{StatementService: svc}
}

// Register registers the upload endpoint with the Huma API.
func (h *UploadStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upload-statement",
		Method:      http.MethodPost,
		Path:        "/v1/statement",
		Summary:     "Upload statement",
		Description: "Normalizes a bank statement CSV into an isolated session and returns the session key.",
		Tags:        []string{"Statements"},
	}, h.handle)
}

func (h *UploadStatementHandler) handle(ctx context.Context, input *UploadStatementInput) (*UploadStatementOutput, error) {
	logData := logging.GetLogData(ctx)

	result, err := h.StatementService.IngestStatement(ctx, []byte(input.Body.CSV))
	if err != nil {
		return nil, translateIngestError(err)
	}

	if logData != nil {
		logData.AddData("sessionID", result.SessionID.String())
		logData.AddData("transactionsLoaded", result.TransactionsLoaded)
		logData.AddData("rowsSkipped", result.Mapping.RowsSkipped)
	}

	return &UploadStatementOutput{
		Body: UploadStatementResponse{
			SessionID:          result.SessionID.String(),
			TransactionsLoaded: result.TransactionsLoaded,
			Mapping:            mappingReport(result.Mapping),
		},
	}, nil
}

// translateIngestError maps engine errors onto client-facing statuses. Schema
// and no-data problems are the user's input to fix; anything else is ours.
func translateIngestError(err error) error {
	var schemaErr *ingest.SchemaError
	if errors.As(err, &schemaErr) {
		return huma.NewError(http.StatusBadRequest, schemaErr.Error())
	}
	var noData *ingest.NoDataError
	if errors.As(err, &noData) {
		return huma.NewError(http.StatusBadRequest, noData.Error())
	}
	if errors.Is(err, service.ErrUnreadableStatement) {
		return huma.NewError(http.StatusBadRequest, service.ErrUnreadableStatement.Error())
	}
	return huma.NewError(http.StatusInternalServerError, "failed to process statement", err)
}

func mappingReport(mapping ingest.ColumnMapping) MappingReport {
	report := MappingReport{
		DateColumn:        mapping.DateColumn,
		DescriptionColumn: mapping.DescriptionColumn,
		AmountPattern:     string(mapping.AmountPattern),
		AmountColumns:     mapping.AmountColumns,
		DateOrder:         string(mapping.DateOrder),
		RowsSkipped:       mapping.RowsSkipped,
	}
	if mapping.DescriptionColumn == "" {
		report.DescriptionNote = "no description column found, placeholder " +
			ingest.PlaceholderDescription + " substituted"
	}
	return report
}
