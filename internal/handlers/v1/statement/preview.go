package statement

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shan3520/smartspend/internal/ingest"
	"github.com/shan3520/smartspend/internal/service"
)

// PreviewStatementBody is the request body for previewing a statement.
type PreviewStatementBody struct {
	CSV string `json:"csv" required:"true" minLength:"1" doc:"Raw CSV statement content"`
}

// PreviewStatementInput is the Huma input for previewing a statement.
type PreviewStatementInput struct {
	Body PreviewStatementBody
}

// PreviewStatementResponse is the response body for previewing a statement.
type PreviewStatementResponse struct {
	HeaderRow    int        `json:"headerRow" doc:"Zero-based index of the detected header row"`
	Columns      []string   `json:"columns" doc:"Detected header cells"`
	SampleRows   [][]string `json:"sampleRows" doc:"Up to five data rows following the header"`
	TotalColumns int        `json:"totalColumns" doc:"Number of header cells"`
}

// PreviewStatementOutput is the Huma output for previewing a statement.
type PreviewStatementOutput struct {
	Body PreviewStatementResponse
}

// statementPreviewer is the interface for previewing statement structure.
type statementPreviewer interface {
	PreviewStatement(csv []byte) (*service.PreviewResult, error)
}

// PreviewStatementHandler handles POST /v1/statement/preview.
type PreviewStatementHandler struct {
	StatementService statementPreviewer
}

// NewPreviewStatementHandler creates a new PreviewStatementHandler.
func NewPreviewStatementHandler(svc statementPreviewer) *PreviewStatementHandler {
	return &PreviewStatementHandler{StatementService: svc}
}

// Register registers the preview endpoint with the Huma API.
func (h *PreviewStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "preview-statement",
		Method:      http.MethodPost,
		Path:        "/v1/statement/preview",
		Summary:     "Preview statement structure",
		Description: "Reports the detected header position and columns without ingesting anything. Helps diagnose upload problems.",
		Tags:        []string{"Statements"},
	}, h.handle)
}

func (h *PreviewStatementHandler) handle(ctx context.Context, input *PreviewStatementInput) (*PreviewStatementOutput, error) {
	preview, err := h.StatementService.PreviewStatement([]byte(input.Body.CSV))
	if err != nil {
		var schemaErr *ingest.SchemaError
		if errors.As(err, &schemaErr) || errors.Is(err, service.ErrUnreadableStatement) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to preview statement", err)
	}

	return &PreviewStatementOutput{
		Body: PreviewStatementResponse{
			HeaderRow:    preview.HeaderRow,
			Columns:      preview.Columns,
			SampleRows:   preview.SampleRows,
			TotalColumns: preview.TotalColumns,
		},
	}, nil
}
