package insights

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/shan3520/smartspend/internal/analytics"
	"github.com/shan3520/smartspend/internal/logging"
	"github.com/shan3520/smartspend/internal/storage/sqlconfig"
)

// OverspendingMonth is the API response model for one flagged month.
type OverspendingMonth struct {
	Month         string  `json:"month" doc:"Calendar month, YYYY-MM"`
	TotalSpending string  `json:"totalSpending" doc:"Decimal net spending magnitude for the month"`
	AvgSpending   string  `json:"avgSpending" doc:"Decimal baseline average over strictly prior months"`
	PctDeviation  float64 `json:"pctDeviation" doc:"Percent deviation from the baseline average"`
	Status        string  `json:"status" enum:"OVERSPENDING" doc:"Flag status"`
}

// OverspendingInput is the Huma input for listing overspending months.
type OverspendingInput struct {
	SessionID string `query:"sessionID" required:"true" format:"uuid" doc:"Session key from statement upload"`
}

// OverspendingResponseBody is the response body for listing overspending months.
type OverspendingResponseBody struct {
	Count  int                 `json:"count" doc:"Number of flagged months"`
	Months []OverspendingMonth `json:"months" doc:"Flagged months in chronological order"`
}

// OverspendingOutput is the Huma output for listing overspending months.
type OverspendingOutput struct {
	Body OverspendingResponseBody
}

// overspendingLister is the interface for detecting a session's anomalous months.
type overspendingLister interface {
	Overspending(ctx context.Context, sessionID uuid.UUID) ([]analytics.OverspendingFlag, error)
}

// OverspendingHandler handles GET /v1/insights/overspending.
type OverspendingHandler struct {
	InsightsService overspendingLister
}

// NewOverspendingHandler creates a new OverspendingHandler.
func NewOverspendingHandler(svc overspendingLister) *OverspendingHandler {
	return &OverspendingHandler{InsightsService: svc}
}

// Register registers the overspending endpoint with the Huma API.
func (h *OverspendingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-overspending",
		Method:      http.MethodGet,
		Path:        "/v1/insights/overspending",
		Summary:     "Detect overspending months",
		Description: "Returns months whose spending exceeds the historical baseline. Months with under four months of history are never flagged.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *OverspendingHandler) handle(ctx context.Context, input *OverspendingInput) (*OverspendingOutput, error) {
	logData := logging.GetLogData(ctx)

	sessionID, err := uuid.FromString(input.SessionID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid sessionID", err)
	}

	flags, err := h.InsightsService.Overspending(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sqlconfig.ErrSessionNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "session not found or expired")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to detect overspending", err)
	}

	if logData != nil {
		logData.AddData("flaggedMonths", len(flags))
	}

	resp := OverspendingResponseBody{
		Count:  len(flags),
		Months: make([]OverspendingMonth, len(flags)),
	}
	for i, flag := range flags {
		resp.Months[i] = OverspendingMonth{
			Month:         flag.Month,
			TotalSpending: flag.TotalSpending.String(),
			AvgSpending:   flag.AvgSpending.String(),
			PctDeviation:  flag.PctDeviation,
			Status:        string(flag.Status),
		}
	}

	return &OverspendingOutput{Body: resp}, nil
}
