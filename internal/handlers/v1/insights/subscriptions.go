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

// Subscription is the API response model for a detected recurring payment.
type Subscription struct {
	Description string  `json:"description" doc:"Merchant text the payments share"`
	Amount      string  `json:"amount" doc:"Decimal amount, negative"`
	Frequency   string  `json:"frequency" enum:"MONTHLY,WEEKLY" doc:"Classified periodicity"`
	AvgGapDays  float64 `json:"avgGapDays" doc:"Mean days between consecutive payments"`
	Occurrences int     `json:"occurrences" doc:"Number of payments in the group"`
}

// SubscriptionsInput is the Huma input for listing subscriptions.
type SubscriptionsInput struct {
	SessionID string `query:"sessionID" required:"true" format:"uuid" doc:"Session key from statement upload"`
}

// SubscriptionsResponseBody is the response body for listing subscriptions.
type SubscriptionsResponseBody struct {
	Count         int            `json:"count" doc:"Number of detected subscriptions"`
	Subscriptions []Subscription `json:"subscriptions" doc:"Detected recurring payments"`
}

// SubscriptionsOutput is the Huma output for listing subscriptions.
type SubscriptionsOutput struct {
	Body SubscriptionsResponseBody
}

// subscriptionLister is the interface for detecting a session's subscriptions.
type subscriptionLister interface {
	Subscriptions(ctx context.Context, sessionID uuid.UUID) ([]analytics.Subscription, error)
}

// SubscriptionsHandler handles GET /v1/insights/subscriptions.
type SubscriptionsHandler struct {
	InsightsService subscriptionLister
}

// NewSubscriptionsHandler creates a new SubscriptionsHandler.
func NewSubscriptionsHandler(svc subscriptionLister) *SubscriptionsHandler {
	return &SubscriptionsHandler{InsightsService: svc}
}

// Register registers the subscriptions endpoint with the Huma API.
func (h *SubscriptionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-subscriptions",
		Method:      http.MethodGet,
		Path:        "/v1/insights/subscriptions",
		Summary:     "Detect subscriptions",
		Description: "Returns recurring payments detected in the session's transactions.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *SubscriptionsHandler) handle(ctx context.Context, input *SubscriptionsInput) (*SubscriptionsOutput, error) {
	logData := logging.GetLogData(ctx)

	sessionID, err := uuid.FromString(input.SessionID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid sessionID", err)
	}

	subs, err := h.InsightsService.Subscriptions(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sqlconfig.ErrSessionNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "session not found or expired")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to detect subscriptions", err)
	}

	if logData != nil {
		logData.AddData("subscriptionCount", len(subs))
	}

	resp := SubscriptionsResponseBody{
		Count:         len(subs),
		Subscriptions: make([]Subscription, len(subs)),
	}
	for i, sub := range subs {
		resp.Subscriptions[i] = Subscription{
			Description: sub.Description,
			Amount:      sub.Amount.String(),
			Frequency:   string(sub.Frequency),
			AvgGapDays:  sub.AvgGapDays,
			Occurrences: sub.Occurrences,
		}
	}

	return &SubscriptionsOutput{Body: resp}, nil
}
