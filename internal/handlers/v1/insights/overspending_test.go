package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shan3520/smartspend/internal/analytics"
	"github.com/shan3520/smartspend/internal/storage/sqlconfig"
)

type mockOverspendingService struct {
	mock.Mock
}

func (m *mockOverspendingService) Overspending(ctx context.Context, sessionID uuid.UUID) ([]analytics.OverspendingFlag, error) {
	args := m.Called(ctx, sessionID)
	flags, _ := args.Get(0).([]analytics.OverspendingFlag)
	return flags, args.Error(1)
}

func newOverspendingTestAPI(t *testing.T, svc overspendingLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewOverspendingHandler(svc).Register(api)
	return api
}

func TestHTTP_ListOverspending_Success(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockOverspendingService)
	mockSvc.On("Overspending", mock.Anything, sessionID).Return([]analytics.OverspendingFlag{
		{
			Month:         "2024-05",
			TotalSpending: decimal.RequireFromString("500"),
			AvgSpending:   decimal.RequireFromString("100"),
			PctDeviation:  400,
			Status:        analytics.StatusOverspending,
		},
	}, nil)

	resp := newOverspendingTestAPI(t, mockSvc).
		Get("/v1/insights/overspending?sessionID=" + sessionID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body OverspendingResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "2024-05", body.Months[0].Month)
	assert.Equal(t, "500", body.Months[0].TotalSpending)
	assert.Equal(t, "100", body.Months[0].AvgSpending)
	assert.Equal(t, float64(400), body.Months[0].PctDeviation)
	assert.Equal(t, "OVERSPENDING", body.Months[0].Status)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListOverspending_NoFlags(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockOverspendingService)
	mockSvc.On("Overspending", mock.Anything, sessionID).
		Return([]analytics.OverspendingFlag{}, nil)

	resp := newOverspendingTestAPI(t, mockSvc).
		Get("/v1/insights/overspending?sessionID=" + sessionID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body OverspendingResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.Count)
	assert.Empty(t, body.Months)
}

func TestHTTP_ListOverspending_UnknownSession(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockOverspendingService)
	mockSvc.On("Overspending", mock.Anything, sessionID).
		Return(nil, sqlconfig.ErrSessionNotFound)

	resp := newOverspendingTestAPI(t, mockSvc).
		Get("/v1/insights/overspending?sessionID=" + sessionID.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_ListOverspending_MissingSessionID(t *testing.T) {
	mockSvc := new(mockOverspendingService)

	resp := newOverspendingTestAPI(t, mockSvc).Get("/v1/insights/overspending")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Overspending")
}
