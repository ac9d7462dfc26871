package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shan3520/smartspend/internal/analytics"
	"github.com/shan3520/smartspend/internal/storage/sqlconfig"
)

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) ListForSession(ctx context.Context, sessionID uuid.UUID) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, sessionID)
	rows, _ := args.Get(0).([]*sqlconfig.Transaction)
	return rows, args.Error(1)
}

func storedDebits(sessionID uuid.UUID, description string, amount string, start time.Time, count int, gapDays int) []*sqlconfig.Transaction {
	rows := make([]*sqlconfig.Transaction, count)
	for i := range rows {
		rows[i] = &sqlconfig.Transaction{
			SessionID:   sessionID,
			Date:        start.AddDate(0, 0, i*gapDays),
			Description: description,
			Amount:      decimal.RequireFromString(amount),
		}
	}
	return rows
}

func TestSubscriptions_SortedByDescription(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := storedDebits(sessionID, "ZETFLIX", "-15.99", start, 4, 30)
	rows = append(rows, storedDebits(sessionID, "AUDIBLE", "-7.99", start, 4, 30)...)

	mockTable := new(mockTransactionTable)
	mockTable.On("ListForSession", mock.Anything, sessionID).Return(rows, nil)

	svc := NewInsightsService(mockTable)
	subs, err := svc.Subscriptions(context.Background(), sessionID)

	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "AUDIBLE", subs[0].Description)
	assert.Equal(t, "ZETFLIX", subs[1].Description)
	assert.Equal(t, analytics.FrequencyMonthly, subs[0].Frequency)
	mockTable.AssertExpectations(t)
}

func TestSubscriptions_SessionNotFound(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())

	mockTable := new(mockTransactionTable)
	mockTable.On("ListForSession", mock.Anything, sessionID).
		Return(nil, sqlconfig.ErrSessionNotFound)

	svc := NewInsightsService(mockTable)
	_, err := svc.Subscriptions(context.Background(), sessionID)

	assert.ErrorIs(t, err, sqlconfig.ErrSessionNotFound)
}

func TestOverspending_FlagsSpikeMonth(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())

	var rows []*sqlconfig.Transaction
	magnitudes := []string{"-100", "-100", "-100", "-100", "-500"}
	for i, magnitude := range magnitudes {
		rows = append(rows, &sqlconfig.Transaction{
			SessionID:   sessionID,
			Date:        time.Date(2024, time.Month(i+1), 10, 0, 0, 0, 0, time.UTC),
			Description: "SHOP",
			Amount:      decimal.RequireFromString(magnitude),
		})
	}

	mockTable := new(mockTransactionTable)
	mockTable.On("ListForSession", mock.Anything, sessionID).Return(rows, nil)

	svc := NewInsightsService(mockTable)
	flags, err := svc.Overspending(context.Background(), sessionID)

	require.NoError(t, err)
	require.Len(t, flags, 1)
	assert.Equal(t, "2024-05", flags[0].Month)
	assert.Equal(t, analytics.StatusOverspending, flags[0].Status)
}

func TestOverspending_SessionNotFound(t *testing.T) {
	sessionID := uuid.Must(uuid.NewV4())

	mockTable := new(mockTransactionTable)
	mockTable.On("ListForSession", mock.Anything, sessionID).
		Return(nil, sqlconfig.ErrSessionNotFound)

	svc := NewInsightsService(mockTable)
	_, err := svc.Overspending(context.Background(), sessionID)

	assert.ErrorIs(t, err, sqlconfig.ErrSessionNotFound)
}
