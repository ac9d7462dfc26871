package service

import (
	"context"
	"sort"

	"github.com/gofrs/uuid/v5"

	"github.com/shan3520/smartspend/internal/analytics"
	"github.com/shan3520/smartspend/internal/ingest"
	"github.com/shan3520/smartspend/internal/storage/sqlconfig"
)

// InsightsService runs the detectors over a session's stored transactions.
type InsightsService struct {
	store sqlconfig.ITransactionTable
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(store sqlconfig.ITransactionTable) *InsightsService {
	return &InsightsService{store: store}
}

// Subscriptions returns the session's detected recurring payments. Detection
// order is unspecified, so results are sorted for stable presentation.
func (s *InsightsService) Subscriptions(ctx context.Context, sessionID uuid.UUID) ([]analytics.Subscription, error) {
	txns, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	subs := analytics.DetectSubscriptions(txns)
	sort.Slice(subs, func(i, j int) bool {
		if subs[i].Description != subs[j].Description {
			return subs[i].Description < subs[j].Description
		}
		return subs[i].Amount.LessThan(subs[j].Amount)
	})
	return subs, nil
}

// Overspending returns the session's anomalous months in chronological order.
func (s *InsightsService) Overspending(ctx context.Context, sessionID uuid.UUID) ([]analytics.OverspendingFlag, error) {
	txns, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return analytics.DetectOverspending(txns), nil
}

func (s *InsightsService) loadSession(ctx context.Context, sessionID uuid.UUID) ([]ingest.Transaction, error) {
	rows, err := s.store.ListForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	txns := make([]ingest.Transaction, len(rows))
	for i, row := range rows {
		txns[i] = ingest.Transaction{
			Date:        row.Date,
			Description: row.Description,
			Amount:      row.Amount,
		}
	}
	return txns, nil
}
