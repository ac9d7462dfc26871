package service

import (
	"github.com/shan3520/smartspend/internal/operator"
	"github.com/shan3520/smartspend/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Statement *StatementService
	Insights  *InsightsService
}

// NewService creates a new Service over the given storage and operator.
func NewService(store *storage.Storage, op *operator.OperatorDelegator) *Service {
	return &Service{
		Statement: NewStatementService(op),
		Insights:  NewInsightsService(store.Transactions),
	}
}
