package service

import (
	"context"

	"fintrack/internal/model"
	"fintrack/internal/repository"
)

// Reporter reads the current category and transaction snapshot and derives
// the dashboard view. It holds no state of its own; every call recomputes
// from scratch.
type Reporter struct {
	categories   repository.Categories
	transactions repository.Transactions
}

func NewReporter(categories repository.Categories, transactions repository.Transactions) *Reporter {
	return &Reporter{
		categories:   categories,
		transactions: transactions,
	}
}

func (r *Reporter) Summary(ctx context.Context, ownerID int64, granularity model.Granularity, filter *model.TransactionFilter) (*model.Summary, error) {
	categories, err := r.categories.GetAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	transactions, err := r.transactions.GetAllByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	return Summarize(transactions, categories, granularity), nil
}
