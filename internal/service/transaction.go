package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fintrack/internal/model"
	"fintrack/internal/repository"
)

// TransactionInput is the typed contract for creating or updating a
// transaction. Amount is a positive magnitude; the direction comes from the
// referenced category.
type TransactionInput struct {
	CategoryID  primitive.ObjectID
	Amount      float64
	Date        time.Time
	Description string
}

type TransactionStore interface {
	Create(ctx context.Context, ownerID int64, input *TransactionInput) (*model.Transaction, error)
	Update(ctx context.Context, ownerID int64, id primitive.ObjectID, input *TransactionInput) (*model.Transaction, error)
	Delete(ctx context.Context, ownerID int64, id primitive.ObjectID) error
	List(ctx context.Context, ownerID int64, filter *model.TransactionFilter) ([]model.Transaction, error)
}

type Transactions struct {
	transactions repository.Transactions
	categories   repository.Categories
	locker       *Locker
}

func NewTransactions(transactions repository.Transactions, categories repository.Categories, locker *Locker) *Transactions {
	return &Transactions{
		transactions: transactions,
		categories:   categories,
		locker:       locker,
	}
}

func (t *Transactions) Create(ctx context.Context, ownerID int64, input *TransactionInput) (*model.Transaction, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// held across the category check and the insert so a concurrent category
	// delete can't pass its reference check in between
	t.locker.Lock(ownerID)
	defer t.locker.Unlock(ownerID)

	if _, err := t.categories.Get(ctx, ownerID, input.CategoryID); err != nil {
		return nil, err
	}

	transaction := &model.Transaction{
		OwnerID:     ownerID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Date:        input.Date.UTC(),
		Description: input.Description,
	}
	if _, err := t.transactions.Insert(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (t *Transactions) Update(ctx context.Context, ownerID int64, id primitive.ObjectID, input *TransactionInput) (*model.Transaction, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	t.locker.Lock(ownerID)
	defer t.locker.Unlock(ownerID)

	transaction, err := t.transactions.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if _, err = t.categories.Get(ctx, ownerID, input.CategoryID); err != nil {
		return nil, err
	}

	transaction.CategoryID = input.CategoryID
	transaction.Amount = input.Amount
	transaction.Date = input.Date.UTC()
	transaction.Description = input.Description
	if err = t.transactions.Update(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (t *Transactions) Delete(ctx context.Context, ownerID int64, id primitive.ObjectID) error {
	return t.transactions.Remove(ctx, ownerID, id)
}

// List returns the owner's transactions, optionally narrowed by date range
// and category. Order is whatever the store yields; callers sort if they
// need chronology.
func (t *Transactions) List(ctx context.Context, ownerID int64, filter *model.TransactionFilter) ([]model.Transaction, error) {
	return t.transactions.GetAllByOwner(ctx, ownerID, filter)
}

func validateInput(input *TransactionInput) error {
	if input.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %v", model.ErrValidation, input.Amount)
	}
	if input.Date.IsZero() {
		return fmt.Errorf("%w: date is required", model.ErrValidation)
	}
	if input.CategoryID.IsZero() {
		return fmt.Errorf("%w: category is required", model.ErrValidation)
	}
	return nil
}
