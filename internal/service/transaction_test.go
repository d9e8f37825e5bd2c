package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fintrack/internal/model"
	"fintrack/internal/repository/mocks"
)

func TestTransactions_CreateValidation(t *testing.T) {
	transactionRepo := new(mocks.Transactions)
	categoryRepo := new(mocks.Categories)
	store := NewTransactions(transactionRepo, categoryRepo, NewLocker())

	_, err := store.Create(context.Background(), 1, &TransactionInput{
		CategoryID: primitive.NewObjectID(),
		Amount:     0,
		Date:       time.Now(),
	})
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = store.Create(context.Background(), 1, &TransactionInput{
		CategoryID: primitive.NewObjectID(),
		Amount:     -5,
		Date:       time.Now(),
	})
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = store.Create(context.Background(), 1, &TransactionInput{
		CategoryID: primitive.NewObjectID(),
		Amount:     10,
	})
	require.ErrorIs(t, err, model.ErrValidation)

	transactionRepo.AssertNotCalled(t, "Insert")
}

func TestTransactions_CreateUnknownCategory(t *testing.T) {
	transactionRepo := new(mocks.Transactions)
	categoryRepo := new(mocks.Categories)
	store := NewTransactions(transactionRepo, categoryRepo, NewLocker())

	categoryID := primitive.NewObjectID()
	// the category exists but belongs to a different owner, so from owner 1's
	// point of view it does not exist at all
	categoryRepo.On("Get", mock.Anything, int64(1), categoryID).
		Return(nil, model.ErrNotFound)

	_, err := store.Create(context.Background(), 1, &TransactionInput{
		CategoryID: categoryID,
		Amount:     10,
		Date:       time.Now(),
	})
	require.ErrorIs(t, err, model.ErrNotFound)
	transactionRepo.AssertNotCalled(t, "Insert")
}

func TestTransactions_Create(t *testing.T) {
	transactionRepo := new(mocks.Transactions)
	categoryRepo := new(mocks.Categories)
	store := NewTransactions(transactionRepo, categoryRepo, NewLocker())

	categoryID := primitive.NewObjectID()
	categoryRepo.On("Get", mock.Anything, int64(1), categoryID).
		Return(&model.Category{ID: categoryID, OwnerID: 1, Name: "Salary", Type: model.Income}, nil)

	id := primitive.NewObjectID()
	transactionRepo.On("Insert", mock.Anything, mock.AnythingOfType("*model.Transaction")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Transaction).ID = id
		}).
		Return(id, nil)

	transaction, err := store.Create(context.Background(), 1, &TransactionInput{
		CategoryID:  categoryID,
		Amount:      1000,
		Date:        time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		Description: "january salary",
	})
	require.NoError(t, err)
	require.Equal(t, id, transaction.ID)
	require.Equal(t, int64(1), transaction.OwnerID)
	require.Equal(t, float64(1000), transaction.Amount)
}

func TestTransactions_UpdateValidation(t *testing.T) {
	transactionRepo := new(mocks.Transactions)
	categoryRepo := new(mocks.Categories)
	store := NewTransactions(transactionRepo, categoryRepo, NewLocker())

	_, err := store.Update(context.Background(), 1, primitive.NewObjectID(), &TransactionInput{
		CategoryID: primitive.NewObjectID(),
		Amount:     -1,
		Date:       time.Now(),
	})
	require.ErrorIs(t, err, model.ErrValidation)
	transactionRepo.AssertNotCalled(t, "Update")
}

func TestTransactions_UpdateMissing(t *testing.T) {
	transactionRepo := new(mocks.Transactions)
	categoryRepo := new(mocks.Categories)
	store := NewTransactions(transactionRepo, categoryRepo, NewLocker())

	id := primitive.NewObjectID()
	transactionRepo.On("Get", mock.Anything, int64(1), id).Return(nil, model.ErrNotFound)

	_, err := store.Update(context.Background(), 1, id, &TransactionInput{
		CategoryID: primitive.NewObjectID(),
		Amount:     10,
		Date:       time.Now(),
	})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestTransactions_DeleteIdempotent(t *testing.T) {
	transactionRepo := new(mocks.Transactions)
	categoryRepo := new(mocks.Categories)
	store := NewTransactions(transactionRepo, categoryRepo, NewLocker())

	id := primitive.NewObjectID()
	transactionRepo.On("Remove", mock.Anything, int64(1), id).Return(nil).Once()
	transactionRepo.On("Remove", mock.Anything, int64(1), id).Return(model.ErrNotFound)

	require.NoError(t, store.Delete(context.Background(), 1, id))
	// second delete of the same record reports not found, it never panics or
	// removes anything else
	require.ErrorIs(t, store.Delete(context.Background(), 1, id), model.ErrNotFound)
}
