package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fintrack/internal/model"
)

func TestCategoryMongo_InsertGet(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() {
		if err := mongoCli.Database(testDatabase).Collection(categoriesCollection).Drop(ctx); err != nil {
			t.Fatal(err)
		}
	}()
	categoryRepo := NewCategoryMongo(mongoCli, testDatabase)

	category := model.Category{OwnerID: 1, Name: "Salary", Type: model.Income}
	id, err := categoryRepo.Insert(ctx, &category)
	if err != nil {
		t.Fatal(err)
	}
	require.False(t, id.IsZero())

	got, err := categoryRepo.Get(ctx, 1, id)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, &category, got)
}

func TestCategoryMongo_OwnerScoping(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() {
		if err := mongoCli.Database(testDatabase).Collection(categoriesCollection).Drop(ctx); err != nil {
			t.Fatal(err)
		}
	}()
	categoryRepo := NewCategoryMongo(mongoCli, testDatabase)

	category := model.Category{OwnerID: 1, Name: "Salary", Type: model.Income}
	id, err := categoryRepo.Insert(ctx, &category)
	if err != nil {
		t.Fatal(err)
	}

	// another owner can't see, and therefore can't delete, the category
	_, err = categoryRepo.Get(ctx, 2, id)
	require.ErrorIs(t, err, model.ErrNotFound)
	require.ErrorIs(t, categoryRepo.Remove(ctx, 2, id), model.ErrNotFound)
}

func TestCategoryMongo_DuplicateName(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() {
		if err := mongoCli.Database(testDatabase).Collection(categoriesCollection).Drop(ctx); err != nil {
			t.Fatal(err)
		}
	}()
	categoryRepo := NewCategoryMongo(mongoCli, testDatabase)
	if err := categoryRepo.EnsureIndexes(ctx); err != nil {
		t.Fatal(err)
	}

	_, err := categoryRepo.Insert(ctx, &model.Category{OwnerID: 1, Name: "Rent", Type: model.Expense})
	if err != nil {
		t.Fatal(err)
	}

	_, err = categoryRepo.Insert(ctx, &model.Category{OwnerID: 1, Name: "Rent", Type: model.Expense})
	require.ErrorIs(t, err, model.ErrConflict)

	// same name under a different owner is fine
	_, err = categoryRepo.Insert(ctx, &model.Category{OwnerID: 2, Name: "Rent", Type: model.Expense})
	require.NoError(t, err)
}

func TestCategoryMongo_Update(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() {
		if err := mongoCli.Database(testDatabase).Collection(categoriesCollection).Drop(ctx); err != nil {
			t.Fatal(err)
		}
	}()
	categoryRepo := NewCategoryMongo(mongoCli, testDatabase)

	category := model.Category{OwnerID: 1, Name: "Rent", Type: model.Expense}
	id, err := categoryRepo.Insert(ctx, &category)
	if err != nil {
		t.Fatal(err)
	}

	category.Name = "Housing"
	if err = categoryRepo.Update(ctx, &category); err != nil {
		t.Fatal(err)
	}
	got, err := categoryRepo.Get(ctx, 1, id)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Housing", got.Name)

	// updates are owner-scoped like every other operation
	foreign := category
	foreign.OwnerID = 2
	require.ErrorIs(t, categoryRepo.Update(ctx, &foreign), model.ErrNotFound)
}

func TestCategoryMongo_GetAllByOwnerRemove(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() {
		if err := mongoCli.Database(testDatabase).Collection(categoriesCollection).Drop(ctx); err != nil {
			t.Fatal(err)
		}
	}()
	categoryRepo := NewCategoryMongo(mongoCli, testDatabase)

	names := []string{"Salary", "Rent", "Food"}
	ids := make([]primitive.ObjectID, 0, len(names))
	for _, name := range names {
		id, err := categoryRepo.Insert(ctx, &model.Category{OwnerID: 1, Name: name, Type: model.Expense})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	categories, err := categoryRepo.GetAllByOwner(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 3, len(categories))

	if err = categoryRepo.Remove(ctx, 1, ids[0]); err != nil {
		t.Fatal(err)
	}
	categories, err = categoryRepo.GetAllByOwner(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 2, len(categories))
}
