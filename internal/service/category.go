package service

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fintrack/internal/model"
	"fintrack/internal/repository"
)

type CategoryStore interface {
	Create(ctx context.Context, ownerID int64, name, categoryType string) (*model.Category, error)
	List(ctx context.Context, ownerID int64) ([]model.Category, error)
	Get(ctx context.Context, ownerID int64, id primitive.ObjectID) (*model.Category, error)
	Update(ctx context.Context, ownerID int64, id primitive.ObjectID, name, categoryType string) (*model.Category, error)
	Delete(ctx context.Context, ownerID int64, id primitive.ObjectID) error
}

type Categories struct {
	categories   repository.Categories
	transactions repository.Transactions
	locker       *Locker
}

func NewCategories(categories repository.Categories, transactions repository.Transactions, locker *Locker) *Categories {
	return &Categories{
		categories:   categories,
		transactions: transactions,
		locker:       locker,
	}
}

func (c *Categories) Create(ctx context.Context, ownerID int64, name, categoryType string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", model.ErrValidation)
	}
	if !model.ValidCategoryType(categoryType) {
		return nil, fmt.Errorf("%w: category type must be %q or %q", model.ErrValidation, model.Income, model.Expense)
	}

	category := &model.Category{
		OwnerID: ownerID,
		Name:    name,
		Type:    categoryType,
	}
	if _, err := c.categories.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (c *Categories) List(ctx context.Context, ownerID int64) ([]model.Category, error) {
	return c.categories.GetAllByOwner(ctx, ownerID)
}

func (c *Categories) Get(ctx context.Context, ownerID int64, id primitive.ObjectID) (*model.Category, error) {
	return c.categories.Get(ctx, ownerID, id)
}

// Update renames a category. Changing its type is refused while transactions
// reference it: the type drives the sign of every historical aggregate, so a
// type flip would silently re-sign old transactions.
func (c *Categories) Update(ctx context.Context, ownerID int64, id primitive.ObjectID, name, categoryType string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", model.ErrValidation)
	}
	if !model.ValidCategoryType(categoryType) {
		return nil, fmt.Errorf("%w: category type must be %q or %q", model.ErrValidation, model.Income, model.Expense)
	}

	c.locker.Lock(ownerID)
	defer c.locker.Unlock(ownerID)

	category, err := c.categories.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if category.Type != categoryType {
		count, err := c.transactions.CountByCategory(ctx, ownerID, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: category type is immutable while %d transactions reference it", model.ErrConflict, count)
		}
	}

	category.Name = name
	category.Type = categoryType
	if err = c.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete refuses to remove a category while transactions still reference it,
// so deletion can never orphan part of the ledger. The owner lock keeps the
// reference count honest against a concurrent transaction insert.
func (c *Categories) Delete(ctx context.Context, ownerID int64, id primitive.ObjectID) error {
	c.locker.Lock(ownerID)
	defer c.locker.Unlock(ownerID)

	if _, err := c.categories.Get(ctx, ownerID, id); err != nil {
		return err
	}
	count, err := c.transactions.CountByCategory(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: category is referenced by %d transactions", model.ErrConflict, count)
	}
	return c.categories.Remove(ctx, ownerID, id)
}
