package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fintrack/internal/model"
)

const categoriesCollection = "categories"

//go:generate mockery --name=Categories

type Categories interface {
	Insert(ctx context.Context, category *model.Category) (primitive.ObjectID, error)
	Get(ctx context.Context, ownerID int64, id primitive.ObjectID) (*model.Category, error)
	GetAllByOwner(ctx context.Context, ownerID int64) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Remove(ctx context.Context, ownerID int64, id primitive.ObjectID) error
}

type CategoryMongo struct {
	coll *mongo.Collection
}

func NewCategoryMongo(cli *mongo.Client, db string) *CategoryMongo {
	return &CategoryMongo{
		coll: cli.Database(db).Collection(categoriesCollection),
	}
}

// EnsureIndexes creates the unique (owner, name) index backing the
// duplicate-name check in Insert
func (c *CategoryMongo) EnsureIndexes(ctx context.Context) error {
	_, err := c.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo couldn't CreateOne index in EnsureIndexes method: %v", err)
	}
	return nil
}

func (c *CategoryMongo) Insert(ctx context.Context, category *model.Category) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, category)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, fmt.Errorf("%w: category %q already exists", model.ErrConflict, category.Name)
	}
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("mongo couldn't InsertOne in Insert method: %v", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("mongo returned unexpected inserted id type %T", res.InsertedID)
	}
	category.ID = id
	return id, nil
}

func (c *CategoryMongo) Get(ctx context.Context, ownerID int64, id primitive.ObjectID) (*model.Category, error) {
	var category model.Category
	err := c.coll.FindOne(ctx, bson.D{
		{Key: "_id", Value: id},
		{Key: "owner", Value: ownerID},
	}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: category %s", model.ErrNotFound, id.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't FindOne in Get method: %v", err)
	}
	return &category, nil
}

func (c *CategoryMongo) GetAllByOwner(ctx context.Context, ownerID int64) ([]model.Category, error) {
	cursor, err := c.coll.Find(ctx, bson.D{{Key: "owner", Value: ownerID}})
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Find in GetAllByOwner method: %v", err)
	}
	defer func() {
		if err = cursor.Close(ctx); err != nil {
			logrus.Errorf("mongo couldn't close cursor in GetAllByOwner method: %v", err)
		}
	}()

	var categories []model.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("mongo couldn't decode cursor in GetAllByOwner method: %v", err)
	}
	return categories, nil
}

func (c *CategoryMongo) Update(ctx context.Context, category *model.Category) error {
	res, err := c.coll.ReplaceOne(ctx, bson.D{
		{Key: "_id", Value: category.ID},
		{Key: "owner", Value: category.OwnerID},
	}, category)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: category %q already exists", model.ErrConflict, category.Name)
	}
	if err != nil {
		return fmt.Errorf("mongo couldn't ReplaceOne in Update method: %v", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: category %s", model.ErrNotFound, category.ID.Hex())
	}
	return nil
}

func (c *CategoryMongo) Remove(ctx context.Context, ownerID int64, id primitive.ObjectID) error {
	res, err := c.coll.DeleteOne(ctx, bson.D{
		{Key: "_id", Value: id},
		{Key: "owner", Value: ownerID},
	})
	if err != nil {
		return fmt.Errorf("mongo couldn't DeleteOne in Remove method: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: category %s", model.ErrNotFound, id.Hex())
	}
	return nil
}
