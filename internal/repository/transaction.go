package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"fintrack/internal/model"
)

const transactionsCollection = "transactions"

//go:generate mockery --name=Transactions

type Transactions interface {
	Insert(ctx context.Context, transaction *model.Transaction) (primitive.ObjectID, error)
	Get(ctx context.Context, ownerID int64, id primitive.ObjectID) (*model.Transaction, error)
	GetAllByOwner(ctx context.Context, ownerID int64, filter *model.TransactionFilter) ([]model.Transaction, error)
	Update(ctx context.Context, transaction *model.Transaction) error
	Remove(ctx context.Context, ownerID int64, id primitive.ObjectID) error
	CountByCategory(ctx context.Context, ownerID int64, categoryID primitive.ObjectID) (int64, error)
}

type TransactionMongo struct {
	coll *mongo.Collection
}

func NewTransactionMongo(cli *mongo.Client, db string) *TransactionMongo {
	return &TransactionMongo{
		coll: cli.Database(db).Collection(transactionsCollection),
	}
}

func (t *TransactionMongo) Insert(ctx context.Context, transaction *model.Transaction) (primitive.ObjectID, error) {
	res, err := t.coll.InsertOne(ctx, transaction)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("mongo couldn't InsertOne in Insert method: %v", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("mongo returned unexpected inserted id type %T", res.InsertedID)
	}
	transaction.ID = id
	return id, nil
}

func (t *TransactionMongo) Get(ctx context.Context, ownerID int64, id primitive.ObjectID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := t.coll.FindOne(ctx, bson.D{
		{Key: "_id", Value: id},
		{Key: "owner", Value: ownerID},
	}).Decode(&transaction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: transaction %s", model.ErrNotFound, id.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't FindOne in Get method: %v", err)
	}
	return &transaction, nil
}

func (t *TransactionMongo) GetAllByOwner(ctx context.Context, ownerID int64, filter *model.TransactionFilter) ([]model.Transaction, error) {
	cursor, err := t.coll.Find(ctx, buildFilter(ownerID, filter))
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Find in GetAllByOwner method: %v", err)
	}
	defer func() {
		if err = cursor.Close(ctx); err != nil {
			logrus.Errorf("mongo couldn't close cursor in GetAllByOwner method: %v", err)
		}
	}()

	var transactions []model.Transaction
	if err = cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("mongo couldn't decode cursor in GetAllByOwner method: %v", err)
	}
	return transactions, nil
}

func (t *TransactionMongo) Update(ctx context.Context, transaction *model.Transaction) error {
	res, err := t.coll.ReplaceOne(ctx, bson.D{
		{Key: "_id", Value: transaction.ID},
		{Key: "owner", Value: transaction.OwnerID},
	}, transaction)
	if err != nil {
		return fmt.Errorf("mongo couldn't ReplaceOne in Update method: %v", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: transaction %s", model.ErrNotFound, transaction.ID.Hex())
	}
	return nil
}

func (t *TransactionMongo) Remove(ctx context.Context, ownerID int64, id primitive.ObjectID) error {
	res, err := t.coll.DeleteOne(ctx, bson.D{
		{Key: "_id", Value: id},
		{Key: "owner", Value: ownerID},
	})
	if err != nil {
		return fmt.Errorf("mongo couldn't DeleteOne in Remove method: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: transaction %s", model.ErrNotFound, id.Hex())
	}
	return nil
}

func (t *TransactionMongo) CountByCategory(ctx context.Context, ownerID int64, categoryID primitive.ObjectID) (int64, error) {
	count, err := t.coll.CountDocuments(ctx, bson.D{
		{Key: "owner", Value: ownerID},
		{Key: "category", Value: categoryID},
	})
	if err != nil {
		return 0, fmt.Errorf("mongo couldn't CountDocuments in CountByCategory method: %v", err)
	}
	return count, nil
}

func buildFilter(ownerID int64, filter *model.TransactionFilter) bson.D {
	query := bson.D{{Key: "owner", Value: ownerID}}
	if filter.IsEmpty() {
		return query
	}
	date := bson.D{}
	if !filter.From.IsZero() {
		date = append(date, bson.E{Key: "$gte", Value: filter.From})
	}
	if !filter.To.IsZero() {
		date = append(date, bson.E{Key: "$lte", Value: filter.To})
	}
	if len(date) > 0 {
		query = append(query, bson.E{Key: "date", Value: date})
	}
	if !filter.CategoryID.IsZero() {
		query = append(query, bson.E{Key: "category", Value: filter.CategoryID})
	}
	return query
}
