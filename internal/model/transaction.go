package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is one dated monetary record tied to a category.
// Amount is always a positive magnitude; the direction comes from the
// referenced category's type and is never stored on the transaction.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID     int64              `bson:"owner" json:"ownerId"`
	CategoryID  primitive.ObjectID `bson:"category" json:"categoryId"`
	Amount      float64            `bson:"amount" json:"amount"`
	Date        time.Time          `bson:"date" json:"date"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// TransactionFilter narrows a listing. Zero fields mean "no constraint".
type TransactionFilter struct {
	From       time.Time
	To         time.Time
	CategoryID primitive.ObjectID
}

// IsEmpty reports whether the filter constrains anything at all
func (f *TransactionFilter) IsEmpty() bool {
	return f == nil || (f.From.IsZero() && f.To.IsZero() && f.CategoryID.IsZero())
}
