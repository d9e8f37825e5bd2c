package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	Income  = "income"
	Expense = "expense"
)

// Category is a named income or expense bucket.
// Type never changes after creation: historical aggregates derive their sign
// from it, so a mutable type would silently re-sign old transactions.
type Category struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID int64              `bson:"owner" json:"ownerId"`
	Name    string             `bson:"name" json:"name"`
	Type    string             `bson:"type" json:"type"`
}

// ValidCategoryType reports whether t is one of the two known category types
func ValidCategoryType(t string) bool {
	return t == Income || t == Expense
}
