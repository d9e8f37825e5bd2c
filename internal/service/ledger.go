package service

import (
	"github.com/sirupsen/logrus"

	"fintrack/internal/model"
)

// The ledger aggregation is pure: it re-derives every figure from the
// category and transaction snapshot it is handed, keeps no state and caches
// nothing. A transaction whose category is missing from the snapshot points
// at corrupted data; it is skipped with a warning instead of failing the
// whole view.

// categoryTypeOf resolves the type of the transaction's category. The bool
// is false for an orphaned category reference. Buckets are always chosen by
// this type, never by the sign of the amount, so a corrupt stored amount
// can't migrate a transaction into the other bucket.
func categoryTypeOf(transaction *model.Transaction, types map[string]string) (string, bool) {
	categoryType, ok := types[transaction.CategoryID.Hex()]
	if !ok {
		logrus.Warnf("ledger: transaction %s references unknown category %s, skipping",
			transaction.ID.Hex(), transaction.CategoryID.Hex())
		return "", false
	}
	return categoryType, true
}

// typesByID indexes category types by category id hex
func typesByID(categories []model.Category) map[string]string {
	types := make(map[string]string, len(categories))
	for i := range categories {
		types[categories[i].ID.Hex()] = categories[i].Type
	}
	return types
}

// TotalIncome sums the amounts of transactions whose category is income
func TotalIncome(transactions []model.Transaction, categories []model.Category) float64 {
	income, _ := totals(transactions, typesByID(categories))
	return income
}

// TotalExpense sums the amounts of transactions whose category is expense
func TotalExpense(transactions []model.Transaction, categories []model.Category) float64 {
	_, expense := totals(transactions, typesByID(categories))
	return expense
}

// NetBalance is TotalIncome minus TotalExpense
func NetBalance(transactions []model.Transaction, categories []model.Category) float64 {
	income, expense := totals(transactions, typesByID(categories))
	return income - expense
}

func totals(transactions []model.Transaction, types map[string]string) (income, expense float64) {
	for i := range transactions {
		categoryType, ok := categoryTypeOf(&transactions[i], types)
		if !ok {
			continue
		}
		if categoryType == model.Expense {
			expense += transactions[i].Amount
		} else {
			income += transactions[i].Amount
		}
	}
	return income, expense
}

// ByCategory sums unsigned amounts per category id hex; the direction of each
// bucket is implied by its category's type
func ByCategory(transactions []model.Transaction, categories []model.Category) map[string]float64 {
	types := typesByID(categories)
	sums := make(map[string]float64)
	for i := range transactions {
		if _, ok := categoryTypeOf(&transactions[i], types); !ok {
			continue
		}
		sums[transactions[i].CategoryID.Hex()] += transactions[i].Amount
	}
	return sums
}

// ByPeriod partitions transactions by their date truncated to the requested
// granularity and applies the signed-sum rule inside each partition
func ByPeriod(transactions []model.Transaction, categories []model.Category, granularity model.Granularity) map[string]model.PeriodTotals {
	types := typesByID(categories)
	layout := granularity.Layout()
	periods := make(map[string]model.PeriodTotals)
	for i := range transactions {
		categoryType, ok := categoryTypeOf(&transactions[i], types)
		if !ok {
			continue
		}
		key := transactions[i].Date.Format(layout)
		totals := periods[key]
		if categoryType == model.Expense {
			totals.Expense += transactions[i].Amount
		} else {
			totals.Income += transactions[i].Amount
		}
		totals.Net = totals.Income - totals.Expense
		periods[key] = totals
	}
	return periods
}

// Summarize computes the full aggregate view in one pass over the snapshot
func Summarize(transactions []model.Transaction, categories []model.Category, granularity model.Granularity) *model.Summary {
	income, expense := totals(transactions, typesByID(categories))
	return &model.Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		NetBalance:   income - expense,
		ByCategory:   ByCategory(transactions, categories),
		ByPeriod:     ByPeriod(transactions, categories, granularity),
	}
}
