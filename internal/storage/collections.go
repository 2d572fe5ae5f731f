package storage

import (
	"github.com/chasselife/xpnse/internal/category"
	"github.com/chasselife/xpnse/internal/expense"
	"github.com/chasselife/xpnse/internal/item"
)

// Collection constructors declaring the schema's secondary indexes. This is
// the single place where index names are bound to columns.

func Expenses(db *DB) *Collection[expense.Expense] {
	return NewCollection[expense.Expense](db, map[string]string{
		expense.IndexByCreatedAt: "created_at",
	})
}

func Categories(db *DB) *Collection[category.Category] {
	return NewCollection[category.Category](db, map[string]string{
		category.IndexByExpenseID: "expense_id",
		category.IndexByCreatedAt: "created_at",
	})
}

func Items(db *DB) *Collection[item.Item] {
	return NewCollection[item.Item](db, map[string]string{
		item.IndexByCategoryID: "expense_category_id",
		item.IndexByDate:       "date",
		item.IndexByCreatedAt:  "created_at",
	})
}
