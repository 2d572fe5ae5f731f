package category

// Category is a named grouping of items within one expense. ExpenseID is an
// application-level foreign key: storage does not enforce it, and deleting
// the owning expense leaves the category in place.
type Category struct {
	ID          string `json:"id" gorm:"primaryKey"`
	CreatedAt   string `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   string `json:"updatedAt" gorm:"column:updated_at"`
	ExpenseID   string `json:"expenseId" gorm:"column:expense_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// Declared secondary indexes of the categories collection.
const (
	IndexByExpenseID = "by-expenseId"
	IndexByCreatedAt = "by-createdAt"
)
