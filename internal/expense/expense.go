package expense

// Expense is the root aggregate: a top-level spending record grouping
// categories. Timestamps are sortable ISO-8601 strings.
type Expense struct {
	ID          string `json:"id" gorm:"primaryKey"`
	CreatedAt   string `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   string `json:"updatedAt" gorm:"column:updated_at"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// IndexByCreatedAt is the collection's declared secondary index.
const IndexByCreatedAt = "by-createdAt"
