package item

// Item is the leaf entity: a single dated cost entry with optional checklist
// strings and notes. Date is a YYYY-MM-DD string, so lexicographic
// comparison matches chronological order. ExpenseCategoryID is an
// application-level foreign key, not enforced by storage.
type Item struct {
	ID                string   `json:"id" gorm:"primaryKey"`
	CreatedAt         string   `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt         string   `json:"updatedAt" gorm:"column:updated_at"`
	Date              string   `json:"date"`
	Time              string   `json:"time"`
	ExpenseCategoryID string   `json:"expenseCategoryId" gorm:"column:expense_category_id"`
	Title             string   `json:"title"`
	SubItems          []string `json:"subItems" gorm:"column:sub_items;serializer:json"`
	Notes             string   `json:"notes"`
	Cost              float64  `json:"cost"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// Declared secondary indexes of the items collection.
const (
	IndexByCategoryID = "by-categoryId"
	IndexByDate       = "by-date"
	IndexByCreatedAt  = "by-createdAt"
)

// DateRange is the lexicographic min/max over item dates.
type DateRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}
