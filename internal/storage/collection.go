package storage

import (
	"errors"
	"fmt"

	"github.com/chasselife/xpnse/internal"
	"gorm.io/gorm"
)

// Collection is generic record access over one table. Every method opens the
// database on first use, mirroring the adapter's idempotent-init contract.
type Collection[E any] struct {
	db      *DB
	indexes map[string]string
}

// NewCollection binds a record type to its table. The indexes map declares
// the collection's secondary indexes, index name to column.
func NewCollection[E any](db *DB, indexes map[string]string) *Collection[E] {
	return &Collection[E]{db: db, indexes: indexes}
}

// Add inserts a record. The engine's rejection (duplicate id, quota, I/O)
// surfaces as a StorageFailure.
func (c *Collection[E]) Add(rec *E) (*E, error) {
	gdb, err := c.db.Init()
	if err != nil {
		return nil, internal.NewStorageError("storage unavailable", err)
	}

	if err := gdb.Create(rec).Error; err != nil {
		return nil, internal.NewStorageError("storage rejected write", err)
	}
	return rec, nil
}

// Get returns the record and whether it exists. Absence is not an error.
func (c *Collection[E]) Get(id string) (*E, bool, error) {
	gdb, err := c.db.Init()
	if err != nil {
		return nil, false, internal.NewStorageError("storage unavailable", err)
	}

	var rec E
	if err := gdb.Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, internal.NewStorageError("storage read failed", err)
	}
	return &rec, true, nil
}

// GetAll returns every record in the collection. Ordering is
// storage-engine-defined; callers that need order must sort.
func (c *Collection[E]) GetAll() ([]*E, error) {
	gdb, err := c.db.Init()
	if err != nil {
		return nil, internal.NewStorageError("storage unavailable", err)
	}

	recs := []*E{}
	if err := gdb.Find(&recs).Error; err != nil {
		return nil, internal.NewStorageError("storage read failed", err)
	}
	return recs, nil
}

// GetByIndex returns all records whose indexed field equals value. The index
// name must have been declared at construction.
func (c *Collection[E]) GetByIndex(index, value string) ([]*E, error) {
	column, ok := c.indexes[index]
	if !ok {
		return nil, fmt.Errorf("unknown index %q", index)
	}

	gdb, err := c.db.Init()
	if err != nil {
		return nil, internal.NewStorageError("storage unavailable", err)
	}

	recs := []*E{}
	if err := gdb.Where(fmt.Sprintf("%s = ?", column), value).Find(&recs).Error; err != nil {
		return nil, internal.NewStorageError("storage read failed", err)
	}
	return recs, nil
}

// Update is a full upsert by id: the stored record is overwritten, not
// merged. Callers pre-merge fields before calling.
func (c *Collection[E]) Update(rec *E) (*E, error) {
	gdb, err := c.db.Init()
	if err != nil {
		return nil, internal.NewStorageError("storage unavailable", err)
	}

	if err := gdb.Save(rec).Error; err != nil {
		return nil, internal.NewStorageError("storage rejected write", err)
	}
	return rec, nil
}

// Delete removes a record by id. Deleting an absent id is a no-op.
func (c *Collection[E]) Delete(id string) error {
	gdb, err := c.db.Init()
	if err != nil {
		return internal.NewStorageError("storage unavailable", err)
	}

	if err := gdb.Where("id = ?", id).Delete(new(E)).Error; err != nil {
		return internal.NewStorageError("storage delete failed", err)
	}
	return nil
}
