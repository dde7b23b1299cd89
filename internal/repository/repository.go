// Package repository persists games and genres through gorm.
package repository

import (
	"context"
	"errors"

	"gamecatalog/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned when no row matches a lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
)

// Repository is the CRUD contract shared by every entity.
// Update and Delete report whether any row was affected.
type Repository[T models.Entity] interface {
	Create(ctx context.Context, item *T) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	GetByName(ctx context.Context, name string) (*T, error)
	Update(ctx context.Context, item *T) (bool, error)
	Delete(ctx context.Context, item *T) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// gormRepository implements Repository for any entity table.
type gormRepository[T models.Entity] struct {
	db *gorm.DB
	// preloads are applied to every read.
	preloads []string
	// columns are the scalar columns written by Update.
	columns []string
	// omitOnCreate keeps Create from upserting already persisted associations.
	omitOnCreate []string
}

// withDB returns a copy of the repository bound to db, typically a transaction.
func (r *gormRepository[T]) withDB(db *gorm.DB) *gormRepository[T] {
	clone := *r
	clone.db = db
	return &clone
}

func (r *gormRepository[T]) read(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

// Create inserts item. Inside a transaction the insert runs under a savepoint,
// so a duplicate key leaves the enclosing transaction usable.
func (r *gormRepository[T]) Create(ctx context.Context, item *T) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(r.omitOnCreate) > 0 {
			tx = tx.Omit(r.omitOnCreate...)
		}
		return tx.Create(item).Error
	})
	if err != nil {
		return uuid.Nil, translate(err)
	}
	return (*item).GetID(), nil
}

func (r *gormRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var item T
	if err := r.read(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *gormRepository[T]) GetByName(ctx context.Context, name string) (*T, error) {
	var item T
	if err := r.read(ctx).First(&item, "name = ?", name).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *gormRepository[T]) Update(ctx context.Context, item *T) (bool, error) {
	return r.updateColumns(r.db.WithContext(ctx), item)
}

func (r *gormRepository[T]) updateColumns(tx *gorm.DB, item *T) (bool, error) {
	result := tx.Model(item).Select(r.columns).Updates(item)
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete removes the row and its join-table links. Related entities are kept.
func (r *gormRepository[T]) Delete(ctx context.Context, item *T) (bool, error) {
	result := r.db.WithContext(ctx).Select(clause.Associations).Delete(item)
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormRepository[T]) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, "name = ?", name)
}

func (r *gormRepository[T]) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, "id = ?", id)
}

func (r *gormRepository[T]) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where(query, arg).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// Transactor runs fn inside a single database transaction. Repositories join it through WithTx.
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

// Transaction commits when fn returns nil and rolls back otherwise.
func (t *gormTransactor) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
