package registry

import (
	"context"
	"errors"
	"strings"

	"bizdesk.app/bizdesk/core"
	"bizdesk.app/bizdesk/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Entity interface {
	GetID() uint
}

type idSetter interface {
	SetID(id uint)
}

// Schema describes how one table is listed, searched and validated.
type Schema[T Entity] struct {
	// Name is used in errors and logs, e.g. "client".
	Name     string
	Order    string
	Preloads []string
	// SearchFields returns the text the list filter matches against.
	SearchFields func(T) []string
	Defaults     func() T
	Normalize    func(*T)
	// Validate runs after the struct tags pass; it may read the database.
	Validate func(ctx context.Context, draft T) error
	// NameColumn enables Options.
	NameColumn string
}

type Option struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Registry[T Entity] struct {
	dm     *core.DatabaseManager
	schema Schema[T]
}

func New[T Entity](dm *core.DatabaseManager, schema Schema[T]) *Registry[T] {
	return &Registry[T]{dm: dm, schema: schema}
}

func (r *Registry[T]) Name() string {
	return r.schema.Name
}

func (r *Registry[T]) query(ctx context.Context) *gorm.DB {
	db := r.dm.GetDB(ctx)
	for _, p := range r.schema.Preloads {
		db = db.Preload(p)
	}
	return db
}

// List returns every row in schema order, narrowed by a case-insensitive substring filter.
func (r *Registry[T]) List(ctx context.Context, filter string) ([]T, error) {
	rows := []T{}
	q := r.query(ctx)
	if r.schema.Order != "" {
		q = q.Order(r.schema.Order)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, core.Remote("list "+r.schema.Name, err)
	}
	return r.Filter(rows, filter), nil
}

func (r *Registry[T]) Filter(rows []T, filter string) []T {
	needle := strings.ToLower(strings.TrimSpace(filter))
	if needle == "" || r.schema.SearchFields == nil {
		return rows
	}
	return utils.Filter(rows, func(row T) bool {
		for _, field := range r.schema.SearchFields(row) {
			if strings.Contains(strings.ToLower(field), needle) {
				return true
			}
		}
		return false
	})
}

func (r *Registry[T]) Get(ctx context.Context, id uint) (T, error) {
	var row T
	if err := r.query(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return row, &core.NotFoundError{Entity: r.schema.Name, ID: id}
		}
		return row, core.Remote("get "+r.schema.Name, err)
	}
	return row, nil
}

// Defaults returns a blank draft.
func (r *Registry[T]) Defaults() T {
	if r.schema.Defaults != nil {
		return r.schema.Defaults()
	}
	var zero T
	return zero
}

// Prepare normalizes the draft in place and validates it.
func (r *Registry[T]) Prepare(ctx context.Context, draft *T) error {
	if r.schema.Normalize != nil {
		r.schema.Normalize(draft)
	}
	if err := core.ValidateStruct(draft); err != nil {
		return err
	}
	if r.schema.Validate != nil {
		return r.schema.Validate(ctx, *draft)
	}
	return nil
}

func (r *Registry[T]) Create(ctx context.Context, draft T) (T, error) {
	var zero T
	if err := r.Prepare(ctx, &draft); err != nil {
		return zero, err
	}
	setID(&draft, 0)

	if err := r.dm.GetDB(ctx).Omit(clause.Associations).Create(&draft).Error; err != nil {
		return zero, core.Remote("create "+r.schema.Name, err)
	}
	return r.Get(ctx, draft.GetID())
}

// Update replaces every column of row id except id and created_at.
func (r *Registry[T]) Update(ctx context.Context, id uint, draft T) (T, error) {
	var zero T
	if err := r.Prepare(ctx, &draft); err != nil {
		return zero, err
	}

	db := r.dm.GetDB(ctx)
	var existing T
	if err := db.Select("id").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, &core.NotFoundError{Entity: r.schema.Name, ID: id}
		}
		return zero, core.Remote("update "+r.schema.Name, err)
	}

	setID(&draft, id)
	err := db.Model(&draft).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&draft).Error
	if err != nil {
		return zero, core.Remote("update "+r.schema.Name, err)
	}
	return r.Get(ctx, id)
}

func (r *Registry[T]) Delete(ctx context.Context, id uint) error {
	res := r.dm.GetDB(ctx).Delete(new(T), id)
	if res.Error != nil {
		return core.Remote("delete "+r.schema.Name, res.Error)
	}
	if res.RowsAffected == 0 {
		return &core.NotFoundError{Entity: r.schema.Name, ID: id}
	}
	return nil
}

// Exists reports whether row id is stored.
func (r *Registry[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.dm.GetDB(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, core.Remote("find "+r.schema.Name, err)
	}
	return n > 0, nil
}

func (r *Registry[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.dm.GetDB(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, core.Remote("count "+r.schema.Name, err)
	}
	return n, nil
}

// Options lists id and name pairs for pick-lists.
func (r *Registry[T]) Options(ctx context.Context) ([]Option, error) {
	if r.schema.NameColumn == "" {
		return nil, core.NewValidationError(r.schema.Name + " has no options")
	}
	opts := []Option{}
	err := r.dm.GetDB(ctx).Model(new(T)).
		Select("id, " + r.schema.NameColumn + " AS name").
		Order(r.schema.NameColumn).
		Scan(&opts).Error
	if err != nil {
		return nil, core.Remote("options "+r.schema.Name, err)
	}
	return opts, nil
}

func setID[T any](draft *T, id uint) {
	if s, ok := any(draft).(idSetter); ok {
		s.SetID(id)
	}
}
