package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// Repository is a store.Repository backed by one SQL table.
type Repository[T store.Entity[T]] struct {
	db      store.DBTX
	dialect goqu.DialectWrapper
	table   table[T]
}

func newRepository[T store.Entity[T]](db store.DBTX, d goqu.DialectWrapper, t table[T]) *Repository[T] {
	return &Repository[T]{db: db, dialect: d, table: t}
}

// record converts an entity's attributes into column values the drivers accept.
func record(attrs map[string]any) goqu.Record {
	rec := make(goqu.Record, len(attrs))
	for k, v := range attrs {
		rec[k] = columnValue(v)
	}
	return rec
}

func columnValue(v any) any {
	if id, ok := v.(uuid.UUID); ok {
		return id.String()
	}
	return v
}

func (r *Repository[T]) fail(op, msg string, err error) error {
	return store.NewStoreError(r.table.entity, op, msg, MapError(err))
}

// Add inserts entity. A duplicate primary key or unique column yields store.ErrDuplicate.
func (r *Repository[T]) Add(ctx context.Context, entity T) error {
	query, args, err := r.dialect.Insert(r.table.name).Prepared(true).
		Rows(record(entity.Attributes())).ToSQL()
	if err != nil {
		return r.fail("add", "failed to build insert query", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return r.fail("add", "insert failed", err)
	}
	return nil
}

// Get loads the entity with the given ID.
func (r *Repository[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	return r.GetByAttribute(ctx, "id", id)
}

// GetAll returns every row ordered by creation time.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.list(ctx, r.baseSelect())
}

// Update overwrites the mutable columns of entity. Unknown IDs are ignored.
func (r *Repository[T]) Update(ctx context.Context, entity T) error {
	rec := record(entity.Attributes())
	delete(rec, "id")
	delete(rec, "created_at")

	query, args, err := r.dialect.Update(r.table.name).Prepared(true).
		Set(rec).
		Where(goqu.C("id").Eq(entity.GetID().String())).
		ToSQL()
	if err != nil {
		return r.fail("update", "failed to build update query", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return r.fail("update", "update failed", err)
	}
	return nil
}

// Delete removes the row with the given ID if it exists.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := r.dialect.Delete(r.table.name).Prepared(true).
		Where(goqu.C("id").Eq(id.String())).
		ToSQL()
	if err != nil {
		return r.fail("delete", "failed to build delete query", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return r.fail("delete", "delete failed", err)
	}
	return nil
}

// GetByAttribute returns the first row, by creation time, whose column equals value.
func (r *Repository[T]) GetByAttribute(ctx context.Context, name string, value any) (T, error) {
	var zero T
	if !r.table.hasColumn(name) {
		return zero, r.table.notFound
	}

	query, args, err := r.baseSelect().
		Where(goqu.C(name).Eq(columnValue(value))).
		Limit(1).
		ToSQL()
	if err != nil {
		return zero, r.fail("get", "failed to build select query", err)
	}

	entity, err := r.table.scan(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, r.table.notFound
	}
	if err != nil {
		return zero, r.fail("get", "select failed", err)
	}
	return entity, nil
}

// ListByAttribute returns every row whose column equals value.
func (r *Repository[T]) ListByAttribute(ctx context.Context, name string, value any) ([]T, error) {
	if !r.table.hasColumn(name) {
		return []T{}, nil
	}
	return r.list(ctx, r.baseSelect().Where(goqu.C(name).Eq(columnValue(value))))
}

func (r *Repository[T]) baseSelect() *goqu.SelectDataset {
	return r.dialect.From(r.table.name).Prepared(true).
		Select(r.table.selectColumns()...).
		Order(goqu.C("created_at").Asc(), goqu.C("id").Asc())
}

func (r *Repository[T]) list(ctx context.Context, ds *goqu.SelectDataset) ([]T, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, r.fail("list", "failed to build select query", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.fail("list", "select failed", err)
	}
	defer func() { _ = rows.Close() }()

	out := []T{}
	for rows.Next() {
		entity, err := r.table.scan(rows)
		if err != nil {
			return nil, r.fail("list", "scan failed", err)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail("list", "row iteration failed", err)
	}
	return out, nil
}
