package sqlstore

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/store"
)

const placeAmenityTable = "place_amenity"

// PlaceAmenities is a store.PlaceAmenityStore backed by the place_amenity table.
type PlaceAmenities struct {
	db      store.DBTX
	dialect goqu.DialectWrapper
}

func (p *PlaceAmenities) where(placeID, amenityID uuid.UUID) goqu.Ex {
	return goqu.Ex{"place_id": placeID.String(), "amenity_id": amenityID.String()}
}

// Link inserts the association, ignoring an existing one.
func (p *PlaceAmenities) Link(ctx context.Context, placeID, amenityID uuid.UUID) error {
	query, args, err := p.dialect.Insert(placeAmenityTable).Prepared(true).
		Rows(goqu.Record{
			"place_id":   placeID.String(),
			"amenity_id": amenityID.String(),
			"created_at": time.Now().UTC().Truncate(time.Microsecond),
		}).
		OnConflict(goqu.DoNothing()).
		ToSQL()
	if err != nil {
		return store.NewStoreError("place_amenity", "link", "failed to build insert query", err)
	}
	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return store.NewStoreError("place_amenity", "link", "insert failed", MapError(err))
	}
	return nil
}

// Unlink deletes the association if present.
func (p *PlaceAmenities) Unlink(ctx context.Context, placeID, amenityID uuid.UUID) error {
	query, args, err := p.dialect.Delete(placeAmenityTable).Prepared(true).
		Where(p.where(placeID, amenityID)).
		ToSQL()
	if err != nil {
		return store.NewStoreError("place_amenity", "unlink", "failed to build delete query", err)
	}
	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return store.NewStoreError("place_amenity", "unlink", "delete failed", MapError(err))
	}
	return nil
}

// AmenityIDs lists the amenity IDs linked to placeID in link order.
func (p *PlaceAmenities) AmenityIDs(ctx context.Context, placeID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := p.dialect.From(placeAmenityTable).Prepared(true).
		Select("amenity_id").
		Where(goqu.C("place_id").Eq(placeID.String())).
		Order(goqu.C("created_at").Asc(), goqu.C("amenity_id").Asc()).
		ToSQL()
	if err != nil {
		return nil, store.NewStoreError("place_amenity", "list", "failed to build select query", err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.NewStoreError("place_amenity", "list", "select failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, store.NewStoreError("place_amenity", "list", "scan failed", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("place_amenity", "list", "row iteration failed", err)
	}
	return ids, nil
}
