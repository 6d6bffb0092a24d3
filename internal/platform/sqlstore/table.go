package sqlstore

import (
	"slices"

	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/store"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// table describes how one entity type maps onto a database table.
// columns is both the SELECT list and the whitelist for attribute lookups.
type table[T store.Entity[T]] struct {
	name     string
	entity   string
	columns  []string
	notFound error
	scan     func(row scanner) (T, error)
}

func (t table[T]) hasColumn(name string) bool {
	return slices.Contains(t.columns, name)
}

func (t table[T]) selectColumns() []any {
	cols := make([]any, len(t.columns))
	for i, c := range t.columns {
		cols[i] = c
	}
	return cols
}

var usersTable = table[*domain.User]{
	name:     "users",
	entity:   "user",
	columns:  []string{"id", "first_name", "last_name", "email", "password_hash", "is_admin", "created_at", "updated_at"},
	notFound: store.ErrUserNotFound,
	scan: func(row scanner) (*domain.User, error) {
		var u domain.User
		if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
			&u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		u.CreatedAt, u.UpdatedAt = u.CreatedAt.UTC(), u.UpdatedAt.UTC()
		return &u, nil
	},
}

var placesTable = table[*domain.Place]{
	name:     "places",
	entity:   "place",
	columns:  []string{"id", "title", "description", "price", "latitude", "longitude", "owner_id", "created_at", "updated_at"},
	notFound: store.ErrPlaceNotFound,
	scan: func(row scanner) (*domain.Place, error) {
		var p domain.Place
		if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude,
			&p.Longitude, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
		return &p, nil
	},
}

var reviewsTable = table[*domain.Review]{
	name:     "reviews",
	entity:   "review",
	columns:  []string{"id", "text", "rating", "user_id", "place_id", "created_at", "updated_at"},
	notFound: store.ErrReviewNotFound,
	scan: func(row scanner) (*domain.Review, error) {
		var r domain.Review
		if err := row.Scan(&r.ID, &r.Text, &r.Rating, &r.UserID, &r.PlaceID,
			&r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		r.CreatedAt, r.UpdatedAt = r.CreatedAt.UTC(), r.UpdatedAt.UTC()
		return &r, nil
	},
}

var amenitiesTable = table[*domain.Amenity]{
	name:     "amenities",
	entity:   "amenity",
	columns:  []string{"id", "name", "created_at", "updated_at"},
	notFound: store.ErrAmenityNotFound,
	scan: func(row scanner) (*domain.Amenity, error) {
		var a domain.Amenity
		if err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.CreatedAt, a.UpdatedAt = a.CreatedAt.UTC(), a.UpdatedAt.UTC()
		return &a, nil
	},
}
