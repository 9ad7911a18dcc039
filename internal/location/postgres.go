package location

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"campusmap/internal/logger"
)

const schema = `CREATE TABLE IF NOT EXISTS campus_locations (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	building      TEXT NOT NULL DEFAULT '',
	connected_path TEXT[] NOT NULL DEFAULT '{}',
	type          TEXT NOT NULL,
	floor         TEXT NOT NULL DEFAULT '',
	category      TEXT NOT NULL,
	access_type   TEXT NOT NULL,
	dual_pathways BOOLEAN NOT NULL DEFAULT FALSE,
	description   TEXT NOT NULL DEFAULT '',
	image_urls    TEXT[] NOT NULL DEFAULT '{}',
	latitude      DOUBLE PRECISION NOT NULL,
	longitude     DOUBLE PRECISION NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ
)`

const selectColumns = `id, name, building, connected_path, type, floor, category, access_type,
	dual_pathways, description, image_urls, latitude, longitude, created_at, updated_at`

// PostgresStore keeps locations in the campus_locations table.
type PostgresStore struct {
	db  *sql.DB
	log *slog.Logger
}

// OpenPostgres opens a pooled connection for dsn.
func OpenPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return NewPostgresStore(db), nil
}

// NewPostgresStore wraps an existing handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, log: logger.L()}
}

func (s *PostgresStore) Close() error { return s.db.Close() }

// EnsureSchema creates the table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Location, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+selectColumns+" FROM campus_locations ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var out []Location
	for rows.Next() {
		var (
			l                     Location
			typ, category, access string
			created, updated      sql.NullTime
			connected, images     []string
		)
		if err := rows.Scan(&l.ID, &l.Name, &l.Building, pq.Array(&connected), &typ, &l.Floor,
			&category, &access, &l.DualPathways, &l.Description, pq.Array(&images),
			&l.Latitude, &l.Longitude, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		l.Type, l.Category, l.AccessType = Type(typ), Category(category), AccessType(access)
		l.ConnectedPath, l.ImageURLs = connected, images
		l.CreatedAt, l.UpdatedAt = created.Time, updated.Time
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	s.log.Debug("db_locations_listed", "count", len(out))
	return out, nil
}

func (s *PostgresStore) Create(ctx context.Context, l Location) error {
	if err := l.Validate(); err != nil {
		return err
	}
	created := l.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO campus_locations (`+selectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		l.ID, l.Name, l.Building, pq.Array(l.Paths()), string(l.Type), l.Floor,
		string(l.Category), string(l.AccessType), l.DualPathways, l.Description,
		pq.Array(nonNil(l.ImageURLs)), l.Latitude, l.Longitude, created, nullTime(l.UpdatedAt))
	if err != nil {
		return fmt.Errorf("create location %s: %w", l.ID, err)
	}
	s.log.Info("db_location_created", "id", l.ID)
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, l Location) error {
	if err := l.Validate(); err != nil {
		return err
	}
	updated := l.UpdatedAt
	if updated.IsZero() {
		updated = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx, `UPDATE campus_locations SET
		name = $2, building = $3, connected_path = $4, type = $5, floor = $6, category = $7,
		access_type = $8, dual_pathways = $9, description = $10, image_urls = $11,
		latitude = $12, longitude = $13, updated_at = $14
		WHERE id = $1`,
		l.ID, l.Name, l.Building, pq.Array(l.Paths()), string(l.Type), l.Floor,
		string(l.Category), string(l.AccessType), l.DualPathways, l.Description,
		pq.Array(nonNil(l.ImageURLs)), l.Latitude, l.Longitude, updated)
	if err != nil {
		return fmt.Errorf("update location %s: %w", l.ID, err)
	}
	return s.expectOne(res, "update", l.ID)
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM campus_locations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete location %s: %w", id, err)
	}
	return s.expectOne(res, "delete", id)
}

func (s *PostgresStore) expectOne(res sql.Result, op, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s location %s: %w", op, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", op, id, ErrNotFound)
	}
	s.log.Info("db_location_"+op+"d", "id", id)
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
