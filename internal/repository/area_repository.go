package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flowlytix/distribution-service/internal/domain"
)

// AreaRepository defines persistence access for sales areas.
type AreaRepository interface {
	Create(ctx context.Context, area *domain.Area) error
	Update(ctx context.Context, area *domain.Area) error
	GetByID(ctx context.Context, id string) (*domain.Area, error)
	List(ctx context.Context, status *domain.AreaStatus) ([]*domain.Area, error)
}

type areaRepository struct {
	pool *pgxpool.Pool
}

// NewAreaRepository returns a Postgres-backed implementation.
func NewAreaRepository(pool *pgxpool.Pool) AreaRepository {
	return &areaRepository{pool: pool}
}

func (r *areaRepository) Create(ctx context.Context, area *domain.Area) error {
	boundaries, err := marshalBoundaries(area.Boundaries)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO areas (name, description, latitude, longitude, boundaries, status, created_by, updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	var lat, lon *float64
	if area.Coordinates != nil {
		lat, lon = &area.Coordinates.Latitude, &area.Coordinates.Longitude
	}

	return r.pool.QueryRow(ctx, query,
		area.Name,
		area.Description,
		lat,
		lon,
		boundaries,
		area.Status,
		area.CreatedBy,
		area.UpdatedBy,
	).Scan(&area.ID, &area.CreatedAt, &area.UpdatedAt)
}

func (r *areaRepository) Update(ctx context.Context, area *domain.Area) error {
	boundaries, err := marshalBoundaries(area.Boundaries)
	if err != nil {
		return err
	}

	const query = `
        UPDATE areas
        SET name=$1, description=$2, latitude=$3, longitude=$4, boundaries=$5, status=$6, updated_by=$7, updated_at=NOW()
        WHERE id=$8`

	var lat, lon *float64
	if area.Coordinates != nil {
		lat, lon = &area.Coordinates.Latitude, &area.Coordinates.Longitude
	}

	cmd, err := r.pool.Exec(ctx, query,
		area.Name,
		area.Description,
		lat,
		lon,
		boundaries,
		area.Status,
		area.UpdatedBy,
		area.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *areaRepository) GetByID(ctx context.Context, id string) (*domain.Area, error) {
	const query = `
        SELECT id, name, description, latitude, longitude, boundaries, status, created_by, updated_by, created_at, updated_at
        FROM areas WHERE id=$1`

	return scanArea(r.pool.QueryRow(ctx, query, id))
}

func (r *areaRepository) List(ctx context.Context, status *domain.AreaStatus) ([]*domain.Area, error) {
	query := `
        SELECT id, name, description, latitude, longitude, boundaries, status, created_by, updated_by, created_at, updated_at
        FROM areas`
	args := []any{}
	if status != nil {
		query += " WHERE status=$1"
		args = append(args, *status)
	}
	query += " ORDER BY name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []*domain.Area
	for rows.Next() {
		area, err := scanArea(rows)
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	return areas, rows.Err()
}

func scanArea(row pgx.Row) (*domain.Area, error) {
	var (
		area       domain.Area
		lat, lon   *float64
		boundaries []byte
	)
	if err := row.Scan(
		&area.ID,
		&area.Name,
		&area.Description,
		&lat,
		&lon,
		&boundaries,
		&area.Status,
		&area.CreatedBy,
		&area.UpdatedBy,
		&area.CreatedAt,
		&area.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if lat != nil && lon != nil {
		area.Coordinates = &domain.Coordinates{Latitude: *lat, Longitude: *lon}
	}
	if len(boundaries) > 0 {
		var polygon domain.Polygon
		if err := json.Unmarshal(boundaries, &polygon); err != nil {
			return nil, err
		}
		area.Boundaries = &polygon
	}
	return &area, nil
}

func marshalBoundaries(p *domain.Polygon) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}
