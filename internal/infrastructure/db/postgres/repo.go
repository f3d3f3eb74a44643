package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/evento/discovery-service/internal/domain"
)

type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, e *domain.Event) error {
	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ID, e.Title, e.Description, e.Category, e.Address, e.City,
		e.Longitude, e.Latitude, e.StartDate, e.EndDate, e.Price,
		pq.Array(e.Images), e.OrganizerName,
		string(e.Status), e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.db.QueryRowContext(ctx, getEventSQL, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("event not found")
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repo) Update(ctx context.Context, e *domain.Event) error {
	res, err := r.db.ExecContext(ctx, updateEventSQL,
		e.ID,
		e.Title, e.Description, e.Category, e.Address, e.City,
		e.Longitude, e.Latitude, e.StartDate, e.EndDate, e.Price,
		pq.Array(e.Images), e.OrganizerName, e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound("event not found")
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteEventSQL, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound("event not found")
	}
	return nil
}

func (r *Repo) SetStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error) {
	row := r.db.QueryRowContext(ctx, setStatusSQL, id, string(status), nowUTC())
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("event not found")
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repo) List(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listEventsSQL, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *Repo) FindWithinRadius(ctx context.Context, lng, lat, radiusMeters float64, status domain.EventStatus) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, findWithinRadiusSQL, lng, lat, radiusMeters, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func nowUTC() time.Time { return time.Now().UTC() }

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	var status string
	err := s.Scan(
		&e.ID, &e.Title, &e.Description, &e.Category, &e.Address, &e.City,
		&e.Longitude, &e.Latitude, &e.StartDate, &e.EndDate, &e.Price,
		pq.Array(&e.Images), &e.OrganizerName,
		&status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Status = domain.EventStatus(status)
	if !e.Status.Valid() {
		return nil, domain.ErrInvalidState("invalid status in db")
	}
	return &e, nil
}

func collectEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var out []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
