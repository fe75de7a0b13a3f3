package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
)

func (s *Store) CreateEvent(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (title, date, time_of_day, location, description, category, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`

	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query,
		e.Title, e.Date, e.TimeOfDay, e.Location, e.Description, e.Category,
		e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	if err = row.Scan(&e.ID); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

const eventColumns = `id, title, date, time_of_day, location, description, category, created_by, created_at, updated_at`

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	err := scan(
		&e.ID, &e.Title, &e.Date, &e.TimeOfDay, &e.Location,
		&e.Description, &e.Category, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) EventByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (s *Store) ListEvents(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY date ASC`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *e)
	}

	return out, rows.Err()
}

func (s *Store) UpdateEvent(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, date = $3, time_of_day = $4, location = $5,
			      description = $6, category = $7, updated_at = now()
			  WHERE id = $1`

	res, err := s.db.ExecWithRetry(ctx, s.strategy, query,
		e.ID, e.Title, e.Date, e.TimeOfDay, e.Location, e.Description, e.Category,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	res, err := s.db.ExecWithRetry(ctx, s.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
