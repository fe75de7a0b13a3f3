package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/lib/pq"
)

const taskColumns = `id, event_id, stage_id, title, description, priority, is_completed, due_date, created_by, created_at`

func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	err := scan(
		&t.ID, &t.EventID, &t.StageID, &t.Title, &t.Description,
		&t.Priority, &t.Completed, &t.DueDate, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) CreateTask(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (event_id, stage_id, title, description, priority, is_completed, due_date, created_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, false, $6, $7, $8)
			  RETURNING id`

	t.CreatedAt = time.Now().UTC()
	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query,
		t.EventID, t.StageID, t.Title, t.Description, t.Priority, t.DueDate, t.CreatedBy, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	if err = row.Scan(&t.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert task: %w", err)
	}

	return nil
}

func (s *Store) TaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	t, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}

	return t, nil
}

func (s *Store) TasksByEvent(ctx context.Context, eventID int64, stageID *int64) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + `
			  FROM tasks
			  WHERE event_id = $1 AND ($2::bigint IS NULL OR stage_id = $2)
			  ORDER BY id ASC`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query, eventID, stageID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var out []domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, *t)
	}

	return out, rows.Err()
}

func (s *Store) ToggleTask(ctx context.Context, id int64) (*domain.Task, error) {
	query := `UPDATE tasks
			  SET is_completed = NOT is_completed
			  WHERE id = $1
			  RETURNING ` + taskColumns

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}

	t, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}

	return t, nil
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecWithRetry(ctx, s.strategy, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (s *Store) ListStages(ctx context.Context) ([]domain.Stage, error) {
	query := `SELECT id, name, description, stage_order
			  FROM stages
			  ORDER BY stage_order ASC`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer rows.Close()

	var out []domain.Stage
	for rows.Next() {
		var st domain.Stage
		if err = rows.Scan(&st.ID, &st.Name, &st.Description, &st.Order); err != nil {
			return nil, fmt.Errorf("scan stage: %w", err)
		}
		out = append(out, st)
	}

	return out, rows.Err()
}

func (s *Store) CreateStage(ctx context.Context, st *domain.Stage) error {
	query := `INSERT INTO stages (name, description, stage_order)
			  VALUES ($1, $2, $3)
			  RETURNING id`

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, st.Name, st.Description, st.Order)
	if err != nil {
		return fmt.Errorf("insert stage: %w", err)
	}
	if err = row.Scan(&st.ID); err != nil {
		return fmt.Errorf("insert stage: %w", err)
	}

	return nil
}
