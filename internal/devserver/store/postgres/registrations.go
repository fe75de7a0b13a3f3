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

func (s *Store) CreateRegistration(ctx context.Context, r *domain.Registration) error {
	query := `INSERT INTO registrations (event_id, user_id, checked_in, created_at)
			  VALUES ($1, $2, false, $3)
			  RETURNING id`

	r.CreatedAt = time.Now().UTC()
	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, r.EventID, r.UserID, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	if err = row.Scan(&r.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return domain.ErrAlreadyRegistered
			case "23503": // foreign key
				return domain.ErrEventNotFound
			}
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return nil
}

func (s *Store) RegistrationByUserEvent(ctx context.Context, userID, eventID int64) (*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, checked_in, created_at
			  FROM registrations
			  WHERE user_id = $1 AND event_id = $2`

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, userID, eventID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	var r domain.Registration
	if err = row.Scan(&r.ID, &r.EventID, &r.UserID, &r.CheckedIn, &r.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return &r, nil
}

func (s *Store) CheckIn(ctx context.Context, registrationID int64) error {
	query := `UPDATE registrations SET checked_in = true WHERE id = $1`

	res, err := s.db.ExecWithRetry(ctx, s.strategy, query, registrationID)
	if err != nil {
		return fmt.Errorf("check in: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check in rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrRegistrationNotFound
	}

	return nil
}

func (s *Store) CreateReminder(ctx context.Context, r *domain.Reminder) error {
	query := `INSERT INTO reminders (event_id, user_id, reminder_type, remind_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, r.EventID, r.UserID, r.Kind, r.RemindAt)
	if err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	if err = row.Scan(&r.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert reminder: %w", err)
	}

	return nil
}

func (s *Store) UpsertPushToken(ctx context.Context, t domain.PushToken) error {
	query := `INSERT INTO push_tokens (user_id, token, device_type, created_at)
			  VALUES ($1, $2, $3, now())
			  ON CONFLICT (token) DO UPDATE SET user_id = $1, device_type = $3`

	if _, err := s.db.ExecWithRetry(ctx, s.strategy, query, t.UserID, t.Token, t.DeviceType); err != nil {
		return fmt.Errorf("upsert push token: %w", err)
	}
	return nil
}

func (s *Store) CreateFeedback(ctx context.Context, f *domain.Feedback) error {
	query := `INSERT INTO feedback (event_id, user_id, rating, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	f.CreatedAt = time.Now().UTC()
	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, f.EventID, f.UserID, f.Rating, f.Comment, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	if err = row.Scan(&f.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert feedback: %w", err)
	}

	return nil
}

func (s *Store) FeedbackByEvent(ctx context.Context, eventID int64) ([]domain.Feedback, error) {
	query := `SELECT id, event_id, user_id, rating, comment, created_at
			  FROM feedback
			  WHERE event_id = $1
			  ORDER BY created_at DESC`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err = rows.Scan(&f.ID, &f.EventID, &f.UserID, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		out = append(out, f)
	}

	return out, rows.Err()
}
