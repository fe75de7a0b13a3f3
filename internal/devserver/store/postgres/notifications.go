package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/lib/pq"
)

func (s *Store) CreateNotification(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, type, title, message, is_read, event_id, created_at)
			  VALUES ($1, $2, $3, $4, false, $5, $6)
			  RETURNING id`

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query,
		n.UserID, n.Type, n.Title, n.Message, n.EventID, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	if err = row.Scan(&n.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert notification: %w", err)
	}

	return nil
}

func (s *Store) NotificationsByUser(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error) {
	query := `SELECT id, user_id, type, title, message, is_read, event_id, created_at
			  FROM notifications
			  WHERE user_id = $1 AND ($2 = false OR is_read = false)
			  ORDER BY created_at DESC`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err = rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Read, &n.EventID, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}

	return out, rows.Err()
}

func (s *Store) MarkNotificationRead(ctx context.Context, id int64) error {
	res, err := s.db.ExecWithRetry(ctx, s.strategy,
		`UPDATE notifications SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotificationNotFound
	}

	return nil
}

func (s *Store) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	_, err := s.db.ExecWithRetry(ctx, s.strategy,
		`UPDATE notifications SET is_read = true WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

func (s *Store) DeleteNotification(ctx context.Context, id int64) error {
	res, err := s.db.ExecWithRetry(ctx, s.strategy,
		`DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete notification rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotificationNotFound
	}

	return nil
}
