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

func (s *Store) CreateUser(ctx context.Context, input domain.SignUpInput, passwordHash string) (*domain.User, error) {
	query := `INSERT INTO users (username, email, password_hash, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	user := domain.User{
		Username:  input.Username,
		Email:     input.Email,
		CreatedAt: time.Now().UTC(),
	}
	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query,
		user.Username, user.Email, passwordHash, user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if err = row.Scan(&user.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &user, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	query := `SELECT id, username, email, password_hash, phone, bio, telegram_chat_id, created_at
			  FROM users
			  WHERE lower(email) = lower($1)`

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, email)
	if err != nil {
		return nil, "", fmt.Errorf("get user by email: %w", err)
	}

	var u domain.User
	var hash string
	if err = row.Scan(&u.ID, &u.Username, &u.Email, &hash, &u.Phone, &u.Bio, &u.TelegramChatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("scan user: %w", err)
	}

	return &u, hash, nil
}

func (s *Store) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, username, email, phone, bio, telegram_chat_id, created_at
			  FROM users
			  WHERE id = $1`

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.Bio, &u.TelegramChatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}
