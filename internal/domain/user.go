package domain

import "time"

type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type SignUpInput struct {
	Username string
	Email    string
	Password string
}

type PushToken struct {
	UserID     int64  `json:"user_id"`
	Token      string `json:"token"`
	DeviceType string `json:"device_type"`
}
