package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Color        string    `json:"color"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionClaims — подписанный набор данных, который кладётся в сессионную куку.
// Токен самодостаточен: серверного хранилища сессий нет.
type SessionClaims struct {
	UserID    int    `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Color     string `json:"color"`
	IsAdmin   bool   `json:"is_admin"`
}

type UserProfileResponse struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Color       string `json:"color"`
	AccentColor string `json:"accent_color"`
	ColorIsDark bool   `json:"color_is_dark"`
	IsAdmin     bool   `json:"is_admin"`
}
