package utils

import (
	"errors"
	"time"

	"examly/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken подписывает сессионный токен (HS256) с данными профиля.
func GenerateSessionToken(secret string, sc models.SessionClaims, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    sc.UserID,
		"email":      sc.Email,
		"first_name": sc.FirstName,
		"last_name":  sc.LastName,
		"color":      sc.Color,
		"is_admin":   sc.IsAdmin,
		"exp":        time.Now().Add(duration).Unix(),
		"iat":        time.Now().Unix(), // issued at — доп. уникальность
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

var ErrInvalidSessionToken = errors.New("невалидный сессионный токен")

// ParseSessionToken проверяет подпись и возвращает данные сессии.
func ParseSessionToken(secret, tokenString string) (*models.SessionClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSessionToken
	}

	userID, ok1 := claims["user_id"].(float64)
	email, ok2 := claims["email"].(string)
	if !ok1 || !ok2 {
		return nil, ErrInvalidSessionToken
	}

	sc := &models.SessionClaims{
		UserID: int(userID),
		Email:  email,
	}
	if v, ok := claims["first_name"].(string); ok {
		sc.FirstName = v
	}
	if v, ok := claims["last_name"].(string); ok {
		sc.LastName = v
	}
	if v, ok := claims["color"].(string); ok {
		sc.Color = v
	}
	if v, ok := claims["is_admin"].(bool); ok {
		sc.IsAdmin = v
	}
	return sc, nil
}
