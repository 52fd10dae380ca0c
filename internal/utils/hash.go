package utils

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// HashPassword возвращает bcrypt-хеш пароля. Открытый пароль нигде не хранится.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
