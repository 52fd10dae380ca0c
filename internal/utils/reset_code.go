package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	resetCodeMin = 10000
	resetCodeMax = 99999
)

// GenerateResetCode — равномерный пятизначный код из [10000, 99999].
// Защиты от коллизий с живыми кодами здесь нет: уникальный индекс в БД
// превращает коллизию в ошибку записи, которую сервис обрабатывает повтором.
func GenerateResetCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(resetCodeMax-resetCodeMin+1))
	if err != nil {
		// crypto/rand на работающей системе не отказывает
		panic("не удалось получить случайное число: " + err.Error())
	}
	return strconv.FormatInt(n.Int64()+resetCodeMin, 10)
}
