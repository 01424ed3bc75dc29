package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

// refreshTokenBytes 256 бит случайных данных
const refreshTokenBytes = 32

// GenerateRefreshToken случайный refresh токен для cookie
func GenerateRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashRefreshToken хэш токена, который хранится в сессии вместо самого токена
func HashRefreshToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// VerifyRefreshToken сравнивает токен с хэшем сессии за постоянное время
func VerifyRefreshToken(token string, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashRefreshToken(token)), []byte(hash)) == 1
}
