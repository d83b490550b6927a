package services

import (
	"errors"
	"time"
)

// Ошибки, связанные с JWT токенами.
var ErrGeneratingJWTToken = errors.New("failed to generate JWT token")

// JWTConfig содержит настройки для JWT сервиса.
type JWTConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
}
