// Package entities содержит основные сущности домена.
package entities

import (
	"errors"
	"time"
)

// ErrUserNotFound возвращается, когда пользователь не найден в хранилище.
var ErrUserNotFound = errors.New("user not found")

// User представляет зарегистрированного пользователя.
// Email уникален и сравнивается байт-в-байт (регистр значим).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
