// Package services содержит доменные ошибки и модели сервисного слоя.
package services

import (
	"errors"
)

// Ошибки домена учетных записей. Неверные учетные данные ошибкой не
// являются: Authenticate сообщает о них булевым результатом.
var ErrEmailAlreadyExists = errors.New("user with this email already exists")
