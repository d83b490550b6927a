// Package services определяет порты сервисов паролей и токенов.
package services

import "context"

// PasswordService определяет операции для манипулирования паролем.
// Verify является предикатом: любой внутренний сбой дает false.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	Verify(ctx context.Context, password, hash string) bool
}
