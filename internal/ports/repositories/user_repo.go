// Package repositories определяет интерфейсы хранилищ.
package repositories

import (
	"context"

	"postline/internal/domain/entities"
)

// UserRepository определяет интерфейс для операций с пользователями.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
