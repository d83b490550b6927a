// Package api определяет порты прикладного уровня.
package api

import (
	"context"

	"postline/internal/domain/entities"
)

// AccountUseCase определяет основной порт для операций с учетными записями.
type AccountUseCase interface {
	Register(ctx context.Context, email, password string) (*entities.User, error)

	Authenticate(ctx context.Context, email, password string) (bool, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
