package api

import (
	"context"

	"postline/internal/domain/entities"
)

// PostUseCase определяет основной порт для операций с постами.
// Delete намеренно не проверяет владельца: контракт сервиса позволяет
// любому аутентифицированному вызывающему удалить пост по id.
type PostUseCase interface {
	Create(ctx context.Context, userID, text string) (*entities.Post, error)

	Get(ctx context.Context, postID string) (*entities.Post, error)

	ListForUser(ctx context.Context, userID string) ([]entities.PostSummary, error)

	Delete(ctx context.Context, postID string) error
}
