package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"postline/internal/domain/entities"
	"postline/internal/ports/api"
	"postline/internal/ports/cache"
	"postline/internal/ports/repositories"
	"postline/pkg/logger"
)

const (
	methodCreatePost  = "Create"
	methodGetPost     = "Get"
	methodListForUser = "ListForUser"
	methodDeletePost  = "Delete"

	msgCreatingPost  = "creating post"
	msgPostCreated   = "post created"
	msgListingPosts  = "listing posts"
	msgListingFromDB = "listing fetched from storage"
	msgListingCached = "listing served from cache"
	msgDeletingPost  = "deleting post"
	msgPostDeleted   = "post deleted"
	msgCacheFlushed  = "listing cache flushed after write"

	msgErrCreatePost = "failed to create post"
	msgErrGetPost    = "failed to get post"
	msgErrListPosts  = "failed to list posts"
	msgErrDeletePost = "failed to delete post"

	errCtxCreating = "creating post"
	errCtxGetting  = "getting post"
	errCtxListing  = "listing posts"
	errCtxDeleting = "deleting post"
)

// PostUseCaseImpl реализует интерфейс PostUseCase.
type PostUseCaseImpl struct {
	postRepo repositories.PostRepository
	listings cache.ListingCache
}

// NewPostUseCase создает новый экземпляр сервиса постов.
func NewPostUseCase(
	postRepo repositories.PostRepository,
	listings cache.ListingCache,
) api.PostUseCase {
	return &PostUseCaseImpl{
		postRepo: postRepo,
		listings: listings,
	}
}

// Create сохраняет новый пост и сбрасывает кэш списков целиком.
// Существование userID на этом уровне не проверяется: ссылочную
// целостность обеспечивает хранилище.
func (p *PostUseCaseImpl) Create(ctx context.Context, userID, text string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreatePost), zap.String("userID", userID))
	log.Debug(ctx, msgCreatingPost)

	post, err := p.postRepo.Create(ctx, &entities.Post{
		UserID: userID,
		Text:   text,
	})
	if err != nil {
		log.Error(ctx, msgErrCreatePost, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreating, err)
	}

	p.listings.Clear(ctx)
	log.Debug(ctx, msgCacheFlushed)

	log.Info(ctx, msgPostCreated, zap.String("postID", post.ID))
	return post, nil
}

// Get возвращает пост по ID.
func (p *PostUseCaseImpl) Get(ctx context.Context, postID string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetPost), zap.String("postID", postID))

	post, err := p.postRepo.FindByID(ctx, postID)
	if err != nil {
		if !errors.Is(err, entities.ErrPostNotFound) {
			log.Error(ctx, msgErrGetPost, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxGetting, err)
	}

	return post, nil
}

// ListForUser возвращает список постов пользователя без поля владельца.
// Список отдается из кэша, если он там есть; иначе читается из хранилища
// и кэшируется. Порядок постов контрактом не гарантируется.
func (p *PostUseCaseImpl) ListForUser(ctx context.Context, userID string) ([]entities.PostSummary, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListForUser), zap.String("userID", userID))
	log.Debug(ctx, msgListingPosts)

	if cached, ok := p.listings.Get(ctx, userID); ok {
		log.Debug(ctx, msgListingCached, zap.Int("count", len(cached)))
		return cached, nil
	}

	posts, err := p.postRepo.FindByUser(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrListPosts, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListing, err)
	}

	summaries := make([]entities.PostSummary, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, entities.PostSummary{
			ID:   post.ID,
			Text: post.Text,
		})
	}

	p.listings.Set(ctx, userID, summaries)

	log.Debug(ctx, msgListingFromDB, zap.Int("count", len(summaries)))
	return summaries, nil
}

// Delete удаляет пост по ID и сбрасывает кэш списков целиком.
// Владелец поста не проверяется: контракт сервиса позволяет любому
// аутентифицированному вызывающему удалить пост по известному id.
func (p *PostUseCaseImpl) Delete(ctx context.Context, postID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeletePost), zap.String("postID", postID))
	log.Debug(ctx, msgDeletingPost)

	if err := p.postRepo.Delete(ctx, postID); err != nil {
		if !errors.Is(err, entities.ErrPostNotFound) {
			log.Error(ctx, msgErrDeletePost, zap.Error(err))
		}
		return fmt.Errorf("%s: %w", errCtxDeleting, err)
	}

	p.listings.Clear(ctx)
	log.Debug(ctx, msgCacheFlushed)

	log.Info(ctx, msgPostDeleted)
	return nil
}
