package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"postline/internal/domain/entities"
	"postline/internal/ports/repositories"
	"postline/pkg/logger"
)

// PostRepository реализует интерфейс repositories.PostRepository.
type PostRepository struct {
	pool PgxPoolInterface
}

// NewPostRepository создает новый репозиторий постов.
func NewPostRepository(pool PgxPoolInterface) repositories.PostRepository {
	return &PostRepository{pool: pool}
}

// Create сохраняет новый пост в БД.
func (r *PostRepository) Create(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "Create"))
	log.Debug(ctx, "creating new post", zap.String("userID", post.UserID))

	query := `
        INSERT INTO posts (user_id, body)
        VALUES ($1, $2)
        RETURNING id, user_id, body, created_at
    `

	var createdPost entities.Post
	err := r.pool.QueryRow(ctx, query,
		post.UserID,
		post.Text,
	).Scan(
		&createdPost.ID,
		&createdPost.UserID,
		&createdPost.Text,
		&createdPost.CreatedAt,
	)

	if err != nil {
		log.Error(ctx, "error creating post", zap.Error(err))
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	log.Debug(ctx, "post created", zap.String("postID", createdPost.ID))
	return &createdPost, nil
}

// FindByID находит пост по ID.
func (r *PostRepository) FindByID(ctx context.Context, id string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "FindByID"))

	query := `
        SELECT id, user_id, body, created_at
        FROM posts
        WHERE id = $1
    `

	var post entities.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.UserID,
		&post.Text,
		&post.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "post not found", zap.String("id", id))
			return nil, entities.ErrPostNotFound
		}
		log.Error(ctx, "error finding post by id", zap.Error(err))
		return nil, fmt.Errorf("error querying post by id: %w", err)
	}

	return &post, nil
}

// FindByUser находит все посты пользователя. Порядок возврата не является
// частью контракта хранилища.
func (r *PostRepository) FindByUser(ctx context.Context, userID string) ([]*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "FindByUser"))

	query := `
        SELECT id, user_id, body, created_at
        FROM posts
        WHERE user_id = $1
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "error listing posts", zap.Error(err))
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*entities.Post, 0)
	for rows.Next() {
		var post entities.Post
		err := rows.Scan(&post.ID, &post.UserID, &post.Text, &post.CreatedAt)
		if err != nil {
			log.Error(ctx, "error scanning post", zap.Error(err))
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return posts, nil
}

// Delete удаляет пост по ID.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "Delete"))

	query := `
        DELETE FROM posts
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting post", zap.Error(err))
		return fmt.Errorf("error deleting post: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "post not found for deletion", zap.String("id", id))
		return entities.ErrPostNotFound
	}

	return nil
}
