// Package dto содержит объекты передачи данных HTTP API сервиса постов.
package dto

// SignupRequest содержит данные для регистрации пользователя.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse содержит выданный токен доступа.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// CreatePostRequest содержит данные для создания поста.
type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

// CreatePostResponse содержит идентификатор созданного поста.
type CreatePostResponse struct {
	PostID string `json:"post_id"`
}

// PostView представляет пост в списке без поля владельца.
type PostView struct {
	PostID string `json:"post_id"`
	Text   string `json:"text"`
}

// ListPostsResponse содержит список постов пользователя.
type ListPostsResponse struct {
	Posts []PostView `json:"posts"`
}
