package entities

import (
	"errors"
	"time"
)

// ErrPostNotFound возвращается, когда пост не найден в хранилище.
var ErrPostNotFound = errors.New("post not found")

// Post представляет текстовый пост пользователя.
type Post struct {
	ID        string
	UserID    string
	Text      string
	CreatedAt time.Time
}

// PostSummary представляет пост в списке без владельца.
type PostSummary struct {
	ID   string
	Text string
}
