// Package posts содержит HTTP обработчики для работы с постами.
package posts

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"postline/internal/app/http/dto"
	"postline/internal/app/http/middleware"
	"postline/internal/domain/entities"
	"postline/internal/ports/api"
	"postline/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreate = "post handler: create"
	LogHandlerList   = "post handler: list"
	LogHandlerDelete = "post handler: delete"

	ErrorInvalidRequest       = "invalid request"
	ErrorTextRequired         = "text is required"
	ErrorUnauthorized         = "unauthorized"
	ErrorPostNotFound         = "post not found"
	ErrorFailedToServeRequest = "failed to serve request"

	MessagePostDeleted = "post deleted"
)

// Handler содержит HTTP обработчики постов.
type Handler struct {
	posts api.PostUseCase
}

// NewHandler создает новый экземпляр обработчика постов.
func NewHandler(posts api.PostUseCase) *Handler {
	return &Handler{
		posts: posts,
	}
}

// Create обрабатывает запрос на создание поста.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	userID, ok := ctx.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		})
	}

	var req dto.CreatePostRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	if req.Text == "" {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorTextRequired,
		})
	}

	post, err := h.posts.Create(requestCtx, userID, req.Text)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorFailedToServeRequest,
		})
	}

	return ctx.Status(http.StatusCreated).JSON(dto.CreatePostResponse{PostID: post.ID})
}

// List обрабатывает запрос на получение списка постов пользователя.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	userID, ok := ctx.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorUnauthorized,
		})
	}

	summaries, err := h.posts.ListForUser(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorFailedToServeRequest,
		})
	}

	views := make([]dto.PostView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, dto.PostView{
			PostID: summary.ID,
			Text:   summary.Text,
		})
	}

	return ctx.Status(http.StatusOK).JSON(dto.ListPostsResponse{Posts: views})
}

// Delete обрабатывает запрос на удаление поста по идентификатору.
// Принадлежность поста вызывающему не проверяется.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	postID := ctx.Params("id")

	if err := h.posts.Delete(requestCtx, postID); err != nil {
		if errors.Is(err, entities.ErrPostNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": ErrorPostNotFound,
			})
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorFailedToServeRequest,
		})
	}

	return ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": MessagePostDeleted,
	})
}
