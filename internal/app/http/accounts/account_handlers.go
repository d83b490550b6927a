// Package accounts содержит HTTP обработчики регистрации и входа.
package accounts

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"postline/internal/app/http/dto"
	"postline/internal/domain/services"
	"postline/internal/ports/api"
	svc "postline/internal/ports/services"
	"postline/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerSignup = "account handler: signup"
	LogHandlerLogin  = "account handler: login"

	ErrorInvalidRequest       = "invalid request"
	ErrorCredentialsRequired  = "email and password are required"
	ErrorEmailTaken           = "email already registered"
	ErrorInvalidCredentials   = "invalid credentials"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorFailedToIssueToken   = "failed to issue token" // #nosec G101 - not a credential
)

// Handler содержит HTTP обработчики учетных записей.
type Handler struct {
	accounts api.AccountUseCase
	tokens   svc.TokenService
}

// NewHandler создает новый экземпляр обработчика учетных записей.
func NewHandler(accounts api.AccountUseCase, tokens svc.TokenService) *Handler {
	return &Handler{
		accounts: accounts,
		tokens:   tokens,
	}
}

// Signup обрабатывает запрос на регистрацию нового пользователя.
// Успешная регистрация сразу выдает токен доступа.
func (h *Handler) Signup(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSignup)

	var req dto.SignupRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	if req.Email == "" || req.Password == "" {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorCredentialsRequired,
		})
	}

	user, err := h.accounts.Register(requestCtx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			return ctx.Status(http.StatusConflict).JSON(fiber.Map{
				"error": ErrorEmailTaken,
			})
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorFailedToServeRequest,
		})
	}

	token, err := h.tokens.Issue(requestCtx, user.ID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToIssueToken, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorFailedToServeRequest,
		})
	}

	return ctx.Status(http.StatusCreated).JSON(dto.TokenResponse{AccessToken: token})
}

// Login обрабатывает запрос на вход пользователя. Неизвестный email и
// неверный пароль дают одинаковый ответ 401.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	if req.Email == "" || req.Password == "" {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorCredentialsRequired,
		})
	}

	ok, err := h.accounts.Authenticate(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorFailedToServeRequest,
		})
	}
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": ErrorInvalidCredentials,
		})
	}

	user, err := h.accounts.FindByEmail(requestCtx, req.Email)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorFailedToServeRequest,
		})
	}

	token, err := h.tokens.Issue(requestCtx, user.ID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToIssueToken, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorFailedToServeRequest,
		})
	}

	return ctx.Status(http.StatusOK).JSON(dto.TokenResponse{AccessToken: token})
}
