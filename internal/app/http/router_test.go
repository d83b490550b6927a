package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapterservices "postline/internal/adapters/services"
	httpServer "postline/internal/app/http"
	"postline/internal/app/http/dto"
	"postline/internal/domain/entities"
	"postline/internal/domain/services"
)

const (
	testSecret   = "test-secret-key"
	testEmail    = "a@x.com"
	testPassword = "pw1"
	testUserID   = "user-uuid-1"
	testPostID   = "post-uuid-1"
)

type mockAccountUseCase struct {
	mock.Mock
}

func (m *mockAccountUseCase) Register(ctx context.Context, email, password string) (*entities.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockAccountUseCase) Authenticate(ctx context.Context, email, password string) (bool, error) {
	args := m.Called(ctx, email, password)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountUseCase) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type mockPostUseCase struct {
	mock.Mock
}

func (m *mockPostUseCase) Create(ctx context.Context, userID, text string) (*entities.Post, error) {
	args := m.Called(ctx, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *mockPostUseCase) Get(ctx context.Context, postID string) (*entities.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *mockPostUseCase) ListForUser(ctx context.Context, userID string) ([]entities.PostSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.PostSummary), args.Error(1)
}

func (m *mockPostUseCase) Delete(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func newTestApp(accountUC *mockAccountUseCase, postUC *mockPostUseCase) *fiber.App {
	app := fiber.New()
	tokenSvc := adapterservices.NewJWT(testSecret, time.Hour)
	httpServer.SetupRouter(app, accountUC, postUC, tokenSvc, nil)
	return app
}

func bearerToken(t *testing.T) string {
	t.Helper()
	tokenSvc := adapterservices.NewJWT(testSecret, time.Hour)
	token, err := tokenSvc.Issue(context.Background(), testUserID)
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestSignupEndpoint(t *testing.T) {
	t.Run("регистрация выдает токен", func(t *testing.T) {
		accountUC := new(mockAccountUseCase)
		accountUC.On("Register", mock.Anything, testEmail, testPassword).
			Return(&entities.User{ID: testUserID, Email: testEmail}, nil)

		app := newTestApp(accountUC, new(mockPostUseCase))
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/signup",
			dto.SignupRequest{Email: testEmail, Password: testPassword}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody[dto.TokenResponse](t, resp)
		assert.NotEmpty(t, body.AccessToken)
	})

	t.Run("конфликт по занятому email", func(t *testing.T) {
		accountUC := new(mockAccountUseCase)
		accountUC.On("Register", mock.Anything, testEmail, testPassword).
			Return(nil, services.ErrEmailAlreadyExists)

		app := newTestApp(accountUC, new(mockPostUseCase))
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/signup",
			dto.SignupRequest{Email: testEmail, Password: testPassword}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("пустые поля дают 400", func(t *testing.T) {
		app := newTestApp(new(mockAccountUseCase), new(mockPostUseCase))
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/signup",
			dto.SignupRequest{Email: testEmail}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("вход выдает токен", func(t *testing.T) {
		accountUC := new(mockAccountUseCase)
		accountUC.On("Authenticate", mock.Anything, testEmail, testPassword).Return(true, nil)
		accountUC.On("FindByEmail", mock.Anything, testEmail).
			Return(&entities.User{ID: testUserID, Email: testEmail}, nil)

		app := newTestApp(accountUC, new(mockPostUseCase))
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/login",
			dto.LoginRequest{Email: testEmail, Password: testPassword}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[dto.TokenResponse](t, resp)
		assert.NotEmpty(t, body.AccessToken)
	})

	t.Run("неверные учетные данные дают 401", func(t *testing.T) {
		accountUC := new(mockAccountUseCase)
		accountUC.On("Authenticate", mock.Anything, testEmail, "wrong").Return(false, nil)

		app := newTestApp(accountUC, new(mockPostUseCase))
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/login",
			dto.LoginRequest{Email: testEmail, Password: "wrong"}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		accountUC.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestPostEndpoints(t *testing.T) {
	t.Run("создание поста", func(t *testing.T) {
		postUC := new(mockPostUseCase)
		postUC.On("Create", mock.Anything, testUserID, "hello").
			Return(&entities.Post{ID: testPostID, UserID: testUserID, Text: "hello"}, nil)

		app := newTestApp(new(mockAccountUseCase), postUC)
		req := jsonRequest(http.MethodPost, "/api/v1/posts/", dto.CreatePostRequest{Text: "hello"})
		req.Header.Set("Authorization", bearerToken(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody[dto.CreatePostResponse](t, resp)
		assert.Equal(t, testPostID, body.PostID)
	})

	t.Run("список постов", func(t *testing.T) {
		postUC := new(mockPostUseCase)
		postUC.On("ListForUser", mock.Anything, testUserID).
			Return([]entities.PostSummary{
				{ID: "post-1", Text: "first"},
				{ID: "post-2", Text: "second"},
			}, nil)

		app := newTestApp(new(mockAccountUseCase), postUC)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/", nil)
		req.Header.Set("Authorization", bearerToken(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[dto.ListPostsResponse](t, resp)
		require.Len(t, body.Posts, 2)
		assert.ElementsMatch(t,
			[]string{"post-1", "post-2"},
			[]string{body.Posts[0].PostID, body.Posts[1].PostID})
	})

	t.Run("удаление поста", func(t *testing.T) {
		postUC := new(mockPostUseCase)
		postUC.On("Delete", mock.Anything, testPostID).Return(nil)

		app := newTestApp(new(mockAccountUseCase), postUC)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/"+testPostID, nil)
		req.Header.Set("Authorization", bearerToken(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("удаление несуществующего поста дает 404", func(t *testing.T) {
		postUC := new(mockPostUseCase)
		postUC.On("Delete", mock.Anything, "missing").Return(entities.ErrPostNotFound)

		app := newTestApp(new(mockAccountUseCase), postUC)
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/missing", nil)
		req.Header.Set("Authorization", bearerToken(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPayloadGate(t *testing.T) {
	const bodyLimit = 128

	newLimitedApp := func(postUC *mockPostUseCase) *fiber.App {
		app := fiber.New(fiber.Config{BodyLimit: bodyLimit})
		tokenSvc := adapterservices.NewJWT(testSecret, time.Hour)
		httpServer.SetupRouter(app, new(mockAccountUseCase), postUC, tokenSvc, nil)
		return app
	}

	t.Run("тело больше лимита дает 413", func(t *testing.T) {
		postUC := new(mockPostUseCase)

		app := newLimitedApp(postUC)
		req := jsonRequest(http.MethodPost, "/api/v1/posts/",
			dto.CreatePostRequest{Text: strings.Repeat("x", 2*bodyLimit)})
		req.Header.Set("Authorization", bearerToken(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

		postUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("тело в пределах лимита обрабатывается", func(t *testing.T) {
		postUC := new(mockPostUseCase)
		postUC.On("Create", mock.Anything, testUserID, "ok").
			Return(&entities.Post{ID: testPostID, UserID: testUserID, Text: "ok"}, nil)

		app := newLimitedApp(postUC)
		req := jsonRequest(http.MethodPost, "/api/v1/posts/", dto.CreatePostRequest{Text: "ok"})
		req.Header.Set("Authorization", bearerToken(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}

func TestAuthRequiredForPosts(t *testing.T) {
	t.Run("без заголовка Authorization", func(t *testing.T) {
		app := newTestApp(new(mockAccountUseCase), new(mockPostUseCase))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("с мусорным токеном", func(t *testing.T) {
		app := newTestApp(new(mockAccountUseCase), new(mockPostUseCase))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("без схемы Bearer", func(t *testing.T) {
		app := newTestApp(new(mockAccountUseCase), new(mockPostUseCase))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("неизвестный маршрут дает 404", func(t *testing.T) {
		app := newTestApp(new(mockAccountUseCase), new(mockPostUseCase))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
