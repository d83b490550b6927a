package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postline/internal/adapters/postgres"
	"postline/internal/domain/entities"
	"postline/internal/domain/services"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	inputUser := &entities.User{
		Email:        "new@example.com",
		PasswordHash: "hashed_new_password",
	}

	expectedUser := entities.User{
		ID:           "generated-uuid",
		Email:        inputUser.Email,
		PasswordHash: inputUser.PasswordHash,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.PasswordHash).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
					AddRow(expectedUser.ID, expectedUser.Email, expectedUser.PasswordHash, expectedUser.CreatedAt),
			)

		repo := postgres.NewUserRepository(mock)
		createdUser, err := repo.Create(ctx, inputUser)

		require.NoError(t, err)
		assert.NotNil(t, createdUser)
		assert.Equal(t, expectedUser.ID, createdUser.ID)
		assert.Equal(t, expectedUser.Email, createdUser.Email)
		assert.Equal(t, expectedUser.PasswordHash, createdUser.PasswordHash)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Нарушение уникальности email дает сигнал конфликта", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.PasswordHash).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		repo := postgres.NewUserRepository(mock)
		createdUser, err := repo.Create(ctx, inputUser)

		assert.Nil(t, createdUser)
		assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Общая ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection error")
		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.PasswordHash).
			WillReturnError(dbError)

		repo := postgres.NewUserRepository(mock)
		createdUser, err := repo.Create(ctx, inputUser)

		assert.Nil(t, createdUser)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error creating user")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()

	expectedUser := entities.User{
		ID:           "user-uuid",
		Email:        "a@x.com",
		PasswordHash: "hashed_password",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("Пользователь найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash, created_at FROM users .+").
			WithArgs(expectedUser.Email).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
					AddRow(expectedUser.ID, expectedUser.Email, expectedUser.PasswordHash, expectedUser.CreatedAt),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, expectedUser.Email)

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, expectedUser.ID, user.ID)
		assert.Equal(t, expectedUser.Email, user.Email)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash, created_at FROM users .+").
			WithArgs("unknown@x.com").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, "unknown@x.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
