// Package app содержит прикладные сценарии сервиса постов.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"postline/internal/domain/entities"
	"postline/internal/domain/services"
	"postline/internal/ports/api"
	"postline/internal/ports/repositories"
	svc "postline/internal/ports/services"
	"postline/pkg/logger"
)

const (
	methodRegister     = "Register"
	methodAuthenticate = "Authenticate"
	methodFindByEmail  = "FindByEmail"

	msgStartRegistration = "starting user registration"
	msgEmailExists       = "user with this email already exists"
	msgUserRegistered    = "user registered successfully"
	msgAuthAttempt       = "authentication attempt"
	msgAuthNonExistent   = "authentication attempt with non-existent email"
	msgAuthWrongPassword = "invalid password provided"
	msgAuthenticated     = "user authenticated successfully"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by email"

	errCtxCheckingUser    = "checking existing user"
	errCtxEmailRegistered = "email already registered"
	errCtxHashingPassword = "hashing password"
	errCtxCreatingUser    = "creating user"
	errCtxFindingUser     = "finding user"
)

// AccountUseCaseImpl реализует интерфейс AccountUseCase.
type AccountUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewAccountUseCase создает новый экземпляр сервиса учетных записей.
func NewAccountUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
) api.AccountUseCase {
	return &AccountUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// Register создает нового пользователя с предоставленными учетными данными.
// Конфликт по email определяется предварительной проверкой, а гонка двух
// одновременных регистраций - ограничением уникальности в хранилище;
// оба пути дают services.ErrEmailAlreadyExists.
func (a *AccountUseCaseImpl) Register(ctx context.Context, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	existingUser, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			log.Debug(ctx, msgEmailExists)
			return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))
	return createdUser, nil
}

// Authenticate проверяет учетные данные пользователя. Неизвестный email и
// неверный пароль внешне неразличимы: оба дают false без ошибки.
func (a *AccountUseCaseImpl) Authenticate(ctx context.Context, email, password string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate), zap.String("email", email))
	log.Debug(ctx, msgAuthAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgAuthNonExistent)
			return false, nil
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if !a.passwordSvc.Verify(ctx, password, user.PasswordHash) {
		log.Debug(ctx, msgAuthWrongPassword, zap.String("userID", user.ID))
		return false, nil
	}

	log.Info(ctx, msgAuthenticated, zap.String("userID", user.ID))
	return true, nil
}

// FindByEmail возвращает пользователя по email.
func (a *AccountUseCaseImpl) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodFindByEmail), zap.String("email", email))

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrFindingUser, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	return user, nil
}
