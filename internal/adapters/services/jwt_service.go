package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"postline/internal/domain/services"
	svc "postline/internal/ports/services"
	"postline/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodIssue   = "Issue"
	methodVerify  = "Verify"
	methodSubject = "Subject"

	msgIssuingToken   = "issuing token"
	msgTokenIssued    = "token issued successfully"
	msgTokenRejected  = "token rejected"
	msgTokenDecoded   = "token decoded successfully"
	msgEmptySubClaim  = "sub claim is empty"
	errSigningToken   = "error signing token" //nolint:gosec
	errCtxIssuing     = "issuing token"
	errEmptySecretKey = "empty secret key"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// ServiceJWT реализует интерфейс TokenService поверх HMAC-SHA256.
type ServiceJWT struct {
	config services.JWTConfig
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey string, tokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: services.JWTConfig{
			SecretKey: []byte(secretKey),
			TokenTTL:  tokenTTL,
		},
	}
}

// Issue подписывает набор утверждений {sub, exp} для указанного субъекта.
func (s *ServiceJWT) Issue(ctx context.Context, subject string) (string, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssue),
		zap.String("subject", subject),
	)
	log.Debug(ctx, msgIssuingToken)

	if len(s.config.SecretKey) == 0 {
		return "", fmt.Errorf("%s: %w: %s", errCtxIssuing, services.ErrGeneratingJWTToken, errEmptySecretKey)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxIssuing, services.ErrGeneratingJWTToken, err)
	}

	log.Debug(ctx, msgTokenIssued)
	return tokenString, nil
}

// Verify возвращает true, если подпись токена верна и срок действия не истек.
// Валидность токена - предикат: причины отказа наружу не различаются.
func (s *ServiceJWT) Verify(ctx context.Context, tokenString string) bool {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))

	if _, err := s.decode(tokenString); err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return false
	}

	return true
}

// Subject декодирует токен и возвращает утверждение sub.
// Любой сбой декодирования дает ("", false).
func (s *ServiceJWT) Subject(ctx context.Context, tokenString string) (string, bool) {
	log := logger.Log(ctx).With(zap.String("method", methodSubject))

	claims, err := s.decode(tokenString)
	if err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return "", false
	}

	if claims.Subject == "" {
		log.Debug(ctx, msgEmptySubClaim)
		return "", false
	}

	log.Debug(ctx, msgTokenDecoded, zap.String("subject", claims.Subject))
	return claims.Subject, true
}

// decode разбирает и проверяет токен, включая подпись и срок действия.
func (s *ServiceJWT) decode(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("parsing token: %w", jwt.ErrTokenInvalidClaims)
	}

	return claims, nil
}
