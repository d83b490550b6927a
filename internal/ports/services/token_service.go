package services

import "context"

// TokenService определяет операции выпуска и проверки bearer-токенов.
// Verify и Subject являются предикатами: ошибки декодирования не
// поднимаются наружу, а сворачиваются в отрицательный результат.
type TokenService interface {
	Issue(ctx context.Context, subject string) (string, error)

	Verify(ctx context.Context, token string) bool

	Subject(ctx context.Context, token string) (string, bool)
}
