package services

import (
	"errors"
)

// ErrHashingFailed возвращается при внутренней ошибке хэширования пароля.
var ErrHashingFailed = errors.New("failed to hash password")
