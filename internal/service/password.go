package service

import (
	"bytes"
	"fmt"

	"github.com/korotkovaa/token-service/internal/pkg/random"

	"golang.org/x/crypto/sha3"
)

// HashPassword возвращает SHA3-256 хэш пароля с солью (digest от
// конкатенации password‖salt). Чистая функция без побочных эффектов.
func HashPassword(password, salt []byte) []byte {
	h := sha3.New256()
	h.Write(password)
	h.Write(salt)
	return h.Sum(nil)
}

// HashesEqual проверяет, что пароль соответствует сохранённым соли и хэшу.
// Сравнение побайтовое, не constant-time: наблюдаемый контракт «совпало /
// не совпало» от этого не зависит; при ужесточении требований к таймингу
// здесь достаточно перейти на crypto/subtle.
func HashesEqual(password, salt, expected []byte) bool {
	return bytes.Equal(HashPassword(password, salt), expected)
}

// GenerateSalt возвращает новую соль для регистрации пользователя во внешнем
// хранилище. Длина задаётся конфигурацией (по умолчанию 16 символов).
func (s *Service) GenerateSalt() (string, error) {
	const op = "service.password.GenerateSalt"

	salt, err := random.String(s.cfg.SaltLength)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return salt, nil
}
