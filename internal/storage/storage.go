package storage

//go:generate mockgen -source=storage.go -destination=../../mocks/mock_storage.go -package=mocks

import (
	"context"
	"errors"
)

var (
	// ErrNotFound — значение не найдено в списке.
	ErrNotFound = errors.New("not found")
)

// TokenLists задает контракт keyed-list хранилища, в котором живут списки
// токенов пользователей. Ключи и значения — непрозрачные строки.
//
// Каждая отдельная операция атомарна на стороне хранилища; составные
// последовательности (len→trim→push, position→remove) собираются выше,
// в сервисном слое, и атомарности как целое не имеют.
type TokenLists interface {
	// PushFront вставляет значение в голову списка key.
	PushFront(ctx context.Context, key, value string) error
	// Trim оставляет в списке key только элементы с позициями [start, stop]
	// (границы включительно, 0 — голова).
	Trim(ctx context.Context, key string, start, stop int64) error
	// Len возвращает длину списка key (0 для отсутствующего ключа).
	Len(ctx context.Context, key string) (int64, error)
	// Position возвращает позицию первого совпадения value в списке key
	// (линейный поиск от головы) или ErrNotFound.
	Position(ctx context.Context, key, value string) (int64, error)
	// Remove удаляет первое совпадение value из списка key.
	// Удаление отсутствующего значения — no-op, не ошибка.
	Remove(ctx context.Context, key, value string) error
}

// Storage задает контракт работы с хранилищем.
type Storage interface {
	TokenLists
	Close() error
}
