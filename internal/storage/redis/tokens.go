package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/korotkovaa/token-service/internal/storage"

	"github.com/redis/go-redis/v9"
)

// Реализация list-примитивов поверх одноимённых команд Redis.
// Каждая команда атомарна на уровне сервера; сервисный слой собирает из них
// составные последовательности без собственных блокировок.

// PushFront вставляет значение в голову списка (LPUSH).
func (s *Storage) PushFront(ctx context.Context, key, value string) error {
	const op = "storage.redis.PushFront"

	if err := s.rdb.LPush(ctx, key, value).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Trim оставляет элементы [start, stop] включительно (LTRIM).
func (s *Storage) Trim(ctx context.Context, key string, start, stop int64) error {
	const op = "storage.redis.Trim"

	if err := s.rdb.LTrim(ctx, key, start, stop).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Len возвращает длину списка (LLEN); для отсутствующего ключа Redis отдаёт 0.
func (s *Storage) Len(ctx context.Context, key string) (int64, error) {
	const op = "storage.redis.Len"

	n, err := s.rdb.LLen(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// Position возвращает позицию первого совпадения value (LPOS, поиск от головы).
func (s *Storage) Position(ctx context.Context, key, value string) (int64, error) {
	const op = "storage.redis.Position"

	pos, err := s.rdb.LPos(ctx, key, value, redis.LPosArgs{}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return pos, nil
}

// Remove удаляет первое совпадение value от головы списка (LREM count=1).
// Отсутствие совпадений не считается ошибкой: LREM просто вернёт 0.
func (s *Storage) Remove(ctx context.Context, key, value string) error {
	const op = "storage.redis.Remove"

	if err := s.rdb.LRem(ctx, key, 1, value).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
