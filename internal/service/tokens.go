package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/korotkovaa/token-service/internal/models"
	"github.com/korotkovaa/token-service/internal/pkg/log"
	"github.com/korotkovaa/token-service/internal/pkg/random"
	"github.com/korotkovaa/token-service/internal/pkg/redact"
	"github.com/korotkovaa/token-service/internal/storage"
)

// listKey возвращает имя списка живых токенов пользователя.
func (s *Service) listKey(userID uint64) string {
	return models.TokenListKey(s.cfg.KeyPrefix, userID)
}

// IssueToken аутентифицирует пользователя и выпускает новый токен.
// Возвращает сам токен и его wire-форму — ровно ту строку, которая положена
// в хранилище и которую клиент должен предъявлять дальше.
//
// Последовательность len→trim→push не атомарна: конкурентные выпуски для
// одного пользователя могут кратковременно превысить лимит живых токенов.
// Это мягкая граница — следующий выпуск снова подрежет список.
func (s *Service) IssueToken(ctx context.Context, userID uint64, password []byte, creds models.Credentials) (*models.Token, string, error) {
	const op = "service.tokens.IssueToken"

	lg := log.From(ctx)

	if !HashesEqual(password, creds.Salt, creds.Hash) {
		lg.Warn("credentials_mismatch",
			slog.String("op", op),
			slog.Uint64("user_id", userID),
			slog.String("password", redact.Password()),
		)
		return nil, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	key := s.listKey(userID)

	length, err := s.store.Len(ctx, key)
	if err != nil {
		lg.Error("token_list_len_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	// Подрезаем список перед вставкой: остаются max-1 самых свежих записей,
	// чтобы после push длина не превышала лимит. Старшие токены вытесняются.
	if length >= s.cfg.MaxPerUser {
		start, stop := int64(0), s.cfg.MaxPerUser-2
		if stop < 0 {
			// Лимит 1: интервал со start > stop опустошает список.
			start, stop = 1, 0
		}
		if err := s.store.Trim(ctx, key, start, stop); err != nil {
			lg.Error("token_list_trim_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, "", fmt.Errorf("%s: %w", op, err)
		}
	}

	token, err := s.generateToken(userID)
	if err != nil {
		lg.Error("token_generate_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	wire, err := token.Encode()
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.PushFront(ctx, key, wire); err != nil {
		lg.Error("token_push_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return token, wire, nil
}

// ValidateToken проверяет предъявленный токен и возвращает идентификатор
// пользователя, которого он аутентифицирует.
//
// Проверка присутствия в списке обязательна и не заменяется декодированием:
// синтаксически корректный, но не выпускавшийся (или уже отозванный) токен
// должен быть отвергнут. Просроченная запись лениво удаляется здесь же.
func (s *Service) ValidateToken(ctx context.Context, wire string) (uint64, error) {
	const op = "service.tokens.ValidateToken"

	lg := log.From(ctx)

	token, err := models.DecodeToken(wire)
	if err != nil {
		lg.Warn("token_malformed",
			slog.String("op", op),
			slog.String("token", redact.Token()),
		)
		return 0, fmt.Errorf("%s: %w", op, ErrMalformedToken)
	}

	key := s.listKey(token.UserID)

	if _, err := s.store.Position(ctx, key, wire); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("token_unknown",
				slog.String("op", op),
				slog.Uint64("user_id", token.UserID),
			)
			return 0, fmt.Errorf("%s: %w", op, ErrUnknownToken)
		}

		lg.Error("token_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	age := time.Now().UTC().Sub(token.IssuedAt)
	if int(age.Hours()/24) >= s.cfg.DaysValid {
		if err := s.store.Remove(ctx, key, wire); err != nil {
			lg.Error("token_purge_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return 0, fmt.Errorf("%s: %w", op, err)
		}

		lg.Warn("token_expired",
			slog.String("op", op),
			slog.Uint64("user_id", token.UserID),
		)
		return 0, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	return token.UserID, nil
}

// RevokeToken отзывает предъявленный токен: удаляет его из живого списка.
// Срок действия не проверяется — отзыв обязан срабатывать и для
// просроченного, но ещё не вычищенного токена. Единственное предусловие —
// присутствие в списке.
func (s *Service) RevokeToken(ctx context.Context, wire string) error {
	const op = "service.tokens.RevokeToken"

	lg := log.From(ctx)

	token, err := models.DecodeToken(wire)
	if err != nil {
		lg.Warn("token_malformed",
			slog.String("op", op),
			slog.String("token", redact.Token()),
		)
		return fmt.Errorf("%s: %w", op, ErrMalformedToken)
	}

	key := s.listKey(token.UserID)

	if _, err := s.store.Position(ctx, key, wire); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("token_unknown",
				slog.String("op", op),
				slog.Uint64("user_id", token.UserID),
			)
			return fmt.Errorf("%s: %w", op, ErrUnknownToken)
		}

		lg.Error("token_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.Remove(ctx, key, wire); err != nil {
		lg.Error("token_remove_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// generateToken создаёт новый токен: свежее случайное значение и момент
// выпуска с секундной точностью (wire-форма хранит unix-секунды).
func (s *Service) generateToken(userID uint64) (*models.Token, error) {
	const op = "service.tokens.generateToken"

	value, err := random.String(s.cfg.TokenLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Token{
		UserID:   userID,
		Value:    value,
		IssuedAt: time.Now().UTC().Truncate(time.Second),
	}, nil
}
