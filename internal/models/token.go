package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Token — выпущенный bearer-токен: кому он принадлежит, случайное значение
// и момент выпуска (UTC, секундная точность).
//
// Token неизменяем после создания: «протухание» — это предикат от IssuedAt
// и текущего времени, а не мутация самой записи.
type Token struct {
	UserID   uint64
	Value    string
	IssuedAt time.Time
}

// wireToken — сериализованная форма токена. Формат зафиксирован как контракт
// между выпускающей и проверяющей сторонами: JSON-тройка с временем выпуска
// в unix-секундах. Поля-указатели нужны, чтобы Decode отличал отсутствующее
// поле от нулевого значения.
type wireToken struct {
	UserID   *uint64 `json:"user_id"`
	Value    *string `json:"token_str"`
	IssuedAt *int64  `json:"birth"`
}

// Encode возвращает wire-форму токена — ровно те байты, которые клиент
// хранит и предъявляет в последующих запросах. Кодирование детерминировано:
// повторный Encode того же токена даёт ту же строку.
func (t *Token) Encode() (string, error) {
	const op = "models.token.Encode"

	sec := t.IssuedAt.Unix()
	b, err := json.Marshal(wireToken{
		UserID:   &t.UserID,
		Value:    &t.Value,
		IssuedAt: &sec,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(b), nil
}

// DecodeToken разбирает wire-форму токена. Вход приходит из недоверенной
// сети, поэтому любая структурная проблема (не-JSON, неверные типы полей,
// отсутствующие поля) — это обычная ошибка валидации, а не паника.
func DecodeToken(wire string) (*Token, error) {
	const op = "models.token.DecodeToken"

	var w wireToken
	if err := json.Unmarshal([]byte(wire), &w); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if w.UserID == nil || w.Value == nil || w.IssuedAt == nil {
		return nil, fmt.Errorf("%s: missing required field", op)
	}

	return &Token{
		UserID:   *w.UserID,
		Value:    *w.Value,
		IssuedAt: time.Unix(*w.IssuedAt, 0).UTC(),
	}, nil
}

// TokenListKey возвращает имя списка в Redis-подобном хранилище, в котором
// лежат живые токены пользователя. Отображение инъективно и стабильно между
// перезапусками процесса: чистая функция от префикса и идентификатора.
func TokenListKey(prefix string, userID uint64) string {
	return fmt.Sprintf("%s:id%d", prefix, userID)
}
