// service содержит бизнес-логику сервиса токенов: проверку учётных данных,
// выпуск/валидацию/отзыв bearer-токенов и работу с хранилищем через
// интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Экземпляр Service не хранит состояние запроса и безопасен для
//     конкурентного использования из разных горутин при условии, что
//     переданное хранилище (storage.TokenLists) потокобезопасно.
//   - Сервис не держит собственных блокировок: вся координация — на стороне
//     атомарных per-key операций хранилища. Составные последовательности
//     (len→trim→push в IssueToken, position→remove в Validate/Revoke)
//     атомарности как целое не имеют; допустимые гонки описаны у методов.
//   - Ошибки возвращаются и далее маппятся транспортом на HTTP-статусы
//     (см. комментарии к переменным ошибок ниже). Любая ошибка, не являющаяся
//     одной из сентинельных, означает недоступность хранилища и для
//     вызывающей стороны ретраибельна.
package service

import (
	"errors"

	"github.com/korotkovaa/token-service/internal/config"
	"github.com/korotkovaa/token-service/internal/storage"
)

var (
	// ErrInvalidCredentials — пара пароль/соль/хэш не сходится.
	// Токен не выпускается, состояние хранилища не меняется.
	// Транспорт: 401 (HTTP), неотличимо от прочих ошибок входа.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMalformedToken — предъявленная строка не является корректной
	// wire-формой токена; до обращения к хранилищу дело не доходит.
	// Транспорт: 401 (HTTP).
	ErrMalformedToken = errors.New("malformed token")

	// ErrUnknownToken — токен синтаксически корректен, но в живом списке
	// пользователя его нет: не выпускался, уже отозван или вытеснен.
	// Эти случаи намеренно не различаются. Транспорт: 401 (HTTP).
	ErrUnknownToken = errors.New("unknown token")

	// ErrTokenExpired — токен найден, но окно валидности истекло;
	// запись при этом лениво удаляется из списка. Транспорт: 401 (HTTP).
	ErrTokenExpired = errors.New("token expired")
)

// Service описывает бизнес-логику сервиса токенов.
type Service struct {
	store storage.TokenLists
	cfg   config.TokensConfig
}

// New создаёт новый экземпляр Service.
func New(store storage.TokenLists, cfg config.TokensConfig) *Service {
	return &Service{
		store: store,
		cfg:   cfg,
	}
}
