package models

// Credentials — соль и SHA3-256 хэш пароля одного пользователя.
// Запись принадлежит внешнему хранилищу пользователей: сервис получает её
// вместе с предъявленным паролем для сравнения и никогда не пишет обратно.
type Credentials struct {
	Salt []byte
	Hash []byte
}
