// Package models содержит модель пользовательской сессии.
package models

import "time"

// Session представляет активную сессию пользователя.
// Токен сессии приходит от внешнего провайдера аутентификации
// и хранится как непрозрачная строка.
type Session struct {
	UUID         string    // Уникальный идентификатор сессии
	UserUUID     string    // Идентификатор пользователя
	SessionToken string    // Токен сессии
	ExpiresAt    time.Time // Дата истечения сессии
	CreatedAt    time.Time // Дата создания сессии
}
