// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, реферальную информацию и языковые настройки.
// Структура используется в бизнес-логике и при работе с хранилищем.
package models

import "time"

// Статусы подписки пользователя.
const (
	SubscriptionTrial   = "trial"
	SubscriptionPremium = "premium"
)

// User представляет пользователя сервиса.
type User struct {
	UUID               string    `json:"id"`                  // Уникальный идентификатор пользователя
	Email              string    `json:"email"`               // Электронная почта
	Name               string    `json:"name"`                // Отображаемое имя
	Picture            string    `json:"picture"`             // Ссылка на аватар
	SubscriptionStatus string    `json:"subscription_status"` // Статус подписки, trial или premium
	ReferralCode       string    `json:"referral_code"`       // Реферальный код пользователя
	DiscountAmount     float64   `json:"discount_amount"`     // Накопленная скидка в евро
	PreferredLanguage  string    `json:"preferred_language"`  // Предпочитаемый язык транскрипции
	CreatedAt          time.Time `json:"created_at"`          // Дата создания учётной записи
}

// ReferralInfo описывает реферальную программу пользователя:
// код для приглашений и стоимость подписки с учетом скидки.
type ReferralInfo struct {
	ReferralCode   string  `json:"referral_code"`   // Реферальный код
	DiscountAmount float64 `json:"discount_amount"` // Накопленная скидка в евро
	MonthlyCost    float64 `json:"monthly_cost"`    // Цена подписки в месяц после скидки
}

// DummyLanguage используется для приёма данных из JSON-запроса
// на смену предпочитаемого языка.
type DummyLanguage struct {
	Language string `json:"language" validate:"required"` // Код языка, например en или it
}

// TrialNotice содержит данные для уведомления пользователя
// об окончании пробного периода.
type TrialNotice struct {
	Email        string
	Name         string
	TrialEndDate time.Time
}
