// Package models содержит доменные структуры сервиса голосовых заметок,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import "time"

// Статусы обработки записи.
const (
	StatusUploaded   = "uploaded"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Recording представляет собой основную модель голосовой заметки,
// используемую в бизнес-логике и хранилище.
// Поля Transcript, Summary и Duration могут быть nil —
// это означает, что запись ещё не обработана или длительность неизвестна.
type Recording struct {
	UUID       string    `json:"id"`         // Уникальный идентификатор записи
	UserUUID   string    `json:"user_id"`    // Идентификатор владельца записи
	Title      string    `json:"title"`      // Заголовок заметки
	AudioData  string    `json:"audio_data"` // Аудио в виде base64-строки
	Transcript *string   `json:"transcript"` // Транскрипт, появляется после обработки
	Summary    *string   `json:"summary"`    // Конспект, появляется после обработки
	Tags       []string  `json:"tags"`       // Теги заметки
	Notes      string    `json:"notes"`      // Произвольные заметки пользователя
	Duration   *float64  `json:"duration"`   // Длительность аудио в секундах
	Status     string    `json:"status"`     // Статус обработки: uploaded, processing, completed, failed
	CreatedAt  time.Time `json:"created_at"` // Дата создания записи
}

// DummyRecording используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Recording.
type DummyRecording struct {
	Title     string   `json:"title" validate:"required"`      // Заголовок заметки
	AudioData string   `json:"audio_data" validate:"required"` // Аудио в виде base64-строки
	Tags      []string `json:"tags"`                           // Теги заметки
	Notes     string   `json:"notes"`                          // Произвольные заметки
	Duration  *float64 `json:"duration"`                       // Длительность аудио в секундах
}

// DummyRecordingUpdate описывает частичное обновление записи.
// Обновлять разрешено только заголовок, теги и заметки,
// nil означает, что поле менять не нужно.
type DummyRecordingUpdate struct {
	Title *string   `json:"title"` // Новый заголовок
	Tags  *[]string `json:"tags"`  // Новый набор тегов
	Notes *string   `json:"notes"` // Новые заметки
}

// DummyProcessRequest описывает запрос на запуск обработки записи.
// Пустые поля заменяются значениями по умолчанию: режим full
// и предпочитаемый язык пользователя.
type DummyProcessRequest struct {
	Type     string `json:"type" validate:"omitempty,oneof=full summary chapters"` // Режим обработки
	Language string `json:"language"`                                              // Язык транскрипции
}
