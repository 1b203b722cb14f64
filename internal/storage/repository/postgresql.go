// Package repository реализует хранилище данных на основе PostgreSQL
// для управления голосовыми заметками, пользователями и сессиями.
// Предоставляет методы создания, чтения, обновления и удаления записей,
// а также выборки для фоновой обработки и уведомлений.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки хранилища. Сервисы сравнивают их через errors.Is,
// чтобы отличать отсутствие записи от сбоя базы данных.
var (
	ErrRecordingNotFound = errors.New("recording not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrSessionNotFound   = errors.New("session not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с заметками, пользователями и сессиями.
type Storage struct {
	Db *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		Db: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.Db.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'recordings'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table recordings missing or query error: %w", err)
	}
	return nil
}
