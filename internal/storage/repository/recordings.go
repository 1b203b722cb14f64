package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/smartnotes-backend/internal/models"
)

// CreateRecording вставляет новую голосовую заметку.
func (s *Storage) CreateRecording(ctx context.Context, rec models.Recording) error {
	const op = "storage.CreateRecording"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tags, err := json.Marshal(rec.Tags)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO recordings (uuid, user_uuid, title, audio_data, transcript,
			      summary, tags, notes, duration, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = s.Db.ExecContext(ctx, query,
		rec.UUID, rec.UserUUID, rec.Title, rec.AudioData, rec.Transcript,
		rec.Summary, tags, rec.Notes, rec.Duration, rec.Status, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetRecording возвращает заметку по её ID в рамках владельца.
// Возвращает ErrRecordingNotFound, если заметки нет или она принадлежит другому пользователю.
func (s *Storage) GetRecording(ctx context.Context, uid, userUUID string) (*models.Recording, error) {
	const op = "storage.GetRecording"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uuid, user_uuid, title, audio_data, transcript, summary,
				tags, notes, duration, status, created_at
			  FROM recordings WHERE uuid = $1 AND user_uuid = $2`
	row := s.Db.QueryRowContext(ctx, query, uid, userUUID)

	rec, err := scanRecording(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrRecordingNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rec, nil
}

// ListRecordingsByUser возвращает заметки пользователя, отсортированные
// от новых к старым, не более limit штук.
func (s *Storage) ListRecordingsByUser(ctx context.Context, userUUID string, limit int) ([]*models.Recording, error) {
	const op = "storage.ListRecordingsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uuid, user_uuid, title, audio_data, transcript, summary,
				tags, notes, duration, status, created_at
			  FROM recordings
			  WHERE user_uuid = $1
			  ORDER BY created_at DESC
			  LIMIT $2`
	rows, err := s.Db.QueryContext(ctx, query, userUUID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Recording
	for rows.Next() {
		rec, err := scanRecording(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// MarkRecordingProcessing переводит заметку в статус processing.
// Перевод выполняется одним условным UPDATE: если заметка уже
// обрабатывается, запрос не затрагивает строк и метод возвращает false.
func (s *Storage) MarkRecordingProcessing(ctx context.Context, uid, userUUID string) (bool, error) {
	const op = "storage.MarkRecordingProcessing"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE recordings
			  SET status = $1
			  WHERE uuid = $2 AND user_uuid = $3 AND status <> $1`
	result, err := s.Db.ExecContext(ctx, query, models.StatusProcessing, uid, userUUID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected > 0, nil
}

// SaveTranscript сохраняет транскрипт и завершает обработку заметки.
func (s *Storage) SaveTranscript(ctx context.Context, uid, transcript string) error {
	const op = "storage.SaveTranscript"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE recordings
			  SET transcript = $1, status = $2
			  WHERE uuid = $3`
	_, err := s.Db.ExecContext(ctx, query, transcript, models.StatusCompleted, uid)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SaveSummary сохраняет конспект и завершает обработку заметки.
func (s *Storage) SaveSummary(ctx context.Context, uid, summary string) error {
	const op = "storage.SaveSummary"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE recordings
			  SET summary = $1, status = $2
			  WHERE uuid = $3`
	_, err := s.Db.ExecContext(ctx, query, summary, models.StatusCompleted, uid)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateRecordingStatus выставляет статус заметки без иных изменений.
// Используется для пометки сбоя обработки и для отката захвата,
// если задача не попала в очередь.
func (s *Storage) UpdateRecordingStatus(ctx context.Context, uid, status string) (int, error) {
	const op = "storage.UpdateRecordingStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE recordings
			  SET status = $1
			  WHERE uuid = $2`
	result, err := s.Db.ExecContext(ctx, query, status, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// UpdateRecordingFields обновляет заголовок, теги и заметки записи
// и возвращает количество изменённых строк. Поля со значением nil не меняются.
func (s *Storage) UpdateRecordingFields(ctx context.Context, uid, userUUID string, upd models.DummyRecordingUpdate) (int, error) {
	const op = "storage.UpdateRecordingFields"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var tags any
	if upd.Tags != nil {
		b, err := json.Marshal(*upd.Tags)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		tags = b
	}

	query := `UPDATE recordings
			  SET title = COALESCE($1, title),
			      tags = COALESCE($2::jsonb, tags),
			      notes = COALESCE($3, notes)
			  WHERE uuid = $4 AND user_uuid = $5`
	result, err := s.Db.ExecContext(ctx, query, upd.Title, tags, upd.Notes, uid, userUUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteRecording удаляет заметку пользователя и возвращает количество удалённых строк.
func (s *Storage) DeleteRecording(ctx context.Context, uid, userUUID string) (int, error) {
	const op = "storage.DeleteRecording"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM recordings WHERE uuid = $1 AND user_uuid = $2`
	result, err := s.Db.ExecContext(ctx, query, uid, userUUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// scanner объединяет *sql.Row и *sql.Rows для общего кода сканирования.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecording(row scanner) (*models.Recording, error) {
	var rec models.Recording
	var tags []byte
	if err := row.Scan(&rec.UUID, &rec.UserUUID, &rec.Title, &rec.AudioData,
		&rec.Transcript, &rec.Summary, &tags, &rec.Notes, &rec.Duration,
		&rec.Status, &rec.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &rec.Tags); err != nil {
		return nil, err
	}
	return &rec, nil
}
