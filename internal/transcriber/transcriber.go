// Package transcriber имитирует обработку аудио языковой моделью.
// Результаты берутся из фиксированной таблицы по паре (язык, режим):
// содержимое детерминировано, что упрощает тестирование и демонстрацию
// без обращения к внешним AI-сервисам.
package transcriber

import (
	"context"
	"errors"
	"fmt"
)

// Режимы обработки записи.
const (
	ModeFull     = "full"
	ModeSummary  = "summary"
	ModeChapters = "chapters"
)

// ErrUnknownMode возвращается для режима обработки вне известного набора.
var ErrUnknownMode = errors.New("unknown processing mode")

// DefaultLanguage используется, когда язык не задан ни в запросе,
// ни в настройках пользователя.
const DefaultLanguage = "en"

// supportedLanguages перечисляет языки в порядке их добавления в продукт.
var supportedLanguages = []string{"en", "it", "es", "fr", "de"}

// SupportedLanguages возвращает коды поддерживаемых языков транскрипции.
func SupportedLanguages() []string {
	result := make([]string, len(supportedLanguages))
	copy(result, supportedLanguages)
	return result
}

// IsSupportedLanguage сообщает, поддерживается ли язык транскрипции.
func IsSupportedLanguage(language string) bool {
	_, ok := contentByLanguage[language]
	return ok
}

// Generator выдаёт канонические результаты обработки записи.
type Generator struct{}

// New создает новый Generator.
func New() *Generator {
	return &Generator{}
}

// Transcript возвращает полный транскрипт лекции на заданном языке.
func (g *Generator) Transcript(language string) string {
	return lookup(language).transcript
}

// Summary возвращает конспект лекции на заданном языке.
func (g *Generator) Summary(language string) string {
	return lookup(language).summary
}

// Chapters возвращает разбивку лекции по главам на заданном языке.
// Результат предназначен для поля summary записи.
func (g *Generator) Chapters(language string) string {
	return "**Chapter Breakdown:**\n" + lookup(language).chapters
}

// Generate возвращает текст обработки для пары (режим, язык).
// Неизвестный режим дает ErrUnknownMode.
func (g *Generator) Generate(ctx context.Context, mode, language string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	switch mode {
	case ModeFull:
		return g.Transcript(language), nil
	case ModeSummary:
		return g.Summary(language), nil
	case ModeChapters:
		return g.Chapters(language), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func lookup(language string) content {
	if c, ok := contentByLanguage[language]; ok {
		return c
	}
	return contentByLanguage[DefaultLanguage]
}
