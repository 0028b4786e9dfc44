package repository

import (
	"context"

	"github.com/uzbooks/checkbot/internal/domain/model"
)

// KeyLoader загружает ключи ответов всех книг из внешнего хранилища.
// Реализации: Excel-файл (основная, формат "answers.xlsx") и PostgreSQL.
type KeyLoader interface {
	Load(ctx context.Context) (map[string]model.AnswerKey, error)
}
