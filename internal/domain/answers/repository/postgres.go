package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uzbooks/checkbot/internal/domain/model"
)

// PgKeyLoader читает ключи ответов из таблицы answer_keys в PostgreSQL.
type PgKeyLoader struct {
	db *pgxpool.Pool
}

// NewPgKeyLoader создает загрузчик поверх пула соединений.
func NewPgKeyLoader(db *pgxpool.Pool) *PgKeyLoader {
	return &PgKeyLoader{db: db}
}

func (l *PgKeyLoader) Load(ctx context.Context) (map[string]model.AnswerKey, error) {
	rows, err := l.db.Query(ctx, "SELECT book, question, answer FROM answer_keys")
	if err != nil {
		return nil, fmt.Errorf("failed to query answer keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]model.AnswerKey)
	for rows.Next() {
		var (
			book     string
			question int
			answer   string
		)
		if err := rows.Scan(&book, &question, &answer); err != nil {
			return nil, fmt.Errorf("failed to scan answer key row: %w", err)
		}

		book = strings.TrimSpace(book)
		answer = strings.ToLower(strings.TrimSpace(answer))
		if book == "" || answer == "" || question <= 0 {
			log.Printf("answers: skipped malformed row (book=%q question=%d)", book, question)
			continue
		}

		if keys[book] == nil {
			keys[book] = make(model.AnswerKey)
		}
		keys[book][question] = answer
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over answer key rows: %w", err)
	}

	return keys, nil
}
