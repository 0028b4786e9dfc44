package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uzbooks/checkbot/internal/domain/model"
)

// PgAppender пишет результаты в таблицу results в PostgreSQL.
type PgAppender struct {
	db *pgxpool.Pool
}

// NewPgAppender создает журнал поверх пула соединений.
func NewPgAppender(db *pgxpool.Pool) *PgAppender {
	return &PgAppender{db: db}
}

func (a *PgAppender) Append(ctx context.Context, entry model.ResultEntry) error {
	wrong := "-"
	if len(entry.Wrong) > 0 {
		wrong = strings.Join(entry.Wrong, ", ")
	}

	_, err := a.db.Exec(ctx, `
                INSERT INTO results (created_at, name, book, correct, total, percent, grade, wrong)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        `, entry.CreatedAt, entry.Name, entry.Book, entry.Correct, entry.Total, entry.Percent, entry.Grade, wrong)
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}
	return nil
}
