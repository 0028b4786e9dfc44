package repository

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/uzbooks/checkbot/internal/domain/model"
)

// bookColumn заголовок столбца с номером книги.
const bookColumn = "book"

// XLSXKeyLoader читает ключи ответов из Excel-файла. Первая строка листа —
// заголовки: столбец "book" содержит номер книги, каждый остальной заголовок
// обязан быть целым номером вопроса. Пустая ячейка означает, что вопроса
// в этой книге нет.
type XLSXKeyLoader struct {
	filename string
}

// NewXLSXKeyLoader создает загрузчик для указанного файла.
func NewXLSXKeyLoader(filename string) *XLSXKeyLoader {
	return &XLSXKeyLoader{filename: filename}
}

func (l *XLSXKeyLoader) Load(_ context.Context) (map[string]model.AnswerKey, error) {
	f, err := excelize.OpenFile(l.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open answers file %s: %w", l.filename, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("answers file %s has no header row", l.filename)
	}

	// Разбираем заголовки: ищем столбец книги, остальные — номера вопросов.
	header := rows[0]
	bookCol := -1
	questions := make(map[int]int) // индекс столбца -> номер вопроса
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if strings.EqualFold(h, bookColumn) {
			bookCol = i
			continue
		}
		q, err := strconv.Atoi(h)
		if err != nil || q <= 0 {
			return nil, fmt.Errorf("invalid question column %q in %s", h, l.filename)
		}
		questions[i] = q
	}
	if bookCol == -1 {
		return nil, fmt.Errorf("answers file %s has no %q column", l.filename, bookColumn)
	}

	keys := make(map[string]model.AnswerKey)
	for _, row := range rows[1:] {
		if bookCol >= len(row) {
			continue
		}
		book := strings.TrimSpace(row[bookCol])
		if book == "" {
			continue
		}

		key := make(model.AnswerKey)
		for i, q := range questions {
			if i >= len(row) {
				continue
			}
			ans := strings.ToLower(strings.TrimSpace(row[i]))
			if ans == "" {
				continue
			}
			key[q] = ans
		}
		if len(key) == 0 {
			// Книгу без вопросов проверить нельзя, не пускаем ее в хранилище.
			log.Printf("answers: book %s has empty key, skipped", book)
			continue
		}
		keys[book] = key
	}

	return keys, nil
}
