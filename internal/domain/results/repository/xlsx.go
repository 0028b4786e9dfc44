package repository

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/uzbooks/checkbot/internal/domain/model"
)

// timeLayout формат отметки времени в журнале.
const timeLayout = "2006-01-02 15:04:05"

// resultHeader порядок столбцов журнала, совпадает с форматом файла results.xlsx.
var resultHeader = []any{"Sana", "Ism-familiya", "Kitob", "To‘g‘ri", "Jami", "Foiz", "Baho", "Xato savollar"}

// XLSXAppender дописывает результаты в Excel-файл. Если файла еще нет,
// он создается с единственной записью и строкой заголовков.
type XLSXAppender struct {
	filename string
}

// NewXLSXAppender создает журнал для указанного файла.
func NewXLSXAppender(filename string) *XLSXAppender {
	return &XLSXAppender{filename: filename}
}

func (a *XLSXAppender) Append(_ context.Context, entry model.ResultEntry) error {
	wrong := "-"
	if len(entry.Wrong) > 0 {
		wrong = strings.Join(entry.Wrong, ", ")
	}
	row := []any{
		entry.CreatedAt.Format(timeLayout),
		entry.Name,
		entry.Book,
		entry.Correct,
		entry.Total,
		entry.Percent,
		entry.Grade,
		wrong,
	}

	if _, err := os.Stat(a.filename); os.IsNotExist(err) {
		return a.create(row)
	}

	f, err := excelize.OpenFile(a.filename)
	if err != nil {
		return fmt.Errorf("failed to open results file %s: %w", a.filename, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read results sheet: %w", err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return fmt.Errorf("failed to compute append position: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to append result row: %w", err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save results file %s: %w", a.filename, err)
	}
	return nil
}

// create пишет новый файл с заголовком и первой записью.
func (a *XLSXAppender) create(row []any) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &resultHeader); err != nil {
		return fmt.Errorf("failed to write results header: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &row); err != nil {
		return fmt.Errorf("failed to write result row: %w", err)
	}
	if err := f.SaveAs(a.filename); err != nil {
		return fmt.Errorf("failed to create results file %s: %w", a.filename, err)
	}
	return nil
}
