package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/uzbooks/checkbot/internal/domain/model"
	"github.com/uzbooks/checkbot/internal/domain/results/repository"
)

// ResultLog сериализует запись результатов. Excel-журнал дописывается
// через чтение и перезапись всего файла, поэтому одновременные завершения
// двух сессий без блокировки теряли бы записи.
type ResultLog struct {
	appender repository.Appender
	mu       sync.Mutex
}

// NewResultLog создает журнал поверх выбранного хранилища.
func NewResultLog(appender repository.Appender) *ResultLog {
	return &ResultLog{appender: appender}
}

// Append дописывает запись. Ошибка записи возвращается вызывающему,
// уже посчитанный результат при этом не теряется.
func (l *ResultLog) Append(ctx context.Context, entry model.ResultEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.appender.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to append result: %w", err)
	}
	return nil
}
