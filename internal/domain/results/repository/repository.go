package repository

import (
	"context"

	"github.com/uzbooks/checkbot/internal/domain/model"
)

// Appender дописывает одну строку в журнал результатов.
// Прежние записи никогда не изменяются и не удаляются.
type Appender interface {
	Append(ctx context.Context, entry model.ResultEntry) error
}
