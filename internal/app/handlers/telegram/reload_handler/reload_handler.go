package reload_handler

import (
	"context"
	"log"

	"gopkg.in/telebot.v4"

	answers "github.com/uzbooks/checkbot/internal/domain/answers/service"
	"github.com/uzbooks/checkbot/internal/i18n"
)

// ReloadHandler обрабатывает команду /reload: перечитывает базу ключей.
// Команда доступна только администратору, для остальных она молча
// игнорируется — ни ответа, ни изменений.
type ReloadHandler struct {
	keys    *answers.KeyStore
	adminID int64
}

// NewReloadHandler возвращает структуру обработчика.
func NewReloadHandler(keys *answers.KeyStore, adminID int64) *ReloadHandler {
	return &ReloadHandler{keys: keys, adminID: adminID}
}

func (h *ReloadHandler) Handle(c telebot.Context) error {
	reply, ok := h.reloadFor(c.Sender())
	if !ok {
		return nil
	}
	return c.Send(reply)
}

// reloadFor выполняет перезагрузку, если отправитель — администратор.
// Для всех остальных возвращает ok=false: база не трогается, ответа нет.
func (h *ReloadHandler) reloadFor(sender *telebot.User) (reply string, ok bool) {
	if sender == nil || sender.ID != h.adminID {
		return "", false
	}

	if err := h.keys.Reload(context.Background()); err != nil {
		// Прежний снимок остается рабочим, сообщаем только администратору.
		log.Printf("reload: failed to reload answer keys: %v", err)
		return i18n.T(i18n.DefaultLang, "ReloadFailed"), true
	}

	log.Printf("reload: answer keys reloaded, %d books", h.keys.Books())
	return i18n.T(i18n.DefaultLang, "ReloadDone"), true
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *ReloadHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
