package start_handler

import (
	"gopkg.in/telebot.v4"

	"github.com/uzbooks/checkbot/internal/domain/session"
)

// StartHandler обрабатывает команду /start: сбрасывает сессию пользователя
// и начинает диалог с выбора языка.
type StartHandler struct {
	sessions *session.Service
}

// NewStartHandler возвращает структуру обработчика.
func NewStartHandler(sessions *session.Service) *StartHandler {
	return &StartHandler{sessions: sessions}
}

func (h *StartHandler) Handle(c telebot.Context) error {
	return c.Send(h.sessions.Reset(c.Sender().ID))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
