package text_handler

import (
	"context"
	"strings"

	"gopkg.in/telebot.v4"

	"github.com/uzbooks/checkbot/internal/domain/session"
)

// TextHandler передает текстовые сообщения в сервис диалогов.
type TextHandler struct {
	sessions *session.Service
}

// NewTextHandler возвращает структуру обработчика.
func NewTextHandler(sessions *session.Service) *TextHandler {
	return &TextHandler{sessions: sessions}
}

func (h *TextHandler) Handle(c telebot.Context) error {
	text := c.Text()
	// Незарегистрированные команды телебот отдает в OnText.
	// В диалог они не попадают: иначе "/help" на этапе ответов
	// разобрался бы в пустую карту и закрыл сессию двойкой.
	if strings.HasPrefix(text, "/") {
		return nil
	}

	reply, err := h.sessions.HandleText(context.Background(), c.Sender().ID, text)
	if reply != "" {
		// Ответ отправляется даже при ошибке записи в журнал.
		if sendErr := c.Send(reply); sendErr != nil {
			return sendErr
		}
	}
	return err
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc.
func (h *TextHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
