package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	answers "github.com/uzbooks/checkbot/internal/domain/answers/service"
	"github.com/uzbooks/checkbot/internal/domain/grading"
	"github.com/uzbooks/checkbot/internal/domain/model"
	"github.com/uzbooks/checkbot/internal/i18n"
)

// KeyStore часть хранилища ключей, нужная диалогу.
type KeyStore interface {
	Lookup(book string) (model.AnswerKey, error)
}

// ResultLog часть журнала результатов, нужная диалогу.
type ResultLog interface {
	Append(ctx context.Context, entry model.ResultEntry) error
}

// Service ведет диалоги пользователей. Одна сессия на пользователя,
// таблица сессий живет только в памяти и защищена мьютексом.
type Service struct {
	keys    KeyStore
	results ResultLog

	mu       sync.Mutex
	sessions map[int64]*model.Session

	now func() time.Time
}

// NewService создает сервис диалогов.
func NewService(keys KeyStore, results ResultLog) *Service {
	return &Service{
		keys:     keys,
		results:  results,
		sessions: make(map[int64]*model.Session),
		now:      time.Now,
	}
}

// Reset сбрасывает сессию пользователя и начинает диалог заново.
// Возвращает меню выбора языка: язык еще не выбран, поэтому меню на узбекском.
func (s *Service) Reset(userID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = &model.Session{Step: model.StepLanguage}
	return i18n.T(i18n.DefaultLang, "ChooseLanguage")
}

// Clear удаляет сессию пользователя.
func (s *Service) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// HandleText обрабатывает текстовое сообщение на текущем этапе диалога.
// Пустой ответ означает, что сообщение молча игнорируется.
// Ошибка возвращается вместе с уже готовым ответом: результат пользователю
// доставляется даже тогда, когда запись в журнал не удалась.
func (s *Service) HandleText(ctx context.Context, userID int64, text string) (string, error) {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	sess, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return i18n.T(i18n.DefaultLang, "StartFirst"), nil
	}

	if sess.Step == model.StepAnswers {
		// Завершение пишет в журнал. Мьютекс таблицы на время записи
		// не держим, иначе один медленный файл остановил бы диалоги
		// всех остальных пользователей.
		done := *sess
		delete(s.sessions, userID)
		s.mu.Unlock()
		return s.finish(ctx, &done, text)
	}
	defer s.mu.Unlock()

	switch sess.Step {
	case model.StepLanguage:
		switch text {
		case "1":
			sess.Lang = "uz"
		case "2":
			sess.Lang = "ru"
		default:
			// Не пункт меню — молчим и ждем корректный выбор.
			return "", nil
		}
		sess.Step = model.StepName
		return i18n.T(sess.Lang, "AskName"), nil

	case model.StepName:
		if text == "" {
			return i18n.T(sess.Lang, "AskName"), nil
		}
		sess.Name = text
		sess.Step = model.StepBook
		return i18n.T(sess.Lang, "AskBook"), nil

	case model.StepBook:
		key, err := s.keys.Lookup(text)
		if err != nil {
			if errors.Is(err, answers.ErrBookNotFound) {
				return i18n.T(sess.Lang, "BookNotFound"), nil
			}
			return i18n.T(sess.Lang, "BookNotFound"), err
		}
		sess.Book = text
		sess.Key = key
		sess.Step = model.StepAnswers
		return i18n.T(sess.Lang, "AskAnswers"), nil
	}

	return i18n.T(i18n.DefaultLang, "StartFirst"), nil
}

// finish проверяет ответы и пишет запись в журнал. Сессия к этому моменту
// уже удалена из таблицы, sess — ее личная копия.
func (s *Service) finish(ctx context.Context, sess *model.Session, text string) (string, error) {
	submitted := grading.ParseAnswers(text)
	res, err := grading.Grade(sess.Key, submitted)
	if err != nil {
		// Книги с пустым ключом отсеиваются при загрузке, сюда они не доходят.
		return "", fmt.Errorf("failed to grade answers for book %s: %w", sess.Book, err)
	}

	entry := model.ResultEntry{
		CreatedAt:   s.now(),
		Name:        sess.Name,
		Book:        sess.Book,
		GradeResult: res,
	}
	reply := renderResult(sess, res)

	if err := s.results.Append(ctx, entry); err != nil {
		log.Printf("session: failed to persist result for %s: %v", sess.Name, err)
		return reply, err
	}
	return reply, nil
}

// renderResult собирает итоговый отчет на языке сессии.
func renderResult(sess *model.Session, res model.GradeResult) string {
	lang := sess.Lang

	var b strings.Builder
	fmt.Fprintf(&b, "👤 %s\n", sess.Name)
	fmt.Fprintf(&b, "📘 Kitob: %s\n\n", sess.Book)
	fmt.Fprintf(&b, "%s:\n", i18n.T(lang, "ResultTitle"))
	fmt.Fprintf(&b, "%s: %d/%d\n", i18n.T(lang, "ResultCorrect"), res.Correct, res.Total)
	fmt.Fprintf(&b, "%s: %s%%\n", i18n.T(lang, "ResultPercent"), strconv.FormatFloat(res.Percent, 'f', 1, 64))
	fmt.Fprintf(&b, "%s: %d\n", i18n.T(lang, "ResultGrade"), res.Grade)

	if len(res.Wrong) > 0 {
		fmt.Fprintf(&b, "%s: %s", i18n.T(lang, "ResultWrong"), strings.Join(res.Wrong, ", "))
	}

	fmt.Fprintf(&b, "\n\n%s", i18n.T(lang, "StartAgain"))
	return b.String()
}
