package model

// Step этап диалога пользователя.
type Step string

const (
	StepLanguage Step = "language" // выбор языка
	StepName     Step = "name"     // ввод имени и фамилии
	StepBook     Step = "book"     // ввод номера книги
	StepAnswers  Step = "answers"  // отправка ответов
)

// Session состояние диалога одного пользователя. Живет только в памяти
// и удаляется после выдачи результата или при повторном /start.
type Session struct {
	Step Step
	Lang string
	Name string
	Book string
	Key  AnswerKey
}
