package grading

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/uzbooks/checkbot/internal/domain/model"
)

// ErrEmptyKey возвращается при попытке проверить книгу без единого вопроса.
var ErrEmptyKey = errors.New("answer key has no questions")

var answerToken = regexp.MustCompile(`(\d+)([a-z])`)

// ParseAnswers разбирает свободный текст с ответами в отображение
// номер вопроса -> буква. Формат токена: цифры и сразу за ними одна буква
// ("1a2b3c"). Пробелы и регистр не важны, мусор между токенами пропускается,
// при повторе номера побеждает последний токен. Разбор никогда не падает:
// из пустой или полностью мусорной строки получается пустое отображение.
func ParseAnswers(raw string) map[int]string {
	var b strings.Builder
	for _, r := range raw {
		if !unicode.IsSpace(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	answers := make(map[int]string)
	for _, m := range answerToken.FindAllStringSubmatch(b.String(), -1) {
		q, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		answers[q] = m[2]
	}
	return answers
}

// Grade сравнивает отправленные ответы с ключом книги. Вопросы обходятся
// по возрастанию номера, поэтому список ошибочных вопросов детерминирован.
// Отсутствующий ответ считается ошибкой, лишние номера игнорируются.
func Grade(key model.AnswerKey, submitted map[int]string) (model.GradeResult, error) {
	total := len(key)
	if total == 0 {
		return model.GradeResult{}, ErrEmptyKey
	}

	res := model.GradeResult{Total: total, Wrong: []string{}}
	for _, q := range key.Questions() {
		if strings.ToLower(submitted[q]) == key[q] {
			res.Correct++
		} else {
			res.Wrong = append(res.Wrong, strconv.Itoa(q))
		}
	}

	res.Percent = math.Round(float64(res.Correct)/float64(total)*1000) / 10
	res.Grade = gradeFor(res.Percent)
	return res, nil
}

// gradeFor переводит процент в пятибалльную оценку.
// Пороги фиксированные: 86% и выше — 5, 71% — 4, 56% — 3, иначе 2.
func gradeFor(percent float64) int {
	switch {
	case percent >= 86:
		return 5
	case percent >= 71:
		return 4
	case percent >= 56:
		return 3
	default:
		return 2
	}
}
