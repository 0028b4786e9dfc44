package grading

import (
	"errors"
	"reflect"
	"testing"

	"github.com/uzbooks/checkbot/internal/domain/model"
)

func TestParseAnswers(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want map[int]string
	}{
		{"простая строка", "1a2b3c", map[int]string{1: "a", 2: "b", 3: "c"}},
		{"пробелы регистр и знаки", "  1 A , 2B3c ", map[int]string{1: "a", 2: "b", 3: "c"}},
		{"повтор номера: последний побеждает", "1a1b", map[int]string{1: "b"}},
		{"цифры без буквы отбрасываются", "12,3c", map[int]string{3: "c"}},
		{"буква без цифры отбрасывается", "a2b", map[int]string{2: "b"}},
		{"пустая строка", "", map[int]string{}},
		{"сплошной мусор", "?!, .", map[int]string{}},
		{"многозначные номера", "10a11b", map[int]string{10: "a", 11: "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAnswers(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseAnswers(%q) = %v, ожидалось %v", tc.raw, got, tc.want)
			}
		})
	}
}

// Повторный разбор той же строки дает тот же результат.
func TestParseAnswersIdempotent(t *testing.T) {
	raw := "1a 2b 3c 1d"
	first := ParseAnswers(raw)
	second := ParseAnswers(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("повторный разбор отличается: %v != %v", first, second)
	}
}

func TestGradePerfectScore(t *testing.T) {
	key := model.AnswerKey{1: "a", 2: "b", 3: "c"}
	res, err := Grade(key, map[int]string{1: "A", 2: "b", 3: "C"})
	if err != nil {
		t.Fatalf("Grade вернул ошибку: %v", err)
	}
	if res.Correct != 3 || res.Total != 3 {
		t.Errorf("Correct/Total = %d/%d, ожидалось 3/3", res.Correct, res.Total)
	}
	if res.Percent != 100.0 {
		t.Errorf("Percent = %v, ожидалось 100.0", res.Percent)
	}
	if res.Grade != 5 {
		t.Errorf("Grade = %d, ожидалось 5", res.Grade)
	}
	if len(res.Wrong) != 0 {
		t.Errorf("Wrong = %v, ожидался пустой список", res.Wrong)
	}
}

func TestGradePartial(t *testing.T) {
	key := model.AnswerKey{1: "a", 2: "b", 3: "c"}
	res, err := Grade(key, ParseAnswers("1a2x3c"))
	if err != nil {
		t.Fatalf("Grade вернул ошибку: %v", err)
	}
	if res.Correct != 2 {
		t.Errorf("Correct = %d, ожидалось 2", res.Correct)
	}
	if !reflect.DeepEqual(res.Wrong, []string{"2"}) {
		t.Errorf("Wrong = %v, ожидалось [2]", res.Wrong)
	}
	if res.Percent != 66.7 {
		t.Errorf("Percent = %v, ожидалось 66.7", res.Percent)
	}
	if res.Grade != 3 {
		t.Errorf("Grade = %d, ожидалось 3", res.Grade)
	}
}

// Пропущенные вопросы считаются ошибками, лишние номера не учитываются.
func TestGradeSparseAndExtra(t *testing.T) {
	key := model.AnswerKey{1: "a", 2: "b"}
	res, err := Grade(key, map[int]string{1: "a", 99: "z"})
	if err != nil {
		t.Fatalf("Grade вернул ошибку: %v", err)
	}
	if res.Correct != 1 || res.Total != 2 {
		t.Errorf("Correct/Total = %d/%d, ожидалось 1/2", res.Correct, res.Total)
	}
	if !reflect.DeepEqual(res.Wrong, []string{"2"}) {
		t.Errorf("Wrong = %v, ожидалось [2]", res.Wrong)
	}
}

// Список ошибочных вопросов идет по возрастанию номера.
func TestGradeWrongOrder(t *testing.T) {
	key := model.AnswerKey{10: "a", 2: "b", 7: "c"}
	res, err := Grade(key, map[int]string{})
	if err != nil {
		t.Fatalf("Grade вернул ошибку: %v", err)
	}
	if !reflect.DeepEqual(res.Wrong, []string{"2", "7", "10"}) {
		t.Errorf("Wrong = %v, ожидалось [2 7 10]", res.Wrong)
	}
}

func TestGradeEmptyKey(t *testing.T) {
	if _, err := Grade(model.AnswerKey{}, map[int]string{1: "a"}); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("ожидалась ErrEmptyKey, получено %v", err)
	}
}

// Пороги оценок: нижние границы включительно.
func TestGradeThresholds(t *testing.T) {
	cases := []struct {
		percent float64
		grade   int
	}{
		{100.0, 5},
		{86.0, 5},
		{85.9, 4},
		{71.0, 4},
		{70.9, 3},
		{56.0, 3},
		{55.9, 2},
		{0.0, 2},
	}
	for _, tc := range cases {
		if got := gradeFor(tc.percent); got != tc.grade {
			t.Errorf("gradeFor(%v) = %d, ожидалось %d", tc.percent, got, tc.grade)
		}
	}
}

// Повторная проверка той же пары (ключ, ответы) дает тот же результат.
func TestGradeIdempotent(t *testing.T) {
	key := model.AnswerKey{1: "a", 2: "b", 3: "c", 4: "d"}
	submitted := ParseAnswers("1a2x4d")
	first, err := Grade(key, submitted)
	if err != nil {
		t.Fatalf("Grade вернул ошибку: %v", err)
	}
	second, err := Grade(key, submitted)
	if err != nil {
		t.Fatalf("Grade вернул ошибку: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("повторная проверка отличается: %+v != %+v", first, second)
	}
}
