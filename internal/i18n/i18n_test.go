package i18n

import "testing"

// Все идентификаторы сообщений, которые использует бот.
var allMessageIDs = []string{
	"ChooseLanguage", "AskName", "AskBook", "BookNotFound", "AskAnswers",
	"ResultTitle", "ResultCorrect", "ResultPercent", "ResultGrade",
	"ResultWrong", "StartAgain", "StartFirst", "ReloadDone", "ReloadFailed",
}

func TestTranslateUzbek(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	got := T("uz", "AskName")
	if got != "Ism-familiyangizni kiriting:" {
		t.Errorf("T(uz, AskName) = %q", got)
	}
}

func TestTranslateRussian(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	got := T("ru", "AskName")
	if got != "Введите имя и фамилию:" {
		t.Errorf("T(ru, AskName) = %q", got)
	}
}

// TestAllMessagesResolve проверяет, что каждый идентификатор переведен на оба языка.
func TestAllMessagesResolve(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	for _, lang := range []string{"uz", "ru"} {
		for _, id := range allMessageIDs {
			if got := T(lang, id); got == id || got == "" {
				t.Errorf("T(%s, %s) не переведено: %q", lang, id, got)
			}
		}
	}
}

// TestUnknownLanguageFallsBack неизвестный язык откатывается на узбекский.
func TestUnknownLanguageFallsBack(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got, want := T("de", "AskBook"), T("uz", "AskBook"); got != want {
		t.Errorf("T(de, AskBook) = %q, ожидалось %q", got, want)
	}
}
