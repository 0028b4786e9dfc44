package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLang язык, на котором бот говорит, пока пользователь не выбрал свой.
const DefaultLang = "uz"

var bundle *i18n.Bundle

// Init загружает файлы локализации из встроенной файловой системы.
func Init() error {
	b := i18n.NewBundle(language.Uzbek)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("read locales dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return fmt.Errorf("read locale file %s: %w", e.Name(), err)
		}
		if _, err := b.ParseMessageFileBytes(data, e.Name()); err != nil {
			return fmt.Errorf("parse locale file %s: %w", e.Name(), err)
		}
	}

	bundle = b
	return nil
}

// T возвращает сообщение msgID на языке lang.
func T(lang, msgID string) string {
	loc := i18n.NewLocalizer(bundle, lang, DefaultLang)
	s, err := loc.Localize(&i18n.LocalizeConfig{MessageID: msgID})
	if err != nil {
		log.Printf("i18n: missing translation %q (%s): %v", msgID, lang, err)
		return msgID
	}
	return s
}

// Td возвращает сообщение msgID на языке lang с подстановкой данных шаблона.
func Td(lang, msgID string, data map[string]any) string {
	loc := i18n.NewLocalizer(bundle, lang, DefaultLang)
	s, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    msgID,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: missing translation %q (%s): %v", msgID, lang, err)
		return msgID
	}
	return s
}
