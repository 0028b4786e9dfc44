package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/telebot.v4"

	"github.com/uzbooks/checkbot/internal/app/handlers/telegram/reload_handler"
	"github.com/uzbooks/checkbot/internal/app/handlers/telegram/start_handler"
	"github.com/uzbooks/checkbot/internal/app/handlers/telegram/text_handler"
	answersRepo "github.com/uzbooks/checkbot/internal/domain/answers/repository"
	answersService "github.com/uzbooks/checkbot/internal/domain/answers/service"
	resultsRepo "github.com/uzbooks/checkbot/internal/domain/results/repository"
	resultsService "github.com/uzbooks/checkbot/internal/domain/results/service"
	"github.com/uzbooks/checkbot/internal/domain/session"
	"github.com/uzbooks/checkbot/internal/i18n"
	"github.com/uzbooks/checkbot/internal/infra/config"
	"github.com/uzbooks/checkbot/middleware"
)

type App struct {
	config *config.Config
	bot    *telebot.Bot
	db     *pgxpool.Pool // nil при xlsx-хранилище

	keyStore  *answersService.KeyStore
	resultLog *resultsService.ResultLog
	sessions  *session.Service
}

func NewApp(configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	if err := i18n.Init(); err != nil {
		return nil, fmt.Errorf("i18n.Init: %w", err)
	}

	app := &App{config: configImpl}
	if err := app.initStorage(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.sessions = session.NewService(app.keyStore, app.resultLog)

	return app, nil
}

// initStorage выбирает реализацию хранилищ по типу из конфигурации:
// Excel-файлы либо PostgreSQL, для ключей ответов и журнала результатов разом.
func (app *App) initStorage() error {
	var (
		keyLoader answersRepo.KeyLoader
		appender  resultsRepo.Appender
	)

	switch app.config.Storage.Type {
	case "postgres":
		db, err := InitDatabase(app.config)
		if err != nil {
			return err
		}
		app.db = db
		keyLoader = answersRepo.NewPgKeyLoader(db)
		appender = resultsRepo.NewPgAppender(db)
	case "xlsx":
		keyLoader = answersRepo.NewXLSXKeyLoader(app.config.Storage.AnswersFile)
		appender = resultsRepo.NewXLSXAppender(app.config.Storage.ResultsFile)
	default:
		return fmt.Errorf("unknown storage type %q", app.config.Storage.Type)
	}

	keyStore, err := answersService.NewKeyStore(context.Background(), keyLoader)
	if err != nil {
		return err
	}
	app.keyStore = keyStore
	app.resultLog = resultsService.NewResultLog(appender)

	log.Printf("storage %s ready, %d books loaded", app.config.Storage.Type, keyStore.Books())
	return nil
}

// ListenAndServe запускает Telegram бота.
func (app *App) ListenAndServe() error {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: &telebot.LongPoller{Timeout: time.Duration(app.config.TelegramBot.PollTimeout) * time.Second},
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	if app.config.TelegramBot.Debug {
		app.bot.Use(middleware.Logger())
	}
	app.bot.Use(middleware.Recover())

	app.bootstrapHandlersTelegram()

	app.bot.Start()
	return nil
}

// bootstrapHandlersTelegram регистрирует обработчики для бота.
func (app *App) bootstrapHandlersTelegram() {
	app.bot.Handle("/start", start_handler.NewStartHandler(app.sessions).GetHandlerFunc())
	app.bot.Handle("/reload", reload_handler.NewReloadHandler(app.keyStore, app.config.TelegramBot.AdminID).GetHandlerFunc())
	app.bot.Handle(telebot.OnText, text_handler.NewTextHandler(app.sessions).GetHandlerFunc())
}
