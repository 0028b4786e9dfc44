package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config параметры приложения.
type Config struct {
	TelegramBot struct {
		Token       string `yaml:"token"`
		PollTimeout int    `yaml:"poll_timeout"` // секунды лонгпуллинга
		AdminID     int64  `yaml:"admin_id"`     // Telegram ID администратора для /reload
		Debug       bool   `yaml:"debug"`
	} `yaml:"telegram_bot"`
	Storage struct {
		Type        string `yaml:"type"` // "xlsx" или "postgres"
		AnswersFile string `yaml:"answers_file"`
		ResultsFile string `yaml:"results_file"`
	} `yaml:"storage"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"dbname"`
	} `yaml:"database"`
}

// LoadConfig читает конфигурацию из yaml-файла. Файл .env (если есть) и
// переменные окружения TELEGRAM_BOT_TOKEN и ADMIN_ID перекрывают значения
// из файла, чтобы секреты не попадали в конфиг.
func LoadConfig(filename string) (*Config, error) {
	_ = godotenv.Load()

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config %s: %w", filename, err)
	}
	defer f.Close()

	config := &Config{}
	if err := yaml.NewDecoder(f).Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", filename, err)
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		config.TelegramBot.Token = token
	}
	if adminStr := os.Getenv("ADMIN_ID"); adminStr != "" {
		id, err := strconv.ParseInt(adminStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_ID %q: %w", adminStr, err)
		}
		config.TelegramBot.AdminID = id
	}

	if config.TelegramBot.Token == "" {
		return nil, fmt.Errorf("telegram bot token is not set")
	}
	if config.TelegramBot.PollTimeout <= 0 {
		config.TelegramBot.PollTimeout = 10
	}
	if config.Storage.Type == "" {
		config.Storage.Type = "xlsx"
	}
	if config.Storage.AnswersFile == "" {
		config.Storage.AnswersFile = "data/answers.xlsx"
	}
	if config.Storage.ResultsFile == "" {
		config.Storage.ResultsFile = "data/results.xlsx"
	}

	return config, nil
}
