package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	BotToken    string
	AdminChatID int64

	// DataFile is the JSON store path; DatabaseURL, when set, switches
	// persistence to Postgres instead.
	DataFile    string
	DatabaseURL string

	HTTPAddr string
	AppEnv   string

	MaxAccountsPerNumber int
	ReminderDaysBefore   int
	ReminderHour         int
}

func MustLoad() Config {
	bt := os.Getenv("BOT_TOKEN")
	if bt == "" {
		log.Fatal("BOT_TOKEN is required")
	}
	admin := os.Getenv("ADMIN_CHAT_ID")
	if admin == "" {
		log.Fatal("ADMIN_CHAT_ID is required")
	}
	adminID, err := strconv.ParseInt(admin, 10, 64)
	if err != nil {
		log.Fatalf("ADMIN_CHAT_ID must be a chat id: %v", err)
	}

	return Config{
		BotToken:             bt,
		AdminChatID:          adminID,
		DataFile:             envOr("DATA_FILE", "data.json"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		HTTPAddr:             envOr("HTTP_ADDR", ":5000"),
		AppEnv:               envOr("APP_ENV", "development"),
		MaxAccountsPerNumber: envInt("MAX_ACCOUNTS_PER_NUMBER", 3),
		ReminderDaysBefore:   envInt("REMINDER_DAYS_BEFORE", 1),
		ReminderHour:         envInt("REMINDER_HOUR", 8),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("%s must be a positive number, got %q", key, v)
	}
	return n
}
