package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/TronJG/telegram-bot/internal/bot"
	"github.com/TronJG/telegram-bot/internal/config"
	"github.com/TronJG/telegram-bot/internal/reminder"
	"github.com/TronJG/telegram-bot/internal/storage"
	"github.com/TronJG/telegram-bot/internal/store"
	"github.com/TronJG/telegram-bot/internal/web"
)

func main() {
	cfg := config.MustLoad()

	logger := mustLogger(cfg.AppEnv)
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var backend storage.Backend
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			sugar.Fatalw("postgres init failed", "err", err)
		}
		backend = pg
	} else {
		backend = storage.NewFile(cfg.DataFile)
	}
	defer backend.Close()

	// A corrupt data file stops startup here; silently starting empty
	// would discard the operator's records.
	st, err := store.Open(ctx, backend, cfg.MaxAccountsPerNumber, sugar)
	if err != nil {
		sugar.Fatalw("store open failed", "err", err)
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		sugar.Fatalw("bot init failed", "err", err)
	}
	botAPI.Debug = false

	notifier := bot.NewNotifier(botAPI, cfg.AdminChatID)
	engine := reminder.NewEngine(st, notifier, cfg.ReminderDaysBefore, sugar)

	sched := reminder.NewScheduler(engine, cfg.ReminderHour, sugar)
	if err := sched.Start(); err != nil {
		sugar.Fatalw("scheduler start failed", "err", err)
	}
	defer sched.Stop()

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: web.New(st, engine, cfg, sugar).Router(),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("http server failed", "err", err)
		}
	}()

	h := bot.NewHandler(botAPI, cfg, st, engine, sugar)

	// Graceful shutdown
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := botAPI.GetUpdatesChan(u)

	sugar.Infow("bot started", "username", botAPI.Self.UserName, "http", cfg.HTTPAddr)

	for {
		select {
		case <-ctx.Done():
			sugar.Infow("shutting down")
			shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = srv.Shutdown(shutCtx)
			shutCancel()
			return
		case upd := <-updates:
			h.HandleUpdate(ctx, upd)
		}
	}
}

func mustLogger(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if env == "prod" || env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	return l
}
