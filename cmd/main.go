package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"planning-bot/config"
	"planning-bot/internal/app/service"
	"planning-bot/internal/delivery/telegram"
	"planning-bot/internal/delivery/telegram/flows"
	"planning-bot/internal/delivery/telegram/session"
	"planning-bot/internal/repository/sqlite"
	"planning-bot/pkg/workerpool"
)

func setupLogging(level, format string) {
	logrus.SetOutput(os.Stdout)
	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	setupLogging(cfg.LogLevel, cfg.LogFormat)
	logrus.Info("starting planning bot")

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// One worker: updates are applied one at a time, in arrival order.
	pool := workerpool.NewWorkerPool(1, cfg.WorkerQueue)
	defer pool.Close()

	deriver := service.NewDeriver(service.WithBreakThreshold(cfg.BreakThreshold))
	env := &flows.Env{
		Planning: service.NewPlanningService(sqlite.NewSqliteSnapshotRepo(db), deriver),
		Shops:    service.NewShopService(sqlite.NewSqliteShopRepo(db)),
		Sessions: session.NewStore(),
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: time.Duration(cfg.PollTimeout) * time.Second},
	})
	if err != nil {
		logrus.Fatalf("failed to start bot: %v", err)
	}

	handler := telegram.NewHandler(bot, env, service.NewAsyncService(pool))
	handler.Register()

	logrus.WithFields(logrus.Fields{
		"db":              cfg.DBPath,
		"break_threshold": cfg.BreakThreshold,
	}).Info("bot started")
	bot.Start()
}
