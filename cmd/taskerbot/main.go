package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tasker-bot/internal/bot"
	"tasker-bot/internal/config"
	"tasker-bot/internal/maxapi"
	"tasker-bot/internal/repository"
	"tasker-bot/internal/ritual"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	moodRepo := repository.NewMoodRepository(db)

	client := maxapi.NewClient(cfg.MaxToken, cfg.MaxAPIURL)
	ritualCfg := ritual.DefaultConfig(cfg.RitualImageDir)

	taskerBot := bot.New(client, userRepo, chatRepo, taskRepo, moodRepo, ritualCfg)

	scheduler, err := ritual.NewScheduler(time.Local, userRepo, client, ritualCfg)
	if err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Tasker bot started.")
	if err := taskerBot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
