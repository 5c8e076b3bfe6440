package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/lolclient/internal/api/lol"
	"github.com/omarshaarawi/lolclient/internal/bot"
	"github.com/omarshaarawi/lolclient/internal/config"
	"github.com/omarshaarawi/lolclient/internal/scheduler"
	"github.com/omarshaarawi/lolclient/internal/server"
	"github.com/omarshaarawi/lolclient/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	api := lol.NewAPI(cfg.RiotAPI)
	lookupService := service.NewLookupService(api)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.BotEnabled() {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, lookupService)
		if err != nil {
			return err
		}

		sched, err := scheduler.NewScheduler(lookupService, telegramBot.SendMessage, cfg.Scheduler.StatusInterval)
		if err != nil {
			return err
		}

		if err := sched.Start(); err != nil {
			return err
		}
		defer func() {
			err := sched.Stop()
			if err != nil {
				slog.Error("Error stopping scheduler", "error", err)
			}
		}()

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	} else {
		slog.Info("TELEGRAM_TOKEN not set, bot disabled")
	}

	srv := server.New(cfg.Server.Addr, lookupService)
	if err := srv.Run(ctx); err != nil {
		return err
	}

	slog.Info("Shutting down gracefully...")
	return nil
}
