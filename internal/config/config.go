package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	RiotAPI     RiotAPI
	TelegramBot TelegramBot
	Server      Server
	Scheduler   Scheduler
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

type RiotAPI struct {
	Key         string        `envconfig:"RIOT_API_KEY" required:"true"`
	Root        string        `envconfig:"RIOT_API_ROOT" default:"https://ru.api.riotgames.com/"`
	GameSegment string        `envconfig:"RIOT_GAME_SEGMENT" default:"lol/"`
	Timeout     time.Duration `envconfig:"RIOT_HTTP_TIMEOUT" default:"10s"`
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type Server struct {
	Addr string `envconfig:"HTTP_ADDR" default:":8080"`
}

type Scheduler struct {
	StatusInterval time.Duration `envconfig:"STATUS_INTERVAL" default:"30m"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if err := c.RiotAPI.Normalize(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Normalize trims the key and makes sure root and game segment join by plain
// concatenation.
func (r *RiotAPI) Normalize() error {
	r.Key = strings.TrimSpace(r.Key)
	if r.Key == "" {
		return fmt.Errorf("RIOT_API_KEY is empty")
	}
	r.Root = strings.TrimSpace(r.Root)
	if r.Root == "" {
		return fmt.Errorf("RIOT_API_ROOT is empty")
	}
	r.Root = withTrailingSlash(r.Root)
	r.GameSegment = withTrailingSlash(strings.Trim(strings.TrimSpace(r.GameSegment), "/"))
	if r.Timeout < 0 {
		return fmt.Errorf("RIOT_HTTP_TIMEOUT must not be negative")
	}
	return nil
}

func (c *Config) BotEnabled() bool {
	return strings.TrimSpace(c.TelegramBot.Token) != ""
}

func (c *Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func withTrailingSlash(s string) string {
	if s == "" || strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
