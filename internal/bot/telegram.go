package bot

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/lolclient/internal/service"
)

// Telegram rejects messages longer than this.
const maxMessageLength = 4096

// Closes the code block a report is cut inside of.
const truncatedSuffix = "\n...\n```"

type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	chatID  int64
}

func NewTelegramBot(token string, chatID int64, lookupService *service.LookupService) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	handler := NewHandler(lookupService)

	return &TelegramBot{
		bot:     bot,
		handler: handler,
		chatID:  chatID,
	}, nil
}

func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Authorized on account", "username", t.bot.Self.UserName)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case update := <-updates:
			if update.Message == nil {
				continue
			}

			if update.Message.IsCommand() {
				msg := t.handler.HandleCommand(ctx, update)
				if _, err := t.bot.Send(msg); err != nil {
					slog.Error("Error sending message", "command", update.Message.Command(), "error", err)
				}
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (t *TelegramBot) SendMessage(text string) error {
	if t.chatID == 0 {
		slog.Error("Chat ID not set")
		return fmt.Errorf("chat ID not set")
	}

	_, err := t.bot.Send(reportMessage(t.chatID, text))
	if err != nil {
		slog.Error("Error sending message", "error", err)
	}
	return err
}

// reportMessage wraps a LookupService report. Reports are Markdown with user
// input already escaped.
func reportMessage(chatID int64, report string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, truncate(report))
	msg.ParseMode = tgbotapi.ModeMarkdown
	return msg
}

// plainMessage is used for anything that may echo user input unescaped.
func plainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, truncate(text))
}

// truncate fits text into one message, cutting on a rune boundary.
func truncate(text string) string {
	if len(text) <= maxMessageLength {
		return text
	}
	n := maxMessageLength - len(truncatedSuffix)
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n] + truncatedSuffix
}
