package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/lolclient/internal/api/riot"
	"github.com/omarshaarawi/lolclient/internal/service"
)

const commandTimeout = 30 * time.Second

type Handler struct {
	lookupService *service.LookupService
}

func NewHandler(lookupService *service.LookupService) *Handler {
	return &Handler{lookupService: lookupService}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	chatID := update.Message.Chat.ID
	command := strings.ToLower(update.Message.Command())
	args := strings.Fields(update.Message.CommandArguments())

	switch command {
	case "start":
		return plainMessage(chatID, "Welcome to lolclient! Use /help to see available commands.")
	case "help":
		return plainMessage(chatID, h.helpText())
	default:
		return h.handleLookup(ctx, chatID, command, args)
	}
}

func (h *Handler) helpText() string {
	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, l := range h.lookupService.Lookups() {
		sb.WriteString(fmt.Sprintf("%s - %s\n", l.Usage(), l.Description))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (h *Handler) handleLookup(ctx context.Context, chatID int64, command string, args []string) tgbotapi.MessageConfig {
	if _, ok := h.lookupService.Find(command); !ok {
		return plainMessage(chatID, h.unknownCommand(command))
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	report, err := h.lookupService.Report(ctx, command, args)
	if err != nil {
		return plainMessage(chatID, describeError(command, err))
	}
	return reportMessage(chatID, report)
}

func (h *Handler) unknownCommand(command string) string {
	suggestions := h.lookupService.Suggest(command)
	if len(suggestions) == 0 {
		return "Unknown command. Use /help to see available commands."
	}
	return fmt.Sprintf("Unknown command. Did you mean /%s?", suggestions[0])
}

func describeError(command string, err error) string {
	var (
		usageErr   *service.UsageError
		apiErr     *riot.APIError
		missingErr *riot.MissingParameterError
	)
	switch {
	case errors.As(err, &usageErr):
		return usageErr.Error()
	case errors.As(err, &missingErr):
		return fmt.Sprintf("Error running /%s: %s is required", command, missingErr.Name)
	case errors.As(err, &apiErr):
		return fmt.Sprintf("Error running /%s: API returned %d (%s)", command, apiErr.StatusCode, apiErr.Description())
	default:
		return fmt.Sprintf("Error running /%s: %v", command, err)
	}
}
