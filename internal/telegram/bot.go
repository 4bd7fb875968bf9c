package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"macrofit-backend/internal/config"
	"macrofit-backend/internal/logger"
	"macrofit-backend/internal/metrics"
	"macrofit-backend/internal/planner"
)

// Telegram caps message bodies at 4096 characters.
const maxMessageLen = 4096

// Bot serves meal and workout plan generation over a Telegram webhook.
type Bot struct {
	api          *tgbotapi.BotAPI
	planner      *planner.Planner
	metricsStore *metrics.Store
	cfg          *config.Config
	log          *logger.Logger
}

// NewBot initializes the Telegram API client and registers the webhook.
func NewBot(cfg *config.Config, p *planner.Planner, metricsStore *metrics.Store, log *logger.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Info("authorized on telegram", "account", api.Self.UserName)

	wh, err := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook url %s: %w", cfg.TelegramWebhookURL, err)
	}
	resp, err := api.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Info("webhook set", "response", resp.Description)

	return &Bot{
		api:          api,
		planner:      p,
		metricsStore: metricsStore,
		cfg:          cfg,
		log:          log,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		b.log.Error("error parsing update", "error", err)
		return
	}
	if update.Message == nil {
		return
	}

	if !b.isAllowed(update.Message.From.ID) {
		b.log.Warn("unauthorized access attempt",
			"user_id", update.Message.From.ID,
			"username", update.Message.From.UserName,
		)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) isAllowed(userID int64) bool {
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if userID == id {
			return true
		}
	}
	return false
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)

	switch {
	case strings.HasPrefix(text, "/mealplan"):
		b.handleMealPlanCommand(msg)
	case strings.HasPrefix(text, "/workout"):
		b.handleWorkoutCommand(msg)
	case text == "/metrics":
		b.handleMetricsCommand(msg.Chat.ID)
	default:
		b.sendText(msg.Chat.ID, helpText)
	}
}

const helpText = `Commands:
/mealplan <calories> <meals> <favorite foods...>
/workout <goal> <level> <per-week> <minutes>
/metrics`

func (b *Bot) handleMealPlanCommand(msg *tgbotapi.Message) {
	req, err := parseMealPlanCommand(msg.Text)
	if err != nil {
		b.sendText(msg.Chat.ID, "Usage: /mealplan <calories> <meals> <favorite foods...>\nExample: /mealplan 2200 3 chicken, rice, salmon")
		return
	}

	sent, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "Generating your meal plan, this takes a minute..."))
	if err != nil {
		b.log.Error("failed to send initial reply", "error", err)
		return
	}

	result, err := b.planner.GenerateMealPlan(context.Background(), req)
	if err != nil {
		b.log.Error("error generating meal plan", "error", err)
		b.editText(msg.Chat.ID, sent.MessageID, "Failed to generate meal plan. Please try again.")
		return
	}

	b.editText(msg.Chat.ID, sent.MessageID, firstChunk(result))
	for _, chunk := range restChunks(result) {
		b.sendText(msg.Chat.ID, chunk)
	}
}

func (b *Bot) handleWorkoutCommand(msg *tgbotapi.Message) {
	req, err := parseWorkoutCommand(msg.Text)
	if err != nil {
		b.sendText(msg.Chat.ID, "Usage: /workout <goal> <level> <per-week> <minutes>\nExample: /workout muscle_gain intermediate 4 60")
		return
	}

	sent, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "Generating your workout plan, this takes a minute..."))
	if err != nil {
		b.log.Error("failed to send initial reply", "error", err)
		return
	}

	result, err := b.planner.GenerateWorkoutPlan(context.Background(), req)
	if err != nil {
		b.log.Error("error generating workout plan", "error", err)
		b.editText(msg.Chat.ID, sent.MessageID, "Failed to generate workout plan. Please try again.")
		return
	}

	b.editText(msg.Chat.ID, sent.MessageID, firstChunk(result))
	for _, chunk := range restChunks(result) {
		b.sendText(msg.Chat.ID, chunk)
	}
}

func (b *Bot) handleMetricsCommand(chatID int64) {
	usage, err := b.metricsStore.GetDailyUsage(7)
	if err != nil {
		b.sendText(chatID, "Error fetching metrics.")
		return
	}

	var sb strings.Builder
	sb.WriteString("Token usage, last 7 days:\n")
	if len(usage) == 0 {
		sb.WriteString("no data yet\n")
	}
	for _, d := range usage {
		sb.WriteString(fmt.Sprintf("%s: %d prompt + %d completion tokens (%d calls)\n",
			d.Date, d.TotalPrompt, d.TotalCompletion, d.TotalExecutions))
	}
	b.sendText(chatID, sb.String())
}

func (b *Bot) sendText(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.Error("failed to send message", "error", err)
	}
}

func (b *Bot) editText(chatID int64, messageID int, text string) {
	if _, err := b.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		b.log.Error("failed to edit message", "error", err)
	}
}

func firstChunk(text string) string {
	return chunkText(text, maxMessageLen)[0]
}

func restChunks(text string) []string {
	return chunkText(text, maxMessageLen)[1:]
}

// chunkText splits text into pieces of at most limit characters, preferring
// newline boundaries so JSON lines stay intact. Always returns at least one
// element.
func chunkText(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(text) > limit {
		cut := strings.LastIndexByte(text[:limit], '\n')
		if cut <= 0 {
			cut = limit
		}
		chunks = append(chunks, text[:cut])
		text = strings.TrimLeft(text[cut:], "\n")
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
