package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	eventRepo "github.com/apstld/freelance-alert-bot/internal/modules/event/repository"
	jobDomain "github.com/apstld/freelance-alert-bot/internal/modules/job/domain"
	jobService "github.com/apstld/freelance-alert-bot/internal/modules/job/service"
	keywordService "github.com/apstld/freelance-alert-bot/internal/modules/keyword/service"
	savedService "github.com/apstld/freelance-alert-bot/internal/modules/saved/service"
	statsRepo "github.com/apstld/freelance-alert-bot/internal/modules/stats/repository"
	userDomain "github.com/apstld/freelance-alert-bot/internal/modules/user/domain"
	userService "github.com/apstld/freelance-alert-bot/internal/modules/user/service"
	"github.com/apstld/freelance-alert-bot/internal/shared/config"
	"github.com/samber/oops"
)

const (
	callbackKeep    = "job:keep"
	callbackDismiss = "job:del"
)

// Handler handles Telegram bot interactions and delivers worker output
type Handler struct {
	cfg      *config.Config
	users    *userService.Service
	keywords *keywordService.Service
	saved    *savedService.Service
	jobs     *jobService.Service
	stats    statsRepo.Repository
	events   eventRepo.Repository
	bot      *bot.Bot
}

// New creates a new Telegram handler
func New(
	cfg *config.Config,
	users *userService.Service,
	keywords *keywordService.Service,
	saved *savedService.Service,
	jobs *jobService.Service,
	stats statsRepo.Repository,
	events eventRepo.Repository,
) *Handler {
	return &Handler{
		cfg:      cfg,
		users:    users,
		keywords: keywords,
		saved:    saved,
		jobs:     jobs,
		stats:    stats,
		events:   events,
	}
}

// SetBot sets the Telegram bot instance used for outbound delivery
func (h *Handler) SetBot(b *bot.Bot) {
	h.bot = b
}

// RegisterCommands registers bot commands
func (h *Handler) RegisterCommands(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, h.handleHelp)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/whoami", bot.MatchTypeExact, h.handleWhoami)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/mysettings", bot.MatchTypeExact, h.handleMySettings)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/keywords", bot.MatchTypeExact, h.handleMySettings)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/addkeyword", bot.MatchTypePrefix, h.handleAddKeyword)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/addkw", bot.MatchTypePrefix, h.handleAddKeyword)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/delkeyword", bot.MatchTypePrefix, h.handleDelKeyword)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/clearkeywords", bot.MatchTypeExact, h.handleClearKeywords)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/saved", bot.MatchTypeExact, h.handleSaved)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/delsaved", bot.MatchTypePrefix, h.handleDelSaved)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/clearsaved", bot.MatchTypeExact, h.handleClearSaved)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/selftest", bot.MatchTypeExact, h.handleSelftest)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/users", bot.MatchTypeExact, h.handleUsers)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/grant", bot.MatchTypePrefix, h.handleGrant)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/block", bot.MatchTypePrefix, h.handleBlock)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/unblock", bot.MatchTypePrefix, h.handleUnblock)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/broadcast", bot.MatchTypePrefix, h.handleBroadcast)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/feedstatus", bot.MatchTypeExact, h.handleFeedStatus)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "job:", bot.MatchTypePrefix, h.handleJobCallback)
}

// HandleUpdate processes updates no registered handler claimed
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if update.Message.Chat.Type != "private" || strings.HasPrefix(update.Message.Text, "/") {
		return
	}
	// Plain text in a private chat is treated as keywords to add
	h.addKeywords(ctx, b, update.Message.Chat.ID, update.Message.From.ID, update.Message.Text)
}

// SendJob delivers a job card with Proposal/Original/Keep buttons.
// Implements the worker's Delivery interface.
func (h *Handler) SendJob(ctx context.Context, chatID int64, job *jobDomain.Job, matchedKeyword string) error {
	if h.bot == nil {
		return oops.Errorf("bot not initialized")
	}

	keyboard := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "⚡ Proposal", URL: h.jobs.ProposalURL(job)},
				{Text: "🔗 Original", URL: job.URL},
			},
			{
				{Text: "💾 Keep", CallbackData: callbackKeep},
				{Text: "🗑 Delete", CallbackData: callbackDismiss},
			},
		},
	}

	_, err := h.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        FormatJobCard(job, matchedKeyword, time.Now()),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		return oops.With("chat_id", chatID, "job_key", job.Key(), "context", "failed to send job card").Wrap(err)
	}
	return nil
}

// SendText delivers a plain notification. Implements the worker's Delivery
// interface.
func (h *Handler) SendText(ctx context.Context, chatID int64, text string) error {
	if h.bot == nil {
		return oops.Errorf("bot not initialized")
	}
	_, err := h.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		return oops.With("chat_id", chatID, "context", "failed to send message").Wrap(err)
	}
	return nil
}

func (h *Handler) reply(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		slog.Error("Failed to send reply", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) replyHTML(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		slog.Error("Failed to send reply", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	from := update.Message.From
	user, err := h.users.Register(ctx, from.ID, from.Username)
	if err != nil {
		slog.Error("Failed to register user", "telegram_id", from.ID, "error", err)
		h.reply(ctx, b, update.Message.Chat.ID, "❌ Something went wrong, please try again later.")
		return
	}

	text := fmt.Sprintf(`👋 Welcome to Freelance Alert Bot!

I watch freelance job platforms and send you listings matching your keywords in real time.

🎉 Your %d-day free trial is active until %s.

Set keywords to get started:
/addkeyword python, telegram, logo`,
		h.cfg.TrialDays, user.AccessUntil().Format("2006-01-02"))

	h.reply(ctx, b, update.Message.Chat.ID, text)
	h.handleHelp(ctx, b, update)
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	text := `💡 Available commands:

/addkeyword <kw1, kw2> - Add keywords (comma separated)
/delkeyword <kw1, kw2> - Remove keywords
/clearkeywords - Remove all keywords
/mysettings - Show your keywords and access window
/saved - List saved jobs
/delsaved <id> - Delete a saved job
/clearsaved - Delete all saved jobs
/whoami - Show your account info
/selftest - Run a quick health check

On every job card: ⚡ Proposal opens the listing ready to bid, 💾 Keep bookmarks it.`

	isAdmin := update.Message.From != nil && h.users.IsAdmin(ctx, update.Message.From.ID)
	if isAdmin {
		text += `

🛠 Admin commands:
/users - List users
/grant <telegram_id> <days> - Extend access
/block <telegram_id> / /unblock <telegram_id>
/broadcast <text> - Message all active users
/feedstatus - Last worker cycle and platform stats`
	}

	h.reply(ctx, b, update.Message.Chat.ID, text)
}

func (h *Handler) handleWhoami(ctx context.Context, b *bot.Bot, update *models.Update) {
	from := update.Message.From
	user, err := h.users.Register(ctx, from.ID, from.Username)
	if err != nil {
		h.reply(ctx, b, update.Message.Chat.ID, "❌ Failed to load your account.")
		return
	}

	status := "✅ active"
	if !user.HasAccess(time.Now()) {
		status = "⛔ expired"
	}
	if user.IsBlocked {
		status = "🚫 blocked"
	}

	text := fmt.Sprintf(`🪪 Your account:

ID: %d
Username: @%s
Admin: %t
Access: %s (until %s)`,
		user.TelegramID, user.Username, user.IsAdmin, status, user.AccessUntil().Format("2006-01-02 15:04 MST"))
	h.reply(ctx, b, update.Message.Chat.ID, text)
}

func (h *Handler) handleMySettings(ctx context.Context, b *bot.Bot, update *models.Update) {
	from := update.Message.From
	keywords, err := h.keywords.List(ctx, from.ID)
	if err != nil {
		h.reply(ctx, b, update.Message.Chat.ID, "❌ Failed to load your keywords.")
		return
	}

	if len(keywords) == 0 {
		h.reply(ctx, b, update.Message.Chat.ID, "📭 No keywords yet.\nAdd some: /addkeyword python, telegram")
		return
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("🔑 Your keywords (%d):\n\n", len(keywords)))
	for _, kw := range keywords {
		text.WriteString("• " + kw + "\n")
	}
	text.WriteString("\nFilter mode: " + string(h.cfg.KeywordFilterMode))
	h.reply(ctx, b, update.Message.Chat.ID, text.String())
}

func (h *Handler) handleAddKeyword(ctx context.Context, b *bot.Bot, update *models.Update) {
	raw := commandArgs(update.Message.Text)
	if raw == "" {
		h.reply(ctx, b, update.Message.Chat.ID, "Usage: /addkeyword <kw1, kw2, ...>\nExample: /addkeyword python, sales, logo")
		return
	}
	h.addKeywords(ctx, b, update.Message.Chat.ID, update.Message.From.ID, raw)
}

func (h *Handler) addKeywords(ctx context.Context, b *bot.Bot, chatID int64, telegramID int64, raw string) {
	user, err := h.users.Register(ctx, telegramID, "")
	if err != nil {
		slog.Error("Failed to register user", "telegram_id", telegramID, "error", err)
	} else if !user.HasAccess(time.Now()) {
		h.reply(ctx, b, chatID, accessDeniedText(user))
		return
	}

	added, err := h.keywords.Add(ctx, telegramID, raw)
	if err != nil {
		h.reply(ctx, b, chatID, "❌ Failed to save keywords.")
		return
	}
	if len(added) == 0 {
		h.reply(ctx, b, chatID, "Nothing to add. Separate keywords with commas.")
		return
	}
	h.reply(ctx, b, chatID, fmt.Sprintf("✅ Added %d keyword(s): %s", len(added), strings.Join(added, ", ")))
}

func (h *Handler) handleDelKeyword(ctx context.Context, b *bot.Bot, update *models.Update) {
	raw := commandArgs(update.Message.Text)
	if raw == "" {
		h.reply(ctx, b, update.Message.Chat.ID, "Usage: /delkeyword <kw1, kw2, ...>")
		return
	}

	deleted, err := h.keywords.Delete(ctx, update.Message.From.ID, raw)
	if err != nil {
		h.reply(ctx, b, update.Message.Chat.ID, "❌ Failed to delete keywords.")
		return
	}
	h.reply(ctx, b, update.Message.Chat.ID, fmt.Sprintf("✅ Removed: %s", strings.Join(deleted, ", ")))
}

func (h *Handler) handleClearKeywords(ctx context.Context, b *bot.Bot, update *models.Update) {
	if err := h.keywords.Clear(ctx, update.Message.From.ID); err != nil {
		h.reply(ctx, b, update.Message.Chat.ID, "❌ Failed to clear keywords.")
		return
	}
	h.reply(ctx, b, update.Message.Chat.ID, "✅ All keywords removed.")
}

func (h *Handler) handleSaved(ctx context.Context, b *bot.Bot, update *models.Update) {
	jobs, err := h.saved.List(ctx, update.Message.From.ID)
	if err != nil {
		h.reply(ctx, b, update.Message.Chat.ID, "❌ Failed to load saved jobs.")
		return
	}
	if len(jobs) == 0 {
		h.reply(ctx, b, update.Message.Chat.ID, "📭 No saved jobs. Use 💾 Keep on a job card.")
		return
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("💾 Saved jobs (%d):\n\n", len(jobs)))
	for _, j := range jobs {
		text.WriteString(fmt.Sprintf("#%d %s\n%s\n\n", j.ID, j.Title, j.URL))
	}
	text.WriteString("Delete one with /delsaved <id>")
	h.reply(ctx, b, update.Message.Chat.ID, text.String())
}

func (h *Handler) handleDelSaved(ctx context.Context, b *bot.Bot, update *models.Update) {
	arg := commandArgs(update.Message.Text)
	savedID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		h.reply(ctx, b, update.Message.Chat.ID, "Usage: /delsaved <id>")
		return
	}

	if err := h.saved.Delete(ctx, update.Message.From.ID, savedID); err != nil {
		h.reply(ctx, b, update.Message.Chat.ID, fmt.Sprintf("❌ Saved job #%d not found.", savedID))
		return
	}
	h.reply(ctx, b, update.Message.Chat.ID, fmt.Sprintf("✅ Saved job #%d deleted.", savedID))
}

func (h *Handler) handleClearSaved(ctx context.Context, b *bot.Bot, update *models.Update) {
	count, err := h.saved.Clear(ctx, update.Message.From.ID)
	if err != nil {
		h.reply(ctx, b, update.Message.Chat.ID, "❌ Failed to clear saved jobs.")
		return
	}
	h.reply(ctx, b, update.Message.Chat.ID, fmt.Sprintf("✅ Removed %d saved job(s).", count))
}

func (h *Handler) handleSelftest(ctx context.Context, b *bot.Bot, update *models.Update) {
	var text strings.Builder
	text.WriteString("🧪 Selftest:\n\n")

	if _, err := h.users.Get(ctx, update.Message.From.ID); err != nil {
		text.WriteString("Database: ❌ " + err.Error() + "\n")
	} else {
		text.WriteString("Database: ✅\n")
	}

	keywords, err := h.keywords.List(ctx, update.Message.From.ID)
	if err != nil {
		text.WriteString("Keywords: ❌\n")
	} else {
		text.WriteString(fmt.Sprintf("Keywords: ✅ (%d)\n", len(keywords)))
	}

	text.WriteString("Platforms: " + strings.Join(h.cfg.Platforms, ", ") + "\n")
	text.WriteString(fmt.Sprintf("Worker interval: %ds\n", h.cfg.WorkerInterval))
	h.reply(ctx, b, update.Message.Chat.ID, text.String())
}

func (h *Handler) requireAdmin(ctx context.Context, b *bot.Bot, update *models.Update) bool {
	if update.Message.From == nil || !h.users.IsAdmin(ctx, update.Message.From.ID) {
		h.reply(ctx, b, update.Message.Chat.ID, "❌ Unauthorized")
		return false
	}
	return true
}

func (h *Handler) handleUsers(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	users, err := h.users.GetAll(ctx)
	if err != nil {
		h.reply(ctx, b, update.Message.Chat.ID, "❌ Failed to list users.")
		return
	}

	now := time.Now()
	var text strings.Builder
	text.WriteString(fmt.Sprintf("👥 Users (%d):\n\n", len(users)))
	for _, u := range users {
		flag := "✅"
		if u.IsBlocked {
			flag = "🚫"
		} else if !u.HasAccess(now) {
			flag = "⛔"
		}
		text.WriteString(fmt.Sprintf("%s %d @%s until %s\n", flag, u.TelegramID, u.Username, u.AccessUntil().Format("2006-01-02")))
	}
	h.reply(ctx, b, update.Message.Chat.ID, text.String())
}

func (h *Handler) handleGrant(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	parts := strings.Fields(update.Message.Text)
	if len(parts) < 3 {
		h.reply(ctx, b, update.Message.Chat.ID, "Usage: /grant <telegram_id> <days>")
		return
	}
	telegramID, err1 := strconv.ParseInt(parts[1], 10, 64)
	days, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || days <= 0 {
		h.reply(ctx, b, update.Message.Chat.ID, "Usage: /grant <telegram_id> <days>")
		return
	}

	until, err := h.users.Grant(ctx, telegramID, days)
	if err != nil {
		h.reply(ctx, b, update.Message.Chat.ID, fmt.Sprintf("❌ Failed to grant access: %v", err))
		return
	}
	h.reply(ctx, b, update.Message.Chat.ID, fmt.Sprintf("✅ User %d has access until %s.", telegramID, until.Format("2006-01-02")))
}

func (h *Handler) handleBlock(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.setBlocked(ctx, b, update, true)
}

func (h *Handler) handleUnblock(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.setBlocked(ctx, b, update, false)
}

func (h *Handler) setBlocked(ctx context.Context, b *bot.Bot, update *models.Update, blocked bool) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	parts := strings.Fields(update.Message.Text)
	if len(parts) < 2 {
		h.reply(ctx, b, update.Message.Chat.ID, fmt.Sprintf("Usage: %s <telegram_id>", parts[0]))
		return
	}
	telegramID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		h.reply(ctx, b, update.Message.Chat.ID, "❌ Invalid telegram id")
		return
	}

	var actionErr error
	if blocked {
		actionErr = h.users.Block(ctx, telegramID)
	} else {
		actionErr = h.users.Unblock(ctx, telegramID)
	}
	if actionErr != nil {
		h.reply(ctx, b, update.Message.Chat.ID, fmt.Sprintf("❌ Failed: %v", actionErr))
		return
	}

	verb := "blocked"
	if !blocked {
		verb = "unblocked"
	}
	h.reply(ctx, b, update.Message.Chat.ID, fmt.Sprintf("✅ User %d %s.", telegramID, verb))
}

func (h *Handler) handleBroadcast(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	text := commandArgs(update.Message.Text)
	if text == "" {
		h.reply(ctx, b, update.Message.Chat.ID, "Usage: /broadcast <message>")
		return
	}

	users, err := h.users.GetAll(ctx)
	if err != nil {
		h.reply(ctx, b, update.Message.Chat.ID, "❌ Failed to list users.")
		return
	}

	sent := 0
	now := time.Now()
	for _, u := range users {
		if u.IsBlocked || !u.HasAccess(now) {
			continue
		}
		if err := h.SendText(ctx, u.TelegramID, "📢 "+text); err != nil {
			slog.Error("Broadcast delivery failed", "telegram_id", u.TelegramID, "error", err)
			continue
		}
		sent++
	}
	h.reply(ctx, b, update.Message.Chat.ID, fmt.Sprintf("✅ Broadcast sent to %d user(s).", sent))
}

func (h *Handler) handleFeedStatus(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	var text strings.Builder
	text.WriteString("📊 Feed status:\n\n")

	cycle, err := h.stats.Read(ctx)
	switch {
	case err != nil:
		text.WriteString("Last cycle: ❌ " + err.Error() + "\n")
	case cycle == nil:
		text.WriteString("Last cycle: no data yet\n")
	default:
		text.WriteString(fmt.Sprintf("Last cycle: %s (%s)\n", cycle.StartedAt.Format("15:04:05 MST"), cycle.CycleDuration.Round(time.Millisecond)))
		text.WriteString(fmt.Sprintf("Users: %d, keywords: %d, fetched: %d, sent: %d\n", cycle.Users, cycle.Keywords, cycle.Fetched, cycle.Sent))
		for name, p := range cycle.Platforms {
			line := fmt.Sprintf("  %s: %d", name, p.Count)
			if p.Error != "" {
				line += " ⚠️ " + p.Error
			}
			text.WriteString(line + "\n")
		}
	}

	window := time.Duration(h.cfg.StatsWindowHours) * time.Hour
	counts, err := h.events.CountBySource(ctx, time.Now().Add(-window))
	if err == nil && len(counts) > 0 {
		text.WriteString(fmt.Sprintf("\nDeliveries (last %dh):\n", h.cfg.StatsWindowHours))
		for source, count := range counts {
			text.WriteString(fmt.Sprintf("  %s: %d\n", source, count))
		}
	}
	h.reply(ctx, b, update.Message.Chat.ID, text.String())
}

func (h *Handler) handleJobCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}

	if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID}); err != nil {
		slog.Error("Failed to answer callback query", "error", err)
	}

	msg := cb.Message.Message
	if msg == nil {
		return
	}

	switch cb.Data {
	case callbackKeep:
		if user, err := h.users.Get(ctx, cb.From.ID); err == nil && !user.HasAccess(time.Now()) {
			h.reply(ctx, b, msg.Chat.ID, accessDeniedText(user))
			return
		}
		title, url := jobCardDetails(msg)
		savedID, err := h.saved.Save(ctx, cb.From.ID, title, url, "")
		if err != nil {
			h.reply(ctx, b, msg.Chat.ID, "❌ Failed to save job.")
			return
		}
		h.reply(ctx, b, msg.Chat.ID, fmt.Sprintf("💾 Saved as #%d. See /saved", savedID))
	case callbackDismiss:
		if _, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: msg.Chat.ID, MessageID: msg.ID}); err != nil {
			slog.Error("Failed to delete job card", "error", err)
		}
	}
}

// jobCardDetails recovers title and original URL from a delivered job card:
// the first line is the title, the second keyboard button links the original.
func jobCardDetails(msg *models.Message) (string, string) {
	title := msg.Text
	if idx := strings.IndexByte(title, '\n'); idx > 0 {
		title = title[:idx]
	}
	title = strings.TrimPrefix(title, "💼 ")

	url := ""
	if msg.ReplyMarkup != nil && len(msg.ReplyMarkup.InlineKeyboard) > 0 {
		row := msg.ReplyMarkup.InlineKeyboard[0]
		if len(row) > 1 {
			url = row[1].URL
		} else if len(row) == 1 {
			url = row[0].URL
		}
	}
	return title, url
}

func accessDeniedText(user *userDomain.User) string {
	if user.IsBlocked {
		return "🚫 Your account is blocked. Contact the admin if you think this is a mistake."
	}
	return "⛔ Your access has expired. Contact the admin to keep receiving job alerts."
}

func commandArgs(text string) string {
	parts := strings.SplitN(text, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
