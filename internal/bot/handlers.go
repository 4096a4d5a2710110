// Package bot is the Telegram adapter: it validates command arguments
// with the date/phone utilities, calls the store, and renders outcomes
// back as chat replies. Command names exist in Vietnamese and English.
package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/TronJG/telegram-bot/internal/config"
	"github.com/TronJG/telegram-bot/internal/reminder"
	"github.com/TronJG/telegram-bot/internal/store"
)

// sender is the slice of tgbotapi.BotAPI the handler needs; tests
// substitute a fake.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Handler struct {
	api    sender
	cfg    config.Config
	store  *store.Store
	engine *reminder.Engine
	log    *zap.SugaredLogger
}

func NewHandler(api *tgbotapi.BotAPI, cfg config.Config, st *store.Store, engine *reminder.Engine, log *zap.SugaredLogger) *Handler {
	return &Handler{api: api, cfg: cfg, store: st, engine: engine, log: log}
}

func (h *Handler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	if !msg.Chat.IsPrivate() {
		return
	}
	if !msg.IsCommand() {
		return
	}

	cmd := msg.Command()
	args := strings.Fields(msg.CommandArguments())
	chatID := msg.Chat.ID

	switch cmd {
	case "start":
		h.reply(chatID, startText, false)
		return
	case "help":
		h.reply(chatID, helpText, false)
		return
	}

	// Single fixed operator; everyone else gets a refusal.
	if chatID != h.cfg.AdminChatID {
		h.reply(chatID, deniedText, false)
		return
	}

	switch cmd {
	case "themso", "add_phone":
		h.handleAddPhone(ctx, chatID, cmd, args)
	case "danhsachso", "list_phones":
		h.handleListPhones(chatID)
	case "xoaso", "delete_phone":
		h.handleDeletePhone(ctx, chatID, cmd, args)
	case "suaso", "edit_phone_date":
		h.handleEditPhoneDate(ctx, chatID, cmd, args)
	case "themtk", "add_account":
		h.handleAddAccount(ctx, chatID, cmd, args)
	case "danhsachtk", "list_accounts":
		h.handleListAccounts(chatID, cmd, args)
	case "xoatk", "delete_account":
		h.handleDeleteAccount(ctx, chatID, cmd, args)
	case "suatk", "edit_account_date":
		h.handleEditAccountDate(ctx, chatID, cmd, args)
	case "kiemtra", "check_now":
		h.handleCheckNow(ctx, chatID)
	default:
		h.reply(chatID, unknownText, false)
	}
}

func (h *Handler) reply(chatID int64, text string, markdown bool) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markdown {
		msg.ParseMode = "Markdown"
	}
	if _, err := h.api.Send(msg); err != nil {
		h.log.Errorw("reply failed", "chat", chatID, "err", err)
	}
}
