// Package reminder runs the daily renewal sweep: query the store for
// due items, send one notification per item to the operator.
package reminder

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/TronJG/telegram-bot/internal/dates"
	"github.com/TronJG/telegram-bot/internal/domain"
	"github.com/TronJG/telegram-bot/internal/store"
)

// Notifier delivers one reminder message to the operator channel.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// sendTimeout bounds a single delivery so one stalled send cannot
// block the next scheduled tick.
const sendTimeout = 30 * time.Second

type Engine struct {
	store      *store.Store
	notifier   Notifier
	daysBefore int
	log        *zap.SugaredLogger
}

func NewEngine(st *store.Store, n Notifier, daysBefore int, log *zap.SugaredLogger) *Engine {
	return &Engine{store: st, notifier: n, daysBefore: daysBefore, log: log}
}

// CheckRenewals snapshots the due items (the store lock is held only
// inside UpcomingRenewals) and dispatches them one by one. A failed
// send is logged and the sweep moves on; there is no retry within the
// same tick.
func (e *Engine) CheckRenewals(ctx context.Context) {
	e.log.Infow("checking for upcoming renewals")
	items := e.store.UpcomingRenewals(e.daysBefore)
	if len(items) == 0 {
		e.log.Infow("no upcoming renewals")
		return
	}
	e.log.Infow("upcoming renewals found", "count", len(items))

	for _, item := range items {
		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		err := e.notifier.Send(sendCtx, FormatReminder(item))
		cancel()
		if err != nil {
			e.log.Errorw("reminder send failed",
				"phone", item.PhoneNumber, "account", item.AccountName, "err", err)
			continue
		}
		if item.Kind == domain.ItemPhone {
			e.log.Infow("sent reminder", "phone", item.PhoneNumber)
		} else {
			e.log.Infow("sent reminder", "phone", item.PhoneNumber, "account", item.AccountName)
		}
	}
}

// RunManualCheck is the same sweep, triggered on demand.
func (e *Engine) RunManualCheck(ctx context.Context) {
	e.CheckRenewals(ctx)
	e.log.Infow("manual renewal check done")
}

// FormatReminder renders the operator-facing message for one due item.
func FormatReminder(item domain.RenewalItem) string {
	if item.Kind == domain.ItemAccount {
		return fmt.Sprintf(
			"⚠️ *NHẮC NHỞ GIA HẠN TÀI KHOẢN* ⚠️\n\nSố điện thoại: *%s*\nTài khoản: *%s*\nNgày gia hạn: *%s*\n(Ngày mai)",
			item.PhoneNumber, item.AccountName, dates.Format(item.RenewalDate))
	}
	return fmt.Sprintf(
		"⚠️ *NHẮC NHỞ GIA HẠN SỐ ĐIỆN THOẠI* ⚠️\n\nSố điện thoại: *%s*\nNgày gia hạn: *%s*\n(Ngày mai)",
		item.PhoneNumber, dates.Format(item.RenewalDate))
}
