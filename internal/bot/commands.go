package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/TronJG/telegram-bot/internal/dates"
	"github.com/TronJG/telegram-bot/internal/domain"
)

func (h *Handler) handleAddPhone(ctx context.Context, chatID int64, cmd string, args []string) {
	if len(args) < 2 {
		h.reply(chatID, usage(cmd, "<số điện thoại> <ngày gia hạn>", "0912345678 25/12/2025"), false)
		return
	}
	phone, dateStr := args[0], args[1]

	if !domain.ValidPhoneNumber(phone) {
		h.reply(chatID, badPhoneText, false)
		return
	}
	renewal, err := dates.Parse(dateStr)
	if err != nil {
		h.reply(chatID, badDateText, false)
		return
	}

	res := h.store.AddPhone(ctx, phone, renewal)
	if !res.OK {
		h.reply(chatID, "❌ "+h.reasonText(res.Reason, phone, ""), false)
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ Đã thêm số điện thoại %s với ngày gia hạn %s.", phone, dateStr), false)
}

func (h *Handler) handleListPhones(chatID int64) {
	phones := h.store.ListPhones()
	if len(phones) == 0 {
		h.reply(chatID, "📱 Không có số điện thoại nào trong danh sách.", false)
		return
	}

	var b strings.Builder
	b.WriteString("📱 DANH SÁCH SỐ ĐIỆN THOẠI\n\n")
	for _, p := range phones {
		b.WriteString(p.Number + "\n")
		b.WriteString(fmt.Sprintf("📅 Ngày gia hạn: %s\n", dates.Format(p.RenewalDate)))
		b.WriteString(fmt.Sprintf("👤 Số tài khoản: %d/%d\n\n", len(p.Accounts), h.cfg.MaxAccountsPerNumber))
	}
	h.reply(chatID, b.String(), false)
}

func (h *Handler) handleDeletePhone(ctx context.Context, chatID int64, cmd string, args []string) {
	if len(args) < 1 {
		h.reply(chatID, usage(cmd, "<số điện thoại>", "0912345678"), false)
		return
	}
	phone := args[0]

	res := h.store.DeletePhone(ctx, phone)
	if !res.OK {
		h.reply(chatID, "❌ "+h.reasonText(res.Reason, phone, ""), false)
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ Đã xóa số điện thoại %s và tất cả tài khoản liên kết.", phone), false)
}

func (h *Handler) handleEditPhoneDate(ctx context.Context, chatID int64, cmd string, args []string) {
	if len(args) < 2 {
		h.reply(chatID, usage(cmd, "<số điện thoại> <ngày gia hạn mới>", "0912345678 25/01/2026"), false)
		return
	}
	phone, dateStr := args[0], args[1]

	renewal, err := dates.Parse(dateStr)
	if err != nil {
		h.reply(chatID, badDateText, false)
		return
	}

	res := h.store.UpdatePhoneRenewal(ctx, phone, renewal)
	if !res.OK {
		h.reply(chatID, "❌ "+h.reasonText(res.Reason, phone, ""), false)
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ Đã cập nhật ngày gia hạn cho số %s thành %s.", phone, dateStr), false)
}

func (h *Handler) handleAddAccount(ctx context.Context, chatID int64, cmd string, args []string) {
	if len(args) < 3 {
		h.reply(chatID, usage(cmd, "<số điện thoại> <tên tài khoản> <ngày gia hạn>", "0912345678 Facebook 25/12/2025"), false)
		return
	}
	phone, name, dateStr := args[0], args[1], args[2]

	renewal, err := dates.Parse(dateStr)
	if err != nil {
		h.reply(chatID, badDateText, false)
		return
	}

	res := h.store.AddAccount(ctx, phone, name, renewal)
	if !res.OK {
		h.reply(chatID, "❌ "+h.reasonText(res.Reason, phone, name), false)
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ Đã thêm tài khoản %s cho số điện thoại %s.", name, phone), false)
}

func (h *Handler) handleListAccounts(chatID int64, cmd string, args []string) {
	if len(args) < 1 {
		h.reply(chatID, usage(cmd, "<số điện thoại>", "0912345678"), false)
		return
	}
	phone := args[0]

	p, exists := h.store.GetPhone(phone)
	if !exists {
		h.reply(chatID, fmt.Sprintf("❌ Số điện thoại %s không tồn tại.", phone), false)
		return
	}
	if len(p.Accounts) == 0 {
		h.reply(chatID, fmt.Sprintf("📱 Số điện thoại %s chưa có tài khoản nào.", phone), false)
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("👤 TÀI KHOẢN CỦA SỐ %s\n\n", phone))
	for i, a := range p.Accounts {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, a.Name))
		b.WriteString(fmt.Sprintf("📅 Ngày gia hạn: %s\n\n", dates.Format(a.RenewalDate)))
	}
	h.reply(chatID, b.String(), false)
}

func (h *Handler) handleDeleteAccount(ctx context.Context, chatID int64, cmd string, args []string) {
	if len(args) < 2 {
		h.reply(chatID, usage(cmd, "<số điện thoại> <tên tài khoản>", "0912345678 Facebook"), false)
		return
	}
	phone, name := args[0], args[1]

	res := h.store.DeleteAccount(ctx, phone, name)
	if !res.OK {
		h.reply(chatID, "❌ "+h.reasonText(res.Reason, phone, name), false)
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ Đã xóa tài khoản %s khỏi số điện thoại %s.", name, phone), false)
}

func (h *Handler) handleEditAccountDate(ctx context.Context, chatID int64, cmd string, args []string) {
	if len(args) < 3 {
		h.reply(chatID, usage(cmd, "<số điện thoại> <tên tài khoản> <ngày gia hạn mới>", "0912345678 Facebook 25/01/2026"), false)
		return
	}
	phone, name, dateStr := args[0], args[1], args[2]

	renewal, err := dates.Parse(dateStr)
	if err != nil {
		h.reply(chatID, badDateText, false)
		return
	}

	res := h.store.UpdateAccountRenewal(ctx, phone, name, renewal)
	if !res.OK {
		h.reply(chatID, "❌ "+h.reasonText(res.Reason, phone, name), false)
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ Đã cập nhật ngày gia hạn tài khoản %s của số %s thành %s.", name, phone, dateStr), false)
}

func (h *Handler) handleCheckNow(ctx context.Context, chatID int64) {
	h.engine.RunManualCheck(ctx)
	h.reply(chatID, "✅ Đã kiểm tra gia hạn. Bạn sẽ nhận được thông báo nếu có mục sắp đến hạn.", false)
}
