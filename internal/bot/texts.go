package bot

import (
	"fmt"

	"github.com/TronJG/telegram-bot/internal/store"
)

const startText = "👋 Chào mừng đến với Bot Quản lý Số Điện Thoại!\n\n" +
	"Bot này giúp bạn quản lý số điện thoại và tài khoản liên kết, " +
	"đồng thời gửi thông báo trước khi đến ngày gia hạn.\n\n" +
	"Gõ /help để xem hướng dẫn sử dụng chi tiết."

const helpText = `🇻🇳 QUẢN LÝ SỐ ĐIỆN THOẠI - HƯỚNG DẪN SỬ DỤNG 🇻🇳

Các lệnh cơ bản:
/start - Bắt đầu sử dụng bot
/help - Hiển thị hướng dẫn này

Quản lý số điện thoại:
/themso <số điện thoại> <ngày gia hạn> - Thêm số điện thoại mới
   Ví dụ: /themso 0912345678 25/12/2025
/danhsachso - Liệt kê tất cả số điện thoại
/xoaso <số điện thoại> - Xóa số điện thoại
   Ví dụ: /xoaso 0912345678
/suaso <số điện thoại> <ngày gia hạn mới> - Chỉnh sửa ngày gia hạn
   Ví dụ: /suaso 0912345678 25/01/2026

Quản lý tài khoản:
/themtk <số điện thoại> <tên tài khoản> <ngày gia hạn> - Thêm tài khoản vào số điện thoại
   Ví dụ: /themtk 0912345678 Facebook 25/12/2025
/danhsachtk <số điện thoại> - Liệt kê tài khoản của số điện thoại
   Ví dụ: /danhsachtk 0912345678
/xoatk <số điện thoại> <tên tài khoản> - Xóa tài khoản
   Ví dụ: /xoatk 0912345678 Facebook
/suatk <số điện thoại> <tên tài khoản> <ngày gia hạn mới> - Chỉnh sửa ngày gia hạn tài khoản
   Ví dụ: /suatk 0912345678 Facebook 25/01/2026

Kiểm tra:
/kiemtra - Kiểm tra gia hạn ngay lập tức

Lưu ý:
- Mỗi số điện thoại có thể có tối đa 3 tài khoản
- Bot sẽ gửi thông báo trước 1 ngày khi đến ngày gia hạn
- Định dạng ngày: DD/MM/YYYY (ngày/tháng/năm)`

const (
	deniedText   = "❌ Bạn không có quyền sử dụng lệnh này."
	unknownText  = "❓ Lệnh không được nhận dạng. Gõ /help để xem danh sách lệnh."
	badPhoneText = "❌ Số điện thoại không hợp lệ."
	badDateText  = "❌ Định dạng ngày không hợp lệ. Vui lòng sử dụng định dạng DD/MM/YYYY."
)

// usage renders the syntax-error reply with the command name the user
// actually typed, so Vietnamese and English aliases show matching
// examples.
func usage(cmd, args, example string) string {
	return fmt.Sprintf("❌ Sai cú pháp. Vui lòng sử dụng:\n/%s %s\nVí dụ: /%s %s", cmd, args, cmd, example)
}

// reasonText localizes store reason codes; the store itself carries no
// user-facing wording.
func (h *Handler) reasonText(r store.Reason, phone, account string) string {
	switch r {
	case store.ReasonDuplicatePhone:
		return fmt.Sprintf("Số điện thoại %s đã tồn tại.", phone)
	case store.ReasonPhoneNotFound:
		return fmt.Sprintf("Số điện thoại %s không tồn tại.", phone)
	case store.ReasonDuplicateAccount:
		return fmt.Sprintf("Tài khoản %s đã tồn tại cho số điện thoại %s.", account, phone)
	case store.ReasonAccountLimit:
		return fmt.Sprintf("Số điện thoại %s đã đạt giới hạn %d tài khoản.", phone, h.cfg.MaxAccountsPerNumber)
	case store.ReasonAccountNotFound:
		return fmt.Sprintf("Không tìm thấy tài khoản %s cho số điện thoại %s.", account, phone)
	case store.ReasonStorageError:
		return "Không thể lưu dữ liệu. Vui lòng thử lại."
	default:
		return "Đã xảy ra lỗi không xác định."
	}
}
