package web

import (
	"fmt"

	"github.com/TronJG/telegram-bot/internal/store"
)

func reasonText(r store.Reason, phone, account string, maxAccounts int) string {
	switch r {
	case store.ReasonDuplicatePhone:
		return fmt.Sprintf("Số điện thoại %s đã tồn tại", phone)
	case store.ReasonPhoneNotFound:
		return fmt.Sprintf("Số điện thoại %s không tồn tại", phone)
	case store.ReasonDuplicateAccount:
		return fmt.Sprintf("Tài khoản %s đã tồn tại cho số điện thoại %s", account, phone)
	case store.ReasonAccountLimit:
		return fmt.Sprintf("Số điện thoại %s đã đạt giới hạn %d tài khoản", phone, maxAccounts)
	case store.ReasonAccountNotFound:
		return fmt.Sprintf("Không tìm thấy tài khoản %s cho số điện thoại %s", account, phone)
	case store.ReasonStorageError:
		return "Không thể lưu dữ liệu. Vui lòng thử lại"
	default:
		return "Đã xảy ra lỗi không xác định"
	}
}
