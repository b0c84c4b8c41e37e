package utils

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// TranslateDBError đổi một số lỗi database quen thuộc thành thông báo
// thân thiện cho người dùng, còn lại trả về thông báo chung.
func TranslateDBError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "Không tìm thấy dữ liệu"
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "permission denied"):
		return "Bạn không có quyền thực hiện thao tác này"
	case strings.Contains(msg, "foreign key"):
		return "Dữ liệu liên quan không tồn tại hoặc đang được sử dụng"
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint"):
		return "Dữ liệu đã tồn tại"
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "connection reset"):
		return "Hệ thống đang bận, vui lòng thử lại sau"
	}
	return "Đã có lỗi xảy ra, vui lòng thử lại"
}
