package model

// AppSetting lưu cấu hình dạng JSON theo key, mỗi key một shape cố định.
type AppSetting struct {
	DTO
	Key   string `gorm:"unique;not null" json:"key"`
	Value string `gorm:"type:jsonb;not null" json:"value"`
}

// Các shape đã biết. Shape lạ bị từ chối ngay khi decode thay vì
// dò field tại từng nơi dùng.
const (
	SettingKeyBookingPolicy = "booking_policy"
	SettingKeyContactInfo   = "contact_info"
)

type BookingPolicySetting struct {
	CheckoutCutoff     string `json:"checkoutCutoff"`     // "09:30"
	PaymentHoldMinutes int    `json:"paymentHoldMinutes"` // pending_payment quá hạn sẽ bị hủy
	MaxNights          int    `json:"maxNights"`
}

// HoldMinutes thời gian giữ chỗ hiệu lực, chưa cấu hình thì 15 phút
func (p BookingPolicySetting) HoldMinutes() int {
	if p.PaymentHoldMinutes <= 0 {
		return 15
	}
	return p.PaymentHoldMinutes
}

type ContactInfoSetting struct {
	Hotline string `json:"hotline"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// AppSettings là kết quả decode một lần lúc khởi động.
type AppSettings struct {
	BookingPolicy BookingPolicySetting
	ContactInfo   ContactInfoSetting
}
