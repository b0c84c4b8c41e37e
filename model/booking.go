package model

import (
	"time"

	"hotel_manager/utils"
)

// Booking lưu ngày ở dạng chuỗi "YYYY-MM-DD".
// Bất biến: định dạng ISO sắp xếp đúng theo thứ tự chuỗi, toàn bộ so sánh
// khoảng ngày trong helper dựa trên bất biến này.
type Booking struct {
	DTO
	PublicCode string `gorm:"unique;size:20" json:"publicCode"` // BKG-XXXXXXXX

	RoomId uint `gorm:"not null;index" json:"roomId"`
	Room   Room `gorm:"foreignKey:RoomId" json:"room"`

	CustomerId *uint     `json:"customerId,omitempty"` // null nếu khách vãng lai
	Customer   *Customer `json:"customer,omitempty"`

	StartDate string `gorm:"size:10;not null;index" json:"startDate"` // ngày nhận phòng
	EndDate   string `gorm:"size:10;not null;index" json:"endDate"`   // ngày trả phòng (exclusive tại giờ cutoff)

	Status string `gorm:"not null;default:'pending_payment';index" json:"status"`

	GuestName  string `gorm:"not null" json:"guestName"`
	GuestPhone string `gorm:"not null" json:"guestPhone"`
	GuestEmail string `json:"guestEmail"`
	Guests     int    `gorm:"default:1" json:"guests"`

	Nights         int     `json:"nights"`
	BasePrice      float64 `gorm:"type:decimal(12,2);not null" json:"basePrice"`
	DiscountAmount float64 `gorm:"type:decimal(12,2);default:0" json:"discountAmount"`
	TotalPrice     float64 `gorm:"type:decimal(12,2);not null" json:"totalPrice"` // = max(basePrice - discountAmount, 0)

	PromotionId *uint      `json:"promotionId,omitempty"`
	Promotion   *Promotion `json:"promotion,omitempty"`

	PaymentMethod  string     `json:"paymentMethod"`
	TransactionRef string     `json:"transactionRef"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
	CheckedOutAt   *time.Time `json:"checkedOutAt,omitempty"`

	CreatedBy *uint `json:"createdBy,omitempty"` // account lễ tân tạo hộ, null nếu khách tự đặt
}

type Bookings []Booking

type CreateBookingInput struct {
	RoomId      uint   `json:"roomId" validate:"required"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"required,datetime=2006-01-02"`
	GuestName   string `json:"guestName" validate:"required"`
	GuestPhone  string `json:"guestPhone" validate:"required"`
	GuestEmail  string `json:"guestEmail" validate:"omitempty,email"`
	Guests      int    `json:"guests" validate:"gte=1"`
	PromotionId *uint  `json:"promotionId"`
}

type SubmitPaymentInput struct {
	Method         string `json:"method" validate:"required"`
	TransactionRef string `json:"transactionRef"`
}

type VerifyPaymentInput struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}

type FilterBookingInput struct {
	Pagination
	RoomId    uint              `query:"roomId"`
	HotelId   uint              `query:"hotelId"`
	Status    string            `query:"status"`
	StartDate *utils.CustomDate `query:"startDate"` // YYYY-MM-DD, cùng định dạng với Booking
	EndDate   *utils.CustomDate `query:"endDate"`
}
