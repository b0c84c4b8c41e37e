package model

import "time"

type MenuItem struct {
	DTO
	Name        string  `gorm:"not null" json:"name"`
	Category    string  `gorm:"index" json:"category"` // khai vị, món chính, đồ uống...
	Price       float64 `gorm:"type:decimal(12,2);not null" json:"price"`
	Description string  `gorm:"type:text" json:"description"`
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`
	PhotoUrl    *string `json:"photoUrl,omitempty"`

	HotelId uint `gorm:"not null;index" json:"hotelId"`
}

type RestoOrder struct {
	DTO
	PublicCode string `gorm:"unique;size:20" json:"publicCode"` // RST-XXXXXXXX

	HotelId     uint   `gorm:"not null;index" json:"hotelId"`
	TableNumber string `json:"tableNumber"`

	// Đơn có thể gắn với booking đang lưu trú để tính vào hóa đơn phòng
	BookingId *uint    `gorm:"index" json:"bookingId,omitempty"`
	Booking   *Booking `json:"booking,omitempty"`

	Status        string     `gorm:"not null;default:'PENDING'" json:"status"`
	TotalAmount   float64    `gorm:"type:decimal(12,2);not null" json:"totalAmount"`
	PaymentMethod string     `json:"paymentMethod"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`

	Items []RestoOrderItem `gorm:"foreignKey:OrderId" json:"items"`
}

type RestoOrderItem struct {
	DTO
	OrderId    uint     `gorm:"not null;index" json:"orderId"`
	MenuItemId uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemId" json:"menuItem"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	UnitPrice  float64  `gorm:"type:decimal(12,2);not null" json:"unitPrice"` // giá tại thời điểm gọi món
	Note       string   `json:"note"`
}

type CreateMenuItemInput struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
	HotelId     uint    `json:"hotelId" validate:"required"`
}

type CreateRestoOrderInput struct {
	HotelId     uint                   `json:"hotelId" validate:"required"`
	TableNumber string                 `json:"tableNumber" validate:"required"`
	BookingCode string                 `json:"bookingCode"`
	Items       []RestoOrderItemInput  `json:"items" validate:"required,min=1,dive"`
}

type RestoOrderItemInput struct {
	MenuItemId uint   `json:"menuItemId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gte=1"`
	Note       string `json:"note"`
}
