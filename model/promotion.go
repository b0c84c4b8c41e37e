package model

import "time"

type Promotion struct {
	DTO
	Code            string  `gorm:"unique;not null" json:"code"`
	Title           string  `gorm:"not null" json:"title"`
	Description     string  `gorm:"type:text" json:"description"`
	DiscountType    string  `gorm:"not null" json:"discountType"` // 'percentage','fixed'
	DiscountPercent float64 `gorm:"type:decimal(5,2);default:0" json:"discountPercent"`
	DiscountAmount  float64 `gorm:"type:decimal(12,2);default:0" json:"discountAmount"` // giảm theo MỖI ĐÊM với loại 'fixed'
	MinimumAmount   float64 `gorm:"type:decimal(12,2);default:0" json:"minimumAmount"`
	MaximumUses     int     `gorm:"default:0" json:"maximumUses"` // 0 = không giới hạn
	CurrentUses     int     `gorm:"default:0" json:"currentUses"`
	StartDate       string  `gorm:"size:10;not null" json:"startDate"` // YYYY-MM-DD
	EndDate         string  `gorm:"size:10;not null" json:"endDate"`
	IsActive        bool    `gorm:"default:true" json:"isActive"`

	HotelId *uint  `json:"hotelId"`
	Hotel   *Hotel `gorm:"foreignKey:HotelId" json:"hotel,omitempty"`
}

type Promotions []Promotion

type PromotionUsage struct {
	DTO
	PromotionId     uint      `gorm:"not null;index" json:"promotionId"`
	BookingId       uint      `gorm:"not null;index" json:"bookingId"`
	CustomerId      *uint     `gorm:"index" json:"customerId"`
	AppliedAt       time.Time `gorm:"not null" json:"appliedAt"`
	DiscountApplied float64   `gorm:"type:decimal(12,2);not null" json:"discountApplied"`
}

type CreatePromotionInput struct {
	Code            string  `json:"code" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description"`
	DiscountType    string  `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountPercent float64 `json:"discountPercent" validate:"gte=0,lte=100"`
	DiscountAmount  float64 `json:"discountAmount" validate:"gte=0"`
	MinimumAmount   float64 `json:"minimumAmount" validate:"gte=0"`
	MaximumUses     int     `json:"maximumUses" validate:"gte=0"`
	StartDate       string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"endDate" validate:"required,datetime=2006-01-02"`
	HotelId         *uint   `json:"hotelId"`
}

type EditPromotionInput struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	DiscountPercent *float64 `json:"discountPercent" validate:"omitempty,gte=0,lte=100"`
	DiscountAmount  *float64 `json:"discountAmount" validate:"omitempty,gte=0"`
	MinimumAmount   *float64 `json:"minimumAmount" validate:"omitempty,gte=0"`
	MaximumUses     *int     `json:"maximumUses" validate:"omitempty,gte=0"`
	StartDate       *string  `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate         *string  `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	IsActive        *bool    `json:"isActive"`
}
