package model

import "time"

type ConferenceRoom struct {
	DTO
	Name       string  `gorm:"not null" json:"name"`
	Capacity   int     `gorm:"not null" json:"capacity"`
	HourlyRate float64 `gorm:"type:decimal(12,2);not null" json:"hourlyRate"`
	IsActive   bool    `gorm:"default:true" json:"isActive"`

	HotelId uint  `gorm:"not null;index" json:"hotelId"`
	Hotel   Hotel `gorm:"foreignKey:HotelId" json:"hotel"`
}

// ConferenceBooking đặt theo khung giờ trong ngày, khác với Booking theo đêm.
type ConferenceBooking struct {
	DTO
	PublicCode string `gorm:"unique;size:20" json:"publicCode"` // CNF-XXXXXXXX

	ConferenceRoomId uint           `gorm:"not null;index" json:"conferenceRoomId"`
	ConferenceRoom   ConferenceRoom `gorm:"foreignKey:ConferenceRoomId" json:"conferenceRoom"`

	StartTime time.Time `gorm:"not null;index" json:"startTime"`
	EndTime   time.Time `gorm:"not null;index" json:"endTime"`

	Status      string  `gorm:"not null;default:'confirmed'" json:"status"`
	ContactName string  `gorm:"not null" json:"contactName"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	TotalPrice  float64 `gorm:"type:decimal(12,2);not null" json:"totalPrice"`

	CreatedBy *uint `json:"createdBy,omitempty"`
}

type CreateConferenceBookingInput struct {
	ConferenceRoomId uint   `json:"conferenceRoomId" validate:"required"`
	StartTime        string `json:"startTime" validate:"required"` // RFC3339
	EndTime          string `json:"endTime" validate:"required"`
	ContactName      string `json:"contactName" validate:"required"`
	Phone            string `json:"phone" validate:"required"`
	Email            string `json:"email" validate:"omitempty,email"`
}

type CreateConferenceRoomInput struct {
	Name       string  `json:"name" validate:"required"`
	Capacity   int     `json:"capacity" validate:"required,gte=1"`
	HourlyRate float64 `json:"hourlyRate" validate:"required,gt=0"`
	HotelId    uint    `json:"hotelId" validate:"required"`
}
