package model

import "time"

type Account struct {
	DTO
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'FRONT_DESK'" json:"role"` // ADMIN, MANAGER, FRONT_DESK
	IsActive bool   `gorm:"default:true" json:"isActive"`

	HotelId *uint  `json:"hotelId"`
	Hotel   *Hotel `gorm:"foreignKey:HotelId" json:"hotel,omitempty"`

	Staff *Staff `gorm:"foreignKey:AccountId" json:"staff,omitempty"`
}

type Staff struct {
	DTO
	FullName string     `gorm:"not null" json:"fullName"`
	Phone    string     `json:"phone"`
	Email    string     `json:"email"`
	Position string     `json:"position"` // lễ tân, buồng phòng, nhà hàng...
	HiredAt  *time.Time `json:"hiredAt,omitempty"`
	IsActive bool       `gorm:"default:true" json:"isActive"`

	AccountId uint  `gorm:"not null;index" json:"accountId"`
	HotelId   *uint `json:"hotelId"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateAccountInput struct {
	Username       string `json:"username" validate:"required,min=4"`
	Password       string `json:"password" validate:"required,min=6"`
	RepeatPassword string `json:"repeatPassword" validate:"required,eqfield=Password"`
	Role           string `json:"role" validate:"required"`
	FullName       string `json:"fullName" validate:"required"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
	HotelId        *uint  `json:"hotelId"`
}
