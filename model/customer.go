package model

import "time"

type Customer struct {
	DTO
	FullName string     `gorm:"not null" json:"fullName"`
	Email    string     `gorm:"unique;not null" json:"email"`
	Password string     `gorm:"not null" json:"-"`
	Phone    string     `json:"phone"`
	IsActive bool       `gorm:"default:true" json:"isActive"`
	LastSeen *time.Time `json:"lastSeen,omitempty"`
}

type PasswordResetToken struct {
	DTO
	CustomerId uint      `gorm:"not null;index" json:"customerId"`
	Token      string    `gorm:"unique;not null" json:"-"`
	ExpiresAt  time.Time `gorm:"not null" json:"expiresAt"`
	Used       bool      `gorm:"default:false" json:"used"`
}

type RegisterCustomerInput struct {
	FullName       string `json:"fullName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	RepeatPassword string `json:"repeatPassword" validate:"required,eqfield=Password"`
	Phone          string `json:"phone"`
}

type CustomerLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token          string `json:"token" validate:"required"`
	NewPassword    string `json:"newPassword" validate:"required,min=6"`
	RepeatPassword string `json:"repeatPassword" validate:"required,eqfield=NewPassword"`
}
