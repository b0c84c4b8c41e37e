package model

type Hotel struct {
	DTO
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"unique;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Address     string `json:"address"`
	Province    string `gorm:"index" json:"province"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	LogoUrl     *string `json:"logoUrl,omitempty"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	Rooms           []Room           `gorm:"foreignKey:HotelId" json:"rooms,omitempty"`
	ConferenceRooms []ConferenceRoom `gorm:"foreignKey:HotelId" json:"conferenceRooms,omitempty"`
}

type CreateHotelInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address" validate:"required"`
	Province    string `json:"province" validate:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type EditHotelInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Province    *string `json:"province"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" validate:"omitempty,email"`
}
