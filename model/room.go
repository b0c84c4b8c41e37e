package model

type RoomType struct {
	DTO
	Name        string  `gorm:"not null" json:"name"` // Standard, Deluxe, Suite...
	NightlyRate float64 `gorm:"type:decimal(12,2);not null" json:"nightlyRate"`
	MaxGuests   int     `gorm:"default:2" json:"maxGuests"`
	Description string  `gorm:"type:text" json:"description"`
}

type Room struct {
	DTO
	Number string `gorm:"not null;uniqueIndex:idx_hotel_room" json:"number"`
	Floor  int    `json:"floor"`
	Status string `gorm:"default:'AVAILABLE';not null" json:"status"` // AVAILABLE, MAINTENANCE, DISABLED

	RoomTypeId uint     `gorm:"not null;index" json:"roomTypeId"`
	RoomType   RoomType `gorm:"foreignKey:RoomTypeId" json:"roomType"`

	HotelId uint  `gorm:"not null;uniqueIndex:idx_hotel_room" json:"hotelId"`
	Hotel   Hotel `gorm:"foreignKey:HotelId" json:"hotel"`

	Photos []RoomPhoto `gorm:"foreignKey:RoomId" json:"photos,omitempty"`
}

type RoomPhoto struct {
	DTO
	RoomId uint    `gorm:"not null;index" json:"roomId"`
	Url    *string `json:"url"`
}

type CreateRoomInput struct {
	Number     string `json:"number" validate:"required"`
	Floor      int    `json:"floor" validate:"gte=0"`
	RoomTypeId uint   `json:"roomTypeId" validate:"required"`
	HotelId    uint   `json:"hotelId" validate:"required"`
}

type EditRoomInput struct {
	Number     *string `json:"number"`
	Floor      *int    `json:"floor"`
	Status     *string `json:"status"`
	RoomTypeId *uint   `json:"roomTypeId"`
}

type CreateRoomTypeInput struct {
	Name        string  `json:"name" validate:"required"`
	NightlyRate float64 `json:"nightlyRate" validate:"required,gt=0"`
	MaxGuests   int     `json:"maxGuests" validate:"gte=1"`
	Description string  `json:"description"`
}
