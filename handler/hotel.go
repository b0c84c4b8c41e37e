package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// CreateHotel admin tạo khách sạn mới, slug sinh tự động từ tên
func CreateHotel(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateHotelInput)

	slugStr := helper.GenerateUniqueHotelSlug(database.DB, input.Name)

	hotel := model.Hotel{
		Name:        input.Name,
		Slug:        slugStr,
		Description: input.Description,
		Address:     input.Address,
		Province:    input.Province,
		Phone:       input.Phone,
		Email:       input.Email,
		IsActive:    true,
	}
	if err := database.DB.Create(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, hotel)
}

// GetHotels danh sách khách sạn công khai (chỉ các khách sạn đang hoạt động)
func GetHotels(c *fiber.Ctx) error {
	province := c.Query("province")

	db := database.DB.Where("is_active = ?", true)
	if province != "" {
		db = db.Where("province = ?", province)
	}

	var hotels []model.Hotel
	if err := db.Order("name asc").Find(&hotels).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hotels)
}

// GetHotelBySlug chi tiết khách sạn kèm danh sách phòng
func GetHotelBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var hotel model.Hotel
	if err := database.DB.
		Preload("Rooms", "status <> ?", constants.RoomDisabled).
		Preload("Rooms.RoomType").
		Preload("Rooms.Photos").
		Preload("ConferenceRooms", "is_active = ?", true).
		Where("slug = ? AND is_active = ?", slugParam, true).
		First(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy khách sạn", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

// EditHotel cập nhật thông tin khách sạn, chỉ ghi đè trường có gửi lên
func EditHotel(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditHotelInput)
	hotel := c.Locals("hotel").(*model.Hotel)

	if err := copier.CopyWithOption(hotel, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi cập nhật dữ liệu", err)
	}
	// Đổi tên thì sinh lại slug
	if input.Name != nil && *input.Name != "" {
		hotel.Slug = helper.GenerateUniqueHotelSlug(database.DB, *input.Name)
	}

	if err := database.DB.Save(hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

// ToggleHotelActive admin tạm ngưng / mở lại một khách sạn
func ToggleHotelActive(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	id := c.Params("id")
	var hotel model.Hotel
	if err := database.DB.First(&hotel, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy khách sạn", err)
	}

	if err := database.DB.Model(&hotel).Update("is_active", !hotel.IsActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":       hotel.ID,
		"isActive": !hotel.IsActive,
	})
}
