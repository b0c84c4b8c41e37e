package handler

import (
	"encoding/json"
	"errors"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// GetAppSettings trả về settings đang hiệu lực (bản đã decode trong memory)
func GetAppSettings(c *fiber.Ctx) error {
	settings := helper.GetAppSettings()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingPolicy": settings.BookingPolicy,
		"contactInfo":   settings.ContactInfo,
	})
}

// UpdateBookingPolicy admin cập nhật chính sách đặt phòng.
// Value ghi xuống DB rồi reload lại toàn bộ settings để bản trong memory luôn khớp.
func UpdateBookingPolicy(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var input model.BookingPolicySetting
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if _, err := time.Parse("15:04", input.CheckoutCutoff); err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giờ trả phòng không hợp lệ (HH:MM)", err, "checkoutCutoff")
	}
	if input.PaymentHoldMinutes < 1 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thời gian giữ chỗ phải ít nhất 1 phút", errors.New("invalid hold"), "paymentHoldMinutes")
	}
	if input.MaxNights < 1 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Số đêm tối đa phải ít nhất 1", errors.New("invalid max nights"), "maxNights")
	}

	return saveSetting(c, model.SettingKeyBookingPolicy, input)
}

// UpdateContactInfo admin cập nhật thông tin liên hệ hiển thị cho khách
func UpdateContactInfo(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var input model.ContactInfoSetting
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	return saveSetting(c, model.SettingKeyContactInfo, input)
}

func saveSetting(c *fiber.Ctx, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi mã hóa cấu hình", err)
	}

	setting := model.AppSetting{Key: key, Value: string(raw)}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	settings, err := helper.LoadAppSettings(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cấu hình đã lưu nhưng reload thất bại", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingPolicy": settings.BookingPolicy,
		"contactInfo":   settings.ContactInfo,
	})
}
