package handler

import (
	"errors"
	"strings"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// CreatePromotion tạo chương trình khuyến mãi mới
func CreatePromotion(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreatePromotionInput)

	promotion := model.Promotion{
		Code:            strings.ToUpper(input.Code),
		Title:           input.Title,
		Description:     input.Description,
		DiscountType:    input.DiscountType,
		DiscountPercent: input.DiscountPercent,
		DiscountAmount:  input.DiscountAmount,
		MinimumAmount:   input.MinimumAmount,
		MaximumUses:     input.MaximumUses,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		IsActive:        true,
		HotelId:         input.HotelId,
	}
	if err := database.DB.Create(&promotion).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, promotion)
}

// EditPromotion cập nhật khuyến mãi, chỉ ghi đè trường có gửi lên
func EditPromotion(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditPromotionInput)
	promotion := c.Locals("promotion").(*model.Promotion)

	if err := copier.CopyWithOption(promotion, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi cập nhật dữ liệu", err)
	}
	// IgnoreEmpty bỏ qua false, phải gán tay khi muốn tắt khuyến mãi
	if input.IsActive != nil {
		promotion.IsActive = *input.IsActive
	}

	if err := database.DB.Save(promotion).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, promotion)
}

// GetPromotionsAdmin toàn bộ khuyến mãi cho dashboard nhân viên
func GetPromotionsAdmin(c *fiber.Ctx) error {
	_, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isFrontDesk {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	var promotions []model.Promotion
	if err := database.DB.Preload("Hotel").Order("created_at desc").Find(&promotions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, promotions)
}

// GetEligiblePromotions các khuyến mãi khách có thể áp dụng cho một đơn cụ thể.
// Tính từ baseTotal do server tự dựng lại (roomId + ngày), không nhận giá từ client.
func GetEligiblePromotions(c *fiber.Ctx) error {
	roomId := c.QueryInt("roomId")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	if roomId <= 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu roomId", errors.New("roomId required"), "roomId")
	}
	if !utils.IsValidISODate(startDate) || !utils.IsValidISODate(endDate) || endDate <= startDate {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Khoảng ngày không hợp lệ (YYYY-MM-DD, endDate > startDate)", errors.New("invalid date range"))
	}

	var room model.Room
	if err := database.DB.Preload("RoomType").First(&room, roomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phòng không tồn tại", err)
	}

	nights := helper.ComputeNights(startDate, endDate)
	baseTotal := helper.ComputeBaseTotal(nights, room.RoomType.NightlyRate)

	var promotions []model.Promotion
	if err := database.DB.
		Where("is_active = ? AND (hotel_id IS NULL OR hotel_id = ?)", true, room.HotelId).
		Find(&promotions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	today := time.Now().In(helper.HotelLocation()).Format("2006-01-02")
	eligible := helper.EligiblePromotions(promotions, baseTotal, today)

	response := []fiber.Map{}
	for i := range eligible {
		p := eligible[i]
		discount := helper.ComputeDiscount(&p, baseTotal, nights)
		response = append(response, fiber.Map{
			"promotion":      p,
			"discountAmount": discount,
			"finalTotal":     helper.ComputeFinalTotal(baseTotal, discount),
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"baseTotal":  baseTotal,
		"nights":     nights,
		"promotions": response,
	})
}

// GetPromotionById chi tiết một khuyến mãi
func GetPromotionById(c *fiber.Ctx) error {
	promotionId := c.Locals("inputId").(int)

	var promotion model.Promotion
	if err := database.DB.Preload("Hotel").First(&promotion, promotionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy khuyến mãi", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, promotion)
}

// GetPromotionUsages lịch sử dùng của một khuyến mãi
func GetPromotionUsages(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	promotionId, err := c.ParamsInt("id")
	if err != nil || promotionId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
	}

	var usages []model.PromotionUsage
	if err := database.DB.
		Where("promotion_id = ?", promotionId).
		Order("applied_at desc").
		Find(&usages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, usages)
}
