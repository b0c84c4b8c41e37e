package validate

import (
	"errors"
	"fmt"
	"strconv"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePromotion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePromotionInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if input.EndDate < input.StartDate {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày kết thúc phải sau ngày bắt đầu", errors.New("invalid date range"), "endDate")
		}

		// Mỗi loại giảm giá chỉ dùng một trường giá trị
		if input.DiscountType == constants.DiscountPercentage && input.DiscountPercent <= 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Khuyến mãi theo %% phải có discountPercent > 0", errors.New("missing discountPercent"), "discountPercent")
		}
		if input.DiscountType == constants.DiscountFixed && input.DiscountAmount <= 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Khuyến mãi cố định phải có discountAmount > 0", errors.New("missing discountAmount"), "discountAmount")
		}

		_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		var count int64
		database.DB.Model(&model.Promotion{}).Where("code = ?", input.Code).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Mã khuyến mãi đã tồn tại", errors.New("duplicate code"), "code")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditPromotion(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		promotionId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditPromotionInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		var promotion model.Promotion
		if err := database.DB.First(&promotion, promotionId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Khuyến mãi không tồn tại", err)
		}

		c.Locals("input", input)
		c.Locals("promotion", &promotion)
		return c.Next()
	}
}
