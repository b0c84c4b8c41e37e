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

func CreateHotel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHotelInput
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

		_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditHotel(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		hotelId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditHotelInput
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

		var hotel model.Hotel
		if err := database.DB.First(&hotel, hotelId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Khách sạn không tồn tại", err)
		}

		accountInfo, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}
		if isManager {
			if accountInfo.HotelId == nil || *accountInfo.HotelId != hotel.ID {
				return utils.ErrorResponse(c, fiber.StatusForbidden, constants.CAN_NOT_EDIT_HOTEL, errors.New("manager not assigned to this hotel"))
			}
		}

		c.Locals("input", input)
		c.Locals("hotel", &hotel)
		return c.Next()
	}
}
