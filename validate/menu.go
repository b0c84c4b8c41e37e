package validate

import (
	"errors"
	"fmt"

	"hotel_manager/constants"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateMenuItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMenuItemInput
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

		accountInfo, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}
		if isManager {
			if accountInfo.HotelId == nil || *accountInfo.HotelId != input.HotelId {
				return utils.ErrorResponse(c, fiber.StatusForbidden, constants.CAN_NOT_EDIT_HOTEL, errors.New("manager not assigned to this hotel"))
			}
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CreateRestoOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRestoOrderInput
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

		c.Locals("input", input)
		return c.Next()
	}
}
