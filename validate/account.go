package validate

import (
	"errors"
	"fmt"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAccountInput
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

		if !utils.IsValidValueOfConstant(input.Role, constants.Roles) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Vai trò không hợp lệ", errors.New("invalid role"), "role")
		}

		_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		var count int64
		database.DB.Model(&model.Account{}).Where("username = ?", input.Username).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Tên đăng nhập đã tồn tại", errors.New("duplicate username"), "username")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func AdminChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AdminChangePassword
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}

		if input.NewPassword == "" || input.NewPassword != input.RepeatPassword {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Mật khẩu mới không khớp",
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
