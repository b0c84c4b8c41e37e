package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateAccount admin tạo tài khoản nhân viên kèm hồ sơ staff
func CreateAccount(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateAccountInput)

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi xử lý mật khẩu", err)
	}

	var account model.Account
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		account = model.Account{
			Username: input.Username,
			Password: hashed,
			Role:     input.Role,
			IsActive: true,
			HotelId:  input.HotelId,
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		staff := model.Staff{
			FullName:  input.FullName,
			Phone:     input.Phone,
			Email:     input.Email,
			IsActive:  true,
			AccountId: account.ID,
			HotelId:   input.HotelId,
		}
		return tx.Create(&staff).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message":  "Tạo tài khoản thành công",
		"username": account.Username,
		"role":     account.Role,
	})
}

// GetAccounts danh sách tài khoản nhân viên (admin)
func GetAccounts(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var accounts []model.Account
	if err := database.DB.Preload("Staff").Preload("Hotel").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, accounts)
}

// ToggleAccountActive khóa / mở khóa tài khoản nhân viên (admin)
func ToggleAccountActive(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	id := c.Params("id")
	var account model.Account
	if err := database.DB.First(&account, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy tài khoản", err)
	}
	if account.Role == constants.RoleAdmin {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không thể khóa tài khoản admin", errors.New("cannot lock admin"))
	}

	if err := database.DB.Model(&account).Update("is_active", !account.IsActive).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":       account.ID,
		"isActive": !account.IsActive,
	})
}

// AdminChangePassword admin đặt lại mật khẩu cho nhân viên
func AdminChangePassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.AdminChangePassword)

	var account model.Account
	if err := database.DB.First(&account, input.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy tài khoản", err)
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi xử lý mật khẩu", err)
	}
	if err := database.DB.Model(&account).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đổi mật khẩu thành công"})
}

// ChangePasswordStaff nhân viên tự đổi mật khẩu
func ChangePasswordStaff(c *fiber.Ctx) error {
	var input model.StaffChangePassword
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.NewPassword != input.RepeatPassword {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Mật khẩu nhập lại không khớp", errors.New("mismatch"), "repeatPassword")
	}
	if len(input.NewPassword) < 6 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Mật khẩu phải từ 6 ký tự", errors.New("too short"), "newPassword")
	}

	claim, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isFrontDesk {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("not staff"))
	}

	var account model.Account
	if err := database.DB.First(&account, claim.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy tài khoản", err)
	}
	if !helper.CheckPasswordHash(input.CurrentPassword, account.Password) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Mật khẩu hiện tại không đúng", errors.New("wrong password"), "currentPassword")
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi xử lý mật khẩu", err)
	}
	if err := database.DB.Model(&account).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đổi mật khẩu thành công"})
}
