package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Login đăng nhập cho tài khoản nhân viên (admin / manager / frontdesk)
func Login(c *fiber.Ctx) error {
	var input model.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	account, err := helper.GetAccountByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	if account == nil || !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sai tên đăng nhập hoặc mật khẩu", errors.New("invalid credentials"))
	}
	if !account.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Tài khoản đã bị khóa", errors.New("account disabled"))
	}

	tokenClaim := model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		HotelId:   account.HotelId,
	}
	accessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tạo token", err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tạo token", err)
	}

	fullName := ""
	var staff model.Staff
	if err := database.DB.Where("account_id = ?", account.ID).First(&staff).Error; err == nil {
		fullName = staff.FullName
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         account.Role,
		Username:     account.Username,
		FullName:     fullName,
	})
}

// RefreshToken đổi refresh token lấy cặp token mới
func RefreshToken(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	token, err := helper.ParseToken(input.RefreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Token không hợp lệ hoặc đã hết hạn", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Token không hợp lệ", errors.New("invalid claims"))
	}

	tokenClaim := model.TokenClaim{}
	if v, ok := claims["accountId"].(float64); ok {
		tokenClaim.AccountId = uint(v)
	}
	if v, ok := claims["customerId"].(float64); ok {
		tokenClaim.CustomerId = uint(v)
	}
	if v, ok := claims["username"].(string); ok {
		tokenClaim.Username = v
	}

	// Nhân viên: kiểm tra lại tài khoản còn hoạt động trước khi cấp token mới
	if tokenClaim.AccountId > 0 {
		account, err := helper.GetAccountByUsername(tokenClaim.Username)
		if err != nil || account == nil || !account.IsActive {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Tài khoản không còn hiệu lực", errors.New("account revoked"))
		}
		tokenClaim.HotelId = account.HotelId
	}

	accessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tạo token", err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tạo token", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
