package handler

import (
	"errors"
	"fmt"
	"net/smtp"
	"net/textproto"
	"os"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jordan-wright/email"
	"gorm.io/gorm"
)

// RegisterCustomer đăng ký tài khoản khách hàng
func RegisterCustomer(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RegisterCustomerInput)

	existing, err := helper.GetCustomerByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Email đã được sử dụng", errors.New("email taken"), "email")
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi xử lý mật khẩu", err)
	}

	customer := model.Customer{
		FullName: input.FullName,
		Email:    input.Email,
		Password: hashed,
		Phone:    input.Phone,
		IsActive: true,
	}
	if err := database.DB.Create(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Đăng ký thành công",
		"email":   customer.Email,
	})
}

// LoginCustomer đăng nhập khách hàng bằng email
func LoginCustomer(c *fiber.Ctx) error {
	var input model.CustomerLoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	customer, err := helper.GetCustomerByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	if customer == nil || !helper.CheckPasswordHash(input.Password, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Sai email hoặc mật khẩu", errors.New("invalid credentials"))
	}
	if !customer.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Tài khoản đã bị khóa", errors.New("customer disabled"))
	}

	now := time.Now()
	database.DB.Model(customer).Update("last_seen", now)

	tokenClaim := model.TokenClaim{
		CustomerId: customer.ID,
		Username:   customer.Email,
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
		Username:     customer.Email,
		FullName:     customer.FullName,
	})
}

// GetCustomerProfile thông tin khách hàng đang đăng nhập
func GetCustomerProfile(c *fiber.Ctx) error {
	_, customer := helper.GetInfoCustomerFromToken(c)
	if customer.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

// ChangePasswordCustomer đổi mật khẩu khi đã đăng nhập
func ChangePasswordCustomer(c *fiber.Ctx) error {
	input := c.Locals("input").(model.StaffChangePassword)

	_, customer := helper.GetInfoCustomerFromToken(c)
	if customer.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, customer.Password) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Mật khẩu hiện tại không đúng", errors.New("wrong password"), "currentPassword")
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi xử lý mật khẩu", err)
	}
	if err := database.DB.Model(&customer).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đổi mật khẩu thành công"})
}

// ForgotPassword gửi email chứa link đặt lại mật khẩu, token sống 30 phút.
// Luôn trả về thành công để không lộ email nào đã đăng ký.
func ForgotPassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ForgotPasswordInput)

	okResponse := fiber.Map{"message": "Nếu email tồn tại, hướng dẫn đặt lại mật khẩu đã được gửi"}

	customer, err := helper.GetCustomerByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	if customer == nil || !customer.IsActive {
		return utils.SuccessResponse(c, fiber.StatusOK, okResponse)
	}

	resetToken := model.PasswordResetToken{
		CustomerId: customer.ID,
		Token:      uuid.New().String(),
		ExpiresAt:  time.Now().Add(30 * time.Minute),
	}
	if err := database.DB.Create(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	go sendResetPasswordEmail(customer.Email, customer.FullName, resetToken.Token)

	return utils.SuccessResponse(c, fiber.StatusOK, okResponse)
}

// ResetPassword đặt lại mật khẩu bằng token nhận qua email
func ResetPassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ResetPasswordInput)

	var resetToken model.PasswordResetToken
	if err := database.DB.Where("token = ?", input.Token).First(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Token không hợp lệ", err)
	}
	if resetToken.Used || time.Now().After(resetToken.ExpiresAt) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Token đã hết hạn hoặc đã được sử dụng", errors.New("token expired"))
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi xử lý mật khẩu", err)
	}

	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Customer{}).
			Where("id = ?", resetToken.CustomerId).
			Update("password", hashed).Error; err != nil {
			return err
		}
		return tx.Model(&resetToken).Update("used", true).Error
	}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đặt lại mật khẩu thành công"})
}

func sendResetPasswordEmail(to, fullName, token string) {
	e := &email.Email{
		To:      []string{to},
		From:    os.Getenv("SMTP_FROM"),
		Subject: "Đặt lại mật khẩu",
		Text: []byte(fmt.Sprintf(
			"Xin chào %s,\n\nBạn vừa yêu cầu đặt lại mật khẩu. Nhấn vào link sau (hiệu lực 30 phút):\n%s/dat-lai-mat-khau?token=%s\n\nNếu không phải bạn, hãy bỏ qua email này.",
			fullName, helper.FrontendURL(), token)),
		Headers: textproto.MIMEHeader{},
	}

	addr := fmt.Sprintf("%s:%s", os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"))
	auth := smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))
	if err := e.Send(addr, auth); err != nil {
		fmt.Printf("Lỗi gửi email đặt lại mật khẩu cho %s: %v\n", to, err)
	}
}
