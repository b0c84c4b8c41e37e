package validate

import (
	"errors"
	"fmt"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateBooking parse + validate input bước Details, kiểm tra phòng tồn tại
// và đang mở bán. Kiểm tra trùng lịch nằm ở handler (phải đọc lại booking
// ngay trước khi ghi).
func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
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

		if input.EndDate <= input.StartDate {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày trả phòng phải sau ngày nhận phòng", errors.New("invalid date range"), "endDate")
		}

		var room model.Room
		if err := database.DB.Preload("RoomType").Preload("Hotel").First(&room, input.RoomId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phòng không tồn tại", fmt.Errorf("roomId not found"), "roomId")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
		}
		if room.Status != constants.RoomAvailable {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phòng hiện không nhận đặt", errors.New("room not available"), "roomId")
		}
		if input.Guests > room.RoomType.MaxGuests {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				fmt.Sprintf("Phòng chỉ chứa tối đa %d khách", room.RoomType.MaxGuests), errors.New("too many guests"), "guests")
		}

		c.Locals("input", input)
		c.Locals("room", &room)
		return c.Next()
	}
}

// SubmitPayment validate bước Payment: method hợp lệ, không phải tiền mặt
// thì bắt buộc có mã giao dịch.
func SubmitPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SubmitPaymentInput
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

		methods := []string{constants.PaymentCash, constants.PaymentCard, constants.PaymentBankTransfer, constants.PaymentEWallet}
		if !utils.IsValidValueOfConstant(input.Method, methods) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phương thức thanh toán không hợp lệ", errors.New("invalid payment method"), "method")
		}

		if input.Method != constants.PaymentCash && input.TransactionRef == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Vui lòng nhập mã giao dịch", errors.New("transactionRef required"), "transactionRef")
		}

		c.Locals("input", input)
		return c.Next()
	}
}
