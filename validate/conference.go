package validate

import (
	"errors"
	"fmt"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateConferenceRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateConferenceRoomInput
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

		var hotel model.Hotel
		if err := database.DB.First(&hotel, input.HotelId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Khách sạn không tồn tại", fmt.Errorf("hotelId not found"), "hotelId")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CreateConferenceBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateConferenceBookingInput
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

		start, err := time.Parse(time.RFC3339, input.StartTime)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giờ bắt đầu không hợp lệ (RFC3339)", err, "startTime")
		}
		end, err := time.Parse(time.RFC3339, input.EndTime)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giờ kết thúc không hợp lệ (RFC3339)", err, "endTime")
		}
		if !end.After(start) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giờ kết thúc phải sau giờ bắt đầu", errors.New("invalid time range"), "endTime")
		}

		var room model.ConferenceRoom
		if err := database.DB.First(&room, input.ConferenceRoomId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phòng họp không tồn tại", fmt.Errorf("conferenceRoomId not found"), "conferenceRoomId")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
		}
		if !room.IsActive {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phòng họp hiện không nhận đặt", errors.New("conference room inactive"), "conferenceRoomId")
		}

		c.Locals("input", input)
		c.Locals("confRoom", &room)
		c.Locals("startTime", start)
		c.Locals("endTime", end)
		return c.Next()
	}
}
