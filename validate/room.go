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
	"gorm.io/gorm"
)

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
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

		var roomType model.RoomType
		if err := database.DB.First(&roomType, input.RoomTypeId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Hạng phòng không tồn tại", fmt.Errorf("roomTypeId not found"), "roomTypeId")
		}

		// Số phòng không trùng trong cùng khách sạn
		var count int64
		database.DB.Model(&model.Room{}).
			Where("hotel_id = ? AND number = ?", input.HotelId, input.Number).
			Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Số phòng đã tồn tại trong khách sạn", errors.New("duplicate room number"), "number")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditRoom(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		roomId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditRoomInput
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

		if input.Status != nil {
			statuses := []string{constants.RoomAvailable, constants.RoomMaintenance, constants.RoomDisabled}
			if !utils.IsValidValueOfConstant(*input.Status, statuses) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Trạng thái phòng không hợp lệ", errors.New("invalid status"), "status")
			}
		}

		var room model.Room
		if err := database.DB.First(&room, roomId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Phòng không tồn tại", err)
		}

		accountInfo, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}
		if isManager {
			if accountInfo.HotelId == nil || *accountInfo.HotelId != room.HotelId {
				return utils.ErrorResponse(c, fiber.StatusForbidden, constants.CAN_NOT_EDIT_HOTEL, errors.New("manager not assigned to this hotel"))
			}
		}

		c.Locals("input", input)
		c.Locals("room", &room)
		return c.Next()
	}
}

func CreateRoomType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomTypeInput
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
