package handler

import (
	"errors"
	"math"
	"strings"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateConferenceRoom tạo phòng hội nghị mới
func CreateConferenceRoom(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateConferenceRoomInput)

	room := model.ConferenceRoom{
		Name:       input.Name,
		Capacity:   input.Capacity,
		HourlyRate: input.HourlyRate,
		IsActive:   true,
		HotelId:    input.HotelId,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

// GetConferenceRooms danh sách phòng hội nghị của một khách sạn
func GetConferenceRooms(c *fiber.Ctx) error {
	hotelId := c.QueryInt("hotelId")
	if hotelId <= 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu hotelId", errors.New("hotelId required"), "hotelId")
	}

	var rooms []model.ConferenceRoom
	if err := database.DB.
		Where("hotel_id = ? AND is_active = ?", hotelId, true).
		Order("capacity asc").
		Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

// CreateConferenceBooking đặt phòng hội nghị theo khung giờ.
// Khung giờ nửa mở [start, end): hai khung kề nhau không tính là trùng.
func CreateConferenceBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateConferenceBookingInput)
	room := c.Locals("confRoom").(*model.ConferenceRoom)
	start := c.Locals("startTime").(time.Time)
	end := c.Locals("endTime").(time.Time)

	hours := end.Sub(start).Hours()
	totalPrice := math.Ceil(hours) * room.HourlyRate

	var createdBy *uint
	if accountInfo, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c); isAdmin || isManager || isFrontDesk {
		createdBy = utils.Ptr(accountInfo.AccountId)
	}

	var booking model.ConferenceBooking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var lockedRoom model.ConferenceRoom
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&lockedRoom, room.ID).Error; err != nil {
			return err
		}

		var existing []model.ConferenceBooking
		if err := tx.
			Where("conference_room_id = ? AND status <> ?", room.ID, constants.BookingCancelled).
			Find(&existing).Error; err != nil {
			return err
		}
		if helper.HasSlotConflict(start, end, existing) {
			return errSlotConflict
		}

		booking = model.ConferenceBooking{
			PublicCode:       "CNF-" + strings.ToUpper(uuid.New().String()[:8]),
			ConferenceRoomId: room.ID,
			StartTime:        start,
			EndTime:          end,
			Status:           constants.BookingConfirmed,
			ContactName:      input.ContactName,
			Phone:            input.Phone,
			Email:            input.Email,
			TotalPrice:       totalPrice,
			CreatedBy:        createdBy,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		if errors.Is(err, errSlotConflict) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Phòng hội nghị đã có lịch trong khung giờ này", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"bookingCode": booking.PublicCode,
		"room":        room.Name,
		"startTime":   booking.StartTime,
		"endTime":     booking.EndTime,
		"totalPrice":  totalPrice,
	})
}

var errSlotConflict = errors.New("conference slot conflict")

// CancelConferenceBooking hủy lịch phòng hội nghị
func CancelConferenceBooking(c *fiber.Ctx) error {
	_, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isFrontDesk {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	bookingCode := c.Params("bookingCode")
	var booking model.ConferenceBooking
	if err := database.DB.Where("public_code = ?", bookingCode).First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy lịch đặt", err)
	}
	if booking.Status == constants.BookingCancelled {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Lịch đặt đã được hủy trước đó", nil)
	}

	if err := database.DB.Model(&booking).Update("status", constants.BookingCancelled).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Hủy lịch đặt phòng hội nghị thành công"})
}

// GetConferenceSchedule lịch sử dụng của một phòng hội nghị trong ngày
func GetConferenceSchedule(c *fiber.Ctx) error {
	roomId, err := c.ParamsInt("id")
	if err != nil || roomId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
	}

	date := c.Query("date")
	if !utils.IsValidISODate(date) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ngày không hợp lệ (YYYY-MM-DD)", errors.New("invalid date"))
	}

	loc := helper.HotelLocation()
	dayStart, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ngày không hợp lệ (YYYY-MM-DD)", err)
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	var bookings []model.ConferenceBooking
	if err := database.DB.
		Where("conference_room_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			roomId, constants.BookingCancelled, dayEnd, dayStart).
		Order("start_time asc").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}
