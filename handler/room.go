package handler

import (
	"context"
	"errors"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// CreateRoom tạo phòng mới (đã qua validate: quyền, khách sạn, hạng phòng, trùng số)
func CreateRoom(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateRoomInput)

	room := model.Room{
		Number:     input.Number,
		Floor:      input.Floor,
		Status:     constants.RoomAvailable,
		RoomTypeId: input.RoomTypeId,
		HotelId:    input.HotelId,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	BroadcastRoomAvailability(room.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

// EditRoom cập nhật phòng, chỉ ghi đè trường có gửi lên
func EditRoom(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditRoomInput)
	room := c.Locals("room").(*model.Room)

	if err := copier.CopyWithOption(room, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi cập nhật dữ liệu", err)
	}

	if err := database.DB.Save(room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	BroadcastRoomAvailability(room.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

// GetRooms danh sách phòng của một khách sạn
func GetRooms(c *fiber.Ctx) error {
	hotelId := c.QueryInt("hotelId")
	if hotelId <= 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu hotelId", errors.New("hotelId required"), "hotelId")
	}

	var rooms []model.Room
	if err := database.DB.
		Preload("RoomType").
		Preload("Photos").
		Where("hotel_id = ?", hotelId).
		Order("floor asc, number asc").
		Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

// GetRoomAvailability trạng thái trống / bận của một phòng trong khoảng ngày.
// Quan trọng: booking đến hạn trả nhưng chưa qua 09:30 vẫn tính là giữ phòng.
func GetRoomAvailability(c *fiber.Ctx) error {
	roomId, err := c.ParamsInt("id")
	if err != nil || roomId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if !utils.IsValidISODate(startDate) || !utils.IsValidISODate(endDate) || endDate <= startDate {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Khoảng ngày không hợp lệ (YYYY-MM-DD, endDate > startDate)", errors.New("invalid date range"))
	}

	var room model.Room
	if err := database.DB.Preload("RoomType").First(&room, roomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phòng không tồn tại", err)
	}

	if room.Status != constants.RoomAvailable {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"roomId":    room.ID,
			"available": false,
			"reason":    "Phòng đang ngưng nhận khách",
		})
	}

	bookings, err := helper.FetchBookingsForConflictCheck(database.DB, room.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	conflict := helper.HasBookingConflict(startDate, endDate, bookings)
	nights := helper.ComputeNights(startDate, endDate)

	response := fiber.Map{
		"roomId":    room.ID,
		"available": !conflict,
		"nights":    nights,
	}
	if !conflict {
		response["estimatedTotal"] = helper.ComputeBaseTotal(nights, room.RoomType.NightlyRate)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// SearchAvailableRooms tìm phòng trống của một khách sạn trong khoảng ngày
func SearchAvailableRooms(c *fiber.Ctx) error {
	hotelId := c.QueryInt("hotelId")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	guests := c.QueryInt("guests", 1)

	if hotelId <= 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu hotelId", errors.New("hotelId required"), "hotelId")
	}
	if !utils.IsValidISODate(startDate) || !utils.IsValidISODate(endDate) || endDate <= startDate {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Khoảng ngày không hợp lệ (YYYY-MM-DD, endDate > startDate)", errors.New("invalid date range"))
	}

	var rooms []model.Room
	if err := database.DB.
		Preload("RoomType").
		Preload("Photos").
		Where("hotel_id = ? AND status = ?", hotelId, constants.RoomAvailable).
		Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	nights := helper.ComputeNights(startDate, endDate)
	available := []fiber.Map{}
	for _, room := range rooms {
		if room.RoomType.MaxGuests < guests {
			continue
		}
		bookings, err := helper.FetchBookingsForConflictCheck(database.DB, room.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
		}
		if helper.HasBookingConflict(startDate, endDate, bookings) {
			continue
		}
		available = append(available, fiber.Map{
			"room":           room,
			"nights":         nights,
			"estimatedTotal": helper.ComputeBaseTotal(nights, room.RoomType.NightlyRate),
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, available)
}

// CreateRoomType admin tạo hạng phòng mới
func CreateRoomType(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateRoomTypeInput)

	roomType := model.RoomType{
		Name:        input.Name,
		NightlyRate: input.NightlyRate,
		MaxGuests:   input.MaxGuests,
		Description: input.Description,
	}
	if err := database.DB.Create(&roomType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, roomType)
}

// GetRoomTypes danh sách hạng phòng
func GetRoomTypes(c *fiber.Ctx) error {
	var roomTypes []model.RoomType
	if err := database.DB.Order("nightly_rate asc").Find(&roomTypes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, roomTypes)
}

// DeleteRoomPhotos xóa nhiều ảnh phòng theo danh sách id
func DeleteRoomPhotos(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	result := database.DB.Where("id IN ?", input.IDs).Delete(&model.RoomPhoto{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(result.Error), result.Error)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}

// UploadRoomPhoto upload ảnh phòng lên Cloudinary rồi lưu url
func UploadRoomPhoto(c *fiber.Ctx) error {
	accountInfo, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	roomId, err := c.ParamsInt("id")
	if err != nil || roomId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
	}

	var room model.Room
	if err := database.DB.First(&room, roomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Phòng không tồn tại", err)
	}
	if isManager {
		if accountInfo.HotelId == nil || *accountInfo.HotelId != room.HotelId {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.CAN_NOT_EDIT_HOTEL, errors.New("manager not assigned to this hotel"))
		}
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu file ảnh", err, "photo")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không đọc được file ảnh", err)
	}
	defer file.Close()

	cld := helper.InitCloudinary()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: "hotel_manager/rooms",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload ảnh thất bại", err)
	}

	photo := model.RoomPhoto{
		RoomId: room.ID,
		Url:    utils.StringPtr(uploadResult.SecureURL),
	}
	if err := database.DB.Create(&photo).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, photo)
}
