package handler

import (
	"errors"
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
)

// CreateMenuItem thêm món vào thực đơn nhà hàng
func CreateMenuItem(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateMenuItemInput)

	item := model.MenuItem{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		IsAvailable: true,
		HotelId:     input.HotelId,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

// GetMenu thực đơn của một khách sạn, có thể lọc theo nhóm món
func GetMenu(c *fiber.Ctx) error {
	hotelId := c.QueryInt("hotelId")
	if hotelId <= 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu hotelId", errors.New("hotelId required"), "hotelId")
	}

	db := database.DB.Where("hotel_id = ? AND is_available = ?", hotelId, true)
	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var items []model.MenuItem
	if err := db.Order("category asc, name asc").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

// ToggleMenuItemAvailable bật / tắt món trong thực đơn
func ToggleMenuItemAvailable(c *fiber.Ctx) error {
	accountInfo, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	id := c.Params("id")
	var item model.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy món", err)
	}
	if isManager {
		if accountInfo.HotelId == nil || *accountInfo.HotelId != item.HotelId {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.CAN_NOT_EDIT_HOTEL, errors.New("manager not assigned to this hotel"))
		}
	}

	if err := database.DB.Model(&item).Update("is_available", !item.IsAvailable).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":          item.ID,
		"isAvailable": !item.IsAvailable,
	})
}

// CreateRestoOrder tạo đơn gọi món. Giá từng món chốt tại thời điểm gọi,
// tổng tiền tính ở server. Có BookingCode thì gắn đơn vào booking đang lưu trú.
func CreateRestoOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateRestoOrderInput)

	var bookingId *uint
	if input.BookingCode != "" {
		var booking model.Booking
		if err := database.DB.Where("public_code = ?", input.BookingCode).First(&booking).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Không tìm thấy booking", err, "bookingCode")
		}
		if !helper.IsBookingActive(booking.StartDate, booking.EndDate, booking.Status) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Booking không còn hiệu lực, không thể ghi vào hóa đơn phòng", errors.New("booking inactive"), "bookingCode")
		}
		bookingId = utils.Ptr(booking.ID)
	}

	var order model.RestoOrder
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		order = model.RestoOrder{
			PublicCode:  "RST-" + strings.ToUpper(uuid.New().String()[:8]),
			HotelId:     input.HotelId,
			TableNumber: input.TableNumber,
			BookingId:   bookingId,
			Status:      constants.OrderPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		total := float64(0)
		for _, itemInput := range input.Items {
			var menuItem model.MenuItem
			if err := tx.First(&menuItem, itemInput.MenuItemId).Error; err != nil {
				return err
			}
			if !menuItem.IsAvailable || menuItem.HotelId != input.HotelId {
				return errMenuItemUnavailable
			}

			orderItem := model.RestoOrderItem{
				OrderId:    order.ID,
				MenuItemId: menuItem.ID,
				Quantity:   itemInput.Quantity,
				UnitPrice:  menuItem.Price,
				Note:       itemInput.Note,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			total += menuItem.Price * float64(itemInput.Quantity)
		}

		return tx.Model(&order).Update("total_amount", total).Error
	})
	if err != nil {
		if errors.Is(err, errMenuItemUnavailable) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Có món không còn phục vụ", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	database.DB.Preload("Items").Preload("Items.MenuItem").First(&order, order.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

var errMenuItemUnavailable = errors.New("menu item unavailable")

// UpdateRestoOrderStatus chuyển trạng thái đơn theo quy trình bếp
func UpdateRestoOrderStatus(c *fiber.Ctx) error {
	_, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isFrontDesk {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	orderCode := c.Params("orderCode")
	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	statuses := []string{constants.OrderPending, constants.OrderPreparing, constants.OrderServed, constants.OrderPaid, constants.OrderCancelled}
	if !utils.IsValidValueOfConstant(input.Status, statuses) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Trạng thái đơn không hợp lệ", errors.New("invalid status"), "status")
	}

	var order model.RestoOrder
	if err := database.DB.Where("public_code = ?", orderCode).First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn", err)
	}
	if order.Status == constants.OrderPaid || order.Status == constants.OrderCancelled {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Đơn đã kết thúc, không thể đổi trạng thái", errors.New("order closed"))
	}

	updates := map[string]interface{}{"status": input.Status}
	if input.Status == constants.OrderPaid {
		updates["paid_at"] = time.Now()
	}
	if err := database.DB.Model(&order).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderCode": order.PublicCode,
		"status":    input.Status,
	})
}

// GetRestoOrders danh sách đơn gọi món của một khách sạn
func GetRestoOrders(c *fiber.Ctx) error {
	_, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isFrontDesk {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	hotelId := c.QueryInt("hotelId")
	if hotelId <= 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu hotelId", errors.New("hotelId required"), "hotelId")
	}

	db := database.DB.
		Preload("Items").
		Preload("Items.MenuItem").
		Where("hotel_id = ?", hotelId)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var orders []model.RestoOrder
	if err := db.Order("created_at desc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}
