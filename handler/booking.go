package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
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

// ExpireBookingHolds hủy các booking pending_payment quá hạn giữ chỗ.
// Chạy mỗi phút bằng ticker trong main.
func ExpireBookingHolds() {
	holdMinutes := helper.GetAppSettings().BookingPolicy.HoldMinutes()
	deadline := time.Now().Add(-time.Duration(holdMinutes) * time.Minute)

	result := database.DB.Model(&model.Booking{}).
		Where("status = ? AND created_at < ?", constants.BookingPendingPayment, deadline).
		Updates(map[string]interface{}{
			"status":       constants.BookingCancelled,
			"cancelled_at": time.Now(),
		})
	if result.Error != nil {
		log.Printf("Lỗi hủy booking quá hạn thanh toán: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã hủy %d booking quá hạn thanh toán", result.RowsAffected)
	}
}

// CreateBooking - Bước 1 (Details): chốt ngày, khách, khuyến mãi.
// Tính lại toàn bộ giá ở server, không tin giá từ client.
func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)
	room := c.Locals("room").(*model.Room)

	nights := helper.ComputeNights(input.StartDate, input.EndDate)
	if nights <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Khoảng ngày không hợp lệ", errors.New("nights <= 0"))
	}
	maxNights := helper.GetAppSettings().BookingPolicy.MaxNights
	if maxNights > 0 && nights > maxNights {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("Chỉ nhận đặt tối đa %d đêm", maxNights), errors.New("too many nights"))
	}

	baseTotal := helper.ComputeBaseTotal(nights, room.RoomType.NightlyRate)
	today := time.Now().In(helper.HotelLocation()).Format("2006-01-02")

	// Khuyến mãi phải được kiểm lại với baseTotal hiện tại: đổi ngày có thể
	// làm mất điều kiện chi tối thiểu, khi đó báo cho khách thay vì áp dụng im lặng
	var promotion *model.Promotion
	if input.PromotionId != nil {
		var p model.Promotion
		if err := database.DB.First(&p, *input.PromotionId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Khuyến mãi không tồn tại", err, "promotionId")
		}
		if !helper.IsPromotionEligibleOn(&p, baseTotal, today) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
				"Khuyến mãi không còn áp dụng được cho đơn này, vui lòng bỏ chọn", errors.New("promotion not eligible"), "promotionId")
		}
		promotion = &p
	}

	discount := helper.ComputeDiscount(promotion, baseTotal, nights)
	totalPrice := helper.ComputeFinalTotal(baseTotal, discount)

	customerClaim, _ := helper.GetInfoCustomerFromToken(c)
	var createdBy *uint
	if accountInfo, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c); isAdmin || isManager || isFrontDesk {
		createdBy = utils.Ptr(accountInfo.AccountId)
	}

	var booking model.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Khóa row phòng để thu hẹp cửa sổ check-then-act giữa hai client.
		// Lưu ý: không có ràng buộc chống trùng ở tầng storage, đây vẫn là
		// best-effort (xem DESIGN.md).
		var lockedRoom model.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&lockedRoom, room.ID).Error; err != nil {
			return err
		}

		// Đọc lại booking hiện có NGAY TRƯỚC khi ghi, tránh dùng dữ liệu cũ
		existing, err := helper.FetchBookingsForConflictCheck(tx, room.ID)
		if err != nil {
			return err
		}
		if helper.HasBookingConflict(input.StartDate, input.EndDate, existing) {
			return errBookingConflict
		}

		booking = model.Booking{
			PublicCode:     "BKG-" + strings.ToUpper(uuid.New().String()[:8]),
			RoomId:         room.ID,
			StartDate:      input.StartDate,
			EndDate:        input.EndDate,
			Status:         constants.BookingPendingPayment,
			GuestName:      input.GuestName,
			GuestPhone:     input.GuestPhone,
			GuestEmail:     input.GuestEmail,
			Guests:         input.Guests,
			Nights:         nights,
			BasePrice:      baseTotal,
			DiscountAmount: discount,
			TotalPrice:     totalPrice,
			PromotionId:    input.PromotionId,
			CreatedBy:      createdBy,
		}
		if customerClaim.CustomerId > 0 {
			booking.CustomerId = utils.Ptr(customerClaim.CustomerId)
		}

		return tx.Create(&booking).Error
	})
	if err != nil {
		if errors.Is(err, errBookingConflict) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Phòng đã có khách đặt trong khoảng ngày này", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	BroadcastRoomAvailability(room.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"bookingCode":    booking.PublicCode,
		"status":         booking.Status,
		"nights":         nights,
		"basePrice":      baseTotal,
		"discountAmount": discount,
		"totalPrice":     totalPrice,
		"nextStep":       fmt.Sprintf("Thanh toán trong %d phút", helper.GetAppSettings().BookingPolicy.HoldMinutes()),
	})
}

var errBookingConflict = errors.New("booking date conflict")

// SubmitPayment - Bước 2 (Payment). Tiền mặt do lễ tân thu thì xác nhận
// luôn, các kênh còn lại chờ đối soát.
func SubmitPayment(c *fiber.Ctx) error {
	bookingCode := c.Params("bookingCode")
	input := c.Locals("input").(model.SubmitPaymentInput)

	_, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c)
	isStaff := isAdmin || isManager || isFrontDesk

	if input.Method == constants.PaymentCash && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thanh toán tiền mặt chỉ thực hiện tại quầy lễ tân", errors.New("cash requires staff"))
	}

	var booking model.Booking
	if err := database.DB.
		Preload("Room").
		Preload("Room.RoomType").
		Preload("Room.Hotel").
		Where("public_code = ?", bookingCode).
		First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy booking", err)
	}

	if booking.Status != constants.BookingPendingPayment {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking không ở trạng thái chờ thanh toán", errors.New("invalid status"))
	}

	newStatus := constants.BookingPendingVerification
	if input.Method == constants.PaymentCash && isStaff {
		newStatus = constants.BookingConfirmed
	}

	now := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":          newStatus,
			"payment_method":  input.Method,
			"transaction_ref": input.TransactionRef,
			"paid_at":         now,
		}).Error; err != nil {
			return err
		}

		// Ghi nhận lượt dùng khuyến mãi trong cùng transaction
		if booking.PromotionId != nil {
			if err := tx.Model(&model.Promotion{}).
				Where("id = ?", *booking.PromotionId).
				Update("current_uses", gorm.Expr("current_uses + 1")).Error; err != nil {
				return err
			}
			usage := model.PromotionUsage{
				PromotionId:     *booking.PromotionId,
				BookingId:       booking.ID,
				CustomerId:      booking.CustomerId,
				AppliedAt:       now,
				DiscountApplied: booking.DiscountAmount,
			}
			if err := tx.Create(&usage).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	BroadcastRoomAvailability(booking.RoomId)

	if newStatus == constants.BookingConfirmed && booking.GuestEmail != "" {
		utils.SendBookingConfirmationEmail(booking.GuestEmail, confirmationData(booking, input.Method))
	}

	message := "Thanh toán thành công, đặt phòng đã được xác nhận"
	if newStatus == constants.BookingPendingVerification {
		message = "Đã ghi nhận thanh toán, đặt phòng sẽ được xác nhận sau khi đối soát"
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingCode": booking.PublicCode,
		"status":      newStatus,
		"message":     message,
	})
}

// VerifyPayment lễ tân đối soát giao dịch chuyển khoản/thẻ.
// Duyệt -> confirmed, từ chối -> cancelled (giải phóng phòng).
func VerifyPayment(c *fiber.Ctx) error {
	_, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isFrontDesk {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not staff"))
	}

	bookingCode := c.Params("bookingCode")
	var input model.VerifyPaymentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var booking model.Booking
	if err := database.DB.
		Preload("Room").
		Preload("Room.RoomType").
		Preload("Room.Hotel").
		Where("public_code = ?", bookingCode).
		First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy booking", err)
	}
	if booking.Status != constants.BookingPendingVerification {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking không ở trạng thái chờ đối soát", errors.New("invalid status"))
	}

	now := time.Now()
	if input.Approve {
		if err := database.DB.Model(&booking).Update("status", constants.BookingConfirmed).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
		}
		if booking.GuestEmail != "" {
			utils.SendBookingConfirmationEmail(booking.GuestEmail, confirmationData(booking, booking.PaymentMethod))
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đã xác nhận thanh toán", "status": constants.BookingConfirmed})
	}

	if err := database.DB.Model(&booking).Updates(map[string]interface{}{
		"status":       constants.BookingCancelled,
		"cancelled_at": now,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}
	BroadcastRoomAvailability(booking.RoomId)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đã từ chối thanh toán, booking bị hủy", "status": constants.BookingCancelled})
}

// GetBookingDetail - Bước 3 (Confirmation): biên nhận kèm QR.
func GetBookingDetail(c *fiber.Ctx) error {
	bookingCode := c.Params("bookingCode")

	var booking model.Booking
	if err := database.DB.
		Preload("Room").
		Preload("Room.RoomType").
		Preload("Room.Hotel").
		Preload("Promotion").
		Where("public_code = ?", bookingCode).
		First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy booking", err)
	}

	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(booking.PublicCode, 400)
	if err != nil {
		log.Printf("Lỗi tạo QR cho booking %s: %v", booking.PublicCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	response := fiber.Map{
		"bookingCode":    booking.PublicCode,
		"hotel":          booking.Room.Hotel.Name,
		"roomNumber":     booking.Room.Number,
		"roomType":       booking.Room.RoomType.Name,
		"checkIn":        booking.StartDate,
		"checkOut":       booking.EndDate,
		"nights":         booking.Nights,
		"guestName":      booking.GuestName,
		"guestPhone":     booking.GuestPhone,
		"basePrice":      utils.FormatMoney(booking.BasePrice),
		"discountAmount": utils.FormatMoney(booking.DiscountAmount),
		"totalPrice":     utils.FormatMoney(booking.TotalPrice),
		"paymentMethod":  booking.PaymentMethod,
		"status":         booking.Status,
		"qrCode":         qrBase64,
	}
	if booking.Promotion != nil {
		response["promotion"] = booking.Promotion.Title
	}
	if booking.PaidAt != nil {
		response["paidAt"] = booking.PaidAt.Format("15:04 - 02/01/2006")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetMyBookings(c *fiber.Ctx) error {
	_, customer := helper.GetInfoCustomerFromToken(c)
	if customer.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var bookings []model.Booking
	if err := database.DB.
		Preload("Room").
		Preload("Room.RoomType").
		Preload("Room.Hotel").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tải danh sách đặt phòng", err)
	}

	response := []fiber.Map{}
	for _, b := range bookings {
		response = append(response, fiber.Map{
			"bookingCode": b.PublicCode,
			"hotel":       b.Room.Hotel.Name,
			"roomNumber":  b.Room.Number,
			"roomType":    b.Room.RoomType.Name,
			"checkIn":     b.StartDate,
			"checkOut":    b.EndDate,
			"nights":      b.Nights,
			"totalPrice":  b.TotalPrice,
			"status":      b.Status,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetBookingsAdmin danh sách booking cho dashboard nhân viên, có filter + phân trang
func GetBookingsAdmin(c *fiber.Ctx) error {
	_, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isFrontDesk {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	filterInput := new(model.FilterBookingInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	var bookings []model.Booking
	condition := db.Preload("Room").Preload("Room.RoomType").Preload("Room.Hotel").Preload("Customer")

	if filterInput.RoomId > 0 {
		condition = condition.Where("bookings.room_id = ?", filterInput.RoomId)
	}
	if filterInput.HotelId > 0 {
		condition = condition.
			Joins("JOIN rooms ON rooms.id = bookings.room_id").
			Where("rooms.hotel_id = ?", filterInput.HotelId)
	}
	if filterInput.Status != "" {
		condition = condition.Where("bookings.status = ?", filterInput.Status)
	}
	if filterInput.StartDate != nil && !filterInput.StartDate.IsZero() {
		condition = condition.Where("bookings.start_date >= ?", filterInput.StartDate.String())
	}
	if filterInput.EndDate != nil && !filterInput.EndDate.IsZero() {
		condition = condition.Where("bookings.end_date <= ?", filterInput.EndDate.String())
	}

	var totalCount int64
	condition.Model(&model.Booking{}).Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("bookings.created_at desc").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	response := &model.ResponseCustom{
		Rows:       bookings,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// CancelBooking hủy theo mã. Khách chỉ hủy được booking của mình,
// nhân viên hủy được mọi booking chưa trả phòng.
func CancelBooking(c *fiber.Ctx) error {
	bookingCode := c.Params("bookingCode")

	var booking model.Booking
	if err := database.DB.
		Preload("Room").
		Preload("Room.RoomType").
		Preload("Room.Hotel").
		Where("public_code = ?", bookingCode).
		First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy booking", err)
	}

	_, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c)
	isStaff := isAdmin || isManager || isFrontDesk
	if !isStaff {
		_, customer := helper.GetInfoCustomerFromToken(c)
		if customer.ID == 0 {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
		}
		if booking.CustomerId == nil || *booking.CustomerId != customer.ID {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Booking không tồn tại hoặc không thuộc về bạn", errors.New("not owner"))
		}
	}

	switch booking.Status {
	case constants.BookingCancelled:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking đã được hủy trước đó", nil)
	case constants.BookingCheckedOut:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking đã trả phòng, không thể hủy", nil)
	}

	// Chính sách hoàn tiền: trước ngày nhận phòng >= 1 ngày hoàn 100%,
	// trong ngày nhận phòng hoàn 50%, sau đó không hoàn
	loc := helper.HotelLocation()
	today := time.Now().In(loc).Format("2006-01-02")
	var refundPercent float64
	switch {
	case today < booking.StartDate:
		refundPercent = 1.0
	case today == booking.StartDate:
		refundPercent = 0.5
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Đã qua ngày nhận phòng, không thể hủy", nil)
	}

	refundAmount := float64(0)
	if booking.PaidAt != nil {
		refundAmount = booking.TotalPrice * refundPercent
	}

	now := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":       constants.BookingCancelled,
			"cancelled_at": now,
		}).Error; err != nil {
			return err
		}
		// Trả lại lượt dùng khuyến mãi nếu đã ghi nhận
		if booking.PromotionId != nil && booking.PaidAt != nil {
			if err := tx.Model(&model.Promotion{}).
				Where("id = ? AND current_uses > 0", *booking.PromotionId).
				Update("current_uses", gorm.Expr("current_uses - 1")).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Hủy đặt phòng thất bại", err)
	}

	BroadcastRoomAvailability(booking.RoomId)

	if booking.GuestEmail != "" {
		data := confirmationData(booking, booking.PaymentMethod)
		data.RefundAmount = utils.FormatMoney(refundAmount)
		data.CancelledAt = now.In(loc).Format("15:04 - 02/01/2006")
		utils.SendBookingCancelledEmail(booking.GuestEmail, data)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":        "Hủy đặt phòng thành công",
		"refund_amount":  refundAmount,
		"refund_percent": refundPercent * 100,
	})
}

// CheckOutBooking lễ tân trả phòng sớm cho khách, không chờ job 09:30
func CheckOutBooking(c *fiber.Ctx) error {
	_, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isFrontDesk {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not staff"))
	}

	bookingCode := c.Params("bookingCode")
	var booking model.Booking
	if err := database.DB.Where("public_code = ?", bookingCode).First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy booking", err)
	}

	switch booking.Status {
	case constants.BookingConfirmed, constants.BookingBooked:
		// ok
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking không ở trạng thái có thể trả phòng", errors.New("invalid status"))
	}

	now := time.Now()
	if err := database.DB.Model(&booking).Updates(map[string]interface{}{
		"status":         constants.BookingCheckedOut,
		"checked_out_at": now,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	BroadcastRoomAvailability(booking.RoomId)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingCode": booking.PublicCode,
		"status":      constants.BookingCheckedOut,
	})
}

func confirmationData(booking model.Booking, paymentMethod string) utils.BookingConfirmationData {
	return utils.BookingConfirmationData{
		BookingCode:   booking.PublicCode,
		HotelName:     booking.Room.Hotel.Name,
		RoomNumber:    booking.Room.Number,
		RoomType:      booking.Room.RoomType.Name,
		CheckIn:       booking.StartDate,
		CheckOut:      booking.EndDate,
		Nights:        booking.Nights,
		GuestName:     booking.GuestName,
		BasePrice:     utils.FormatMoney(booking.BasePrice),
		Discount:      utils.FormatMoney(booking.DiscountAmount),
		TotalPrice:    utils.FormatMoney(booking.TotalPrice),
		PaymentMethod: paymentMethod,
		DetailLink:    fmt.Sprintf("%s/dat-phong/%s", helper.FrontendURL(), booking.PublicCode),
	}
}
