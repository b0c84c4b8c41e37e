package handler

import (
	"errors"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStatistic thống kê tổng quan cho dashboard:
// doanh thu hôm nay / hôm qua kèm % tăng trưởng, công suất phòng, booking chờ xử lý
func GetDashboardStatistic(c *fiber.Ctx) error {
	_, isAdmin, isManager, isFrontDesk := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isFrontDesk {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	hotelId := c.QueryInt("hotelId")

	loc := helper.HotelLocation()
	now := time.Now().In(loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	yesterdayStart := todayStart.Add(-24 * time.Hour)

	revenueQuery := func(from, to time.Time) float64 {
		var revenue float64
		db := database.DB.Model(&model.Booking{}).
			Where("paid_at >= ? AND paid_at < ?", from, to).
			Where("status IN ?", []string{constants.BookingConfirmed, constants.BookingCheckedOut})
		if hotelId > 0 {
			db = db.Joins("JOIN rooms ON rooms.id = bookings.room_id").
				Where("rooms.hotel_id = ?", hotelId)
		}
		db.Select("COALESCE(SUM(bookings.total_price), 0)").Scan(&revenue)
		return revenue
	}

	revenueToday := revenueQuery(todayStart, todayStart.Add(24*time.Hour))
	revenueYesterday := revenueQuery(yesterdayStart, todayStart)

	// Công suất: phòng đang có booking hiệu lực trên tổng số phòng mở bán
	var totalRooms int64
	roomQuery := database.DB.Model(&model.Room{}).Where("status = ?", constants.RoomAvailable)
	if hotelId > 0 {
		roomQuery = roomQuery.Where("hotel_id = ?", hotelId)
	}
	roomQuery.Count(&totalRooms)

	today := now.Format("2006-01-02")
	var occupiedRooms int64
	occupiedQuery := database.DB.Model(&model.Booking{}).
		Where("status IN ?", []string{
			constants.BookingBooked,
			constants.BookingConfirmed,
			constants.BookingPendingVerification,
		}).
		Where("start_date <= ? AND end_date > ?", today, today)
	if hotelId > 0 {
		occupiedQuery = occupiedQuery.
			Joins("JOIN rooms ON rooms.id = bookings.room_id").
			Where("rooms.hotel_id = ?", hotelId)
	}
	occupiedQuery.Distinct("bookings.room_id").Count(&occupiedRooms)

	occupancyRate := float64(0)
	if totalRooms > 0 {
		occupancyRate = float64(occupiedRooms) / float64(totalRooms) * 100
	}

	var pendingVerification int64
	pendingQuery := database.DB.Model(&model.Booking{}).
		Where("status = ?", constants.BookingPendingVerification)
	if hotelId > 0 {
		pendingQuery = pendingQuery.
			Joins("JOIN rooms ON rooms.id = bookings.room_id").
			Where("rooms.hotel_id = ?", hotelId)
	}
	pendingQuery.Count(&pendingVerification)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"revenueToday":        revenueToday,
		"revenueYesterday":    revenueYesterday,
		"revenueGrowth":       utils.CalculateGrowth(revenueToday, revenueYesterday),
		"totalRooms":          totalRooms,
		"occupiedRooms":       occupiedRooms,
		"occupancyRate":       occupancyRate,
		"pendingVerification": pendingVerification,
	})
}

// GetRevenueByDay doanh thu theo ngày trong một khoảng, cho biểu đồ
func GetRevenueByDay(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if !utils.IsValidISODate(startDate) || !utils.IsValidISODate(endDate) || endDate < startDate {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Khoảng ngày không hợp lệ (YYYY-MM-DD)", errors.New("invalid date range"))
	}

	hotelId := c.QueryInt("hotelId")

	type dailyRevenue struct {
		Day     string  `json:"day"`
		Revenue float64 `json:"revenue"`
		Count   int64   `json:"count"`
	}
	var rows []dailyRevenue

	db := database.DB.Model(&model.Booking{}).
		Select("TO_CHAR(bookings.paid_at, 'YYYY-MM-DD') AS day, COALESCE(SUM(bookings.total_price), 0) AS revenue, COUNT(*) AS count").
		Where("bookings.paid_at IS NOT NULL").
		Where("bookings.status IN ?", []string{constants.BookingConfirmed, constants.BookingCheckedOut}).
		Where("TO_CHAR(bookings.paid_at, 'YYYY-MM-DD') BETWEEN ? AND ?", startDate, endDate)
	if hotelId > 0 {
		db = db.Joins("JOIN rooms ON rooms.id = bookings.room_id").
			Where("rooms.hotel_id = ?", hotelId)
	}
	if err := db.Group("day").Order("day asc").Scan(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

// GetTopPromotions khuyến mãi được dùng nhiều nhất
func GetTopPromotions(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	limit := c.QueryInt("limit", 5)
	if limit <= 0 || limit > 50 {
		limit = 5
	}

	type promotionStat struct {
		PromotionId   uint    `json:"promotionId"`
		Title         string  `json:"title"`
		Code          string  `json:"code"`
		UsageCount    int64   `json:"usageCount"`
		TotalDiscount float64 `json:"totalDiscount"`
	}
	var rows []promotionStat

	if err := database.DB.Model(&model.PromotionUsage{}).
		Select("promotion_usages.promotion_id, promotions.title, promotions.code, COUNT(*) AS usage_count, COALESCE(SUM(promotion_usages.discount_applied), 0) AS total_discount").
		Joins("JOIN promotions ON promotions.id = promotion_usages.promotion_id").
		Group("promotion_usages.promotion_id, promotions.title, promotions.code").
		Order("usage_count desc").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.TranslateDBError(err), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}
