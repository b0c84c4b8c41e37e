package helper

import (
	"log"
	"os"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"

	"gorm.io/gorm"
)

// Giờ cutoff trả phòng mặc định: từ 09:30 sáng ngày trả phòng, booking
// không còn chặn ngày đó nữa (buồng phòng dọn xong buổi sáng), kể cả khi
// status trong DB chưa được cập nhật. Admin đổi được qua setting
// booking_policy, giá trị dưới đây dùng khi chưa cấu hình.
const (
	CheckoutCutoffHour   = 9
	CheckoutCutoffMinute = 30
)

// checkoutCutoffClock đọc giờ cutoff từ booking_policy, sai định dạng
// hoặc chưa load thì về mặc định 09:30
func checkoutCutoffClock() (int, int) {
	raw := GetAppSettings().BookingPolicy.CheckoutCutoff
	if t, err := time.Parse("15:04", raw); err == nil {
		return t.Hour(), t.Minute()
	}
	return CheckoutCutoffHour, CheckoutCutoffMinute
}

var activeStatuses = map[string]bool{
	constants.BookingBooked:              true,
	constants.BookingConfirmed:           true,
	constants.BookingPendingVerification: true,
}

// HotelLocation trả về múi giờ của khách sạn (mặc định ICT)
func HotelLocation() *time.Location {
	if tz := os.Getenv("HOTEL_TZ"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.FixedZone("ICT", 7*3600)
}

// IsBookingActiveAt xét một booking còn "đang giữ phòng" tại thời điểm now
// hay không. Ngày là chuỗi "YYYY-MM-DD". Ngày trả phòng không parse được
// thì coi như chưa qua cutoff (booking vẫn active), việc validate định dạng
// là trách nhiệm của tầng gọi.
func IsBookingActiveAt(startDate, endDate, status string, now time.Time) bool {
	if !activeStatuses[status] {
		return false
	}

	loc := HotelLocation()
	end, err := time.ParseInLocation("2006-01-02", endDate, loc)
	if err != nil {
		return true
	}

	hour, minute := checkoutCutoffClock()
	cutoff := time.Date(end.Year(), end.Month(), end.Day(), hour, minute, 0, 0, loc)
	// Đúng giờ cutoff trở đi là hết active
	return now.In(loc).Before(cutoff)
}

func IsBookingActive(startDate, endDate, status string) bool {
	return IsBookingActiveAt(startDate, endDate, status, time.Now())
}

// HasBookingConflictAt kiểm tra khoảng [candidateStart, candidateEnd) có đè
// lên booking nào còn active không. So sánh chuỗi ISO trực tiếp: "YYYY-MM-DD"
// sắp đúng thứ tự thời gian theo thứ tự chuỗi. Khoảng nửa hở nên đặt nối đuôi
// (start == end của booking khác) KHÔNG tính là trùng.
func HasBookingConflictAt(candidateStart, candidateEnd string, existing []model.Booking, now time.Time) bool {
	for _, b := range existing {
		if !IsBookingActiveAt(b.StartDate, b.EndDate, b.Status, now) {
			continue
		}
		if candidateStart < b.EndDate && candidateEnd > b.StartDate {
			return true
		}
	}
	return false
}

func HasBookingConflict(candidateStart, candidateEnd string, existing []model.Booking) bool {
	return HasBookingConflictAt(candidateStart, candidateEnd, existing, time.Now())
}

// FetchBookingsForConflictCheck lấy các booking của phòng có status thuộc
// nhóm giữ phòng. Phần lọc theo cutoff làm ở IsBookingActiveAt vì phụ thuộc
// thời điểm gọi. Caller phải gọi lại ngay trước khi ghi để tránh đọc cũ.
func FetchBookingsForConflictCheck(db *gorm.DB, roomId uint) ([]model.Booking, error) {
	var bookings []model.Booking
	err := db.
		Where("room_id = ? AND status IN ?", roomId, []string{
			constants.BookingBooked,
			constants.BookingConfirmed,
			constants.BookingPendingVerification,
		}).
		Find(&bookings).Error
	return bookings, err
}

// HasSlotConflict kiểm tra trùng khung giờ phòng họp, cùng quy tắc nửa hở.
func HasSlotConflict(start, end time.Time, existing []model.ConferenceBooking) bool {
	for _, b := range existing {
		if b.Status == constants.BookingCancelled {
			continue
		}
		if start.Before(b.EndTime) && end.After(b.StartTime) {
			return true
		}
	}
	return false
}

// ExpireCheckedOutBookings chuyển các booking đã qua giờ cutoff trả phòng
// sang checked_out. Chạy định kỳ bởi scheduler, xem helper/scheduler.go.
func ExpireCheckedOutBookings() {
	loc := HotelLocation()
	now := time.Now().In(loc)

	today := now.Format("2006-01-02")
	hour, minute := checkoutCutoffClock()
	cutoffPassed := now.Hour() > hour ||
		(now.Hour() == hour && now.Minute() >= minute)

	query := database.DB.Model(&model.Booking{}).
		Where("status IN ?", []string{constants.BookingBooked, constants.BookingConfirmed})

	if cutoffPassed {
		query = query.Where("end_date <= ?", today)
	} else {
		query = query.Where("end_date < ?", today)
	}

	result := query.Updates(map[string]interface{}{
		"status":         constants.BookingCheckedOut,
		"checked_out_at": now,
	})
	if result.Error != nil {
		log.Printf("Lỗi cập nhật booking đã trả phòng: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã chuyển %d booking sang 'checked_out'", result.RowsAffected)
	}
}
