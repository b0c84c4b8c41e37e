package helper

import (
	"testing"
	"time"

	"hotel_manager/constants"
	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
)

var ict = time.FixedZone("ICT", 7*3600)

func TestIsBookingActiveAt(t *testing.T) {
	t.Run("đúng 09:30 ngày trả phòng là hết active", func(t *testing.T) {
		before := time.Date(2025, 3, 10, 9, 29, 59, 0, ict)
		atCutoff := time.Date(2025, 3, 10, 9, 30, 0, 0, ict)
		after := time.Date(2025, 3, 10, 10, 0, 0, 0, ict)

		assert.True(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingConfirmed, before))
		assert.False(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingConfirmed, atCutoff))
		assert.False(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingConfirmed, after))
	})

	t.Run("trước ngày trả phòng luôn active", func(t *testing.T) {
		now := time.Date(2025, 3, 9, 23, 59, 0, 0, ict)
		assert.True(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingConfirmed, now))
	})

	t.Run("chỉ nhóm status giữ phòng mới active", func(t *testing.T) {
		now := time.Date(2025, 3, 9, 12, 0, 0, 0, ict)

		assert.True(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingBooked, now))
		assert.True(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingConfirmed, now))
		assert.True(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingPendingVerification, now))

		assert.False(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingPendingPayment, now))
		assert.False(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingCancelled, now))
		assert.False(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingCheckedOut, now))
	})

	t.Run("giờ cutoff đọc từ booking_policy", func(t *testing.T) {
		settingsMu.Lock()
		appSettings.BookingPolicy.CheckoutCutoff = "11:00"
		settingsMu.Unlock()
		defer func() {
			settingsMu.Lock()
			appSettings.BookingPolicy.CheckoutCutoff = ""
			settingsMu.Unlock()
		}()

		tenAM := time.Date(2025, 3, 10, 10, 0, 0, 0, ict)
		elevenAM := time.Date(2025, 3, 10, 11, 0, 0, 0, ict)

		// 10:00 trước cutoff 11:00 nên vẫn giữ phòng
		assert.True(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingConfirmed, tenAM))
		assert.False(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingConfirmed, elevenAM))
	})

	t.Run("cấu hình cutoff sai định dạng thì về 09:30", func(t *testing.T) {
		settingsMu.Lock()
		appSettings.BookingPolicy.CheckoutCutoff = "khong-phai-gio"
		settingsMu.Unlock()
		defer func() {
			settingsMu.Lock()
			appSettings.BookingPolicy.CheckoutCutoff = ""
			settingsMu.Unlock()
		}()

		atDefault := time.Date(2025, 3, 10, 9, 30, 0, 0, ict)
		assert.False(t, IsBookingActiveAt("2025-03-08", "2025-03-10", constants.BookingConfirmed, atDefault))
	})

	t.Run("ngày trả phòng không parse được thì vẫn active", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 12, 0, 0, 0, ict)
		assert.True(t, IsBookingActiveAt("2025-03-08", "khong-phai-ngay", constants.BookingConfirmed, now))
	})
}

func TestHasBookingConflictAt(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, ict)
	existing := []model.Booking{
		{StartDate: "2025-03-10", EndDate: "2025-03-13", Status: constants.BookingConfirmed},
	}

	t.Run("đè ngày là trùng", func(t *testing.T) {
		assert.True(t, HasBookingConflictAt("2025-03-12", "2025-03-15", existing, now))
		assert.True(t, HasBookingConflictAt("2025-03-09", "2025-03-11", existing, now))
		assert.True(t, HasBookingConflictAt("2025-03-10", "2025-03-13", existing, now))
		assert.True(t, HasBookingConflictAt("2025-03-08", "2025-03-20", existing, now))
	})

	t.Run("đặt nối đuôi không tính là trùng", func(t *testing.T) {
		assert.False(t, HasBookingConflictAt("2025-03-13", "2025-03-15", existing, now))
		assert.False(t, HasBookingConflictAt("2025-03-08", "2025-03-10", existing, now))
	})

	t.Run("booking đã hủy không chặn", func(t *testing.T) {
		cancelled := []model.Booking{
			{StartDate: "2025-03-10", EndDate: "2025-03-13", Status: constants.BookingCancelled},
		}
		assert.False(t, HasBookingConflictAt("2025-03-11", "2025-03-12", cancelled, now))
	})

	t.Run("booking đến hạn nhưng chưa qua 09:30 vẫn chặn", func(t *testing.T) {
		ending := []model.Booking{
			{StartDate: "2025-03-10", EndDate: "2025-03-13", Status: constants.BookingConfirmed},
		}
		morning := time.Date(2025, 3, 13, 8, 0, 0, 0, ict)
		lateMorning := time.Date(2025, 3, 13, 9, 30, 0, 0, ict)

		assert.True(t, HasBookingConflictAt("2025-03-12", "2025-03-14", ending, morning))
		assert.False(t, HasBookingConflictAt("2025-03-12", "2025-03-14", ending, lateMorning))
	})
}

func TestHasSlotConflict(t *testing.T) {
	existing := []model.ConferenceBooking{
		{
			StartTime: time.Date(2025, 3, 10, 9, 0, 0, 0, ict),
			EndTime:   time.Date(2025, 3, 10, 11, 0, 0, 0, ict),
			Status:    constants.BookingConfirmed,
		},
	}

	t.Run("đè giờ là trùng", func(t *testing.T) {
		assert.True(t, HasSlotConflict(
			time.Date(2025, 3, 10, 10, 0, 0, 0, ict),
			time.Date(2025, 3, 10, 12, 0, 0, 0, ict),
			existing))
	})

	t.Run("khung kề nhau không trùng", func(t *testing.T) {
		assert.False(t, HasSlotConflict(
			time.Date(2025, 3, 10, 11, 0, 0, 0, ict),
			time.Date(2025, 3, 10, 13, 0, 0, 0, ict),
			existing))
		assert.False(t, HasSlotConflict(
			time.Date(2025, 3, 10, 7, 0, 0, 0, ict),
			time.Date(2025, 3, 10, 9, 0, 0, 0, ict),
			existing))
	})

	t.Run("lịch đã hủy không chặn", func(t *testing.T) {
		cancelled := []model.ConferenceBooking{
			{
				StartTime: time.Date(2025, 3, 10, 9, 0, 0, 0, ict),
				EndTime:   time.Date(2025, 3, 10, 11, 0, 0, 0, ict),
				Status:    constants.BookingCancelled,
			},
		}
		assert.False(t, HasSlotConflict(
			time.Date(2025, 3, 10, 10, 0, 0, 0, ict),
			time.Date(2025, 3, 10, 12, 0, 0, 0, ict),
			cancelled))
	})
}
