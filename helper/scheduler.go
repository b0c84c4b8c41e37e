package helper

import (
	"log"
	"time"

	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var checkoutScheduler *cron.Cron

// StartCheckoutScheduler quét mỗi 5 phút, chuyển booking đã qua giờ cutoff
// trả phòng sang checked_out
func StartCheckoutScheduler() {
	checkoutScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := checkoutScheduler.AddFunc("*/5 * * * *", ExpireCheckedOutBookings)
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler trả phòng: %v", err)
		return
	}

	checkoutScheduler.Start()
	log.Println("Scheduler trả phòng đã khởi động (mỗi 5 phút)")
}

func StopCheckoutScheduler() {
	if checkoutScheduler != nil {
		checkoutScheduler.Stop()
		log.Println("Scheduler trả phòng đã dừng")
	}
}

var promotionScheduler gocron.Scheduler

// AutoDeactivatePromotions tắt các khuyến mãi đã qua ngày kết thúc
func AutoDeactivatePromotions() {
	log.Println("[CRON] AutoDeactivatePromotions triggered")

	loc := HotelLocation()
	today := time.Now().In(loc).Format("2006-01-02")

	result := database.DB.Model(&model.Promotion{}).
		Where("is_active = ? AND end_date < ?", true, today).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("Lỗi quét khuyến mãi hết hạn: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã tắt %d khuyến mãi hết hạn", result.RowsAffected)
	}
}

// StartPromotionScheduler chạy AutoDeactivatePromotions hàng ngày lúc 00:05
func StartPromotionScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(HotelLocation()),
	)
	if err != nil {
		log.Printf("Lỗi khởi tạo promotion scheduler: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0))),
		gocron.NewTask(AutoDeactivatePromotions),
	)
	if err != nil {
		log.Printf("Lỗi đăng ký job khuyến mãi: %v", err)
		return
	}

	s.Start()
	promotionScheduler = s
	log.Println("Scheduler khuyến mãi đã khởi động (hàng ngày 00:05)")
}
