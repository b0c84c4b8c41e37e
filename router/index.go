package router

import (
	"hotel_manager/handler"
	"hotel_manager/middleware"
	"hotel_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Đăng nhập / tài khoản nhân viên
	authen := v1.Group("/authen")
	authen.Post("/login", handler.Login)
	authen.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", middleware.Protected())
	account.Post("/", validate.CreateAccount(), handler.CreateAccount)
	account.Get("/", handler.GetAccounts)
	account.Patch("/:id/toggle-active", handler.ToggleAccountActive)
	account.Post("/admin-change-password", validate.AdminChangePassword(), handler.AdminChangePassword)
	account.Post("/change-password", handler.ChangePasswordStaff)

	// Khách hàng
	customer := v1.Group("/customer")
	customer.Post("/register", validate.RegisterCustomer(), handler.RegisterCustomer)
	customer.Post("/login", handler.LoginCustomer)
	customer.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	customer.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)
	customer.Get("/me", middleware.Protected(), handler.GetCustomerProfile)
	customer.Post("/change-password", middleware.Protected(), validate.ChangePasswordCustomer(), handler.ChangePasswordCustomer)
	customer.Get("/my-bookings", middleware.Protected(), handler.GetMyBookings)

	// Khách sạn
	hotel := v1.Group("/hotel")
	hotel.Get("/", handler.GetHotels)
	hotel.Get("/:slug", handler.GetHotelBySlug)
	hotel.Post("/", middleware.Protected(), validate.CreateHotel(), handler.CreateHotel)
	hotel.Put("/:id", middleware.Protected(), validate.EditHotel("id"), handler.EditHotel)
	hotel.Patch("/:id/toggle-active", middleware.Protected(), handler.ToggleHotelActive)

	// Phòng và hạng phòng
	room := v1.Group("/room")
	room.Get("/", handler.GetRooms)
	room.Get("/search", handler.SearchAvailableRooms)
	room.Get("/:id/availability", handler.GetRoomAvailability)
	room.Post("/", middleware.Protected(), validate.CreateRoom(), handler.CreateRoom)
	room.Put("/:id", middleware.Protected(), validate.EditRoom("id"), handler.EditRoom)
	room.Post("/:id/photo", middleware.Protected(), handler.UploadRoomPhoto)
	room.Delete("/photo", middleware.Protected(), validate.Delete(), handler.DeleteRoomPhotos)

	roomType := v1.Group("/room-type")
	roomType.Get("/", handler.GetRoomTypes)
	roomType.Post("/", middleware.Protected(), validate.CreateRoomType(), handler.CreateRoomType)

	// Đặt phòng: 3 bước Details -> Payment -> Confirmation
	booking := v1.Group("/booking")
	booking.Post("/", middleware.OptionalJWT(), validate.CreateBooking(), handler.CreateBooking)
	booking.Post("/:bookingCode/payment", middleware.OptionalJWT(), validate.SubmitPayment(), handler.SubmitPayment)
	booking.Get("/:bookingCode", handler.GetBookingDetail)
	booking.Post("/:bookingCode/cancel", middleware.OptionalJWT(), handler.CancelBooking)
	booking.Post("/:bookingCode/verify-payment", middleware.Protected(), handler.VerifyPayment)
	booking.Post("/:bookingCode/check-out", middleware.Protected(), handler.CheckOutBooking)
	booking.Get("/", middleware.Protected(), handler.GetBookingsAdmin)

	// Khuyến mãi
	promotion := v1.Group("/promotion")
	promotion.Get("/eligible", handler.GetEligiblePromotions)
	promotion.Get("/", middleware.Protected(), handler.GetPromotionsAdmin)
	promotion.Post("/", middleware.Protected(), validate.CreatePromotion(), handler.CreatePromotion)
	promotion.Put("/:id", middleware.Protected(), validate.EditPromotion("id"), handler.EditPromotion)
	promotion.Get("/:id/usages", middleware.Protected(), handler.GetPromotionUsages)
	promotion.Get("/:id", middleware.Protected(), validate.GetById("id"), handler.GetPromotionById)

	// Nhà hàng
	menu := v1.Group("/menu")
	menu.Get("/", handler.GetMenu)
	menu.Post("/", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Patch("/:id/toggle-available", middleware.Protected(), handler.ToggleMenuItemAvailable)

	restoOrder := v1.Group("/resto-order", middleware.Protected())
	restoOrder.Post("/", validate.CreateRestoOrder(), handler.CreateRestoOrder)
	restoOrder.Get("/", handler.GetRestoOrders)
	restoOrder.Patch("/:orderCode/status", handler.UpdateRestoOrderStatus)

	// Phòng hội nghị
	conference := v1.Group("/conference")
	conference.Get("/", handler.GetConferenceRooms)
	conference.Get("/:id/schedule", handler.GetConferenceSchedule)
	conference.Post("/", middleware.Protected(), validate.CreateConferenceRoom(), handler.CreateConferenceRoom)
	conference.Post("/booking", middleware.OptionalJWT(), validate.CreateConferenceBooking(), handler.CreateConferenceBooking)
	conference.Post("/booking/:bookingCode/cancel", middleware.Protected(), handler.CancelConferenceBooking)

	// Thống kê
	statistic := v1.Group("/statistic", middleware.Protected())
	statistic.Get("/dashboard", handler.GetDashboardStatistic)
	statistic.Get("/revenue-by-day", handler.GetRevenueByDay)
	statistic.Get("/top-promotions", handler.GetTopPromotions)

	// Cấu hình hệ thống
	setting := v1.Group("/setting")
	setting.Get("/", handler.GetAppSettings)
	setting.Put("/booking-policy", middleware.Protected(), handler.UpdateBookingPolicy)
	setting.Put("/contact-info", middleware.Protected(), handler.UpdateContactInfo)

	// Realtime tình trạng phòng
	v1.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	v1.Get("/ws/rooms", websocket.New(handler.WebSocketRoomUpdates()))
}
