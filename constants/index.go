package constants

// Thông báo lỗi chung
const (
	ERROR_INPUT              = "Dữ liệu đầu vào không hợp lệ"
	DATA_INPUT_IS_NOT_NUMBER = "Dữ liệu đầu vào phải là số"
	NOT_ADMIN                = "Bạn không có quyền thực hiện thao tác này"
	NOT_LOGGED_IN            = "Vui lòng đăng nhập"
	CAN_NOT_EDIT_HOTEL       = "Bạn không có quyền chỉnh sửa khách sạn này"
)

// Trạng thái đặt phòng
const (
	BookingPendingPayment      = "pending_payment"
	BookingPendingVerification = "pending_verification"
	BookingConfirmed           = "confirmed"
	BookingBooked              = "booked" // trạng thái cũ, vẫn tính là đang giữ phòng
	BookingCancelled           = "cancelled"
	BookingCheckedOut          = "checked_out"
)

// Trạng thái phòng
const (
	RoomAvailable   = "AVAILABLE"
	RoomMaintenance = "MAINTENANCE"
	RoomDisabled    = "DISABLED"
)

// Phương thức thanh toán
const (
	PaymentCash         = "CASH"
	PaymentCard         = "CARD"
	PaymentBankTransfer = "BANK_TRANSFER"
	PaymentEWallet      = "E_WALLET"
)

// Loại giảm giá
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Vai trò tài khoản
const (
	RoleAdmin     = "ADMIN"
	RoleManager   = "MANAGER"
	RoleFrontDesk = "FRONT_DESK"
)

var Roles = []string{RoleAdmin, RoleManager, RoleFrontDesk}

// Trạng thái đơn gọi món
const (
	OrderPending   = "PENDING"
	OrderPreparing = "PREPARING"
	OrderServed    = "SERVED"
	OrderPaid      = "PAID"
	OrderCancelled = "CANCELLED"
)
