package helper

import (
	"testing"

	"hotel_manager/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return gdb, mock
}

func TestBookingPolicyHoldMinutes(t *testing.T) {
	assert.Equal(t, 20, model.BookingPolicySetting{PaymentHoldMinutes: 20}.HoldMinutes())

	// Chưa cấu hình hoặc cấu hình vô nghĩa thì về 15 phút
	assert.Equal(t, 15, model.BookingPolicySetting{}.HoldMinutes())
	assert.Equal(t, 15, model.BookingPolicySetting{PaymentHoldMinutes: -5}.HoldMinutes())
}

func TestLoadAppSettings(t *testing.T) {
	t.Run("decode đúng shape từng key", func(t *testing.T) {
		gdb, mock := newMockDB(t)

		rows := sqlmock.NewRows([]string{"id", "key", "value"}).
			AddRow(1, "booking_policy", `{"checkoutCutoff":"09:30","paymentHoldMinutes":20,"maxNights":14}`).
			AddRow(2, "contact_info", `{"hotline":"1900 1234","email":"cskh@hotel.vn","address":"Hà Nội"}`)
		mock.ExpectQuery(`SELECT \* FROM "app_settings"`).WillReturnRows(rows)

		settings, err := LoadAppSettings(gdb)
		require.NoError(t, err)

		assert.Equal(t, "09:30", settings.BookingPolicy.CheckoutCutoff)
		assert.Equal(t, 20, settings.BookingPolicy.PaymentHoldMinutes)
		assert.Equal(t, 14, settings.BookingPolicy.MaxNights)
		assert.Equal(t, "1900 1234", settings.ContactInfo.Hotline)

		// Bản trong memory cũng phải được cập nhật
		assert.Equal(t, 20, GetAppSettings().BookingPolicy.PaymentHoldMinutes)
	})

	t.Run("chưa seed thì dùng mặc định", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "app_settings"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}))

		settings, err := LoadAppSettings(gdb)
		require.NoError(t, err)
		assert.Equal(t, "09:30", settings.BookingPolicy.CheckoutCutoff)
		assert.Equal(t, 15, settings.BookingPolicy.PaymentHoldMinutes)
	})

	t.Run("key lạ là lỗi ngay lúc load", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		rows := sqlmock.NewRows([]string{"id", "key", "value"}).
			AddRow(1, "mystery_key", `{}`)
		mock.ExpectQuery(`SELECT \* FROM "app_settings"`).WillReturnRows(rows)

		_, err := LoadAppSettings(gdb)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownSettingKey)
	})

	t.Run("value sai shape là lỗi", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		rows := sqlmock.NewRows([]string{"id", "key", "value"}).
			AddRow(1, "booking_policy", `{"checkoutCutoff":"09:30","unknownField":true}`)
		mock.ExpectQuery(`SELECT \* FROM "app_settings"`).WillReturnRows(rows)

		_, err := LoadAppSettings(gdb)
		require.Error(t, err)
	})
}
