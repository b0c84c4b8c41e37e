package utils

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateDBError(t *testing.T) {
	assert.Equal(t, "", TranslateDBError(nil))
	assert.Equal(t, "Không tìm thấy dữ liệu", TranslateDBError(gorm.ErrRecordNotFound))
	assert.Equal(t, "Dữ liệu đã tồn tại",
		TranslateDBError(errors.New(`ERROR: duplicate key value violates unique constraint "bookings_public_code_key"`)))
	assert.Equal(t, "Dữ liệu liên quan không tồn tại hoặc đang được sử dụng",
		TranslateDBError(errors.New("violates foreign key constraint")))
	assert.Equal(t, "Hệ thống đang bận, vui lòng thử lại sau",
		TranslateDBError(errors.New("dial tcp: connection refused")))
	assert.Equal(t, "Đã có lỗi xảy ra, vui lòng thử lại",
		TranslateDBError(errors.New("something unexpected")))
}

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-10"`), &d))
	assert.Equal(t, "2025-03-10", d.String())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-10"`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"10/03/2025"`), &d))
}

// Filter ngày trên query string đi qua UnmarshalText, cùng định dạng
// YYYY-MM-DD với phần còn lại của API.
func TestCustomDateText(t *testing.T) {
	var d CustomDate
	require.NoError(t, d.UnmarshalText([]byte("2025-03-10")))
	assert.Equal(t, "2025-03-10", d.String())

	require.NoError(t, d.UnmarshalText([]byte("")))
	assert.True(t, d.IsZero())

	assert.Error(t, d.UnmarshalText([]byte("2025-03-10T00:00:00Z")))
	assert.Error(t, d.UnmarshalText([]byte("10/03/2025")))
}

func TestIsValidISODate(t *testing.T) {
	assert.True(t, IsValidISODate("2025-03-10"))
	assert.False(t, IsValidISODate("2025-3-10"))
	assert.False(t, IsValidISODate("2025-03-10T00:00:00Z"))
	assert.False(t, IsValidISODate("2025-13-01"))
	assert.False(t, IsValidISODate(""))
}

func TestWithBackoff(t *testing.T) {
	t.Run("thành công ngay lần đầu", func(t *testing.T) {
		calls := 0
		err := WithBackoff(3, time.Millisecond, 5*time.Millisecond, func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retry đến khi thành công", func(t *testing.T) {
		calls := 0
		err := WithBackoff(3, time.Millisecond, 5*time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return errors.New("tạm thời")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("hết lượt thì trả lỗi cuối", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("vẫn lỗi")
		err := WithBackoff(3, time.Millisecond, 5*time.Millisecond, func() error {
			calls++
			return wantErr
		})
		require.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})
}

func TestCalculateGrowth(t *testing.T) {
	assert.Equal(t, float64(50), CalculateGrowth(150, 100))
	assert.Equal(t, float64(-50), CalculateGrowth(50, 100))
	assert.Equal(t, float64(0), CalculateGrowth(0, 0))
	assert.Equal(t, float64(100), CalculateGrowth(10, 0))
}
