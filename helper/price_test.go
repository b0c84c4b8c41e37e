package helper

import (
	"math"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeNights(t *testing.T) {
	assert.Equal(t, 3, ComputeNights("2025-03-10", "2025-03-13"))
	assert.Equal(t, 1, ComputeNights("2025-03-10", "2025-03-11"))

	// Khoảng không dương hoặc ngày sai đều là 0
	assert.Equal(t, 0, ComputeNights("2025-03-13", "2025-03-10"))
	assert.Equal(t, 0, ComputeNights("2025-03-10", "2025-03-10"))
	assert.Equal(t, 0, ComputeNights("abc", "2025-03-13"))
	assert.Equal(t, 0, ComputeNights("2025-03-10", "xyz"))
}

func TestComputeDiscount(t *testing.T) {
	t.Run("giảm theo phần trăm", func(t *testing.T) {
		p := &model.Promotion{DiscountType: constants.DiscountPercentage, DiscountPercent: 10, IsActive: true}
		// 300 x 10% = 30, còn 270
		discount := ComputeDiscount(p, 300, 3)
		assert.InDelta(t, 30, discount, 1e-9)
		assert.InDelta(t, 270, ComputeFinalTotal(300, discount), 1e-9)
	})

	t.Run("giảm cố định tính theo mỗi đêm", func(t *testing.T) {
		p := &model.Promotion{DiscountType: constants.DiscountFixed, DiscountAmount: 20, IsActive: true}
		// 20/đêm x 3 đêm = 60, tổng 300 còn 240
		discount := ComputeDiscount(p, 300, 3)
		assert.InDelta(t, 60, discount, 1e-9)
		assert.InDelta(t, 240, ComputeFinalTotal(300, discount), 1e-9)
	})

	t.Run("chưa đạt mức chi tối thiểu thì không giảm", func(t *testing.T) {
		p := &model.Promotion{
			DiscountType:    constants.DiscountPercentage,
			DiscountPercent: 10,
			MinimumAmount:   500,
			IsActive:        true,
		}
		assert.Equal(t, float64(0), ComputeDiscount(p, 300, 3))
	})

	t.Run("giảm quá tổng tiền thì kẹp tại tổng tiền", func(t *testing.T) {
		p := &model.Promotion{DiscountType: constants.DiscountPercentage, DiscountPercent: 150, IsActive: true}
		discount := ComputeDiscount(p, 300, 3)
		assert.InDelta(t, 300, discount, 1e-9)
		assert.Equal(t, float64(0), ComputeFinalTotal(300, discount))

		fixed := &model.Promotion{DiscountType: constants.DiscountFixed, DiscountAmount: 200, IsActive: true}
		assert.InDelta(t, 300, ComputeDiscount(fixed, 300, 3), 1e-9)
	})

	t.Run("giá trị bẩn quy về 0", func(t *testing.T) {
		nan := &model.Promotion{DiscountType: constants.DiscountPercentage, DiscountPercent: math.NaN(), IsActive: true}
		assert.Equal(t, float64(0), ComputeDiscount(nan, 300, 3))

		inf := &model.Promotion{DiscountType: constants.DiscountFixed, DiscountAmount: math.Inf(1), IsActive: true}
		assert.Equal(t, float64(0), ComputeDiscount(inf, 300, 3))

		negative := &model.Promotion{DiscountType: constants.DiscountFixed, DiscountAmount: -50, IsActive: true}
		assert.Equal(t, float64(0), ComputeDiscount(negative, 300, 3))
	})

	t.Run("không có khuyến mãi hoặc đơn rỗng", func(t *testing.T) {
		assert.Equal(t, float64(0), ComputeDiscount(nil, 300, 3))
		p := &model.Promotion{DiscountType: constants.DiscountPercentage, DiscountPercent: 10, IsActive: true}
		assert.Equal(t, float64(0), ComputeDiscount(p, 0, 3))
		assert.Equal(t, float64(0), ComputeDiscount(p, 300, 0))
	})

	t.Run("tính lại nhiều lần cho cùng input ra cùng kết quả", func(t *testing.T) {
		p := &model.Promotion{DiscountType: constants.DiscountPercentage, DiscountPercent: 12.5, IsActive: true}
		first := ComputeDiscount(p, 777.77, 4)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ComputeDiscount(p, 777.77, 4))
		}
	})
}

func TestComputeFinalTotal(t *testing.T) {
	assert.Equal(t, float64(270), ComputeFinalTotal(300, 30))
	assert.Equal(t, float64(0), ComputeFinalTotal(300, 300))
	// Không bao giờ âm
	assert.Equal(t, float64(0), ComputeFinalTotal(300, 400))
}

func TestIsPromotionEligibleOn(t *testing.T) {
	base := model.Promotion{
		DiscountType:    constants.DiscountPercentage,
		DiscountPercent: 10,
		StartDate:       "2025-03-01",
		EndDate:         "2025-03-31",
		IsActive:        true,
	}

	t.Run("trong khung ngày và đang bật", func(t *testing.T) {
		p := base
		assert.True(t, IsPromotionEligibleOn(&p, 300, "2025-03-15"))
		assert.True(t, IsPromotionEligibleOn(&p, 300, "2025-03-01"))
		assert.True(t, IsPromotionEligibleOn(&p, 300, "2025-03-31"))
	})

	t.Run("ngoài khung ngày", func(t *testing.T) {
		p := base
		assert.False(t, IsPromotionEligibleOn(&p, 300, "2025-02-28"))
		assert.False(t, IsPromotionEligibleOn(&p, 300, "2025-04-01"))
	})

	t.Run("đã tắt", func(t *testing.T) {
		p := base
		p.IsActive = false
		assert.False(t, IsPromotionEligibleOn(&p, 300, "2025-03-15"))
	})

	t.Run("trần lượt dùng, 0 là không giới hạn", func(t *testing.T) {
		p := base
		p.MaximumUses = 100
		p.CurrentUses = 100
		assert.False(t, IsPromotionEligibleOn(&p, 300, "2025-03-15"))

		p.CurrentUses = 99
		assert.True(t, IsPromotionEligibleOn(&p, 300, "2025-03-15"))

		unlimited := base
		unlimited.MaximumUses = 0
		unlimited.CurrentUses = 100000
		assert.True(t, IsPromotionEligibleOn(&unlimited, 300, "2025-03-15"))
	})

	t.Run("mức chi tối thiểu", func(t *testing.T) {
		p := base
		p.MinimumAmount = 500
		assert.False(t, IsPromotionEligibleOn(&p, 300, "2025-03-15"))
		assert.True(t, IsPromotionEligibleOn(&p, 500, "2025-03-15"))
	})
}

// Đổi ngày làm baseTotal tụt dưới mức chi tối thiểu thì khuyến mãi phải
// rớt khỏi danh sách áp dụng được.
func TestEligiblePromotionsRecheck(t *testing.T) {
	promotions := []model.Promotion{
		{
			Code:            "GIAM10",
			DiscountType:    constants.DiscountPercentage,
			DiscountPercent: 10,
			MinimumAmount:   500,
			StartDate:       "2025-03-01",
			EndDate:         "2025-03-31",
			IsActive:        true,
		},
		{
			Code:           "DEM20",
			DiscountType:   constants.DiscountFixed,
			DiscountAmount: 20,
			StartDate:      "2025-03-01",
			EndDate:        "2025-03-31",
			IsActive:       true,
		},
	}

	// 3 đêm x 200 = 600: cả hai đều áp dụng được
	eligible := EligiblePromotions(promotions, 600, "2025-03-15")
	assert.Len(t, eligible, 2)

	// Rút còn 2 đêm: 400 < 500, GIAM10 phải rớt
	eligible = EligiblePromotions(promotions, 400, "2025-03-15")
	assert.Len(t, eligible, 1)
	assert.Equal(t, "DEM20", eligible[0].Code)
}
