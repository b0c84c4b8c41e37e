package helper

import (
	"math"
	"time"

	"hotel_manager/constants"
	"hotel_manager/model"
)

// ComputeNights đếm số đêm giữa hai ngày "YYYY-MM-DD", làm tròn lên.
// Ngày không hợp lệ hoặc khoảng không dương trả về 0.
func ComputeNights(startDate, endDate string) int {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0
	}

	diff := end.Sub(start).Hours() / 24
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff))
}

func ComputeBaseTotal(nights int, nightlyRate float64) float64 {
	if nights <= 0 {
		return 0
	}
	return float64(nights) * nightlyRate
}

// ComputeDiscount tính tiền giảm của một khuyến mãi trên tổng tiền phòng.
// Loại 'fixed' giảm theo MỖI ĐÊM chứ không phải giảm một lần — quy tắc
// nghiệp vụ có chủ đích, giữ nguyên. Kết quả luôn nằm trong [0, baseTotal].
func ComputeDiscount(promotion *model.Promotion, baseTotal float64, nights int) float64 {
	if promotion == nil || baseTotal <= 0 || nights <= 0 {
		return 0
	}
	if promotion.MinimumAmount > 0 && baseTotal < promotion.MinimumAmount {
		return 0
	}

	var discount float64
	if promotion.DiscountType == constants.DiscountFixed {
		discount = promotion.DiscountAmount * float64(nights)
	} else {
		discount = baseTotal * (promotion.DiscountPercent / 100)
	}

	if math.IsNaN(discount) || math.IsInf(discount, 0) || discount < 0 {
		return 0
	}
	if discount > baseTotal {
		return baseTotal
	}
	return discount
}

func ComputeFinalTotal(baseTotal, discount float64) float64 {
	total := baseTotal - discount
	if total < 0 {
		return 0
	}
	return total
}

// IsPromotionEligibleOn kiểm tra khuyến mãi còn áp dụng được cho một đơn
// có tổng tiền baseTotal tại ngày onDate ("YYYY-MM-DD") hay không:
// đang bật, trong khung ngày, chưa chạm trần lượt dùng (0 = không giới hạn)
// và đạt mức chi tối thiểu.
func IsPromotionEligibleOn(p *model.Promotion, baseTotal float64, onDate string) bool {
	if p == nil || !p.IsActive {
		return false
	}
	if p.StartDate != "" && onDate < p.StartDate {
		return false
	}
	if p.EndDate != "" && onDate > p.EndDate {
		return false
	}
	if p.MaximumUses > 0 && p.CurrentUses >= p.MaximumUses {
		return false
	}
	if p.MinimumAmount > 0 && baseTotal < p.MinimumAmount {
		return false
	}
	return true
}

// EligiblePromotions lọc danh sách khuyến mãi còn áp dụng được.
// UI phải gọi lại mỗi khi baseTotal đổi: khuyến mãi đã chọn mà rớt khỏi
// danh sách này thì phải bỏ chọn và báo cho khách.
func EligiblePromotions(promotions []model.Promotion, baseTotal float64, onDate string) []model.Promotion {
	eligible := []model.Promotion{}
	for i := range promotions {
		if IsPromotionEligibleOn(&promotions[i], baseTotal, onDate) {
			eligible = append(eligible, promotions[i])
		}
	}
	return eligible
}
