package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"hotel_manager/model"

	"gorm.io/gorm"
)

var (
	appSettings model.AppSettings
	settingsMu  sync.RWMutex
)

var ErrUnknownSettingKey = errors.New("unknown setting key")

// LoadAppSettings decode toàn bộ app_settings MỘT LẦN lúc khởi động.
// Mỗi key có shape cố định, value sai shape hoặc key lạ là lỗi luôn,
// không dò field lúc dùng.
func LoadAppSettings(db *gorm.DB) (model.AppSettings, error) {
	var rows []model.AppSetting
	if err := db.Find(&rows).Error; err != nil {
		return model.AppSettings{}, err
	}

	loaded := model.AppSettings{
		// Mặc định khi chưa seed
		BookingPolicy: model.BookingPolicySetting{
			CheckoutCutoff:     "09:30",
			PaymentHoldMinutes: 15,
			MaxNights:          30,
		},
	}

	for _, row := range rows {
		switch row.Key {
		case model.SettingKeyBookingPolicy:
			var v model.BookingPolicySetting
			if err := decodeStrict(row.Value, &v); err != nil {
				return model.AppSettings{}, fmt.Errorf("setting %q: %w", row.Key, err)
			}
			loaded.BookingPolicy = v
		case model.SettingKeyContactInfo:
			var v model.ContactInfoSetting
			if err := decodeStrict(row.Value, &v); err != nil {
				return model.AppSettings{}, fmt.Errorf("setting %q: %w", row.Key, err)
			}
			loaded.ContactInfo = v
		default:
			return model.AppSettings{}, fmt.Errorf("%w: %s", ErrUnknownSettingKey, row.Key)
		}
	}

	settingsMu.Lock()
	appSettings = loaded
	settingsMu.Unlock()

	log.Println("Đã load app settings")
	return loaded, nil
}

func decodeStrict(raw string, out any) error {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

// GetAppSettings trả về bản settings đã decode
func GetAppSettings() model.AppSettings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return appSettings
}
