package helper

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"time"

	"hotel_manager/config"
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

// FrontendURL địa chỉ trang khách, dùng cho link trong email
func FrontendURL() string {
	return config.ConfigOr("FRONTEND_URL", "http://localhost:3000")
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GetCustomerByEmail(e string) (*model.Customer, error) {
	db := database.DB
	var customer model.Customer
	if err := db.Where(&model.Customer{Email: e}).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["customerId"] = tokenClaim.CustomerId
	claims["accountId"] = tokenClaim.AccountId
	if tokenClaim.HotelId != nil {
		claims["hotelId"] = *tokenClaim.HotelId
	}
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["customerId"] = tokenClaim.CustomerId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoAccountFromToken đọc claim từ token nhân viên trong Locals.
// Trả về claim + các cờ vai trò (admin, manager, frontdesk).
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, false, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false, false, false
	}

	tokenClaim := model.TokenClaim{}
	if v, ok := claims["accountId"].(float64); ok {
		tokenClaim.AccountId = uint(v)
	}
	if v, ok := claims["customerId"].(float64); ok {
		tokenClaim.CustomerId = uint(v)
	}
	if v, ok := claims["username"].(string); ok {
		tokenClaim.Username = v
	}
	if v, ok := claims["hotelId"].(float64); ok {
		hotelId := uint(v)
		tokenClaim.HotelId = &hotelId
	}

	if tokenClaim.AccountId == 0 {
		return tokenClaim, false, false, false
	}

	var account model.Account
	if err := database.DB.First(&account, tokenClaim.AccountId).Error; err != nil {
		return tokenClaim, false, false, false
	}
	if !account.IsActive {
		return tokenClaim, false, false, false
	}

	isAdmin := account.Role == constants.RoleAdmin
	isManager := account.Role == constants.RoleManager
	isFrontDesk := account.Role == constants.RoleFrontDesk
	return tokenClaim, isAdmin, isManager, isFrontDesk
}

// GetInfoCustomerFromToken đọc claim khách hàng, kèm bản ghi customer nếu có
func GetInfoCustomerFromToken(c *fiber.Ctx) (model.TokenClaim, model.Customer) {
	var customer model.Customer

	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, customer
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, customer
	}

	tokenClaim := model.TokenClaim{}
	if v, ok := claims["customerId"].(float64); ok {
		tokenClaim.CustomerId = uint(v)
	}
	if v, ok := claims["username"].(string); ok {
		tokenClaim.Username = v
	}

	if tokenClaim.CustomerId > 0 {
		database.DB.First(&customer, tokenClaim.CustomerId)
	}
	return tokenClaim, customer
}
