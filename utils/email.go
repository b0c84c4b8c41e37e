package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData dữ liệu cho template email xác nhận đặt phòng
type BookingConfirmationData struct {
	BookingCode   string
	HotelName     string
	RoomNumber    string
	RoomType      string
	CheckIn       string
	CheckOut      string
	Nights        int
	GuestName     string
	BasePrice     string
	Discount      string
	TotalPrice    string
	PaymentMethod string
	DetailLink    string
	// Thông tin hủy (chỉ dùng cho email hủy)
	RefundAmount string
	CancelledAt  string
}

// FormatMoney làm tròn 2 chữ số khi hiển thị, tính toán nội bộ giữ nguyên độ chính xác
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func smtpDialer() *gomail.Dialer {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
}

// SendBookingConfirmationEmail gửi email xác nhận đặt phòng kèm QR (async)
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	go func() {
		tmpl, err := template.ParseFiles("templates/booking_confirmation.html")
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Xác nhận đặt phòng #"+data.BookingCode)
		m.SetBody("text/html", body.String())

		qrBytes, err := GenerateQRCode(data.BookingCode, 400)
		if err == nil {
			m.Embed("qr_booking.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}), gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<qr_booking_code>"},
				"Content-Disposition": {"inline"},
			}))
		} else {
			log.Printf("Lỗi tạo QR cho booking %s: %v", data.BookingCode, err)
		}

		d := smtpDialer()
		// SMTP hay rớt tạm thời, retry với backoff giới hạn
		if err := WithBackoff(3, 2*time.Second, 10*time.Second, func() error {
			return d.DialAndSend(m)
		}); err != nil {
			log.Printf("Lỗi gửi email xác nhận đến %s: %v", to, err)
		}
	}()
}

// SendBookingCancelledEmail gửi email thông báo hủy đặt phòng (async)
func SendBookingCancelledEmail(to string, data BookingConfirmationData) {
	go func() {
		tmpl, err := template.ParseFiles("templates/booking_cancelled.html")
		if err != nil {
			log.Printf("Lỗi load template hủy phòng: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template hủy phòng: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", fmt.Sprintf("Hủy đặt phòng thành công - Mã: %s", data.BookingCode))
		m.SetBody("text/html", body.String())

		d := smtpDialer()
		if err := WithBackoff(3, 2*time.Second, 10*time.Second, func() error {
			return d.DialAndSend(m)
		}); err != nil {
			log.Printf("Lỗi gửi email hủy phòng cho %s: %v", to, err)
		}
	}()
}
