package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendOTPEmail(toEmail, otp string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Password Reset OTP - ShopHub")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f9fafb; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .logo { font-size: 24px; font-weight: bold; color: #2563eb; text-align: center; margin-bottom: 30px; }
        .otp-box { background-color: #eff6ff; border: 2px dashed #2563eb; padding: 20px; text-align: center; margin: 30px 0; border-radius: 8px; }
        .otp-code { font-size: 36px; font-weight: bold; color: #2563eb; letter-spacing: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">ShopHub</div>
        <h2 style="color: #333;">Password Reset Request</h2>
        <p>Hello,</p>
        <p>You have requested to reset your password. Please use the following One-Time Password (OTP) to proceed:</p>

        <div class="otp-box">
            <div style="color: #666; font-size: 14px; margin-bottom: 10px;">Your OTP Code</div>
            <div class="otp-code">%s</div>
        </div>

        <p><strong>This code will expire in 5 minutes.</strong></p>
        <p>If you did not request a password reset, please ignore this email.</p>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, otp)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendOrderConfirmationEmail(toEmail string, orderID int, total float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%d - ShopHub", orderID))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f9fafb; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .logo { font-size: 24px; font-weight: bold; color: #2563eb; text-align: center; margin-bottom: 30px; }
        .order-box { background-color: #eff6ff; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">ShopHub</div>
        <h2 style="color: #333;">Order Confirmed!</h2>
        <p>Thank you for your order!</p>

        <div class="order-box">
            <p><strong>Order ID:</strong> #%d</p>
            <p><strong>Total Paid:</strong> $%.2f</p>
        </div>

        <p>Your order has been received and is pending review. You can track its status on the Your Orders page.</p>

        <div class="footer">
            <p>&copy; ShopHub. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
	`, orderID, total)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
