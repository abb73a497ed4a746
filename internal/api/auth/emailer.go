package auth

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

func sendMail(to, subject, body string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(host, port, from, password)
	if err := d.DialAndSend(m); err != nil {
		fmt.Println("❌ SMTP error:", err)
		return err
	}
	return nil
}

func SendVerificationEmail(to string, token string) error {
	link := fmt.Sprintf("%s/verify?token=%s", appURL(), token)
	body := fmt.Sprintf("Click the following link to verify your account:\n\n%s", link)
	return sendMail(to, "Verify Your Account", body)
}

func SendPasswordResetEmail(to string, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", frontendURL(), token)
	body := fmt.Sprintf("Use the following link to reset your password (valid for 1 hour):\n\n%s", link)
	return sendMail(to, "Reset Your Password", body)
}

func appURL() string {
	if v := os.Getenv("APP_API_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func frontendURL() string {
	if v := os.Getenv("APP_URL"); v != "" {
		return v
	}
	return "http://localhost:5173"
}
