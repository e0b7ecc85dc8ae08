package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/calebfernandez/levelup/internal/config"
)

type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

func (es *EmailService) SendResetEmail(to, token string) error {
	subject := "Password Reset Request"
	body := fmt.Sprintf(`
	<html>
	<body>
		<h2>Password Reset Request</h2>
		<p>You have requested to reset your password. Click the link below to choose a new one:</p>
		<p><a href="%s/reset-password/%s">Reset your password</a></p>
		<p>This link will expire in 30 minutes.</p>
		<p>If you didn't request this, please ignore this email.</p>
	</body>
	</html>
	`, es.cfg.AppBaseURL, token)

	auth := smtp.PlainAuth("", es.cfg.SMTPUsername, es.cfg.SMTPPassword, es.cfg.SMTPHost)

	headers := make(map[string]string)
	headers["From"] = es.cfg.EmailFrom
	headers["To"] = to
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=\"utf-8\""

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n" + body)

	err := smtp.SendMail(
		es.cfg.SMTPHost+":"+es.cfg.SMTPPort,
		auth,
		es.cfg.EmailFrom,
		[]string{to},
		[]byte(message.String()),
	)

	return err
}
