package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"forum-api/internal/config"
)

type EmailService interface {
	SendRegistrationEmail(ctx context.Context, toEmail, fullname string) error
}

type emailService struct {
	client *resend.Client
	config *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &emailService{
		client: client,
		config: cfg,
	}
}

func (s *emailService) SendRegistrationEmail(ctx context.Context, toEmail, fullname string) error {
	subject := "Selamat Datang di Forum Diskusi!"

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="id">
<head>
	<meta charset="UTF-8">
	<title>Selamat Datang di Forum Diskusi</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9fafb;">

	<div style="background-color: #1d4ed8; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
		<h1 style="color: #ffffff; margin: 0; font-size: 28px;">
			Forum Diskusi
		</h1>
	</div>

	<div style="background-color: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px;">

		<h2 style="color: #111827; margin-top: 0;">
			Halo, %s!
		</h2>

		<p>
			Terima kasih telah bergabung dengan <strong>Forum Diskusi</strong>.
			Akun Anda telah berhasil dibuat. Sekarang Anda dapat membuat thread,
			menulis komentar, dan berdiskusi dengan anggota lain.
		</p>

		<div style="text-align: center; margin: 30px 0;">
			<a href="%s"
			   style="background-color: #1d4ed8; color: #ffffff; padding: 14px 28px; text-decoration: none; border-radius: 6px; font-weight: bold; display: inline-block;">
				Masuk ke Akun Anda
			</a>
		</div>

		<p style="font-size: 14px; color: #6b7280;">
			Salam hangat,<br>
			<strong>Tim Forum Diskusi</strong>
		</p>
	</div>

</body>
</html>`, fullname, fmt.Sprintf("http://%s/login", s.config.Domain))

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Forum Diskusi <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
