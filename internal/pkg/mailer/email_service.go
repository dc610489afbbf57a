package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendMagicLink(toEmail, link string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendMagicLink(toEmail, link string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "TagNote サインインリンク")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>TagNote サインイン</h2>
			<p>以下のボタンをクリックしてサインインしてください。</p>
			<a href="%s" style="background-color: #0f172a; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">サインイン</a>
			<p>またはこのリンクをコピーしてください:</p>
			<p>%s</p>
			<p>このリンクは15分で無効になります。</p>
			<p>心当たりがない場合はこのメールを無視してください。</p>
		</div>
	`, link, link)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send magic link to %s: %w", toEmail, err)
	}

	return nil
}
