package mailer

import (
	"fmt"

	"medequip-backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends the transactional emails: the password-set link for new
// technician accounts and service-assignment notices.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

func (m *Mailer) SendPasswordSetLink(to, name, link string) error {
	body := fmt.Sprintf(`
		<h3>Welcome, %s!</h3>
		<p>Your technician account has been created. Click the link below to set your password:</p>
		<p><a href="%s">Set my password</a></p>
		<p>The link expires in 1 hour.</p>`, name, link)

	return m.send(to, "Set your MedEquip password", body)
}

func (m *Mailer) SendAssignment(to, name, deviceCode, description string) error {
	body := fmt.Sprintf(`
		<h3>New service assignment</h3>
		<p>Hi %s, you have been assigned to service device <b>%s</b>.</p>
		<p>%s</p>`, name, deviceCode, description)

	return m.send(to, "New service assignment: "+deviceCode, body)
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
