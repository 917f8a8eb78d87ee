// Package mailer sends transactional email, currently just the two-step
// login code with the Aptirise template.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"time"
)

type Mailer struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

func New(host, port, user, password, from string) *Mailer {
	return &Mailer{Host: host, Port: port, User: user, Password: password, From: from}
}

// SendOTP delivers the 6-digit verification code. The code itself is valid
// for 5 minutes; the template says so.
func (m *Mailer) SendOTP(toEmail, code, username string) error {
	subject := "Your 2-Step Verification Code - Aptirise"
	body := fmt.Sprintf(`
<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 600px; margin: 0 auto; background-color: #f8fafc; padding: 20px; border-radius: 12px;">
  <div style="text-align: center; padding-bottom: 20px; border-bottom: 2px solid #e2e8f0;">
    <h2 style="color: #0f172a; margin: 0;">Aptirise</h2>
    <p style="color: #64748b; margin: 5px 0 0;">Master Aptitude with AI</p>
  </div>
  <div style="background-color: #ffffff; padding: 30px; border-radius: 8px; margin-top: 20px;">
    <h3 style="color: #0f172a; margin-top: 0;">Hello %s,</h3>
    <p style="color: #475569; font-size: 16px; line-height: 1.5;">
      To complete your login, please enter the following verification code.
    </p>
    <div style="text-align: center; margin: 30px 0;">
      <span style="font-size: 32px; font-weight: bold; letter-spacing: 4px; color: #4f46e5; background: #e0e7ff; padding: 15px 30px; border-radius: 8px; display: inline-block;">%s</span>
    </div>
    <p style="text-align: center; color: #ef4444; font-weight: 600; font-size: 14px;">Valid for 5 minutes only</p>
    <p style="color: #94a3b8; font-size: 14px; margin-top: 30px; text-align: center;">
      If you didn't request this code, please ignore this email.
    </p>
  </div>
  <div style="text-align: center; margin-top: 20px; color: #94a3b8; font-size: 12px;">&copy; %d Aptirise. All rights reserved.</div>
</div>`, username, code, time.Now().Year())

	msg := []byte(fmt.Sprintf("From: \"Aptirise Security\" <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		m.From, toEmail, subject, body))

	auth := smtp.PlainAuth("", m.User, m.Password, m.Host)
	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, m.From, []string{toEmail}, msg); err != nil {
		log.Printf("[Email] Failed to send code to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send verification email")
	}
	log.Printf("[Email] Verification code sent to %s", toEmail)
	return nil
}
