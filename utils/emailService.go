package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/GundlapalliLokeswarRaju/bigclasses/config"
)

// Mailer is the outbound mail transport. Production uses SMTP; tests stub it.
type Mailer interface {
	Send(to []string, subject, body string) error
}

// SMTPMailer sends plain-text mail through an authenticated SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     string
	Sender   string
	Password string
}

// NewSMTPMailer builds the transport from config.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Sender:   cfg.EmailSender,
		Password: cfg.Password,
	}
}

func (m *SMTPMailer) Send(to []string, subject, body string) error {
	if m.Sender == "" {
		return fmt.Errorf("email sender not configured")
	}

	msg := fmt.Sprintf("From: BigClasses <%s>\r\n", m.Sender)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n", subject)
	msg += "MIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n"
	msg += body

	auth := smtp.PlainAuth("", m.Sender, m.Password, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.Sender, to, []byte(msg))
}

// EnrollmentConfirmationBody is the fixed student confirmation template.
func EnrollmentConfirmationBody(entry *EnrollmentEntry) (subject, body string) {
	subject = "Enrollment Received - " + entry.CourseTitle
	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for your interest in %s!\n\n"+
			"We have received your enrollment request and our team will reach out to you shortly "+
			"with the next steps.\n\n"+
			"Reference: %s\n\n"+
			"Happy Learning!\nBigClasses Team\n",
		strings.TrimSpace(entry.Name), entry.CourseTitle, entry.Reference,
	)
	return subject, body
}

// EnrollmentAlertBody is the fixed internal ops alert template.
func EnrollmentAlertBody(entry *EnrollmentEntry) (subject, body string) {
	subject = "New Enrollment: " + entry.CourseTitle
	body = fmt.Sprintf(
		"New enrollment submission.\n\n"+
			"Course: %s\n"+
			"Name: %s\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"Extra Info: %s\n"+
			"Time: %s\n"+
			"Reference: %s\n",
		entry.CourseTitle,
		strings.TrimSpace(entry.Name),
		strings.ToLower(strings.TrimSpace(entry.Email)),
		strings.TrimSpace(entry.Phone),
		entry.ExtraInfo,
		entry.Timestamp.Format("2006-01-02 15:04:05"),
		entry.Reference,
	)
	return subject, body
}
