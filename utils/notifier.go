package utils

import (
	"log"
	"strings"
)

// EnrollmentNotifier dispatches an enrollment to the external webhook, the
// student's confirmation email and the internal ops alert. Every channel is
// best-effort: a failure is logged and never affects the other channels or
// the caller's response. Notify runs strictly after the spreadsheet write,
// so no sheet lock is ever held across these network calls.
type EnrollmentNotifier struct {
	Webhook  *WebhookClient
	Mailer   Mailer
	OpsEmail string
}

func (n *EnrollmentNotifier) Notify(entry *EnrollmentEntry) {
	if err := n.Webhook.Forward(entry); err != nil {
		log.Printf("[ENROLLMENT-NOTIFY] webhook failed for %s: %v", entry.Reference, err)
	}

	student := strings.ToLower(strings.TrimSpace(entry.Email))
	subject, body := EnrollmentConfirmationBody(entry)
	if err := n.Mailer.Send([]string{student}, subject, body); err != nil {
		log.Printf("[ENROLLMENT-NOTIFY] confirmation email failed for %s: %v", entry.Reference, err)
	}

	if n.OpsEmail == "" {
		log.Printf("[ENROLLMENT-NOTIFY] ops email not configured, alert skipped for %s", entry.Reference)
		return
	}
	subject, body = EnrollmentAlertBody(entry)
	if err := n.Mailer.Send([]string{n.OpsEmail}, subject, body); err != nil {
		log.Printf("[ENROLLMENT-NOTIFY] ops alert failed for %s: %v", entry.Reference, err)
	}
}
