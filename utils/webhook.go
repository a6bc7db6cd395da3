package utils

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// EnrollmentWebhookPayload is the JSON body forwarded to the external sheet webhook.
type EnrollmentWebhookPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ExtraInfo   string `json:"extra_info"`
	CourseID    uint   `json:"course_id"`
	CourseTitle string `json:"course_title"`
	Timestamp   string `json:"timestamp"`
	Reference   string `json:"reference"`
}

// WebhookClient forwards enrollment entries to an external webhook with a
// bounded timeout. A zero URL disables the channel.
type WebhookClient struct {
	URL    string
	client *resty.Client
}

func NewWebhookClient(url string, timeout time.Duration) *WebhookClient {
	return &WebhookClient{
		URL:    url,
		client: resty.New().SetTimeout(timeout),
	}
}

// Forward posts the entry as JSON. Single attempt; timeouts and non-2xx
// responses surface as errors for the notifier to log. An empty URL means
// the channel is disabled, not failing.
func (w *WebhookClient) Forward(entry *EnrollmentEntry) error {
	if w.URL == "" {
		return nil
	}

	payload := EnrollmentWebhookPayload{
		Name:        entry.Name,
		Email:       entry.Email,
		Phone:       entry.Phone,
		ExtraInfo:   entry.ExtraInfo,
		CourseID:    entry.CourseID,
		CourseTitle: entry.CourseTitle,
		Timestamp:   entry.Timestamp.Format("2006-01-02 15:04:05"),
		Reference:   entry.Reference,
	}

	resp, err := w.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(w.URL)
	if err != nil {
		return err
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
