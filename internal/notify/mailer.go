// Package notify sends the transition emails. Delivery is best-effort by
// contract: a failed send is logged by the caller and never rolls back the
// status change that triggered it.
package notify

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type Mailer struct {
	host     string
	port     int
	sender   string
	password string
}

func NewMailer(host string, port int, sender, password string) *Mailer {
	return &Mailer{host: host, port: port, sender: sender, password: password}
}

// mockMode is on when no real credentials are configured; the rendered mail
// is logged instead of sent so the pipeline works in demos and tests.
func (m *Mailer) mockMode() bool {
	return m.password == "" || strings.Contains(m.password, "mock")
}

func (m *Mailer) Send(ctx context.Context, kind TemplateKind, candidateName, candidateEmail, jobTitle string, meeting *MeetingDetails) error {
	subject, body, err := render(kind, candidateName, jobTitle, meeting)
	if err != nil {
		return err
	}

	if m.mockMode() {
		log.Printf("[Mailer] MOCK %s -> %s\nSubject: %s\n%s", kind, candidateEmail, subject, body)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", candidateEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.sender, m.password)

	done := make(chan error, 1)
	go func() { done <- dialer.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	log.Printf("[Mailer] sent %s to %s", kind, candidateEmail)
	return nil
}
