package notify

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestRenderTemplates(t *testing.T) {
	meeting := &MeetingDetails{
		Link: "https://meet.example.com/xyz",
		Time: time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		kind     TemplateKind
		meeting  *MeetingDetails
		wantBody []string
	}{
		{ShortlistInvite, nil, []string{"Ada", "Backend Engineer", "shortlisted"}},
		{MeetingInvite, meeting, []string{"Ada", "https://meet.example.com/xyz", "HR interview"}},
		{Offer, nil, []string{"Ada", "offer you the position"}},
		{Rejection, nil, []string{"Ada", "not to move forward"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			subject, body, err := render(tc.kind, "Ada", "Backend Engineer", tc.meeting)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if subject == "" {
				t.Fatal("empty subject")
			}
			for _, want := range tc.wantBody {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q:\n%s", want, body)
				}
			}
		})
	}
}

func TestRenderMeetingInviteRequiresDetails(t *testing.T) {
	if _, _, err := render(MeetingInvite, "Ada", "Backend Engineer", nil); err == nil {
		t.Fatal("expected an error without meeting details")
	}
}

func TestRenderUnknownKind(t *testing.T) {
	if _, _, err := render(TemplateKind("NOPE"), "Ada", "Backend Engineer", nil); err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}

func TestMockModeSendsNothing(t *testing.T) {
	// No password configured: send must log instead of dialing out.
	m := NewMailer("smtp.example.com", 587, "hr@example.com", "")
	if !m.mockMode() {
		t.Fatal("expected mock mode without credentials")
	}
	if err := m.Send(context.Background(), ShortlistInvite, "Ada", "ada@example.com", "Backend Engineer", nil); err != nil {
		t.Fatalf("Send in mock mode: %v", err)
	}

	m = NewMailer("smtp.example.com", 587, "hr@example.com", "mock-password")
	if !m.mockMode() {
		t.Fatal("expected mock mode with a mock password")
	}

	m = NewMailer("smtp.example.com", 587, "hr@example.com", "real-secret")
	if m.mockMode() {
		t.Fatal("unexpected mock mode with real credentials")
	}
}
