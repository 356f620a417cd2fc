package notify

import (
	"fmt"
	"time"
)

// TemplateKind selects the email sent for a status-defined transition.
type TemplateKind string

const (
	ShortlistInvite TemplateKind = "SHORTLIST_INVITE"
	MeetingInvite   TemplateKind = "MEETING_INVITE"
	Offer           TemplateKind = "OFFER"
	Rejection       TemplateKind = "REJECTION"
)

// MeetingDetails carries the HR-round logistics for the meeting invite.
type MeetingDetails struct {
	Link string
	Time time.Time
}

func render(kind TemplateKind, candidateName, jobTitle string, meeting *MeetingDetails) (subject, body string, err error) {
	switch kind {
	case ShortlistInvite:
		subject = fmt.Sprintf("Update on your application for %s - HIRE_OS", jobTitle)
		body = fmt.Sprintf(`Dear %s,

Great news! Your profile has been shortlisted for the %s position.

We were impressed with your resume and would like to invite you to the next round: an automated technical interview.

NEXT STEPS:
1. Log in to the candidate portal.
2. Enter the email you applied with to access the interview.
3. Complete the chat assessment.

Good luck!

Best regards,
The HIRE_OS Recruitment Team`, candidateName, jobTitle)

	case MeetingInvite:
		if meeting == nil {
			return "", "", fmt.Errorf("meeting invite requires meeting details")
		}
		subject = fmt.Sprintf("HR Round Scheduled: %s - HIRE_OS", jobTitle)
		body = fmt.Sprintf(`Dear %s,

Congratulations on reaching the final round for the %s position!

Your HR interview has been scheduled.

  When: %s
  Where: %s

Please join a few minutes early.

Best regards,
The HIRE_OS Recruitment Team`, candidateName, jobTitle,
			meeting.Time.Format("Mon, 02 Jan 2006 15:04 MST"), meeting.Link)

	case Offer:
		subject = fmt.Sprintf("Offer of Employment: %s at HIRE_OS", jobTitle)
		body = fmt.Sprintf(`Dear %s,

We are pleased to offer you the position of %s!

Your interview results were impressive, and we believe you will be a great asset to the team.

Please reply to this email to discuss the start date and compensation details.

Welcome aboard!

Sincerely,
The HIRE_OS Team`, candidateName, jobTitle)

	case Rejection:
		subject = fmt.Sprintf("Update on your application for %s - HIRE_OS", jobTitle)
		body = fmt.Sprintf(`Dear %s,

Thank you for the time you invested in the process for the %s position.

After careful consideration we have decided not to move forward with your application. We encourage you to apply for future openings that match your profile.

We wish you all the best.

Best regards,
The HIRE_OS Recruitment Team`, candidateName, jobTitle)

	default:
		return "", "", fmt.Errorf("unknown template kind: %s", kind)
	}

	return subject, body, nil
}
