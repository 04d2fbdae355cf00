package model

import "time"

// NotificationKind tags the origin of a notification feed entry.
type NotificationKind string

const (
	NotificationSubmission NotificationKind = "submission"
	NotificationReport     NotificationKind = "report"
)

// ID prefixes distinguishing notification origins. Mark-read routes the
// flip back to the underlying record based on the prefix.
const (
	SubmissionNotificationPrefix = "submission_"
	ReportNotificationPrefix     = "report_"
)

// Notification is a read-time derived feed entry. It is never persisted:
// the feed is recomputed from pending submissions and stored reports on
// every request.
type Notification struct {
	ID         string           `json:"id"`
	Kind       NotificationKind `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message,omitempty"`
	Status     string           `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	Submission *Submission      `json:"submission,omitempty"`
}

// NotifyFromSubmission projects a pending submission into the feed shape.
// Submissions carry no read flag, so the derived entry is always unread.
func NotifyFromSubmission(s Submission) Notification {
	return Notification{
		ID:         SubmissionNotificationPrefix + s.ID,
		Kind:       NotificationSubmission,
		Title:      "New video submission",
		Message:    s.Title,
		Status:     "unread",
		CreatedAt:  s.CreatedAt,
		Submission: &s,
	}
}

// NotifyFromReport projects a stored report into the feed shape.
func NotifyFromReport(r Report) Notification {
	return Notification{
		ID:        ReportNotificationPrefix + r.ID,
		Kind:      NotificationReport,
		Title:     r.Title,
		Message:   r.Message,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}
