package model

import "time"

// ReportStatus tracks whether an admin has seen a report.
type ReportStatus string

const (
	ReportUnread ReportStatus = "unread"
	ReportRead   ReportStatus = "read"
)

// Report is an externally generated moderation/system record surfaced in
// the admin notification feed. This service only reads reports, sorts
// them, and flips their status.
type Report struct {
	ID        string       `json:"id"`
	Type      string       `json:"type,omitempty"`
	Title     string       `json:"title"`
	Message   string       `json:"message,omitempty"`
	Status    ReportStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}
