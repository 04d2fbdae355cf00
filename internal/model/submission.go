package model

import "time"

// SubmissionStatus is the review state of a user submission.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// FilenamePending is the sentinel filename for submissions without an upload.
const FilenamePending = "pending_upload"

// Submission is a user-proposed video awaiting admin review. Records are
// never deleted; approve/reject only flips the status and stamps the
// matching timestamp.
type Submission struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Filename        string           `json:"filename"`
	Category        string           `json:"category"`
	Description     string           `json:"description,omitempty"`
	ContactEmail    string           `json:"contactEmail"`
	VideoURL        string           `json:"videoUrl,omitempty"`
	Status          SubmissionStatus `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	ApprovedAt      *time.Time       `json:"approvedAt,omitempty"`
	RejectedAt      *time.Time       `json:"rejectedAt,omitempty"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
}

// SubmitVideoRequest is the request body for POST /api/submit-video.
type SubmitVideoRequest struct {
	Title       string `json:"title" validate:"required"`
	Filename    string `json:"filename"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	Email       string `json:"email" validate:"required"`
	VideoURL    string `json:"videoUrl"`
}

// RejectRequest is the request body for POST /api/admin/submissions/:id/reject.
type RejectRequest struct {
	Reason string `json:"reason"`
}
