package service

import (
	"context"
	"strings"
	"time"

	"github.com/videostream-app/videostream-go/internal/model"
	"github.com/videostream-app/videostream-go/internal/store"
	"github.com/videostream-app/videostream-go/pkg/hash"
)

// SubmitInput carries the intake fields for a new submission.
type SubmitInput struct {
	Title       string
	Filename    string
	Category    string
	Description string
	Email       string
	VideoURL    string
}

// SubmissionService runs the submission review workflow: intake,
// approve (which materializes a catalog entry), and reject.
type SubmissionService struct {
	submissions store.Store[model.Submission]
	videos      store.Store[model.Video]
	cache       *CacheService
}

func NewSubmissionService(submissions store.Store[model.Submission], videos store.Store[model.Video], cache *CacheService) *SubmissionService {
	return &SubmissionService{submissions: submissions, videos: videos, cache: cache}
}

// Submit validates the input and appends a new pending submission.
// Status is always pending regardless of anything the caller supplied.
func (s *SubmissionService) Submit(ctx context.Context, in SubmitInput) (*model.Submission, error) {
	for _, f := range []struct{ name, value string }{
		{"title", in.Title},
		{"category", in.Category},
		{"email", in.Email},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, &model.ValidationError{Field: f.name}
		}
	}

	filename := in.Filename
	if filename == "" {
		filename = model.FilenamePending
	}

	sub := model.Submission{
		ID:           model.NewID(),
		Title:        in.Title,
		Filename:     filename,
		Category:     in.Category,
		Description:  in.Description,
		ContactEmail: in.Email,
		VideoURL:     in.VideoURL,
		Status:       model.SubmissionPending,
		CreatedAt:    time.Now().UTC(),
	}

	err := s.submissions.Update(ctx, func(subs []model.Submission) ([]model.Submission, error) {
		return append(subs, sub), nil
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListPending returns submissions still awaiting review.
func (s *SubmissionService) ListPending(ctx context.Context) []model.Submission {
	pending := []model.Submission{}
	for _, sub := range s.submissions.Load(ctx) {
		if sub.Status == model.SubmissionPending {
			pending = append(pending, sub)
		}
	}
	return pending
}

// Approve materializes a catalog entry from the submission and flips its
// status. The catalog write happens first; if the submission write then
// fails the error is surfaced without rolling the catalog back.
func (s *SubmissionService) Approve(ctx context.Context, id string) (*model.Video, error) {
	sub, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	video := model.Video{
		ID:        model.NewID(),
		Title:     sub.Title,
		Category:  sub.Category,
		Thumbnail: placeholderThumbnail(sub.ID),
		VideoURL:  sub.VideoURL,
		Views:     0,
		CreatedAt: time.Now().UTC(),
	}
	if video.VideoURL == "" {
		video.VideoURL = sub.Filename
	}

	// Newest-first: approved videos go to the front of the catalog.
	err = s.videos.Update(ctx, func(videos []model.Video) ([]model.Video, error) {
		return append([]model.Video{video}, videos...), nil
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.submissions.Update(ctx, func(subs []model.Submission) ([]model.Submission, error) {
		for i := range subs {
			if subs[i].ID == id {
				subs[i].Status = model.SubmissionApproved
				subs[i].ApprovedAt = &now
				return subs, nil
			}
		}
		return nil, model.ErrNotFound
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateCatalog(ctx)
	return &video, nil
}

// Reject flips the submission to rejected, stamping rejectedAt and the
// optional reason.
func (s *SubmissionService) Reject(ctx context.Context, id, reason string) (*model.Submission, error) {
	var rejected model.Submission
	now := time.Now().UTC()
	err := s.submissions.Update(ctx, func(subs []model.Submission) ([]model.Submission, error) {
		for i := range subs {
			if subs[i].ID == id {
				subs[i].Status = model.SubmissionRejected
				subs[i].RejectedAt = &now
				if reason != "" {
					subs[i].RejectionReason = reason
				}
				rejected = subs[i]
				return subs, nil
			}
		}
		return nil, model.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &rejected, nil
}

func (s *SubmissionService) find(ctx context.Context, id string) (*model.Submission, error) {
	for _, sub := range s.submissions.Load(ctx) {
		if sub.ID == id {
			return &sub, nil
		}
	}
	return nil, model.ErrNotFound
}

// placeholderThumbnail builds a deterministic placeholder image URL keyed
// by the given seed, for submissions that arrive without artwork.
func placeholderThumbnail(seed string) string {
	return "https://picsum.photos/seed/" + hash.ShortHex(seed, 12) + "/800/450"
}
