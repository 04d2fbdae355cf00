package service

import (
	"context"
	"sort"
	"strings"

	"github.com/videostream-app/videostream-go/internal/model"
	"github.com/videostream-app/videostream-go/internal/store"
)

// NotificationService derives the admin notification feed from pending
// submissions and stored reports. The feed is never persisted.
type NotificationService struct {
	submissions store.Store[model.Submission]
	reports     store.Store[model.Report]
}

func NewNotificationService(submissions store.Store[model.Submission], reports store.Store[model.Report]) *NotificationService {
	return &NotificationService{submissions: submissions, reports: reports}
}

// List merges pending submissions and all reports into one feed, most
// recent first. The sort is stable so same-timestamp entries keep their
// input order (submissions before reports).
func (s *NotificationService) List(ctx context.Context) []model.Notification {
	feed := []model.Notification{}
	for _, sub := range s.submissions.Load(ctx) {
		if sub.Status == model.SubmissionPending {
			feed = append(feed, model.NotifyFromSubmission(sub))
		}
	}
	for _, r := range s.reports.Load(ctx) {
		feed = append(feed, model.NotifyFromReport(r))
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
	return feed
}

// MarkRead flips the underlying report to read for report-derived
// notification ids. Submission-derived ids succeed without touching
// persisted state: submissions have no read flag, and the feed drops
// them once they leave pending. Unknown ids also report success.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	if !strings.HasPrefix(notificationID, model.ReportNotificationPrefix) {
		return nil
	}
	reportID := strings.TrimPrefix(notificationID, model.ReportNotificationPrefix)

	found := false
	for _, r := range s.reports.Load(ctx) {
		if r.ID == reportID {
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	return s.reports.Update(ctx, func(reports []model.Report) ([]model.Report, error) {
		for i := range reports {
			if reports[i].ID == reportID {
				reports[i].Status = model.ReportRead
				break
			}
		}
		return reports, nil
	})
}
