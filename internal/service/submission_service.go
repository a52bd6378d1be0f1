package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "clubsite/internal/errors"
	"clubsite/internal/mailer"
	"clubsite/internal/model"
	"clubsite/internal/repository"
)

// recentWindow is the lookback used for the dashboard "recent" count.
const recentWindow = 7 * 24 * time.Hour

// dashboardLatest caps how many submissions the dashboard embeds.
const dashboardLatest = 10

// notifyTimeout bounds the background notification attempt.
const notifyTimeout = 30 * time.Second

// DashboardStats summarizes contact activity for the admin dashboard.
type DashboardStats struct {
	TotalSubmissions  int                       `json:"totalSubmissions"`
	RecentSubmissions int                       `json:"recentSubmissions"`
	Submissions       []model.ContactSubmission `json:"submissions"`
}

// SubmissionService exposes contact submission operations.
type SubmissionService interface {
	Submit(ctx context.Context, name, email, message string) (*model.ContactSubmission, error)
	List(ctx context.Context) ([]model.ContactSubmission, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type submissionService struct {
	repo     repository.SubmissionRepository
	notifier mailer.Notifier
}

// NewSubmissionService builds a SubmissionService. notifier may be nil, in
// which case no notifications are sent.
func NewSubmissionService(repo repository.SubmissionRepository, notifier mailer.Notifier) SubmissionService {
	return &submissionService{repo: repo, notifier: notifier}
}

// Submit persists a submission and kicks off a best-effort notification. A
// failed notification never fails the submission.
func (s *submissionService) Submit(ctx context.Context, name, email, message string) (*model.ContactSubmission, error) {
	submission := &model.ContactSubmission{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go func(sub model.ContactSubmission) {
			nctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := s.notifier.NotifySubmission(nctx, &sub); err != nil {
				log.Printf("contact notification failed for %s: %v", sub.ID, err)
			}
		}(*submission)
	}

	return submission, nil
}

// List returns all submissions, newest first.
func (s *submissionService) List(ctx context.Context) ([]model.ContactSubmission, error) {
	return s.repo.List(ctx)
}

// Delete removes a submission by id.
func (s *submissionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrSubmissionNotFound
		}
		return err
	}
	return nil
}

// Dashboard builds submission stats: total count, count within the last week,
// and the latest entries.
func (s *submissionService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	submissions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-recentWindow)
	recent := 0
	for _, sub := range submissions {
		if sub.CreatedAt.After(cutoff) {
			recent++
		}
	}

	latest := submissions
	if len(latest) > dashboardLatest {
		latest = latest[:dashboardLatest]
	}

	return &DashboardStats{
		TotalSubmissions:  len(submissions),
		RecentSubmissions: recent,
		Submissions:       latest,
	}, nil
}
