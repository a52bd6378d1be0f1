package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubsite/internal/model"
)

// SubmissionRepository defines contact submission persistence operations.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.ContactSubmission) error
	List(ctx context.Context) ([]model.ContactSubmission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create inserts a new submission.
func (r *submissionRepository) Create(ctx context.Context, submission *model.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

// List returns all submissions, newest first.
func (r *submissionRepository) List(ctx context.Context) ([]model.ContactSubmission, error) {
	var submissions []model.ContactSubmission
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// Delete removes a submission. Returns gorm.ErrRecordNotFound when the id
// does not exist.
func (r *submissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ContactSubmission{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
