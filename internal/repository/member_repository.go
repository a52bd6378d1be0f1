package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubsite/internal/model"
)

// MemberRepository defines team member persistence operations.
type MemberRepository interface {
	Create(ctx context.Context, member *model.TeamMember) error
	List(ctx context.Context) ([]model.TeamMember, error)
	ListFeatured(ctx context.Context) ([]model.TeamMember, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.TeamMember, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new team member repository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create inserts a new team member.
func (r *memberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// List returns all members in display order.
func (r *memberRepository) List(ctx context.Context) ([]model.TeamMember, error) {
	var members []model.TeamMember
	if err := r.db.WithContext(ctx).Order("display_order ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListFeatured returns featured members in display order.
func (r *memberRepository) ListFeatured(ctx context.Context) ([]model.TeamMember, error) {
	var members []model.TeamMember
	if err := r.db.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("display_order ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindByID finds a member by ID.
func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TeamMember, error) {
	var member model.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// Update applies a partial column update.
func (r *memberRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.TeamMember{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes a member. Returns gorm.ErrRecordNotFound when the id does
// not exist.
func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
