package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubsite/internal/cache"
	apperrors "clubsite/internal/errors"
	"clubsite/internal/model"
	"clubsite/internal/repository"
	"clubsite/internal/storage"
)

const (
	teamListCacheKey     = "team:list"
	teamFeaturedCacheKey = "team:featured"
)

// MemberService exposes team member operations.
type MemberService interface {
	Create(ctx context.Context, member *model.TeamMember, photo []byte, filename, contentType string) (*model.TeamMember, error)
	List(ctx context.Context) ([]model.TeamMember, error)
	ListFeatured(ctx context.Context) ([]model.TeamMember, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.TeamMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type memberService struct {
	repo  repository.MemberRepository
	blobs storage.BlobStore
	cache *cache.Client
}

// NewMemberService builds a MemberService with repository, blob store and cache.
func NewMemberService(repo repository.MemberRepository, blobs storage.BlobStore, cache *cache.Client) MemberService {
	return &memberService{repo: repo, blobs: blobs, cache: cache}
}

// Create uploads the photo, then inserts the row with the resulting URL. If
// the upload fails no row is inserted. If the insert fails after a successful
// upload the blob is orphaned; that is logged and accepted.
func (s *memberService) Create(ctx context.Context, member *model.TeamMember, photo []byte, filename, contentType string) (*model.TeamMember, error) {
	if len(photo) == 0 {
		return nil, apperrors.ErrPhotoRequired
	}

	url, err := s.blobs.Upload(ctx, filename, photo, contentType)
	if err != nil {
		return nil, err
	}
	member.ImageURL = url

	if err := s.repo.Create(ctx, member); err != nil {
		log.Printf("member insert failed after upload, blob orphaned at %s: %v", url, err)
		return nil, err
	}

	s.invalidate(ctx)
	return member, nil
}

// List returns all members ascending by display order, served from cache when warm.
func (s *memberService) List(ctx context.Context) ([]model.TeamMember, error) {
	return s.listCached(ctx, teamListCacheKey, s.repo.List)
}

// ListFeatured returns featured members in the same ordering.
func (s *memberService) ListFeatured(ctx context.Context) ([]model.TeamMember, error) {
	return s.listCached(ctx, teamFeaturedCacheKey, s.repo.ListFeatured)
}

func (s *memberService) listCached(ctx context.Context, key string, load func(context.Context) ([]model.TeamMember, error)) ([]model.TeamMember, error) {
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.TeamMember
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	members, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(members); err == nil {
		_ = s.cache.Set(ctx, key, payload, listCacheTTL)
	}
	return members, nil
}

// Update applies a partial field merge without touching the stored photo and
// returns the updated member.
func (s *memberService) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.TeamMember, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return member, nil
}

// Delete removes the row, then best-effort removes the stored photo. A failed
// blob removal is logged and the delete still succeeds.
func (s *memberService) Delete(ctx context.Context, id uuid.UUID) error {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrMemberNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrMemberNotFound
		}
		return err
	}

	if member.ImageURL != "" {
		if err := s.blobs.Remove(ctx, member.ImageURL); err != nil {
			log.Printf("photo cleanup failed for member %s: %v", id, err)
		}
	}

	s.invalidate(ctx)
	return nil
}

func (s *memberService) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, teamListCacheKey, teamFeaturedCacheKey)
}
