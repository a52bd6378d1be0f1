package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubsite/internal/cache"
	apperrors "clubsite/internal/errors"
	"clubsite/internal/model"
	"clubsite/internal/repository"
)

const (
	eventListCacheKey = "events:list"
	listCacheTTL      = 5 * time.Minute
)

// EventService exposes event operations.
type EventService interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventService struct {
	repo  repository.EventRepository
	cache *cache.Client
}

// NewEventService builds an EventService with repository and cache.
func NewEventService(repo repository.EventRepository, cache *cache.Client) EventService {
	return &eventService{repo: repo, cache: cache}
}

// Create inserts a new event and invalidates the public listing cache.
func (s *eventService) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if !event.Status.Valid() {
		return nil, apperrors.ErrInvalidEventStatus
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, eventListCacheKey)
	return event, nil
}

// List returns all events newest-date-first, served from cache when warm.
func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	if data, _ := s.cache.Get(ctx, eventListCacheKey); data != nil {
		var cached []model.Event
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(events); err == nil {
		_ = s.cache.Set(ctx, eventListCacheKey, payload, listCacheTTL)
	}
	return events, nil
}

// Update applies a partial field merge and returns the updated event.
func (s *eventService) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Event, error) {
	if status, ok := fields["status"]; ok {
		if st, ok := status.(model.EventStatus); !ok || !st.Valid() {
			return nil, apperrors.ErrInvalidEventStatus
		}
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, eventListCacheKey)
	return event, nil
}

// Delete removes an event by id.
func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrEventNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, eventListCacheKey)
	return nil
}
