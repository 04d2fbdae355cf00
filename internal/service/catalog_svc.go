package service

import (
	"context"
	"strings"

	"github.com/videostream-app/videostream-go/internal/model"
	"github.com/videostream-app/videostream-go/internal/store"
)

// RecommendedLimit caps the recommendation list size.
const RecommendedLimit = 20

// CatalogService answers read-only catalog queries and performs admin
// edits/deletes against the video store.
type CatalogService struct {
	videos store.Store[model.Video]
	cache  *CacheService
}

func NewCatalogService(videos store.Store[model.Video], cache *CacheService) *CatalogService {
	return &CatalogService{videos: videos, cache: cache}
}

// List returns the full catalog.
func (s *CatalogService) List(ctx context.Context) []model.Video {
	if cached := s.cache.GetCatalog(ctx); cached != nil {
		return cached
	}
	videos := s.videos.Load(ctx)
	s.cache.SetCatalog(ctx, videos)
	return videos
}

// GetByID returns the first catalog entry with the given id.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*model.Video, error) {
	if cached := s.cache.GetVideo(ctx, id); cached != nil {
		return cached, nil
	}
	for _, v := range s.videos.Load(ctx) {
		if v.ID == id {
			s.cache.SetVideo(ctx, v)
			return &v, nil
		}
	}
	return nil, model.ErrNotFound
}

// GetByCategory returns catalog entries whose category matches name,
// case-insensitively.
func (s *CatalogService) GetByCategory(ctx context.Context, name string) []model.Video {
	matches := []model.Video{}
	for _, v := range s.videos.Load(ctx) {
		if strings.EqualFold(v.Category, name) {
			matches = append(matches, v)
		}
	}
	return matches
}

// Search returns catalog entries whose title contains the query,
// case-insensitively. An empty query returns an empty result, never the
// whole catalog.
func (s *CatalogService) Search(ctx context.Context, query string) []model.Video {
	matches := []model.Video{}
	if query == "" {
		return matches
	}

	q := strings.ToLower(query)
	for _, v := range s.videos.Load(ctx) {
		if strings.Contains(strings.ToLower(v.Title), q) {
			matches = append(matches, v)
		}
	}
	return matches
}

// Recommended returns up to RecommendedLimit videos sharing the target's
// category, excluding the target itself, in store order.
func (s *CatalogService) Recommended(ctx context.Context, id string) ([]model.Video, error) {
	videos := s.videos.Load(ctx)

	var target *model.Video
	for i := range videos {
		if videos[i].ID == id {
			target = &videos[i]
			break
		}
	}
	if target == nil {
		return nil, model.ErrNotFound
	}

	matches := []model.Video{}
	for _, v := range videos {
		if v.ID == id {
			continue
		}
		if strings.EqualFold(v.Category, target.Category) {
			matches = append(matches, v)
			if len(matches) == RecommendedLimit {
				break
			}
		}
	}
	return matches, nil
}

// Update merges the non-nil fields of upd onto the video with the given
// id and persists the whole catalog.
func (s *CatalogService) Update(ctx context.Context, id string, upd model.VideoUpdate) (*model.Video, error) {
	var updated model.Video
	err := s.videos.Update(ctx, func(videos []model.Video) ([]model.Video, error) {
		for i := range videos {
			if videos[i].ID == id {
				upd.Apply(&videos[i])
				updated = videos[i]
				return videos, nil
			}
		}
		return nil, model.ErrNotFound
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateCatalog(ctx)
	s.cache.InvalidateVideo(ctx, id)
	return &updated, nil
}

// Delete removes the video with the given id from the catalog.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	err := s.videos.Update(ctx, func(videos []model.Video) ([]model.Video, error) {
		for i := range videos {
			if videos[i].ID == id {
				return append(videos[:i], videos[i+1:]...), nil
			}
		}
		return nil, model.ErrNotFound
	})
	if err != nil {
		return err
	}

	s.cache.InvalidateCatalog(ctx)
	s.cache.InvalidateVideo(ctx, id)
	return nil
}
