package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/videostream-app/videostream-go/internal/model"
	"github.com/videostream-app/videostream-go/internal/store"
)

func newCatalogService(videos ...model.Video) (*CatalogService, *store.MemStore[model.Video]) {
	s := store.NewMemStore(videos...)
	return NewCatalogService(s, NewCacheService("", zerolog.Nop())), s
}

func sampleVideos() []model.Video {
	return []model.Video{
		{ID: "1", Title: "Mountain Serenity", Category: "Nature"},
		{ID: "2", Title: "Ocean Waves", Category: "Nature"},
		{ID: "3", Title: "City Lights", Category: "Urban"},
	}
}

func TestSearch_EmptyQueryReturnsNothing(t *testing.T) {
	svc, _ := newCatalogService(sampleVideos()...)

	got := svc.Search(context.Background(), "")
	if got == nil {
		t.Fatal("Search must return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("empty query returned %d videos, want 0", len(got))
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	svc, _ := newCatalogService(sampleVideos()...)
	ctx := context.Background()

	for _, q := range []string{"ocean", "OCEAN", "cEaN"} {
		got := svc.Search(ctx, q)
		if len(got) != 1 || got[0].ID != "2" {
			t.Errorf("Search(%q) = %v, want just Ocean Waves", q, got)
		}
	}

	if got := svc.Search(ctx, "zzz"); len(got) != 0 {
		t.Errorf("Search(zzz) = %d results, want 0", len(got))
	}
}

func TestGetByCategory_CaseInsensitive(t *testing.T) {
	svc, _ := newCatalogService(sampleVideos()...)

	got := svc.GetByCategory(context.Background(), "nature")
	if len(got) != 2 {
		t.Fatalf("GetByCategory(nature) = %d videos, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("category results out of store order: %v", got)
	}
}

func TestGetByID(t *testing.T) {
	svc, _ := newCatalogService(sampleVideos()...)
	ctx := context.Background()

	v, err := svc.GetByID(ctx, "3")
	if err != nil {
		t.Fatalf("GetByID(3) error: %v", err)
	}
	if v.Title != "City Lights" {
		t.Errorf("GetByID(3) = %q", v.Title)
	}

	if _, err := svc.GetByID(ctx, "nope"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("unknown id error = %v, want ErrNotFound", err)
	}
}

func TestRecommended_ExcludesTarget(t *testing.T) {
	svc, _ := newCatalogService(sampleVideos()...)

	got, err := svc.Recommended(context.Background(), "1")
	if err != nil {
		t.Fatalf("Recommended error: %v", err)
	}
	for _, v := range got {
		if v.ID == "1" {
			t.Error("recommendations must not include the target video")
		}
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("Recommended(1) = %v, want just Ocean Waves", got)
	}
}

func TestRecommended_CappedAtLimit(t *testing.T) {
	videos := []model.Video{{ID: "target", Title: "T", Category: "Fun"}}
	for i := 0; i < 30; i++ {
		videos = append(videos, model.Video{ID: fmt.Sprintf("v%d", i), Title: "V", Category: "Fun"})
	}
	svc, _ := newCatalogService(videos...)

	got, err := svc.Recommended(context.Background(), "target")
	if err != nil {
		t.Fatalf("Recommended error: %v", err)
	}
	if len(got) != RecommendedLimit {
		t.Errorf("got %d recommendations, want cap of %d", len(got), RecommendedLimit)
	}
}

func TestRecommended_UnknownID(t *testing.T) {
	svc, _ := newCatalogService(sampleVideos()...)

	if _, err := svc.Recommended(context.Background(), "nope"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdate_PartialMerge(t *testing.T) {
	svc, mem := newCatalogService(model.Video{
		ID: "1", Title: "Original", Category: "Nature", Thumbnail: "old.jpg", VideoURL: "old.mp4",
	})
	ctx := context.Background()

	thumb := "x"
	v, err := svc.Update(ctx, "1", model.VideoUpdate{Thumbnail: &thumb})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if v.Thumbnail != "x" {
		t.Errorf("thumbnail = %q, want x", v.Thumbnail)
	}
	if v.Title != "Original" || v.Category != "Nature" || v.VideoURL != "old.mp4" {
		t.Errorf("unsupplied fields changed: %+v", v)
	}

	stored := mem.Load(ctx)
	if stored[0].Thumbnail != "x" {
		t.Error("update was not persisted")
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	svc, _ := newCatalogService(sampleVideos()...)

	title := "New"
	if _, err := svc.Update(context.Background(), "nope", model.VideoUpdate{Title: &title}); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDelete_SecondDeleteFails(t *testing.T) {
	svc, mem := newCatalogService(sampleVideos()...)
	ctx := context.Background()

	if err := svc.Delete(ctx, "2"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if got := mem.Load(ctx); len(got) != 2 {
		t.Errorf("catalog has %d entries after delete, want 2", len(got))
	}

	if err := svc.Delete(ctx, "2"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestList_NeverNil(t *testing.T) {
	svc, _ := newCatalogService()

	got := svc.List(context.Background())
	if got == nil {
		t.Fatal("List must return an empty slice, not nil")
	}
}
