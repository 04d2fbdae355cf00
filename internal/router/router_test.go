package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"github.com/videostream-app/videostream-go/internal/handler"
	"github.com/videostream-app/videostream-go/internal/model"
	"github.com/videostream-app/videostream-go/internal/service"
	"github.com/videostream-app/videostream-go/internal/store"
)

func TestMain(m *testing.M) {
	handler.InitMetrics(nil)
	os.Exit(m.Run())
}

type fixture struct {
	app         *fiber.App
	videos      *store.MemStore[model.Video]
	submissions *store.MemStore[model.Submission]
	reports     *store.MemStore[model.Report]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		videos:      store.NewMemStore[model.Video](),
		submissions: store.NewMemStore[model.Submission](),
		reports:     store.NewMemStore[model.Report](),
	}

	cache := service.NewCacheService("", zerolog.Nop())
	h := &Handlers{
		Video:        handler.NewVideoHandler(service.NewCatalogService(f.videos, cache)),
		Submission:   handler.NewSubmissionHandler(service.NewSubmissionService(f.submissions, f.videos, cache)),
		Notification: handler.NewNotificationHandler(service.NewNotificationService(f.submissions, f.reports)),
		Health:       handler.NewHealthHandler(t.TempDir(), nil),
	}

	f.app = fiber.New()
	Setup(f.app, h, "*")
	return f
}

func (f *fixture) request(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	return resp, data
}

func TestSubmitApproveScenario(t *testing.T) {
	f := newFixture(t)

	// Submit a new video
	resp, _ := f.request(t, http.MethodPost, "/api/submit-video", fiber.Map{
		"title": "Cats", "category": "Fun", "email": "a@b.com",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("submit status = %d, want 201", resp.StatusCode)
	}

	// One pending submission titled Cats
	resp, data := f.request(t, http.MethodGet, "/api/admin/submissions", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submissions status = %d", resp.StatusCode)
	}
	var pending []model.Submission
	if err := json.Unmarshal(data, &pending); err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 || pending[0].Title != "Cats" {
		t.Fatalf("pending = %+v, want one Cats entry", pending)
	}

	// Feed lists it as unread
	_, data = f.request(t, http.MethodGet, "/api/admin/notifications", nil)
	var feed []model.Notification
	if err := json.Unmarshal(data, &feed); err != nil {
		t.Fatal(err)
	}
	if len(feed) != 1 || feed[0].Status != "unread" {
		t.Fatalf("feed = %+v, want one unread entry", feed)
	}

	// Approve it
	resp, data = f.request(t, http.MethodPost, "/api/admin/submissions/"+pending[0].ID+"/approve", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approve status = %d, body %s", resp.StatusCode, data)
	}

	// Catalog front entry is the new video
	_, data = f.request(t, http.MethodGet, "/api/videos", nil)
	var catalog []model.Video
	if err := json.Unmarshal(data, &catalog); err != nil {
		t.Fatal(err)
	}
	if len(catalog) != 1 {
		t.Fatalf("catalog = %+v, want one entry", catalog)
	}
	if catalog[0].Title != "Cats" || catalog[0].Category != "Fun" || catalog[0].Views != 0 {
		t.Errorf("catalog[0] = %+v, want Cats/Fun with 0 views", catalog[0])
	}

	// No longer pending, so the feed drops it
	_, data = f.request(t, http.MethodGet, "/api/admin/notifications", nil)
	if err := json.Unmarshal(data, &feed); err != nil {
		t.Fatal(err)
	}
	if len(feed) != 0 {
		t.Errorf("feed after approve = %+v, want empty", feed)
	}
}

func TestSubmit_MissingFieldRejected(t *testing.T) {
	f := newFixture(t)

	resp, data := f.request(t, http.MethodPost, "/api/submit-video", fiber.Map{
		"title": "Cats", "category": "Fun",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body map[string]string
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] == "" {
		t.Errorf("body = %s, want an error message", data)
	}
}

func TestAdminDelete_Idempotence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.videos.Save(ctx, []model.Video{{ID: "1", Title: "A"}}); err != nil {
		t.Fatal(err)
	}

	resp, _ := f.request(t, http.MethodDelete, "/api/admin/videos/1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first delete status = %d, want 200", resp.StatusCode)
	}

	resp, _ = f.request(t, http.MethodDelete, "/api/admin/videos/1", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", resp.StatusCode)
	}
}

func TestAdminUpdate_PartialMerge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.videos.Save(ctx, []model.Video{{
		ID: "1", Title: "Original", Category: "Nature", Thumbnail: "old.jpg", VideoURL: "old.mp4",
	}}); err != nil {
		t.Fatal(err)
	}

	resp, data := f.request(t, http.MethodPut, "/api/admin/videos/1", fiber.Map{"thumbnail": "x"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, data)
	}

	stored := f.videos.Load(ctx)[0]
	if stored.Thumbnail != "x" {
		t.Errorf("thumbnail = %q, want x", stored.Thumbnail)
	}
	if stored.Title != "Original" || stored.Category != "Nature" || stored.VideoURL != "old.mp4" {
		t.Errorf("unsupplied fields changed: %+v", stored)
	}
}

func TestVideoByID_NotFound(t *testing.T) {
	f := newFixture(t)

	resp, data := f.request(t, http.MethodGet, "/api/video/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	var body map[string]string
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "Video not found" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestSearch_MissingQueryReturnsEmptyArray(t *testing.T) {
	f := newFixture(t)
	if err := f.videos.Save(context.Background(), []model.Video{{ID: "1", Title: "A"}}); err != nil {
		t.Fatal(err)
	}

	resp, data := f.request(t, http.MethodGet, "/api/search", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var results []model.Video
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("body %s: %v", data, err)
	}
	if len(results) != 0 {
		t.Errorf("absent q returned %d results, want 0", len(results))
	}
}

func TestMarkRead_AlwaysSucceeds(t *testing.T) {
	f := newFixture(t)

	resp, data := f.request(t, http.MethodPost, "/api/admin/notifications/submission_123/read", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s, want 200", resp.StatusCode, data)
	}
	var body map[string]string
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] == "" {
		t.Errorf("body = %s, want a message", data)
	}
}

func TestGalleryPage_ServesHTML(t *testing.T) {
	f := newFixture(t)

	resp, data := f.request(t, http.MethodGet, "/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !bytes.Contains(data, []byte("<!DOCTYPE html>")) {
		t.Error("root route should serve the gallery page")
	}
}

func TestLegacyVideosRoute(t *testing.T) {
	f := newFixture(t)
	if err := f.videos.Save(context.Background(), []model.Video{{ID: "1", Title: "A"}}); err != nil {
		t.Fatal(err)
	}

	resp, data := f.request(t, http.MethodGet, "/videos", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var results []model.Video
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Errorf("legacy route returned %d videos, want 1", len(results))
	}
}

func TestHealthLive(t *testing.T) {
	f := newFixture(t)

	resp, data := f.request(t, http.MethodGet, "/health/live", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, data)
	}
}
