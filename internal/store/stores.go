package store

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/videostream-app/videostream-go/internal/model"
)

// Backing file names under the data directory.
const (
	VideosFile      = "videos"
	SubmissionsFile = "submissions"
	ReportsFile     = "reports"
)

// NewVideoStore creates the catalog store.
func NewVideoStore(dataDir string, log zerolog.Logger) *FileStore[model.Video] {
	return NewFileStore[model.Video](dataDir, VideosFile, log)
}

// NewSubmissionStore creates the pending-submission store.
func NewSubmissionStore(dataDir string, log zerolog.Logger) *FileStore[model.Submission] {
	return NewFileStore[model.Submission](dataDir, SubmissionsFile, log)
}

// NewReportStore creates the system-report store. Reports are generated
// externally; the file may never exist, which loads as an empty
// collection.
func NewReportStore(dataDir string, log zerolog.Logger) *FileStore[model.Report] {
	return NewFileStore[model.Report](dataDir, ReportsFile, log)
}

// SeedCatalog writes the sample catalog on first run. An existing
// videos.json, even an empty one, is left alone.
func SeedCatalog(ctx context.Context, videos *FileStore[model.Video]) error {
	if _, err := os.Stat(videos.Path()); err == nil {
		return nil
	}
	return videos.Save(ctx, sampleCatalog(time.Now().UTC()))
}

func sampleCatalog(now time.Time) []model.Video {
	entries := []struct {
		id, title, category, videoURL, thumbnail string
	}{
		{"1", "Mountain Serenity", "Nature",
			"https://storage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			"https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?w=800&auto=format&fit=crop&q=60"},
		{"2", "Ocean Waves", "Nature",
			"https://storage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			"https://images.unsplash.com/photo-1505118380757-91f5f5832de0?w=800&auto=format&fit=crop&q=60"},
		{"3", "City Lights", "Urban",
			"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			"https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?w=800&auto=format&fit=crop&q=60"},
		{"4", "Nature Trails", "Nature",
			"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
			"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=800&auto=format&fit=crop&q=60"},
		{"5", "Space Journey", "Space",
			"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
			"https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=800&auto=format&fit=crop&q=60"},
		{"6", "Night Sky", "Space",
			"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
			"https://images.unsplash.com/photo-1532667449560-72a95c8d381b?w=800&auto=format&fit=crop&q=60"},
	}

	catalog := make([]model.Video, 0, len(entries))
	for _, e := range entries {
		catalog = append(catalog, model.Video{
			ID:        e.id,
			Title:     e.title,
			Category:  e.category,
			Thumbnail: e.thumbnail,
			VideoURL:  e.videoURL,
			Views:     0,
			CreatedAt: now,
		})
	}
	return catalog
}
