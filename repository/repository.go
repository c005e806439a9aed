package repository

import (
	"context"
	"errors"

	"vidbrief/models"
)

// ErrConflict is returned by CreateVideo when another row already holds the
// same youtube_id. Callers treat the conflict as "video already exists" and
// re-fetch, which resolves the duplicate-submission race at the store.
var ErrConflict = errors.New("video already exists")

// CreateVideoParams are the caller-supplied fields of a new video row. The
// repository generates the id and timestamps.
type CreateVideoParams struct {
	YoutubeID string
	Title     string
	URL       string
	Thumbnail string
	Status    models.Status
}

type VideoRepository interface {
	CreateVideo(ctx context.Context, params CreateVideoParams) (*models.Video, error)
	FindByID(ctx context.Context, id string) (*models.Video, error)
	FindByYoutubeID(ctx context.Context, youtubeID string) (*models.Video, error)
	UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Video, error)
	CreateTranscript(ctx context.Context, videoID, text string) (*models.Transcript, error)
	CreateSummary(ctx context.Context, videoID, text string) (*models.Summary, error)
	GetVideoWithDetails(ctx context.Context, id string) (*models.VideoDetails, error)
}
