package video

import (
	"context"
	"time"

	"vidbrief/models"
	"vidbrief/worker"
)

// Service is the video-intake workflow: idempotent submission keyed on the
// YouTube video ID, background dispatch to the worker, and the poll
// projection.
type Service interface {
	// Submit registers a URL for processing and returns the video record
	// immediately. Processing happens in the background; its outcome is
	// observed through GetDetails.
	Submit(ctx context.Context, url string) (*models.Video, error)

	// GetDetails returns the video with its transcript and summary, if
	// present. Read-only.
	GetDetails(ctx context.Context, id string) (*models.VideoDetails, error)
}

// Worker performs the actual transcription and summarization.
type Worker interface {
	Process(ctx context.Context, videoID, url string) (*worker.Result, error)
}

type Config struct {
	ProcessTimeout time.Duration
}
