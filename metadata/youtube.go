package metadata

import (
	"context"

	"vidbrief/errors"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Youtube fetches video metadata from the YouTube Data API.
type Youtube struct {
	client *youtube.Service
}

func NewYoutube(ctx context.Context, apiKey string) (*Youtube, error) {
	client, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Youtube{client: client}, nil
}

func (y *Youtube) Fetch(ctx context.Context, videoID string) (*Metadata, error) {
	const op = "Youtube.Fetch"

	call := y.client.Videos.
		List([]string{"snippet"}).
		Id(videoID).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, errors.Unavailable(op, err, "Failed to fetch video metadata")
	}

	if len(response.Items) == 0 {
		return nil, errors.Unavailable(op, nil, "Video metadata not available")
	}

	snippet := response.Items[0].Snippet
	md := &Metadata{Title: snippet.Title}
	if snippet.Thumbnails != nil {
		switch {
		case snippet.Thumbnails.High != nil:
			md.Thumbnail = snippet.Thumbnails.High.Url
		case snippet.Thumbnails.Medium != nil:
			md.Thumbnail = snippet.Thumbnails.Medium.Url
		case snippet.Thumbnails.Default != nil:
			md.Thumbnail = snippet.Thumbnails.Default.Url
		}
	}

	return md, nil
}
