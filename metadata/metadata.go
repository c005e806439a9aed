// Package metadata resolves a video ID to its title and thumbnail through an
// external video-info provider.
package metadata

import "context"

type Metadata struct {
	Title     string
	Thumbnail string
}

type Provider interface {
	Fetch(ctx context.Context, videoID string) (*Metadata, error)
}
