package models

import (
	"time"
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

type Video struct {
	ID        string    `json:"id"`
	YoutubeID string    `json:"youtube_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Status check methods
func (v *Video) IsProcessing() bool { return v.Status == StatusProcessing }
func (v *Video) IsCompleted() bool  { return v.Status == StatusCompleted }
func (v *Video) IsFailed() bool     { return v.Status == StatusFailed }

type Transcript struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type Summary struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// VideoDetails bundles a video with its optional transcript and summary.
// Either child may be nil; absence of a child row is not an error.
type VideoDetails struct {
	Video      *Video
	Transcript *Transcript
	Summary    *Summary
}

// Processed reports whether the video has nothing left to do. A video with
// both children present is terminal and must not be re-dispatched.
func (d *VideoDetails) Processed() bool {
	return d.Transcript != nil && d.Summary != nil
}
