package models

// VideoRequest represents the incoming request for video processing
type VideoRequest struct {
	URL string `json:"url"`
}

// VideoResponse represents the API response for a submitted video
type VideoResponse struct {
	ID        string `json:"id"`
	YoutubeID string `json:"youtube_id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Status    Status `json:"status"`
}

// NewVideoResponse creates a response from a video model
func NewVideoResponse(v *Video) *VideoResponse {
	return &VideoResponse{
		ID:        v.ID,
		YoutubeID: v.YoutubeID,
		Title:     v.Title,
		URL:       v.URL,
		Thumbnail: v.Thumbnail,
		Status:    v.Status,
	}
}

// TranscriptResponse is the transcript projection in detail responses
type TranscriptResponse struct {
	Text string `json:"text"`
}

// SummaryResponse is the summary projection in detail responses
type SummaryResponse struct {
	Text string `json:"text"`
}

// DetailsResponse is the poll endpoint payload
type DetailsResponse struct {
	VideoID       string              `json:"videoId"`
	Status        Status              `json:"status"`
	HasTranscript bool                `json:"hasTranscript"`
	HasSummary    bool                `json:"hasSummary"`
	Transcript    *TranscriptResponse `json:"transcript,omitempty"`
	Summary       *SummaryResponse    `json:"summary,omitempty"`
}

// NewDetailsResponse creates a details response from repository details
func NewDetailsResponse(d *VideoDetails) *DetailsResponse {
	resp := &DetailsResponse{
		VideoID:       d.Video.ID,
		Status:        d.Video.Status,
		HasTranscript: d.Transcript != nil,
		HasSummary:    d.Summary != nil,
	}
	if d.Transcript != nil {
		resp.Transcript = &TranscriptResponse{Text: d.Transcript.Text}
	}
	if d.Summary != nil {
		resp.Summary = &SummaryResponse{Text: d.Summary.Text}
	}
	return resp
}
