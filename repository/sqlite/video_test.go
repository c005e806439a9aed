package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "vidbrief/errors"
	"vidbrief/models"
	"vidbrief/repository"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	dir, err := os.MkdirTemp("", "vidbrief-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	db, err := InitDB(filepath.Join(dir, "test.db"), DefaultDBConfig())
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := NewRepository(db)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	return repo
}

func createTestVideo(t *testing.T, repo *Repository, youtubeID string) *models.Video {
	t.Helper()

	video, err := repo.CreateVideo(context.Background(), repository.CreateVideoParams{
		YoutubeID: youtubeID,
		Title:     "Test Video",
		URL:       "https://youtu.be/" + youtubeID,
		Thumbnail: "https://img.example.com/" + youtubeID + ".jpg",
		Status:    models.StatusProcessing,
	})
	if err != nil {
		t.Fatalf("Failed to create video: %v", err)
	}
	return video
}

func TestCreateAndFindVideo(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := createTestVideo(t, repo, "abc12345678")

	if created.ID == "" {
		t.Fatal("expected generated ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	byID, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if byID.YoutubeID != "abc12345678" {
		t.Errorf("YoutubeID = %q, want abc12345678", byID.YoutubeID)
	}
	if byID.Thumbnail != created.Thumbnail {
		t.Errorf("Thumbnail = %q, want %q", byID.Thumbnail, created.Thumbnail)
	}

	byYT, err := repo.FindByYoutubeID(ctx, "abc12345678")
	if err != nil {
		t.Fatalf("FindByYoutubeID() error = %v", err)
	}
	if byYT.ID != created.ID {
		t.Errorf("FindByYoutubeID ID = %q, want %q", byYT.ID, created.ID)
	}
}

func TestCreateVideoDuplicateYoutubeID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	createTestVideo(t, repo, "abc12345678")

	_, err := repo.CreateVideo(ctx, repository.CreateVideoParams{
		YoutubeID: "abc12345678",
		Title:     "Same Video, Different URL",
		URL:       "https://www.youtube.com/watch?v=abc12345678",
		Status:    models.StatusProcessing,
	})
	if !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("CreateVideo() error = %v, want ErrConflict", err)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByID(context.Background(), "no-such-id")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("FindByID() error = %v, want NotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	video := createTestVideo(t, repo, "abc12345678")

	updated, err := repo.UpdateStatus(ctx, video.ID, models.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != models.StatusCompleted {
		t.Errorf("Status = %q, want completed", updated.Status)
	}
	// Only the status field changes
	if updated.Title != video.Title || updated.URL != video.URL {
		t.Error("UpdateStatus() modified fields other than status")
	}

	_, err = repo.UpdateStatus(ctx, "no-such-id", models.StatusFailed)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("UpdateStatus() error = %v, want NotFound", err)
	}
}

func TestGetVideoWithDetails(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	video := createTestVideo(t, repo, "abc12345678")

	// No children yet: both nil, no error.
	details, err := repo.GetVideoWithDetails(ctx, video.ID)
	if err != nil {
		t.Fatalf("GetVideoWithDetails() error = %v", err)
	}
	if details.Transcript != nil || details.Summary != nil {
		t.Error("expected nil transcript and summary for fresh video")
	}
	if details.Processed() {
		t.Error("Processed() = true for fresh video")
	}

	// Transcript only.
	if _, err := repo.CreateTranscript(ctx, video.ID, "hello"); err != nil {
		t.Fatalf("CreateTranscript() error = %v", err)
	}
	details, err = repo.GetVideoWithDetails(ctx, video.ID)
	if err != nil {
		t.Fatalf("GetVideoWithDetails() error = %v", err)
	}
	if details.Transcript == nil || details.Transcript.Text != "hello" {
		t.Errorf("Transcript = %+v, want text hello", details.Transcript)
	}
	if details.Summary != nil {
		t.Error("expected nil summary")
	}
	if details.Processed() {
		t.Error("Processed() = true with missing summary")
	}

	// Both children.
	if _, err := repo.CreateSummary(ctx, video.ID, "hi"); err != nil {
		t.Fatalf("CreateSummary() error = %v", err)
	}
	details, err = repo.GetVideoWithDetails(ctx, video.ID)
	if err != nil {
		t.Fatalf("GetVideoWithDetails() error = %v", err)
	}
	if details.Summary == nil || details.Summary.Text != "hi" {
		t.Errorf("Summary = %+v, want text hi", details.Summary)
	}
	if !details.Processed() {
		t.Error("Processed() = false with both children present")
	}
}

func TestGetVideoWithDetailsUnknownVideo(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetVideoWithDetails(context.Background(), "no-such-id")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("GetVideoWithDetails() error = %v, want NotFound", err)
	}
}
