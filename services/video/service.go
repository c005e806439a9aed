package video

import (
	"context"
	stderrors "errors"

	"vidbrief/archive"
	"vidbrief/errors"
	"vidbrief/metadata"
	"vidbrief/models"
	"vidbrief/repository"
	"vidbrief/validation"
	"vidbrief/worker"

	"github.com/sirupsen/logrus"
)

type Repository = repository.VideoRepository

// Archiver receives completed results for long-term storage.
type Archiver interface {
	SaveResult(ctx context.Context, record archive.Record) error
}

type service struct {
	repo      Repository
	worker    Worker
	metadata  metadata.Provider
	validator *validation.Validator
	archiver  Archiver
	config    Config
	logger    *logrus.Logger
}

func NewService(
	repo Repository,
	w Worker,
	provider metadata.Provider,
	validator *validation.Validator,
	config Config,
) Service {
	return &service{
		repo:      repo,
		worker:    w,
		metadata:  provider,
		validator: validator,
		config:    config,
		logger:    logrus.StandardLogger(),
	}
}

// WithArchiver enables best-effort archival of completed results.
func WithArchiver(s Service, archiver Archiver) Service {
	if svc, ok := s.(*service); ok {
		svc.archiver = archiver
	}
	return s
}

func (s *service) Submit(ctx context.Context, url string) (*models.Video, error) {
	const op = "VideoService.Submit"
	logger := s.logger.WithField("url", url)
	logger.Info("Received video submission")

	youtubeID, err := s.validator.ExtractVideoID(url)
	if err != nil {
		logger.WithError(err).Info("URL validation failed")
		return nil, err
	}

	existing, err := s.repo.FindByYoutubeID(ctx, youtubeID)
	if err == nil {
		return s.handleExisting(ctx, existing)
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Internal(op, err, "Failed to look up video")
	}

	md, err := s.metadata.Fetch(ctx, youtubeID)
	if err != nil {
		logger.WithError(err).Error("Metadata fetch failed")
		return nil, err
	}

	video, err := s.repo.CreateVideo(ctx, repository.CreateVideoParams{
		YoutubeID: youtubeID,
		Title:     md.Title,
		URL:       url,
		Thumbnail: md.Thumbnail,
		Status:    models.StatusProcessing,
	})
	if stderrors.Is(err, repository.ErrConflict) {
		// Lost the create race to a concurrent submission of the same
		// video. The row exists now, so treat it as existing.
		existing, err := s.repo.FindByYoutubeID(ctx, youtubeID)
		if err != nil {
			return nil, errors.Internal(op, err, "Failed to look up video after conflict")
		}
		return s.handleExisting(ctx, existing)
	}
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to create video")
	}

	logger.WithField("video_id", video.ID).Info("Created video record")
	go s.process(video)

	return video, nil
}

// handleExisting applies the idempotence contract: a fully processed video is
// a pure read, anything else is re-dispatched.
func (s *service) handleExisting(ctx context.Context, video *models.Video) (*models.Video, error) {
	const op = "VideoService.handleExisting"

	details, err := s.repo.GetVideoWithDetails(ctx, video.ID)
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to load video details")
	}

	if details.Processed() {
		s.logger.WithField("video_id", video.ID).
			Info("Video already fully processed, skipping dispatch")
		return video, nil
	}

	s.logger.WithField("video_id", video.ID).
		Info("Existing video missing transcript or summary, re-dispatching")
	go s.process(video)

	return video, nil
}

func (s *service) GetDetails(ctx context.Context, id string) (*models.VideoDetails, error) {
	const op = "VideoService.GetDetails"

	if id == "" {
		return nil, errors.InvalidInput(op, nil, "ID is required")
	}

	return s.repo.GetVideoWithDetails(ctx, id)
}

// process runs detached from the submitting request. Nothing here may reach
// the submitter; every failure path ends in a failed-status write and a log
// entry.
func (s *service) process(video *models.Video) {
	logger := s.logger.WithField("video_id", video.ID)

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("Panic during background processing")
			s.markFailed(video.ID, logger)
		}
	}()

	ctx := context.Background()
	if s.config.ProcessTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ProcessTimeout)
		defer cancel()
	}

	logger.Info("Dispatching video to worker")

	result, err := s.worker.Process(ctx, video.ID, video.URL)
	if err != nil {
		logger.WithError(err).Error("Worker call failed")
		s.markFailed(video.ID, logger)
		return
	}

	if !result.Completed() {
		logger.WithField("worker_error", result.Error).Error("Worker reported failure")
		s.markFailed(video.ID, logger)
		return
	}

	s.applyResult(ctx, video, result, logger)
}

// applyResult performs the three completion writes as independent,
// best-effort operations: a failed write is logged and does not gate the
// next one.
func (s *service) applyResult(
	ctx context.Context,
	video *models.Video,
	result *worker.Result,
	logger *logrus.Entry,
) {
	if _, err := s.repo.UpdateStatus(ctx, video.ID, models.StatusCompleted); err != nil {
		logger.WithError(err).Error("Failed to mark video completed")
	}

	if result.Transcript != "" {
		if _, err := s.repo.CreateTranscript(ctx, video.ID, result.Transcript); err != nil {
			logger.WithError(err).Error("Failed to save transcript")
		}
	}

	if result.Summary != "" {
		if _, err := s.repo.CreateSummary(ctx, video.ID, result.Summary); err != nil {
			logger.WithError(err).Error("Failed to save summary")
		}
	}

	logger.WithFields(logrus.Fields{
		"transcript_length": len(result.Transcript),
		"summary_length":    len(result.Summary),
	}).Info("Video processing completed")

	if s.archiver != nil {
		record := archive.Record{
			YoutubeID:  video.YoutubeID,
			Transcript: result.Transcript,
			Summary:    result.Summary,
		}
		if err := s.archiver.SaveResult(ctx, record); err != nil {
			logger.WithError(err).Warn("Failed to archive result")
		}
	}
}

func (s *service) markFailed(id string, logger *logrus.Entry) {
	if _, err := s.repo.UpdateStatus(context.Background(), id, models.StatusFailed); err != nil {
		logger.WithError(err).Error("Failed to mark video failed")
	}
}
