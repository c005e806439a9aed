package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"vidbrief/errors"
	"vidbrief/models"
	"vidbrief/repository"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) CreateVideo(
	ctx context.Context,
	params repository.CreateVideoParams,
) (*models.Video, error) {
	const op = "SQLiteRepository.CreateVideo"

	now := time.Now().UTC()
	video := &models.Video{
		ID:        uuid.New().String(),
		YoutubeID: params.YoutubeID,
		Title:     params.Title,
		URL:       params.URL,
		Thumbnail: params.Thumbnail,
		Status:    params.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.statements.createVideo.ExecContext(ctx,
		video.ID,
		video.YoutubeID,
		video.Title,
		video.URL,
		nullString(video.Thumbnail),
		string(video.Status),
		video.CreatedAt,
		video.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return nil, repository.ErrConflict
	}
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to create video")
	}

	return video, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*models.Video, error) {
	const op = "SQLiteRepository.FindByID"
	return r.scanVideo(op, r.db.statements.getVideo.QueryRowContext(ctx, id))
}

func (r *Repository) FindByYoutubeID(ctx context.Context, youtubeID string) (*models.Video, error) {
	const op = "SQLiteRepository.FindByYoutubeID"
	return r.scanVideo(op, r.db.statements.getByYoutubeID.QueryRowContext(ctx, youtubeID))
}

func (r *Repository) UpdateStatus(
	ctx context.Context,
	id string,
	status models.Status,
) (*models.Video, error) {
	const op = "SQLiteRepository.UpdateStatus"

	result, err := r.db.statements.updateStatus.ExecContext(ctx,
		string(status),
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to update video status")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to read update result")
	}
	if affected == 0 {
		return nil, errors.NotFound(op, nil, "Video not found")
	}

	return r.FindByID(ctx, id)
}

func (r *Repository) CreateTranscript(
	ctx context.Context,
	videoID, text string,
) (*models.Transcript, error) {
	const op = "SQLiteRepository.CreateTranscript"

	transcript := &models.Transcript{
		ID:        uuid.New().String(),
		VideoID:   videoID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.statements.createTranscript.ExecContext(ctx,
		transcript.ID,
		transcript.VideoID,
		transcript.Text,
		transcript.CreatedAt,
	)
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to create transcript")
	}

	return transcript, nil
}

func (r *Repository) CreateSummary(
	ctx context.Context,
	videoID, text string,
) (*models.Summary, error) {
	const op = "SQLiteRepository.CreateSummary"

	summary := &models.Summary{
		ID:        uuid.New().String(),
		VideoID:   videoID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.statements.createSummary.ExecContext(ctx,
		summary.ID,
		summary.VideoID,
		summary.Text,
		summary.CreatedAt,
	)
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to create summary")
	}

	return summary, nil
}

// GetVideoWithDetails fetches the video and independently attempts its
// transcript and summary. A missing child row is represented as nil, never
// as an error; only the parent lookup and real query failures propagate.
func (r *Repository) GetVideoWithDetails(
	ctx context.Context,
	id string,
) (*models.VideoDetails, error) {
	const op = "SQLiteRepository.GetVideoWithDetails"

	video, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &models.VideoDetails{Video: video}

	transcript := &models.Transcript{}
	err = r.db.statements.getTranscript.QueryRowContext(ctx, id).Scan(
		&transcript.ID,
		&transcript.VideoID,
		&transcript.Text,
		&transcript.CreatedAt,
	)
	switch {
	case err == sql.ErrNoRows:
		// no transcript yet
	case err != nil:
		return nil, errors.Internal(op, err, "Failed to query transcript")
	default:
		details.Transcript = transcript
	}

	summary := &models.Summary{}
	err = r.db.statements.getSummary.QueryRowContext(ctx, id).Scan(
		&summary.ID,
		&summary.VideoID,
		&summary.Text,
		&summary.CreatedAt,
	)
	switch {
	case err == sql.ErrNoRows:
		// no summary yet
	case err != nil:
		return nil, errors.Internal(op, err, "Failed to query summary")
	default:
		details.Summary = summary
	}

	return details, nil
}

func (r *Repository) scanVideo(op string, row *sql.Row) (*models.Video, error) {
	video := &models.Video{}
	var status string
	var thumbnail sql.NullString

	err := row.Scan(
		&video.ID,
		&video.YoutubeID,
		&video.Title,
		&video.URL,
		&thumbnail,
		&status,
		&video.CreatedAt,
		&video.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound(op, nil, "Video not found")
	}
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to query video")
	}

	video.Status = models.Status(status)
	video.Thumbnail = thumbnail.String
	return video, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if stderrors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
