package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"vidbrief/errors"
)

const (
	createVideoQuery = `
        INSERT INTO videos (
            id, youtube_id, title, url, thumbnail,
            status, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `

	getVideoQuery = `
        SELECT id, youtube_id, title, url, thumbnail,
               status, created_at, updated_at
        FROM videos WHERE id = ?
    `

	getVideoByYoutubeIDQuery = `
        SELECT id, youtube_id, title, url, thumbnail,
               status, created_at, updated_at
        FROM videos WHERE youtube_id = ?
    `

	updateStatusQuery = `
        UPDATE videos SET
            status = ?,
            updated_at = ?
        WHERE id = ?
    `

	createTranscriptQuery = `
        INSERT INTO transcripts (id, video_id, text, created_at)
        VALUES (?, ?, ?, ?)
    `

	getTranscriptQuery = `
        SELECT id, video_id, text, created_at
        FROM transcripts WHERE video_id = ?
        ORDER BY created_at LIMIT 1
    `

	createSummaryQuery = `
        INSERT INTO summaries (id, video_id, text, created_at)
        VALUES (?, ?, ?, ?)
    `

	getSummaryQuery = `
        SELECT id, video_id, text, created_at
        FROM summaries WHERE video_id = ?
        ORDER BY created_at LIMIT 1
    `
)

type PreparedStatements struct {
	createVideo      *sql.Stmt
	getVideo         *sql.Stmt
	getByYoutubeID   *sql.Stmt
	updateStatus     *sql.Stmt
	createTranscript *sql.Stmt
	getTranscript    *sql.Stmt
	createSummary    *sql.Stmt
	getSummary       *sql.Stmt
}

func (stmts *PreparedStatements) Prepare(ctx context.Context, db *sql.DB) error {
	const op = "PreparedStatements.Prepare"

	var err error

	if stmts.createVideo, err = db.PrepareContext(ctx, createVideoQuery); err != nil {
		return errors.Internal(op, err, "failed to prepare createVideo statement")
	}

	if stmts.getVideo, err = db.PrepareContext(ctx, getVideoQuery); err != nil {
		return errors.Internal(op, err, "failed to prepare getVideo statement")
	}

	if stmts.getByYoutubeID, err = db.PrepareContext(ctx, getVideoByYoutubeIDQuery); err != nil {
		return errors.Internal(op, err, "failed to prepare getByYoutubeID statement")
	}

	if stmts.updateStatus, err = db.PrepareContext(ctx, updateStatusQuery); err != nil {
		return errors.Internal(op, err, "failed to prepare updateStatus statement")
	}

	if stmts.createTranscript, err = db.PrepareContext(ctx, createTranscriptQuery); err != nil {
		return errors.Internal(op, err, "failed to prepare createTranscript statement")
	}

	if stmts.getTranscript, err = db.PrepareContext(ctx, getTranscriptQuery); err != nil {
		return errors.Internal(op, err, "failed to prepare getTranscript statement")
	}

	if stmts.createSummary, err = db.PrepareContext(ctx, createSummaryQuery); err != nil {
		return errors.Internal(op, err, "failed to prepare createSummary statement")
	}

	if stmts.getSummary, err = db.PrepareContext(ctx, getSummaryQuery); err != nil {
		return errors.Internal(op, err, "failed to prepare getSummary statement")
	}

	return nil
}

func (stmts *PreparedStatements) Close() error {
	var errs []error

	statements := [...]*sql.Stmt{
		stmts.createVideo,
		stmts.getVideo,
		stmts.getByYoutubeID,
		stmts.updateStatus,
		stmts.createTranscript,
		stmts.getTranscript,
		stmts.createSummary,
		stmts.getSummary,
	}

	for _, stmt := range statements {
		if stmt != nil {
			if err := stmt.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to close prepared statements: %v", errs)
	}

	return nil
}
