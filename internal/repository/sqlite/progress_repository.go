package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/models"
	"github.com/tijeane/quran-learning/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

const progressColumns = "id, user_id, word_id, mastery_level, correct_answers, total_attempts, last_reviewed, next_review, created_at"

func scanProgress(row interface{ Scan(...any) error }) (*models.ProgressRecord, error) {
	var p models.ProgressRecord
	if err := row.Scan(&p.ID, &p.UserID, &p.WordID, &p.MasteryLevel, &p.CorrectAnswers, &p.TotalAttempts, &p.LastReviewed, &p.NextReview, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) Get(ctx context.Context, userID, wordID int64) (*models.ProgressRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: user_id=%d, word_id=%d", userID, wordID)

	p, err := scanProgress(r.db.QueryRowContext(ctx, `
SELECT `+progressColumns+`
FROM user_progress
WHERE user_id = ? AND word_id = ?
`, userID, wordID))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no progress record: user_id=%d, word_id=%d", userID, wordID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	return p, nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID int64) ([]models.ProgressRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing progress: user_id=%d", userID)

	rows, err := r.db.QueryContext(ctx, `
SELECT `+progressColumns+`
FROM user_progress
WHERE user_id = ?
ORDER BY word_id
`, userID)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.ProgressRecord
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		records = append(records, *p)
	}
	log.Debug("found %d progress records", len(records))
	return records, rows.Err()
}

func (r *progressRepository) Upsert(ctx context.Context, rec models.ProgressRecord) (*models.ProgressRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("upserting progress: user_id=%d, word_id=%d, mastery=%d", rec.UserID, rec.WordID, rec.MasteryLevel)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO user_progress (user_id, word_id, mastery_level, correct_answers, total_attempts, last_reviewed, next_review)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, word_id) DO UPDATE SET
    mastery_level = excluded.mastery_level,
    correct_answers = excluded.correct_answers,
    total_attempts = excluded.total_attempts,
    last_reviewed = excluded.last_reviewed,
    next_review = excluded.next_review
`, rec.UserID, rec.WordID, rec.MasteryLevel, rec.CorrectAnswers, rec.TotalAttempts, rec.LastReviewed, rec.NextReview)
	if err != nil {
		log.Error("failed to upsert progress: %v", err)
		return nil, err
	}
	return r.Get(ctx, rec.UserID, rec.WordID)
}
