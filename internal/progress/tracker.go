// Package progress records quiz answers against per-word mastery and
// derives the user's learning statistics.
package progress

import (
	"context"
	"math"
	"sort"
	"time"

	apperrors "github.com/tijeane/quran-learning/internal/errors"
	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/models"
	"github.com/tijeane/quran-learning/internal/repository"
)

const (
	// masteredThreshold is the mastery level at which a word counts as
	// learned.
	masteredThreshold = 80
	// reviewInterval is the fixed delay until a word is due again.
	reviewInterval = 24 * time.Hour

	pointsPerCorrect = 10
	wordsPerLevel    = 20
	wordsPerSurah    = 10
)

// Tracker applies answer outcomes to progress records.
type Tracker struct {
	progress repository.ProgressRepository
	now      func() time.Time
}

func NewTracker(progress repository.ProgressRepository) *Tracker {
	return &Tracker{progress: progress, now: time.Now}
}

// RecordAnswer folds one quiz answer into the user's record for a word.
// Mastery is the lifetime accuracy for that word on a 0-100 scale; the
// next review is always a day out regardless of mastery. The write is an
// upsert keyed on (user, word), so replaying the same state is idempotent.
func (t *Tracker) RecordAnswer(ctx context.Context, userID, wordID int64, wasCorrect bool) (*models.ProgressRecord, error) {
	if userID <= 0 || wordID <= 0 {
		return nil, apperrors.NewValidationError("id", "user and word ids must be positive")
	}

	existing, err := t.progress.Get(ctx, userID, wordID)
	if err != nil {
		return nil, err
	}

	rec := models.ProgressRecord{UserID: userID, WordID: wordID}
	if existing != nil {
		rec = *existing
	}

	if wasCorrect {
		rec.CorrectAnswers++
	}
	rec.TotalAttempts++
	rec.MasteryLevel = clamp(int(math.Round(100*float64(rec.CorrectAnswers)/float64(rec.TotalAttempts))), 0, 100)

	now := t.now().UTC()
	rec.LastReviewed = now
	rec.NextReview = now.Add(reviewInterval)

	stored, err := t.progress.Upsert(ctx, rec)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).WithPrefix("progress").Debug(
		"recorded answer: user=%d, word=%d, correct=%t, mastery=%d", userID, wordID, wasCorrect, stored.MasteryLevel)
	return stored, nil
}

// DueForReview filters records whose next review time has passed.
func (t *Tracker) DueForReview(records []models.ProgressRecord) []models.ProgressRecord {
	now := t.now().UTC()
	var due []models.ProgressRecord
	for _, r := range records {
		if !r.NextReview.After(now) {
			due = append(due, r)
		}
	}
	return due
}

// ComputeStats derives display statistics from a user's full record set.
// A user with no records is level 1 with everything else at zero.
func (t *Tracker) ComputeStats(records []models.ProgressRecord) models.UserStats {
	var learned, totalCorrect, totalAttempts int
	for _, r := range records {
		if r.MasteryLevel >= masteredThreshold {
			learned++
		}
		totalCorrect += r.CorrectAnswers
		totalAttempts += r.TotalAttempts
	}

	accuracy := 0
	if totalAttempts > 0 {
		accuracy = int(math.Round(100 * float64(totalCorrect) / float64(totalAttempts)))
	}

	return models.UserStats{
		WordsLearned:    learned,
		DaysStreak:      t.streak(records),
		Accuracy:        accuracy,
		SurahsCompleted: learned / wordsPerSurah,
		TotalPoints:     totalCorrect * pointsPerCorrect,
		CurrentLevel:    learned/wordsPerLevel + 1,
	}
}

// streak counts consecutive calendar days with at least one review,
// walking back from today. A streak survives overnight: reviewing
// yesterday but not yet today still counts.
func (t *Tracker) streak(records []models.ProgressRecord) int {
	days := make(map[string]struct{}, len(records))
	for _, r := range records {
		if !r.LastReviewed.IsZero() {
			days[r.LastReviewed.UTC().Format("2006-01-02")] = struct{}{}
		}
	}
	if len(days) == 0 {
		return 0
	}

	sorted := make([]string, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	today := t.now().UTC().Truncate(24 * time.Hour)
	cursor := today
	if sorted[0] != today.Format("2006-01-02") {
		cursor = today.Add(-24 * time.Hour)
		if sorted[0] != cursor.Format("2006-01-02") {
			return 0
		}
	}

	streak := 0
	for _, d := range sorted {
		if d != cursor.Format("2006-01-02") {
			break
		}
		streak++
		cursor = cursor.Add(-24 * time.Hour)
	}
	return streak
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
