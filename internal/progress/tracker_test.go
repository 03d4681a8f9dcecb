package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tijeane/quran-learning/internal/models"
	"github.com/tijeane/quran-learning/internal/testutil/mocks"
)

func fixedTracker(repo *mocks.MockProgressRepository, at time.Time) *Tracker {
	t := NewTracker(repo)
	t.now = func() time.Time { return at }
	return t
}

func TestRecordAnswer_FirstAnswer(t *testing.T) {
	repo := new(mocks.MockProgressRepository)
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	tracker := fixedTracker(repo, now)

	repo.On("Get", mock.Anything, int64(1), int64(7)).Return(nil, nil).Once()
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(r models.ProgressRecord) bool {
		return r.UserID == 1 && r.WordID == 7 &&
			r.CorrectAnswers == 1 && r.TotalAttempts == 1 && r.MasteryLevel == 100 &&
			r.LastReviewed.Equal(now) && r.NextReview.Equal(now.Add(24*time.Hour))
	})).Return(&models.ProgressRecord{UserID: 1, WordID: 7, MasteryLevel: 100, CorrectAnswers: 1, TotalAttempts: 1}, nil).Once()

	rec, err := tracker.RecordAnswer(context.Background(), 1, 7, true)
	require.NoError(t, err)
	assert.Equal(t, 100, rec.MasteryLevel)
	repo.AssertExpectations(t)
}

func TestRecordAnswer_AccumulatesMastery(t *testing.T) {
	repo := new(mocks.MockProgressRepository)
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	tracker := fixedTracker(repo, now)

	// 2 of 3 correct so far; a wrong fourth answer lands at 50.
	existing := &models.ProgressRecord{
		UserID: 1, WordID: 7,
		CorrectAnswers: 2, TotalAttempts: 3, MasteryLevel: 67,
	}
	repo.On("Get", mock.Anything, int64(1), int64(7)).Return(existing, nil).Once()
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(r models.ProgressRecord) bool {
		return r.CorrectAnswers == 2 && r.TotalAttempts == 4 && r.MasteryLevel == 50
	})).Return(&models.ProgressRecord{MasteryLevel: 50}, nil).Once()

	rec, err := tracker.RecordAnswer(context.Background(), 1, 7, false)
	require.NoError(t, err)
	assert.Equal(t, 50, rec.MasteryLevel)
	repo.AssertExpectations(t)
}

func TestRecordAnswer_Validation(t *testing.T) {
	tracker := NewTracker(new(mocks.MockProgressRepository))

	_, err := tracker.RecordAnswer(context.Background(), 0, 7, true)
	assert.Error(t, err)

	_, err = tracker.RecordAnswer(context.Background(), 1, -1, true)
	assert.Error(t, err)
}

func TestDueForReview(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	tracker := fixedTracker(new(mocks.MockProgressRepository), now)

	records := []models.ProgressRecord{
		{WordID: 1, NextReview: now.Add(-time.Hour)},
		{WordID: 2, NextReview: now},
		{WordID: 3, NextReview: now.Add(time.Hour)},
	}

	due := tracker.DueForReview(records)
	require.Len(t, due, 2)
	assert.Equal(t, int64(1), due[0].WordID)
	assert.Equal(t, int64(2), due[1].WordID)
}

func TestComputeStats_Empty(t *testing.T) {
	tracker := NewTracker(new(mocks.MockProgressRepository))

	stats := tracker.ComputeStats(nil)
	assert.Zero(t, stats.WordsLearned)
	assert.Zero(t, stats.Accuracy)
	assert.Zero(t, stats.TotalPoints)
	assert.Zero(t, stats.DaysStreak)
	assert.Equal(t, 1, stats.CurrentLevel)
}

func TestComputeStats_Formulas(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	tracker := fixedTracker(new(mocks.MockProgressRepository), now)

	// 25 mastered words, 5 below threshold. 150 of 200 answers correct.
	var records []models.ProgressRecord
	for i := 0; i < 25; i++ {
		records = append(records, models.ProgressRecord{
			WordID: int64(i + 1), MasteryLevel: 85,
			CorrectAnswers: 5, TotalAttempts: 6,
			LastReviewed: now,
		})
	}
	for i := 0; i < 5; i++ {
		records = append(records, models.ProgressRecord{
			WordID: int64(100 + i), MasteryLevel: 40,
			CorrectAnswers: 5, TotalAttempts: 10,
			LastReviewed: now,
		})
	}

	stats := tracker.ComputeStats(records)
	assert.Equal(t, 25, stats.WordsLearned)
	assert.Equal(t, 75, stats.Accuracy) // round(100*150/200)
	assert.Equal(t, 1500, stats.TotalPoints)
	assert.Equal(t, 2, stats.CurrentLevel) // 25/20 + 1
	assert.Equal(t, 2, stats.SurahsCompleted)
	assert.Equal(t, 1, stats.DaysStreak)
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	recordsAt := func(times ...time.Time) []models.ProgressRecord {
		var out []models.ProgressRecord
		for i, ts := range times {
			out = append(out, models.ProgressRecord{WordID: int64(i + 1), LastReviewed: ts})
		}
		return out
	}

	tests := []struct {
		name    string
		records []models.ProgressRecord
		want    int
	}{
		{"no reviews", nil, 0},
		{"today only", recordsAt(now), 1},
		{"three consecutive days ending today", recordsAt(now, now.Add(-day), now.Add(-2*day)), 3},
		{"ended yesterday still counts", recordsAt(now.Add(-day), now.Add(-2*day)), 2},
		{"gap breaks streak", recordsAt(now, now.Add(-2*day), now.Add(-3*day)), 1},
		{"stale reviews only", recordsAt(now.Add(-5 * day)), 0},
		{"same day reviews collapse", recordsAt(now, now.Add(-time.Hour), now.Add(-day)), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := fixedTracker(new(mocks.MockProgressRepository), now)
			assert.Equal(t, tt.want, tracker.streak(tt.records))
		})
	}
}
