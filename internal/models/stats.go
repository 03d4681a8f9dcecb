package models

import "time"

// UserStats is derived from the user's progress records; it has no
// independent lifecycle and is recomputed on demand.
type UserStats struct {
	WordsLearned    int `json:"words_learned"`
	DaysStreak      int `json:"days_streak"`
	Accuracy        int `json:"accuracy"`
	SurahsCompleted int `json:"surahs_completed"`
	TotalPoints     int `json:"total_points"`
	CurrentLevel    int `json:"current_level"`
}

// CachedUserStats is the periodically refreshed user_stats row.
type CachedUserStats struct {
	UserID             int64     `json:"user_id"`
	WordsMastered      int       `json:"words_mastered"`
	AccuracyPercentage int       `json:"accuracy_percentage"`
	TotalPoints        int       `json:"total_points"`
	CurrentLevel       int       `json:"current_level"`
	RefreshedAt        time.Time `json:"refreshed_at"`
}
