package models

import "time"

// ProgressRecord tracks one user's history with one word. At most one
// record exists per (user, word) pair.
type ProgressRecord struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	WordID         int64     `json:"word_id"`
	MasteryLevel   int       `json:"mastery_level"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalAttempts  int       `json:"total_attempts"`
	LastReviewed   time.Time `json:"last_reviewed"`
	NextReview     time.Time `json:"next_review"`
	CreatedAt      time.Time `json:"created_at"`
}
