package models

import "time"

type Word struct {
	ID              int64     `json:"id"`
	Arabic          string    `json:"arabic"`
	Transliteration string    `json:"transliteration"`
	English         string    `json:"english"`
	Frequency       int       `json:"frequency"`
	AudioURL        string    `json:"audio_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// WordFilter narrows word listing. Search matches arabic, transliteration
// or english as a substring. Zero Limit means the repository default.
type WordFilter struct {
	Search string
	Limit  int
	Offset int
}
