// Package api exposes the HTTP interface: word browsing, context
// lookups, quizzes, progress, and account endpoints.
package api

import (
	"github.com/tijeane/quran-learning/internal/auth"
	"github.com/tijeane/quran-learning/internal/lookup"
	"github.com/tijeane/quran-learning/internal/progress"
	"github.com/tijeane/quran-learning/internal/quiz"
	"github.com/tijeane/quran-learning/internal/repository"
	"github.com/tijeane/quran-learning/internal/speech"
)

type Server struct {
	Words    repository.WordRepository
	Progress repository.ProgressRepository
	Stats    repository.StatsRepository
	Users    repository.UserRepository

	Resolver *lookup.Resolver
	Tracker  *progress.Tracker
	Quiz     *quiz.Generator
	Tokens   *auth.TokenIssuer

	// Synth is optional; without it the audio endpoint falls back to
	// recitation URLs only.
	Synth speech.Synthesizer

	CORSOrigins []string
}
