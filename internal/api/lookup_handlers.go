package api

import (
	"net/http"

	apperrors "github.com/tijeane/quran-learning/internal/errors"
	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/models"
)

type contextResponse struct {
	Word    models.Word         `json:"word"`
	Verse   *models.VerseResult `json:"verse,omitempty"`
	Phrases []models.Phrase     `json:"phrases,omitempty"`
}

func (s *Server) handleWordContext(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	word, err := s.Words.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if word == nil {
		handleError(w, r, apperrors.NewNotFoundError("word", id))
		return
	}

	res, err := s.Resolver.Resolve(r.Context(), *word)
	if err != nil {
		handleError(w, r, err)
		return
	}

	// A lookup superseded by a newer one is discarded so a slow upstream
	// response cannot clobber the context the client asked for last.
	if res.Generation != s.Resolver.Latest() {
		logger.FromContext(r.Context()).Debug("discarding stale lookup result for word %d", id)
		handleError(w, r, apperrors.NewConflictError("lookup", "superseded by a newer lookup"))
		return
	}

	respondJSON(w, http.StatusOK, contextResponse{
		Word:    *word,
		Verse:   res.Verse,
		Phrases: res.Phrases,
	})
}

// handleWordAudio serves pronunciation audio. A stored recitation URL
// wins; otherwise the word is synthesized on the fly.
func (s *Server) handleWordAudio(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	word, err := s.Words.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if word == nil {
		handleError(w, r, apperrors.NewNotFoundError("word", id))
		return
	}

	if word.AudioURL != "" {
		http.Redirect(w, r, word.AudioURL, http.StatusFound)
		return
	}

	if s.Synth == nil {
		handleError(w, r, apperrors.NewNotFoundError("audio", id))
		return
	}

	audio, err := s.Synth.Synthesize(r.Context(), word.Arabic)
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}
