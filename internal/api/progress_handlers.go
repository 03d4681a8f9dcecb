package api

import (
	"net/http"
	"strconv"

	apperrors "github.com/tijeane/quran-learning/internal/errors"
	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/models"
)

type recordAnswerRequest struct {
	WordID  int64 `json:"word_id"`
	Correct bool  `json:"correct"`
}

func (s *Server) handleRecordAnswer(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())

	var req recordAnswerRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	word, err := s.Words.Get(r.Context(), req.WordID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if word == nil {
		handleError(w, r, apperrors.NewNotFoundError("word", req.WordID))
		return
	}

	rec, err := s.Tracker.RecordAnswer(r.Context(), userID, req.WordID, req.Correct)
	if err != nil {
		handleError(w, r, err)
		return
	}

	// Keep the cached stats roughly current; a failure here only delays
	// the next scheduled refresh.
	if err := s.Stats.Refresh(r.Context(), userID); err != nil {
		logger.FromContext(r.Context()).Warn("stats refresh after answer failed: %v", err)
	}

	respondJSON(w, http.StatusOK, rec)
}

type progressListResponse struct {
	Records []models.ProgressRecord `json:"records"`
}

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())

	if v := r.URL.Query().Get("word_id"); v != "" {
		wordID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || wordID <= 0 {
			handleError(w, r, apperrors.NewBadRequestError("invalid word_id"))
			return
		}
		rec, err := s.Progress.Get(r.Context(), userID, wordID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		if rec == nil {
			handleError(w, r, apperrors.NewNotFoundError("progress", wordID))
			return
		}
		respondJSON(w, http.StatusOK, progressListResponse{Records: []models.ProgressRecord{*rec}})
		return
	}

	records, err := s.Progress.ListByUser(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, progressListResponse{Records: records})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	userID := userFromContext(r.Context())

	records, err := s.Progress.ListByUser(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	stats := s.Tracker.ComputeStats(records)

	// Prefer the scheduler-maintained aggregates when a cache row exists.
	// The streak is always computed live: it depends on today's date, not
	// on when the cache was last refreshed.
	if cached, err := s.Stats.Get(r.Context(), userID); err != nil {
		logger.FromContext(r.Context()).Warn("stats cache read failed, serving live stats: %v", err)
	} else if cached != nil {
		stats.WordsLearned = cached.WordsMastered
		stats.Accuracy = cached.AccuracyPercentage
		stats.TotalPoints = cached.TotalPoints
		stats.CurrentLevel = cached.CurrentLevel
		stats.SurahsCompleted = cached.WordsMastered / 10
	}

	respondJSON(w, http.StatusOK, stats)
}
