package api

import (
	"net/http"
	"strconv"

	apperrors "github.com/tijeane/quran-learning/internal/errors"
	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/models"
)

type wordListResponse struct {
	Words []models.Word `json:"words"`
	Total int           `json:"total"`
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.WordFilter{Search: q.Get("search")}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			handleError(w, r, apperrors.NewBadRequestError("invalid limit"))
			return
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			handleError(w, r, apperrors.NewBadRequestError("invalid offset"))
			return
		}
		filter.Offset = n
	}

	words, err := s.Words.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	total, err := s.Words.Count(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, wordListResponse{Words: words, Total: total})
}

func (s *Server) handleGetWord(w http.ResponseWriter, r *http.Request) {
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
	respondJSON(w, http.StatusOK, word)
}

type createWordRequest struct {
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration"`
	English         string `json:"english"`
	Frequency       int    `json:"frequency"`
	AudioURL        string `json:"audio_url"`
}

func (s *Server) handleCreateWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req createWordRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Arabic == "" {
		handleError(w, r, apperrors.NewValidationError("arabic", "must not be empty"))
		return
	}
	if req.English == "" {
		handleError(w, r, apperrors.NewValidationError("english", "must not be empty"))
		return
	}
	if req.Frequency < 0 {
		handleError(w, r, apperrors.NewValidationError("frequency", "must not be negative"))
		return
	}

	existing, err := s.Words.GetByArabic(r.Context(), req.Arabic)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if existing != nil {
		handleError(w, r, apperrors.NewConflictError("word", "arabic text already stored"))
		return
	}

	id, err := s.Words.Insert(r.Context(), models.Word{
		Arabic:          req.Arabic,
		Transliteration: req.Transliteration,
		English:         req.English,
		Frequency:       req.Frequency,
		AudioURL:        req.AudioURL,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	word, err := s.Words.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("created word %d (%s)", id, req.Arabic)
	respondJSON(w, http.StatusCreated, word)
}
