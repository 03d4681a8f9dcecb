package api

import (
	"net/http"

	apperrors "github.com/tijeane/quran-learning/internal/errors"
	"github.com/tijeane/quran-learning/internal/models"
	"github.com/tijeane/quran-learning/internal/quiz"
)

type createQuizRequest struct {
	Size int    `json:"size"`
	Mode string `json:"mode"`
}

type quizResponse struct {
	Questions []models.QuizQuestion `json:"questions"`
}

func (s *Server) handleCreateQuiz(w http.ResponseWriter, r *http.Request) {
	var req createQuizRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Mode == "" {
		req.Mode = string(quiz.ModeLesson)
	}

	words, err := s.Words.List(r.Context(), models.WordFilter{})
	if err != nil {
		handleError(w, r, err)
		return
	}

	questions, err := s.Quiz.Generate(words, req.Size, quiz.Mode(req.Mode))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, quizResponse{Questions: questions})
}

type scoreQuizRequest struct {
	Questions []models.QuizQuestion `json:"questions"`
	Answers   []string              `json:"answers"`
}

func (s *Server) handleScoreQuiz(w http.ResponseWriter, r *http.Request) {
	var req scoreQuizRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if len(req.Questions) == 0 {
		handleError(w, r, apperrors.NewValidationError("questions", "must not be empty"))
		return
	}
	if len(req.Answers) > len(req.Questions) {
		handleError(w, r, apperrors.NewValidationError("answers", "more answers than questions"))
		return
	}

	respondJSON(w, http.StatusOK, quiz.Score(req.Questions, req.Answers))
}
