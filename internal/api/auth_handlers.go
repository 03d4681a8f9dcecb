package api

import (
	"net/http"
	"strings"

	"github.com/tijeane/quran-learning/internal/auth"
	apperrors "github.com/tijeane/quran-learning/internal/errors"
	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/models"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		handleError(w, r, apperrors.NewValidationError("email", "must be a valid address"))
		return
	}

	existing, err := s.Users.GetByEmail(r.Context(), email)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if existing != nil {
		handleError(w, r, apperrors.NewConflictError("account", "email already registered"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		handleError(w, r, err)
		return
	}

	id, err := s.Users.Insert(r.Context(), models.User{Email: email, PasswordHash: hash})
	if err != nil {
		handleError(w, r, err)
		return
	}

	token, err := s.Tokens.Issue(id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("registered user %d", id)
	respondJSON(w, http.StatusCreated, tokenResponse{Token: token, UserID: id})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.Users.GetByEmail(r.Context(), email)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		handleError(w, r, apperrors.NewUnauthorizedError("invalid email or password"))
		return
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenResponse{Token: token, UserID: user.ID})
}
