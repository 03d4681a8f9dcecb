package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   s.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.Get("/health", s.handleHealth)
	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	r.Get("/words", s.handleListWords)
	r.Post("/words", s.handleCreateWord)
	r.Get("/words/{id}", s.handleGetWord)
	r.Get("/words/{id}/context", s.handleWordContext)
	r.Get("/words/{id}/audio", s.handleWordAudio)

	r.Post("/quiz", s.handleCreateQuiz)
	r.Post("/quiz/score", s.handleScoreQuiz)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Post("/progress/answers", s.handleRecordAnswer)
		r.Get("/progress", s.handleListProgress)
		r.Get("/progress/stats", s.handleStats)
	})

	return r
}
