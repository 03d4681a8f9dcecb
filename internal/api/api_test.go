package api

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tijeane/quran-learning/internal/auth"
	"github.com/tijeane/quran-learning/internal/lookup"
	"github.com/tijeane/quran-learning/internal/models"
	"github.com/tijeane/quran-learning/internal/progress"
	"github.com/tijeane/quran-learning/internal/quiz"
	"github.com/tijeane/quran-learning/internal/testutil/mocks"
)

type testServer struct {
	*Server
	words    *mocks.MockWordRepository
	progress *mocks.MockProgressRepository
	stats    *mocks.MockStatsRepository
	users    *mocks.MockUserRepository
	client   *mocks.MockQuranClient
	handler  http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		words:    new(mocks.MockWordRepository),
		progress: new(mocks.MockProgressRepository),
		stats:    new(mocks.MockStatsRepository),
		users:    new(mocks.MockUserRepository),
		client:   new(mocks.MockQuranClient),
	}
	ts.Server = &Server{
		Words:    ts.words,
		Progress: ts.progress,
		Stats:    ts.stats,
		Users:    ts.users,
		Resolver: lookup.NewResolver(ts.client, false),
		Tracker:  progress.NewTracker(ts.progress),
		Quiz:     quiz.NewGenerator(rand.New(rand.NewSource(1))),
		Tokens:   auth.NewTokenIssuer("test-secret", time.Hour),
	}
	ts.handler = ts.Server.Routes()
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) authToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := ts.Tokens.Issue(userID)
	require.NoError(t, err)
	return token
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	var storedHash string
	ts.users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil).Once()
	ts.users.On("Insert", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		storedHash = u.PasswordHash
		return u.Email == "new@example.com" && u.PasswordHash != "password123"
	})).Return(int64(5), nil).Once()

	rec := ts.do(t, http.MethodPost, "/auth/register",
		map[string]string{"email": "New@Example.com", "password": "password123"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	registered := decodeResponse[tokenResponse](t, rec)
	assert.Equal(t, int64(5), registered.UserID)
	assert.NotEmpty(t, registered.Token)

	ts.users.On("GetByEmail", mock.Anything, "new@example.com").
		Return(&models.User{ID: 5, Email: "new@example.com", PasswordHash: storedHash}, nil).Once()

	rec = ts.do(t, http.MethodPost, "/auth/login",
		map[string]string{"email": "new@example.com", "password": "password123"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	logged := decodeResponse[tokenResponse](t, rec)
	userID, err := ts.Tokens.Verify(logged.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.users.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&models.User{ID: 1, Email: "taken@example.com"}, nil).Once()

	rec := ts.do(t, http.MethodPost, "/auth/register",
		map[string]string{"email": "taken@example.com", "password": "password123"}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := newTestServer(t)
	hash, err := auth.HashPassword("rightpassword")
	require.NoError(t, err)
	ts.users.On("GetByEmail", mock.Anything, "a@example.com").
		Return(&models.User{ID: 1, Email: "a@example.com", PasswordHash: hash}, nil).Once()

	rec := ts.do(t, http.MethodPost, "/auth/login",
		map[string]string{"email": "a@example.com", "password": "wrongpassword"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListWords(t *testing.T) {
	ts := newTestServer(t)
	words := []models.Word{
		{ID: 1, Arabic: "كتاب", English: "book", Frequency: 230},
		{ID: 2, Arabic: "قلم", English: "pen", Frequency: 5},
	}
	ts.words.On("List", mock.Anything, models.WordFilter{Search: "k"}).Return(words, nil).Once()
	ts.words.On("Count", mock.Anything, models.WordFilter{Search: "k"}).Return(2, nil).Once()

	rec := ts.do(t, http.MethodGet, "/words?search=k", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse[wordListResponse](t, rec)
	assert.Len(t, resp.Words, 2)
	assert.Equal(t, 2, resp.Total)
}

func TestGetWord_NotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.words.On("Get", mock.Anything, int64(99)).Return(nil, nil).Once()

	rec := ts.do(t, http.MethodGet, "/words/99", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body["error"]["code"])
}

func TestCreateWord(t *testing.T) {
	ts := newTestServer(t)

	ts.words.On("GetByArabic", mock.Anything, "كتاب").Return(nil, nil).Once()
	ts.words.On("Insert", mock.Anything, mock.MatchedBy(func(w models.Word) bool {
		return w.Arabic == "كتاب" && w.English == "book"
	})).Return(int64(7), nil).Once()
	ts.words.On("Get", mock.Anything, int64(7)).
		Return(&models.Word{ID: 7, Arabic: "كتاب", English: "book"}, nil).Once()

	rec := ts.do(t, http.MethodPost, "/words",
		map[string]any{"arabic": "كتاب", "transliteration": "kitaab", "english": "book"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeResponse[models.Word](t, rec)
	assert.Equal(t, int64(7), created.ID)
}

func TestWordContext_FallbackVerse(t *testing.T) {
	ts := newTestServer(t)
	ts.words.On("Get", mock.Anything, int64(3)).
		Return(&models.Word{ID: 3, Arabic: "الله", English: "God"}, nil).Once()

	rec := ts.do(t, http.MethodGet, "/words/3/context", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse[contextResponse](t, rec)
	require.NotNil(t, resp.Verse)
	assert.Equal(t, "Surah Al-Fatiha 1:1", resp.Verse.Reference)
	ts.client.AssertNotCalled(t, "Search")
}

func TestWordAudio_StoredURLRedirects(t *testing.T) {
	ts := newTestServer(t)
	ts.words.On("Get", mock.Anything, int64(3)).
		Return(&models.Word{ID: 3, Arabic: "الله", AudioURL: "https://cdn.example.com/1.mp3"}, nil).Once()

	rec := ts.do(t, http.MethodGet, "/words/3/audio", nil, "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://cdn.example.com/1.mp3", rec.Header().Get("Location"))
}

func TestWordAudio_NoURLNoSynth(t *testing.T) {
	ts := newTestServer(t)
	ts.words.On("Get", mock.Anything, int64(3)).
		Return(&models.Word{ID: 3, Arabic: "كتاب"}, nil).Once()

	rec := ts.do(t, http.MethodGet, "/words/3/audio", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateQuiz(t *testing.T) {
	ts := newTestServer(t)

	words := []models.Word{
		{ID: 1, Arabic: "كتاب", English: "book"},
		{ID: 2, Arabic: "قلم", English: "pen"},
		{ID: 3, Arabic: "بيت", English: "house"},
		{ID: 4, Arabic: "شمس", English: "sun"},
		{ID: 5, Arabic: "قمر", English: "moon"},
	}
	ts.words.On("List", mock.Anything, models.WordFilter{}).Return(words, nil).Once()

	rec := ts.do(t, http.MethodPost, "/quiz", map[string]any{"size": 3, "mode": "lesson"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse[quizResponse](t, rec)
	require.Len(t, resp.Questions, 3)
	for _, q := range resp.Questions {
		assert.Len(t, q.Options, 4)
		assert.Contains(t, q.Options, q.CorrectAnswer)
	}
}

func TestScoreQuiz(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"questions": []models.QuizQuestion{
			{CorrectAnswer: "book"},
			{CorrectAnswer: "pen"},
		},
		"answers": []string{"book", "wrong"},
	}
	rec := ts.do(t, http.MethodPost, "/quiz/score", body, "")
	require.Equal(t, http.StatusOK, rec.Code)

	score := decodeResponse[models.QuizScore](t, rec)
	assert.Equal(t, 1, score.CorrectCount)
	assert.Equal(t, 50, score.Percentage)
}

func TestRecordAnswer(t *testing.T) {
	ts := newTestServer(t)
	token := ts.authToken(t, 9)

	ts.words.On("Get", mock.Anything, int64(4)).
		Return(&models.Word{ID: 4, Arabic: "كتاب", English: "book"}, nil).Once()
	ts.progress.On("Get", mock.Anything, int64(9), int64(4)).Return(nil, nil).Once()
	ts.progress.On("Upsert", mock.Anything, mock.MatchedBy(func(r models.ProgressRecord) bool {
		return r.UserID == 9 && r.WordID == 4 && r.MasteryLevel == 100
	})).Return(&models.ProgressRecord{UserID: 9, WordID: 4, MasteryLevel: 100, CorrectAnswers: 1, TotalAttempts: 1}, nil).Once()
	ts.stats.On("Refresh", mock.Anything, int64(9)).Return(nil).Once()

	rec := ts.do(t, http.MethodPost, "/progress/answers",
		map[string]any{"word_id": 4, "correct": true}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	stored := decodeResponse[models.ProgressRecord](t, rec)
	assert.Equal(t, 100, stored.MasteryLevel)
	ts.progress.AssertExpectations(t)
	ts.stats.AssertExpectations(t)
}

func TestStats_PrefersCache(t *testing.T) {
	ts := newTestServer(t)
	token := ts.authToken(t, 9)

	now := time.Now().UTC()
	records := []models.ProgressRecord{
		{UserID: 9, WordID: 1, MasteryLevel: 90, CorrectAnswers: 9, TotalAttempts: 10, LastReviewed: now},
	}
	ts.progress.On("ListByUser", mock.Anything, int64(9)).Return(records, nil).Once()
	ts.stats.On("Get", mock.Anything, int64(9)).Return(&models.CachedUserStats{
		UserID: 9, WordsMastered: 30, AccuracyPercentage: 88, TotalPoints: 2000, CurrentLevel: 2,
		RefreshedAt: now,
	}, nil).Once()

	rec := ts.do(t, http.MethodGet, "/progress/stats", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decodeResponse[models.UserStats](t, rec)
	assert.Equal(t, 30, stats.WordsLearned)
	assert.Equal(t, 88, stats.Accuracy)
	assert.Equal(t, 2000, stats.TotalPoints)
	assert.Equal(t, 3, stats.SurahsCompleted)
	assert.Equal(t, 1, stats.DaysStreak)
}

func TestStats_LiveFallbackWithoutCache(t *testing.T) {
	ts := newTestServer(t)
	token := ts.authToken(t, 9)

	ts.progress.On("ListByUser", mock.Anything, int64(9)).Return([]models.ProgressRecord{}, nil).Once()
	ts.stats.On("Get", mock.Anything, int64(9)).Return(nil, nil).Once()

	rec := ts.do(t, http.MethodGet, "/progress/stats", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decodeResponse[models.UserStats](t, rec)
	assert.Zero(t, stats.WordsLearned)
	assert.Equal(t, 1, stats.CurrentLevel)
}

func TestListProgress(t *testing.T) {
	ts := newTestServer(t)
	token := ts.authToken(t, 9)

	records := []models.ProgressRecord{
		{UserID: 9, WordID: 1, MasteryLevel: 50},
		{UserID: 9, WordID: 2, MasteryLevel: 100},
	}
	ts.progress.On("ListByUser", mock.Anything, int64(9)).Return(records, nil).Once()

	rec := ts.do(t, http.MethodGet, "/progress", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse[progressListResponse](t, rec)
	assert.Len(t, resp.Records, 2)
}

func TestAuthMiddleware_RejectsBadToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/progress", nil, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
