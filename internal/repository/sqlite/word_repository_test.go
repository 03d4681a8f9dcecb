package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tijeane/quran-learning/internal/models"
	"github.com/tijeane/quran-learning/internal/repository"
	"github.com/tijeane/quran-learning/internal/repository/sqlite"
	"github.com/tijeane/quran-learning/internal/testutil"
)

type WordRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.WordRepository
}

func (s *WordRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewWordRepository(s.db)
}

func (s *WordRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *WordRepositorySuite) insertWord(w models.Word) int64 {
	id, err := s.repo.Insert(context.Background(), w)
	s.Require().NoError(err)
	return id
}

func (s *WordRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()

	id := s.insertWord(models.Word{
		Arabic:          "كتاب",
		Transliteration: "kitaab",
		English:         "book",
		Frequency:       230,
		AudioURL:        "https://example.com/kitaab.mp3",
	})

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("كتاب", got.Arabic)
	s.Equal("kitaab", got.Transliteration)
	s.Equal("book", got.English)
	s.Equal(230, got.Frequency)
	s.Equal("https://example.com/kitaab.mp3", got.AudioURL)
	s.False(got.CreatedAt.IsZero())
}

func (s *WordRepositorySuite) TestGetNotFound() {
	got, err := s.repo.Get(context.Background(), 9999)
	s.NoError(err)
	s.Nil(got)
}

func (s *WordRepositorySuite) TestGetByArabic() {
	ctx := context.Background()
	s.insertWord(models.Word{Arabic: "قلم", Transliteration: "qalam", English: "pen"})

	got, err := s.repo.GetByArabic(ctx, "قلم")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("pen", got.English)

	missing, err := s.repo.GetByArabic(ctx, "غائب")
	s.NoError(err)
	s.Nil(missing)
}

func (s *WordRepositorySuite) TestInsertNullAudioURL() {
	ctx := context.Background()
	id := s.insertWord(models.Word{Arabic: "بيت", Transliteration: "bayt", English: "house"})

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Empty(got.AudioURL)
}

func (s *WordRepositorySuite) TestListOrderedByFrequency() {
	ctx := context.Background()
	s.insertWord(models.Word{Arabic: "نادر", Transliteration: "naadir", English: "rare", Frequency: 1})
	s.insertWord(models.Word{Arabic: "شائع", Transliteration: "shaai", English: "common", Frequency: 900})
	s.insertWord(models.Word{Arabic: "وسط", Transliteration: "wasat", English: "middle", Frequency: 50})

	words, err := s.repo.List(ctx, models.WordFilter{})
	s.Require().NoError(err)
	s.Require().Len(words, 3)
	s.Equal("شائع", words[0].Arabic)
	s.Equal("وسط", words[1].Arabic)
	s.Equal("نادر", words[2].Arabic)
}

func (s *WordRepositorySuite) TestListSearchFilter() {
	ctx := context.Background()
	s.insertWord(models.Word{Arabic: "كتاب", Transliteration: "kitaab", English: "book"})
	s.insertWord(models.Word{Arabic: "قلم", Transliteration: "qalam", English: "pen"})

	byEnglish, err := s.repo.List(ctx, models.WordFilter{Search: "boo"})
	s.Require().NoError(err)
	s.Require().Len(byEnglish, 1)
	s.Equal("كتاب", byEnglish[0].Arabic)

	byTranslit, err := s.repo.List(ctx, models.WordFilter{Search: "qala"})
	s.Require().NoError(err)
	s.Require().Len(byTranslit, 1)
	s.Equal("قلم", byTranslit[0].Arabic)

	none, err := s.repo.List(ctx, models.WordFilter{Search: "zzz"})
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *WordRepositorySuite) TestListPagination() {
	ctx := context.Background()
	s.insertWord(models.Word{Arabic: "أ", Transliteration: "a", English: "first", Frequency: 3})
	s.insertWord(models.Word{Arabic: "ب", Transliteration: "b", English: "second", Frequency: 2})
	s.insertWord(models.Word{Arabic: "ت", Transliteration: "t", English: "third", Frequency: 1})

	page, err := s.repo.List(ctx, models.WordFilter{Limit: 2, Offset: 1})
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal("ب", page[0].Arabic)
	s.Equal("ت", page[1].Arabic)
}

func (s *WordRepositorySuite) TestCount() {
	ctx := context.Background()
	s.insertWord(models.Word{Arabic: "كتاب", Transliteration: "kitaab", English: "book"})
	s.insertWord(models.Word{Arabic: "قلم", Transliteration: "qalam", English: "pen"})

	total, err := s.repo.Count(ctx, models.WordFilter{})
	s.Require().NoError(err)
	s.Equal(2, total)

	filtered, err := s.repo.Count(ctx, models.WordFilter{Search: "pen"})
	s.Require().NoError(err)
	s.Equal(1, filtered)
}

func (s *WordRepositorySuite) TestInsertDuplicateArabicFails() {
	s.insertWord(models.Word{Arabic: "كتاب", Transliteration: "kitaab", English: "book"})

	_, err := s.repo.Insert(context.Background(), models.Word{
		Arabic: "كتاب", Transliteration: "kitab", English: "a book",
	})
	s.Error(err)
}

func TestWordRepositorySuite(t *testing.T) {
	suite.Run(t, new(WordRepositorySuite))
}
