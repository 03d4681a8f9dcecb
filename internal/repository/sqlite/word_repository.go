package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/models"
	"github.com/tijeane/quran-learning/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type wordRepository struct {
	db *sql.DB
}

// NewWordRepository creates a new WordRepository implementation
func NewWordRepository(db *sql.DB) repository.WordRepository {
	return &wordRepository{db: db}
}

const wordColumns = "id, arabic, transliteration, english, frequency, audio_url, created_at"

func scanWord(row interface{ Scan(...any) error }) (*models.Word, error) {
	var w models.Word
	var audioURL sql.NullString
	if err := row.Scan(&w.ID, &w.Arabic, &w.Transliteration, &w.English, &w.Frequency, &audioURL, &w.CreatedAt); err != nil {
		return nil, err
	}
	if audioURL.Valid {
		w.AudioURL = audioURL.String
	}
	return &w, nil
}

func (r *wordRepository) Get(ctx context.Context, id int64) (*models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("getting word: id=%d", id)

	w, err := scanWord(r.db.QueryRowContext(ctx, `SELECT `+wordColumns+` FROM words WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("word not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get word: %v", err)
		return nil, err
	}
	return w, nil
}

func (r *wordRepository) GetByArabic(ctx context.Context, arabic string) (*models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")

	w, err := scanWord(r.db.QueryRowContext(ctx, `SELECT `+wordColumns+` FROM words WHERE arabic = ?`, arabic))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get word by arabic: %v", err)
		return nil, err
	}
	return w, nil
}

func (r *wordRepository) listQuery(filter models.WordFilter) squirrel.SelectBuilder {
	query := sqlBuilder.Select(
		"id", "arabic", "transliteration", "english", "frequency", "audio_url", "created_at",
	).From("words")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.Like{"arabic": like},
			squirrel.Like{"transliteration": like},
			squirrel.Like{"english": like},
		})
	}
	return query
}

func (r *wordRepository) List(ctx context.Context, filter models.WordFilter) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("listing words: search=%q, limit=%d, offset=%d", filter.Search, filter.Limit, filter.Offset)

	// Most frequent words first; id breaks ties so pagination is stable.
	query := r.listQuery(filter).OrderBy("frequency DESC", "id ASC")

	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list words: %v", err)
		return nil, err
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			log.Error("failed to scan word row: %v", err)
			return nil, err
		}
		words = append(words, *w)
	}
	log.Debug("found %d words", len(words))
	return words, rows.Err()
}

func (r *wordRepository) Count(ctx context.Context, filter models.WordFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")

	query := r.listQuery(filter)
	sqlStr, args, err := sqlBuilder.Select("COUNT(*)").FromSelect(query, "w").ToSql()
	if err != nil {
		log.Error("failed to build count query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count words: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *wordRepository) Insert(ctx context.Context, w models.Word) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("inserting word: arabic=%s", w.Arabic)

	var audioURL any
	if w.AudioURL != "" {
		audioURL = w.AudioURL
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO words (arabic, transliteration, english, frequency, audio_url)
VALUES (?, ?, ?, ?, ?)
`, w.Arabic, w.Transliteration, w.English, w.Frequency, audioURL)
	if err != nil {
		log.Error("failed to insert word: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get word id: %v", err)
		return 0, err
	}
	log.Debug("word inserted: id=%d", id)
	return id, nil
}
