package repository

import (
	"context"

	"github.com/tijeane/quran-learning/internal/models"
)

// WordRepository handles vocabulary data access. Lookups that find
// nothing return (nil, nil).
type WordRepository interface {
	Get(ctx context.Context, id int64) (*models.Word, error)
	GetByArabic(ctx context.Context, arabic string) (*models.Word, error)
	List(ctx context.Context, filter models.WordFilter) ([]models.Word, error)
	Count(ctx context.Context, filter models.WordFilter) (int, error)
	Insert(ctx context.Context, word models.Word) (int64, error)
}

// ProgressRepository handles per-user mastery records.
type ProgressRepository interface {
	Get(ctx context.Context, userID, wordID int64) (*models.ProgressRecord, error)
	ListByUser(ctx context.Context, userID int64) ([]models.ProgressRecord, error)
	// Upsert inserts or replaces the record keyed on (user_id, word_id)
	// and returns the stored row.
	Upsert(ctx context.Context, rec models.ProgressRecord) (*models.ProgressRecord, error)
}

// StatsRepository handles the user_stats cache.
type StatsRepository interface {
	Get(ctx context.Context, userID int64) (*models.CachedUserStats, error)
	Refresh(ctx context.Context, userID int64) error
	RefreshAll(ctx context.Context) error
}

// UserRepository handles account data access.
type UserRepository interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (int64, error)
}
