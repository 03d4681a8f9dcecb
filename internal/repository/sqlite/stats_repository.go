package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tijeane/quran-learning/internal/db"
	"github.com/tijeane/quran-learning/internal/logger"
	"github.com/tijeane/quran-learning/internal/models"
	"github.com/tijeane/quran-learning/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Get(ctx context.Context, userID int64) (*models.CachedUserStats, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")

	var s models.CachedUserStats
	err := r.db.QueryRowContext(ctx, `
SELECT user_id, words_mastered, accuracy_percentage, total_points, current_level, refreshed_at
FROM user_stats
WHERE user_id = ?
`, userID).Scan(&s.UserID, &s.WordsMastered, &s.AccuracyPercentage, &s.TotalPoints, &s.CurrentLevel, &s.RefreshedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no cached stats: user_id=%d", userID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get cached stats: %v", err)
		return nil, err
	}
	return &s, nil
}

// refreshStatsSQL recomputes the cache row for one user from user_progress.
// The formulas mirror progress.ComputeStats: mastered at level >= 80,
// accuracy from summed answers, ten points per correct answer, one level
// per twenty mastered words.
const refreshStatsSQL = `
INSERT INTO user_stats (user_id, words_mastered, accuracy_percentage, total_points, current_level, refreshed_at)
SELECT p.user_id,
       SUM(CASE WHEN p.mastery_level >= 80 THEN 1 ELSE 0 END),
       CASE WHEN SUM(p.total_attempts) > 0
            THEN CAST(ROUND(100.0 * SUM(p.correct_answers) / SUM(p.total_attempts)) AS INTEGER)
            ELSE 0 END,
       SUM(p.correct_answers) * 10,
       SUM(CASE WHEN p.mastery_level >= 80 THEN 1 ELSE 0 END) / 20 + 1,
       CURRENT_TIMESTAMP
FROM user_progress p
WHERE p.user_id = ?
GROUP BY p.user_id
ON CONFLICT (user_id) DO UPDATE SET
    words_mastered = excluded.words_mastered,
    accuracy_percentage = excluded.accuracy_percentage,
    total_points = excluded.total_points,
    current_level = excluded.current_level,
    refreshed_at = excluded.refreshed_at
`

func (r *statsRepository) Refresh(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("refreshing cached stats: user_id=%d", userID)

	_, err := r.db.ExecContext(ctx, refreshStatsSQL, userID)
	if err != nil {
		log.Error("failed to refresh stats: %v", err)
	}
	return err
}

func (r *statsRepository) RefreshAll(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("refreshing cached stats for all users")

	return db.Tx(ctx, r.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `SELECT DISTINCT user_id FROM user_progress`)
		if err != nil {
			return err
		}
		var userIDs []int64
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			userIDs = append(userIDs, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, id := range userIDs {
			if _, err := tx.ExecContext(ctx, refreshStatsSQL, id); err != nil {
				return err
			}
		}
		log.Info("refreshed cached stats for %d users", len(userIDs))
		return nil
	})
}
