package postgres

import (
	"context"
	"time"

	"guessr/internal/domain/entity"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/repository"
	"guessr/internal/errors"
	"guessr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type rankingRepository struct {
	db *gorm.DB
}

// NewRankingRepository creates a new instance of RankingRepository
func NewRankingRepository(db *gorm.DB) repository.RankingRepository {
	return &rankingRepository{db: db}
}

func (repo *rankingRepository) Create(ctx context.Context, entry *entity.RankingEntry) error {
	m := fromRankingDomain(entry)
	// DO NOTHING keeps the surrounding transaction usable on a duplicate
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoNothing: true,
		}).
		Create(m)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRankingExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewStorageUnavailableError(err, "failed to create ranking entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRankingExists
	}

	return nil
}

type dailyRow struct {
	UserID          uuid.UUID
	UserName        string
	SessionID       uuid.UUID
	Score           int
	RoundsCompleted int
	AverageDistance decimal.Decimal
	CompletedAt     time.Time
}

func (repo *rankingRepository) ListDaily(ctx context.Context, rankDate string, limit int) ([]*entity.DailyRank, error) {
	var rows []dailyRow
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Table("rankings r").
		Select("r.user_id, COALESCE(u.name, '') AS user_name, r.session_id, r.score, r.rounds_completed, r.average_distance, r.completed_at").
		Joins("LEFT JOIN users u ON u.id = r.user_id").
		Where("r.rank_date = ?", rankDate).
		Order("r.score DESC, r.rounds_completed DESC, r.completed_at ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to list daily ranking")
	}

	ranks := make([]*entity.DailyRank, 0, len(rows))
	for _, row := range rows {
		dist, _ := row.AverageDistance.Float64()
		ranks = append(ranks, &entity.DailyRank{
			UserID:          row.UserID,
			UserName:        row.UserName,
			SessionID:       row.SessionID,
			Score:           row.Score,
			RoundsCompleted: row.RoundsCompleted,
			AverageDistance: dist,
			CompletedAt:     row.CompletedAt,
		})
	}

	return ranks, nil
}

type weeklyRow struct {
	UserID       uuid.UUID
	UserName     string
	TotalScore   int
	GamesPlayed  int
	AverageScore int
	BestScore    int
}

func (repo *rankingRepository) ListWeekly(ctx context.Context, fromDate string, limit int) ([]*entity.WeeklyRank, error) {
	var rows []weeklyRow
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Table("rankings r").
		Select(`r.user_id, COALESCE(u.name, '') AS user_name, SUM(r.score) AS total_score,
			COUNT(*) AS games_played, ROUND(AVG(r.score)) AS average_score, MAX(r.score) AS best_score`).
		Joins("LEFT JOIN users u ON u.id = r.user_id").
		Where("r.rank_date >= ?", fromDate).
		Group("r.user_id, u.name").
		Order("total_score DESC, average_score DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to list weekly ranking")
	}

	ranks := make([]*entity.WeeklyRank, 0, len(rows))
	for _, row := range rows {
		ranks = append(ranks, &entity.WeeklyRank{
			UserID:       row.UserID,
			UserName:     row.UserName,
			TotalScore:   row.TotalScore,
			GamesPlayed:  row.GamesPlayed,
			AverageScore: row.AverageScore,
			BestScore:    row.BestScore,
		})
	}

	return ranks, nil
}

func (repo *rankingRepository) ListAllTime(ctx context.Context, limit int) ([]*entity.AllTimeRank, error) {
	var users []*model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("total_games > 0").
		Order("best_score DESC, total_games DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to list all-time ranking")
	}

	ranks := make([]*entity.AllTimeRank, 0, len(users))
	for _, m := range users {
		avg, _ := m.AverageScore.Float64()
		ranks = append(ranks, &entity.AllTimeRank{
			UserID:       m.ID,
			UserName:     m.Name,
			BestScore:    m.BestScore,
			TotalGames:   m.TotalGames,
			TotalScore:   int(m.TotalScore),
			AverageScore: avg,
		})
	}

	return ranks, nil
}

// AllTimePosition counts the distinct (best, games) pairs ranked strictly above the player.
func (repo *rankingRepository) AllTimePosition(ctx context.Context, userID uuid.UUID) (int, error) {
	var m model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		First(&m, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repository.ErrUserNotFound
		}

		return 0, domainerrors.NewStorageUnavailableError(err, "failed to find user")
	}
	if m.TotalGames == 0 {
		return 0, nil
	}

	var ahead int64
	err = repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(`SELECT COUNT(*) FROM (
			SELECT DISTINCT best_score, total_games FROM users
			WHERE total_games > 0 AND (best_score > ? OR (best_score = ? AND total_games > ?))
		) ahead`, m.BestScore, m.BestScore, m.TotalGames).
		Scan(&ahead).Error
	if err != nil {
		return 0, domainerrors.NewStorageUnavailableError(err, "failed to compute all-time position")
	}

	return int(ahead) + 1, nil
}

type dateStatsRow struct {
	TotalGames    int
	AverageScore  int
	MaxScore      int
	UniquePlayers int
}

func (repo *rankingRepository) StatsForDate(ctx context.Context, rankDate string) (*entity.TodayStats, error) {
	var row dateStatsRow
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.RankingModel{}).
		Select(`COUNT(*) AS total_games, COALESCE(ROUND(AVG(score)), 0) AS average_score,
			COALESCE(MAX(score), 0) AS max_score, COUNT(DISTINCT user_id) AS unique_players`).
		Where("rank_date = ?", rankDate).
		Scan(&row).Error
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to compute daily stats")
	}

	return &entity.TodayStats{
		Date:          rankDate,
		TotalGames:    row.TotalGames,
		AverageScore:  row.AverageScore,
		MaxScore:      row.MaxScore,
		UniquePlayers: row.UniquePlayers,
	}, nil
}

func (repo *rankingRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RankingEntry, error) {
	var models []*model.RankingModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to list recent games")
	}

	entries := make([]*entity.RankingEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, toRankingDomain(m))
	}

	return entries, nil
}

type summaryRow struct {
	TotalGames   int
	AverageScore float64
	BestScore    int
}

func (repo *rankingRepository) Summary(ctx context.Context) (*repository.ScoreSummary, error) {
	var row summaryRow
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.RankingModel{}).
		Select("COUNT(*) AS total_games, COALESCE(AVG(score), 0) AS average_score, COALESCE(MAX(score), 0) AS best_score").
		Scan(&row).Error
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to summarise rankings")
	}

	return &repository.ScoreSummary{
		TotalGames:   row.TotalGames,
		AverageScore: row.AverageScore,
		BestScore:    row.BestScore,
	}, nil
}

func (repo *rankingRepository) ActivitySince(ctx context.Context, fromDate string) ([]entity.DailyActivity, error) {
	var rows []entity.DailyActivity
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.RankingModel{}).
		Select("rank_date AS date, COUNT(*) AS games").
		Where("rank_date >= ?", fromDate).
		Group("rank_date").
		Order("rank_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to count recent activity")
	}

	return rows, nil
}

func toRankingDomain(m *model.RankingModel) *entity.RankingEntry {
	dist, _ := m.AverageDistance.Float64()

	return &entity.RankingEntry{
		ID:              m.ID,
		UserID:          m.UserID,
		SessionID:       m.SessionID,
		Score:           m.Score,
		RoundsCompleted: m.RoundsCompleted,
		AverageDistance: dist,
		CompletedAt:     m.CompletedAt,
		RankDate:        m.RankDate,
	}
}

func fromRankingDomain(e *entity.RankingEntry) *model.RankingModel {
	return &model.RankingModel{
		ID:              e.ID,
		UserID:          e.UserID,
		SessionID:       e.SessionID,
		Score:           e.Score,
		RoundsCompleted: e.RoundsCompleted,
		AverageDistance: decimal.NewFromFloat(e.AverageDistance).Round(2),
		CompletedAt:     e.CompletedAt,
		RankDate:        e.RankDate,
	}
}
