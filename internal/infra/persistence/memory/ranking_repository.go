package memory

import (
	"context"
	"sort"

	"guessr/internal/domain/entity"
	"guessr/internal/domain/repository"
	"guessr/internal/util"

	"github.com/google/uuid"
)

type rankingRepository struct {
	a access
}

// NewRankingRepository creates a RankingRepository over store.
func NewRankingRepository(store *Store) repository.RankingRepository {
	return &rankingRepository{a: access{store: store}}
}

func (repo *rankingRepository) Create(ctx context.Context, entry *entity.RankingEntry) error {
	return repo.a.write(ctx, func(s *Store) error {
		if _, ok := s.rankingBySession[entry.SessionID]; ok {
			return repository.ErrRankingExists
		}
		if _, ok := s.users[entry.UserID]; !ok {
			return repository.ErrUserNotFound
		}
		s.rankings[entry.ID] = cloneRanking(entry)
		s.rankingBySession[entry.SessionID] = entry.ID

		return nil
	})
}

func (repo *rankingRepository) ListDaily(ctx context.Context, rankDate string, limit int) ([]*entity.DailyRank, error) {
	var ranks []*entity.DailyRank
	err := repo.a.read(ctx, func(s *Store) error {
		ranks = make([]*entity.DailyRank, 0)
		for _, e := range s.rankings {
			if e.RankDate != rankDate {
				continue
			}
			ranks = append(ranks, &entity.DailyRank{
				UserID:          e.UserID,
				UserName:        s.userName(e.UserID),
				SessionID:       e.SessionID,
				Score:           e.Score,
				RoundsCompleted: e.RoundsCompleted,
				AverageDistance: util.Round2(e.AverageDistance),
				CompletedAt:     e.CompletedAt,
			})
		}
		sort.SliceStable(ranks, func(i, j int) bool {
			a, b := ranks[i], ranks[j]
			if a.Score != b.Score {
				return a.Score > b.Score
			}
			if a.RoundsCompleted != b.RoundsCompleted {
				return a.RoundsCompleted > b.RoundsCompleted
			}

			return a.CompletedAt.Before(b.CompletedAt)
		})
		ranks = truncate(ranks, limit)

		return nil
	})

	return ranks, err
}

func (repo *rankingRepository) ListWeekly(ctx context.Context, fromDate string, limit int) ([]*entity.WeeklyRank, error) {
	var ranks []*entity.WeeklyRank
	err := repo.a.read(ctx, func(s *Store) error {
		byUser := make(map[uuid.UUID]*entity.WeeklyRank)
		for _, e := range s.rankings {
			if e.RankDate < fromDate {
				continue
			}
			w, ok := byUser[e.UserID]
			if !ok {
				w = &entity.WeeklyRank{UserID: e.UserID, UserName: s.userName(e.UserID)}
				byUser[e.UserID] = w
			}
			w.TotalScore += e.Score
			w.GamesPlayed++
			w.BestScore = max(w.BestScore, e.Score)
		}

		ranks = make([]*entity.WeeklyRank, 0, len(byUser))
		for _, w := range byUser {
			w.AverageScore = util.RoundHalfUp(float64(w.TotalScore) / float64(w.GamesPlayed))
			ranks = append(ranks, w)
		}
		sort.Slice(ranks, func(i, j int) bool {
			a, b := ranks[i], ranks[j]
			if a.TotalScore != b.TotalScore {
				return a.TotalScore > b.TotalScore
			}
			if a.AverageScore != b.AverageScore {
				return a.AverageScore > b.AverageScore
			}

			return a.UserID.String() < b.UserID.String()
		})
		ranks = truncate(ranks, limit)

		return nil
	})

	return ranks, err
}

func (repo *rankingRepository) ListAllTime(ctx context.Context, limit int) ([]*entity.AllTimeRank, error) {
	var ranks []*entity.AllTimeRank
	err := repo.a.read(ctx, func(s *Store) error {
		ranks = make([]*entity.AllTimeRank, 0)
		for _, u := range s.users {
			if u.TotalGames == 0 {
				continue
			}
			ranks = append(ranks, &entity.AllTimeRank{
				UserID:       u.ID,
				UserName:     u.Name,
				BestScore:    u.BestScore,
				TotalGames:   u.TotalGames,
				TotalScore:   u.TotalScore,
				AverageScore: u.AverageScore,
			})
		}
		sort.Slice(ranks, func(i, j int) bool {
			a, b := ranks[i], ranks[j]
			if a.BestScore != b.BestScore {
				return a.BestScore > b.BestScore
			}
			if a.TotalGames != b.TotalGames {
				return a.TotalGames > b.TotalGames
			}

			return a.UserID.String() < b.UserID.String()
		})
		ranks = truncate(ranks, limit)

		return nil
	})

	return ranks, err
}

func (repo *rankingRepository) AllTimePosition(ctx context.Context, userID uuid.UUID) (int, error) {
	var position int
	err := repo.a.read(ctx, func(s *Store) error {
		me, ok := s.users[userID]
		if !ok {
			return repository.ErrUserNotFound
		}
		if me.TotalGames == 0 {
			return nil
		}

		type key struct{ best, games int }
		ahead := make(map[key]struct{})
		for _, u := range s.users {
			if u.TotalGames == 0 {
				continue
			}
			if u.BestScore > me.BestScore || (u.BestScore == me.BestScore && u.TotalGames > me.TotalGames) {
				ahead[key{u.BestScore, u.TotalGames}] = struct{}{}
			}
		}
		position = len(ahead) + 1

		return nil
	})

	return position, err
}

func (repo *rankingRepository) StatsForDate(ctx context.Context, rankDate string) (*entity.TodayStats, error) {
	stats := &entity.TodayStats{Date: rankDate}
	err := repo.a.read(ctx, func(s *Store) error {
		players := make(map[uuid.UUID]struct{})
		sum := 0
		for _, e := range s.rankings {
			if e.RankDate != rankDate {
				continue
			}
			stats.TotalGames++
			sum += e.Score
			stats.MaxScore = max(stats.MaxScore, e.Score)
			players[e.UserID] = struct{}{}
		}
		if stats.TotalGames > 0 {
			stats.AverageScore = util.RoundHalfUp(float64(sum) / float64(stats.TotalGames))
		}
		stats.UniquePlayers = len(players)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (repo *rankingRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RankingEntry, error) {
	var entries []*entity.RankingEntry
	err := repo.a.read(ctx, func(s *Store) error {
		entries = make([]*entity.RankingEntry, 0)
		for _, e := range s.rankings {
			if e.UserID == userID {
				entries = append(entries, cloneRanking(e))
			}
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].CompletedAt.After(entries[j].CompletedAt)
		})
		entries = truncate(entries, limit)

		return nil
	})

	return entries, err
}

func (repo *rankingRepository) Summary(ctx context.Context) (*repository.ScoreSummary, error) {
	summary := &repository.ScoreSummary{}
	err := repo.a.read(ctx, func(s *Store) error {
		sum := 0
		for _, e := range s.rankings {
			summary.TotalGames++
			sum += e.Score
			summary.BestScore = max(summary.BestScore, e.Score)
		}
		if summary.TotalGames > 0 {
			summary.AverageScore = float64(sum) / float64(summary.TotalGames)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (repo *rankingRepository) ActivitySince(ctx context.Context, fromDate string) ([]entity.DailyActivity, error) {
	var activity []entity.DailyActivity
	err := repo.a.read(ctx, func(s *Store) error {
		counts := make(map[string]int)
		for _, e := range s.rankings {
			if e.RankDate >= fromDate {
				counts[e.RankDate]++
			}
		}
		activity = make([]entity.DailyActivity, 0, len(counts))
		for date, games := range counts {
			activity = append(activity, entity.DailyActivity{Date: date, Games: games})
		}
		sort.Slice(activity, func(i, j int) bool { return activity[i].Date < activity[j].Date })

		return nil
	})

	return activity, err
}

func (s *Store) userName(id uuid.UUID) string {
	if u, ok := s.users[id]; ok {
		return u.Name
	}

	return ""
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}

	return items
}
