package impl

import (
	"context"
	"log/slog"
	"time"

	"guessr/config"
	deliverycontext "guessr/internal/delivery/context"
	"guessr/internal/domain/entity"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/repository"
	"guessr/internal/usecase"
	"guessr/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	weeklyWindowDays   = 7
	activityWindowDays = 7
)

// rankingService implements the RankingUsecase interface.
type rankingService struct {
	txManager repository.TransactionManager
	cfg       *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewRankingService is the constructor for rankingService.
func NewRankingService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RankingUsecase {
	return &rankingService{
		txManager: txManager,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *rankingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *rankingService) today() string {
	return util.DateKey(srv.now(), rankingLocation(srv.cfg))
}

// RecordCompletion records a completed session in its own transaction.
func (srv *rankingService) RecordCompletion(ctx context.Context, session *entity.Session) error {
	if session == nil || !session.IsCompleted() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "session is not completed")
	}

	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var recorded bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		recorded, err = recordCompletion(ctx, repoFactory, session, rankingLocation(srv.cfg))

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record completion", slog.Any("error", err), slog.String("session_id", session.ID.String()))

		return errors.Wrap(err, "failed to record completion")
	}
	srv.log(ctx).Debug("Completion recorded", slog.String("session_id", session.ID.String()), slog.Bool("recorded", recorded))

	return nil
}

// RecordCompletionBySession is the entry point of the stats worker.
func (srv *rankingService) RecordCompletionBySession(ctx context.Context, sessionID uuid.UUID) error {
	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var recorded bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, err := repoFactory.SessionRepo().FindByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}
		if !session.IsCompleted() {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("session is not completed"), "cannot record session")
		}

		recorded, err = recordCompletion(ctx, repoFactory, session, rankingLocation(srv.cfg))

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to record completion")
	}
	srv.log(ctx).Info("Completion processed", slog.String("session_id", sessionID.String()), slog.Bool("recorded", recorded))

	return nil
}

// recordCompletion inserts the ranking entry and folds the score into the
// player aggregates using repositories of the caller's transaction.
// Anonymous sessions and already recorded sessions report recorded=false.
func recordCompletion(ctx context.Context, repoFactory repository.RepositoryFactory, session *entity.Session, loc *time.Location) (bool, error) {
	if session.UserID == nil || !session.IsCompleted() {
		return false, nil
	}

	completedAt := session.UpdatedAt
	if session.CompletedAt != nil {
		completedAt = *session.CompletedAt
	}

	entry := &entity.RankingEntry{
		ID:              uuid.New(),
		UserID:          *session.UserID,
		SessionID:       session.ID,
		Score:           session.TotalScore,
		RoundsCompleted: session.TotalRounds(),
		AverageDistance: util.Round2(session.AverageDistance()),
		CompletedAt:     completedAt,
		RankDate:        util.DateKey(completedAt, loc),
	}

	if err := repoFactory.RankingRepo().Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrRankingExists) {
			return false, nil
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, errors.Wrap(domainerrors.ErrUserNotFound, "ranking owner not found")
		}

		return false, errors.Wrap(err, "failed to create ranking entry")
	}

	if err := repoFactory.UserRepo().ApplyCompletion(ctx, entry.UserID, entry.Score); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, errors.Wrap(domainerrors.ErrUserNotFound, "ranking owner not found")
		}

		return false, errors.Wrap(err, "failed to update user aggregates")
	}

	return true, nil
}

func (srv *rankingService) DailyRankings(ctx context.Context, date string, limit int) (*usecase.DailyRanking, error) {
	if date == "" {
		date = srv.today()
	} else if _, err := util.ParseDateKey(date); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("date must be YYYY-MM-DD"), err.Error())
	}
	limit = normalizeLimit(srv.cfg, limit)

	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var entries []*entity.DailyRank
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		entries, err = repoFactory.RankingRepo().ListDaily(ctx, date, limit)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get daily rankings")
	}

	if entries == nil {
		entries = []*entity.DailyRank{}
	}
	denseRank(entries,
		func(prev, cur *entity.DailyRank) bool {
			return prev.Score == cur.Score && prev.RoundsCompleted == cur.RoundsCompleted
		},
		func(row *entity.DailyRank, rank int) { row.Rank = rank },
	)

	return &usecase.DailyRanking{Date: date, Entries: entries}, nil
}

func (srv *rankingService) WeeklyRankings(ctx context.Context, limit int) (*usecase.WeeklyRanking, error) {
	weekStart, err := util.ShiftDateKey(srv.today(), -weeklyWindowDays)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute week start")
	}
	limit = normalizeLimit(srv.cfg, limit)

	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var entries []*entity.WeeklyRank
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		entries, err = repoFactory.RankingRepo().ListWeekly(ctx, weekStart, limit)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get weekly rankings")
	}

	if entries == nil {
		entries = []*entity.WeeklyRank{}
	}
	denseRank(entries,
		func(prev, cur *entity.WeeklyRank) bool {
			return prev.TotalScore == cur.TotalScore && prev.AverageScore == cur.AverageScore
		},
		func(row *entity.WeeklyRank, rank int) { row.Rank = rank },
	)

	return &usecase.WeeklyRanking{WeekStart: weekStart, Entries: entries}, nil
}

func (srv *rankingService) AllTimeRankings(ctx context.Context, limit int) ([]*entity.AllTimeRank, error) {
	limit = normalizeLimit(srv.cfg, limit)

	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var entries []*entity.AllTimeRank
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		entries, err = repoFactory.RankingRepo().ListAllTime(ctx, limit)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get all-time rankings")
	}

	if entries == nil {
		entries = []*entity.AllTimeRank{}
	}
	denseRank(entries,
		func(prev, cur *entity.AllTimeRank) bool {
			return prev.BestScore == cur.BestScore && prev.TotalGames == cur.TotalGames
		},
		func(row *entity.AllTimeRank, rank int) { row.Rank = rank },
	)

	return entries, nil
}

func (srv *rankingService) TodayStats(ctx context.Context) (*entity.TodayStats, error) {
	today := srv.today()

	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var stats *entity.TodayStats
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		stats, err = repoFactory.RankingRepo().StatsForDate(ctx, today)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get today stats")
	}

	return stats, nil
}

// GlobalStats runs its independent aggregates concurrently.
func (srv *rankingService) GlobalStats(ctx context.Context) (*entity.GlobalStats, error) {
	today := srv.today()
	from, err := util.ShiftDateKey(today, -(activityWindowDays - 1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute activity window")
	}

	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var (
		players  int
		summary  *repository.ScoreSummary
		activity []entity.DailyActivity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.txManager.Execute(gctx, func(repoFactory repository.RepositoryFactory) error {
			var err error
			players, err = repoFactory.UserRepo().CountPlayers(gctx)

			return err
		})
	})
	g.Go(func() error {
		return srv.txManager.Execute(gctx, func(repoFactory repository.RepositoryFactory) error {
			var err error
			summary, err = repoFactory.RankingRepo().Summary(gctx)

			return err
		})
	})
	g.Go(func() error {
		return srv.txManager.Execute(gctx, func(repoFactory repository.RepositoryFactory) error {
			var err error
			activity, err = repoFactory.RankingRepo().ActivitySince(gctx, from)

			return err
		})
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to get global stats")
	}

	days, err := util.DateKeysBetween(from, today)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute activity window")
	}
	counts := make(map[string]int, len(activity))
	for _, a := range activity {
		counts[a.Date] = a.Games
	}
	recent := make([]entity.DailyActivity, 0, len(days))
	for _, day := range days {
		recent = append(recent, entity.DailyActivity{Date: day, Games: counts[day]})
	}

	return &entity.GlobalStats{
		TotalPlayers:   players,
		TotalGames:     summary.TotalGames,
		AverageScore:   util.RoundHalfUp(summary.AverageScore),
		BestScore:      summary.BestScore,
		RecentActivity: recent,
	}, nil
}
