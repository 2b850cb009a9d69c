package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"guessr/config"
	deliverycontext "guessr/internal/delivery/context"
	"guessr/internal/domain/entity"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/repository"
	"guessr/internal/domain/scoring"
	"guessr/internal/domain/service"
	"guessr/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAbandonAfter = 24 * time.Hour

// gameService implements the GameUsecase interface.
type gameService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	qrCode    service.QRCodeService
	cfg       *config.Config
	logger    *slog.Logger
	bounds    orb.Bound
	now       func() time.Time
}

// GameServiceParams holds dependencies for the game service.
type GameServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewGameService is the constructor for gameService.
func NewGameService(params GameServiceParams) usecase.GameUsecase {
	return &gameService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		qrCode:    params.QRCode,
		cfg:       params.Config,
		logger:    params.Logger,
		bounds:    playableBounds(params.Config),
		now:       time.Now,
	}
}

// playableBounds falls back to the whole globe when no map area is configured.
func playableBounds(cfg *config.Config) orb.Bound {
	if cfg == nil || cfg.Game == nil {
		return orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}
	}
	b := cfg.Game.MapBounds
	if b.MinLat == 0 && b.MaxLat == 0 && b.MinLng == 0 && b.MaxLng == 0 {
		return orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}
	}

	return orb.Bound{Min: orb.Point{b.MinLng, b.MinLat}, Max: orb.Point{b.MaxLng, b.MaxLat}}
}

func (srv *gameService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *gameService) roundLimits() (def, maxRounds int) {
	def, maxRounds = 5, 10
	if srv.cfg != nil && srv.cfg.Game != nil {
		if srv.cfg.Game.DefaultRoundCount > 0 {
			def = srv.cfg.Game.DefaultRoundCount
		}
		if srv.cfg.Game.MaxRoundCount > 0 {
			maxRounds = srv.cfg.Game.MaxRoundCount
		}
	}

	return def, maxRounds
}

func (srv *gameService) asyncRanking() bool {
	return srv.cfg != nil && srv.cfg.Ranking != nil && srv.cfg.Ranking.Async
}

// StartSession draws distinct challenges and persists a new playing session.
func (srv *gameService) StartSession(ctx context.Context, input usecase.StartSessionInput) (*usecase.SessionView, error) {
	def, maxRounds := srv.roundLimits()
	roundCount := input.RoundCount
	if roundCount == 0 {
		roundCount = def
	}
	if roundCount < 1 || roundCount > maxRounds {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed.WithDetails("round_count is out of range"), "round count %d", roundCount)
	}

	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var (
		session *entity.Session
		first   *entity.Location
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.UserID != nil {
			if _, err := repoFactory.UserRepo().FindByID(ctx, *input.UserID); err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return errors.Wrap(domainerrors.ErrUserNotFound, "session owner not found")
				}

				return errors.Wrap(err, "failed to find user")
			}
		}

		locations, err := repoFactory.LocationRepo().SampleUniqueActive(ctx, roundCount)
		if err != nil {
			return errors.Wrap(err, "failed to sample locations")
		}

		rounds, err := buildRounds(locations, roundCount)
		if err != nil {
			return err
		}

		session = entity.NewSession(input.UserID, rounds, srv.now())
		if err := repoFactory.SessionRepo().Create(ctx, session); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "session owner not found")
			}

			return errors.Wrap(err, "failed to create session")
		}
		first = locations[0]

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to start session", slog.Any("error", err), slog.Int("round_count", roundCount))

		return nil, errors.Wrap(err, "failed to start session")
	}

	srv.log(ctx).Info("Session started",
		slog.String("session_id", session.ID.String()),
		slog.Int("total_rounds", session.TotalRounds()),
		slog.Bool("anonymous", session.UserID == nil),
	)

	return srv.toSessionView(session, challengeFor(session, first)), nil
}

// buildRounds fixes the round order and the image shown for every round.
func buildRounds(locations []*entity.Location, roundCount int) ([]entity.Round, error) {
	if len(locations) < roundCount {
		return nil, errors.Wrapf(domainerrors.ErrInsufficientContent, "need %d locations, have %d", roundCount, len(locations))
	}

	seen := make(map[int64]struct{}, roundCount)
	rounds := make([]entity.Round, 0, roundCount)
	for _, loc := range locations[:roundCount] {
		if _, dup := seen[loc.ID]; dup {
			return nil, errors.Wrapf(domainerrors.ErrInsufficientContent, "location %d drawn twice", loc.ID)
		}
		seen[loc.ID] = struct{}{}

		media := loc.SelectMedia()
		if media == nil {
			return nil, errors.Wrapf(domainerrors.ErrInsufficientContent, "location %d has no ready media", loc.ID)
		}
		rounds = append(rounds, entity.Round{LocationID: loc.ID, MediaID: media.ID})
	}

	return rounds, nil
}

// GetSession returns the session and, while unanswered rounds remain, the current challenge.
func (srv *gameService) GetSession(ctx context.Context, sessionID uuid.UUID) (*usecase.SessionView, error) {
	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var (
		session *entity.Session
		current *entity.Location
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		session, err = findSession(ctx, repoFactory, sessionID)
		if err != nil {
			return err
		}

		round := session.Current()
		if round == nil || session.Status != entity.SessionStatusPlaying {
			return nil
		}
		current, err = findRoundLocation(ctx, repoFactory, round)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}

	var challenge *usecase.RoundChallenge
	if current != nil {
		challenge = challengeFor(session, current)
	}

	return srv.toSessionView(session, challenge), nil
}

// SubmitGuess scores a guess against the current round.
func (srv *gameService) SubmitGuess(ctx context.Context, input usecase.SubmitGuessInput) (*usecase.RoundResult, error) {
	if !input.Guess.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("guess is not a valid coordinate"), "invalid guess")
	}
	if !srv.bounds.Contains(input.Guess.Point()) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("guess is outside the playable area"), "invalid guess")
	}
	if err := validateTimeSpent(input.TimeSpent); err != nil {
		return nil, err
	}

	guess := input.Guess

	return srv.resolveRound(ctx, input.SessionID, input.Round, func(target *entity.Location) entity.RoundOutcome {
		distance := scoring.DistanceKm(guess.Point(), target.Coordinate().Point())

		return entity.RoundOutcome{
			Guess:     &guess,
			Distance:  &distance,
			Score:     scoring.Score(distance),
			TimeSpent: input.TimeSpent,
		}
	})
}

// TimeExpired closes the current round with zero points and no guess.
func (srv *gameService) TimeExpired(ctx context.Context, input usecase.TimeExpiredInput) (*usecase.RoundResult, error) {
	if err := validateTimeSpent(input.TimeSpent); err != nil {
		return nil, err
	}
	if input.Round < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("round must not be negative"), "invalid round")
	}
	round := input.Round

	return srv.resolveRound(ctx, input.SessionID, &round, func(*entity.Location) entity.RoundOutcome {
		return entity.RoundOutcome{
			Score:     0,
			TimeSpent: input.TimeSpent,
			TimedOut:  true,
		}
	})
}

func validateTimeSpent(timeSpent *float64) error {
	if timeSpent == nil {
		return nil
	}
	if math.IsNaN(*timeSpent) || math.IsInf(*timeSpent, 0) || *timeSpent < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("time_spent must be a non-negative number"), "invalid time spent")
	}

	return nil
}

// resolveRound applies one outcome to the current round and persists it with
// a compare-and-set on the round cursor. A concurrent resolution of the same
// round makes this call fail with ErrGameAlreadyComplete.
func (srv *gameService) resolveRound(
	ctx context.Context,
	sessionID uuid.UUID,
	expectedRound *int,
	outcomeFor func(target *entity.Location) entity.RoundOutcome,
) (*usecase.RoundResult, error) {
	reqCtx := ctx
	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var (
		session *entity.Session
		target  *entity.Location
		outcome entity.RoundOutcome
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		session, err = findSession(ctx, repoFactory, sessionID)
		if err != nil {
			return err
		}

		round := session.Current()
		if round == nil || session.Status != entity.SessionStatusPlaying {
			return errors.Wrap(domainerrors.ErrGameAlreadyComplete, "no round left to answer")
		}
		if expectedRound != nil && *expectedRound != session.CurrentRound {
			return errors.Wrapf(domainerrors.ErrGameAlreadyComplete.WithDetails("round already resolved"), "round %d is not current", *expectedRound)
		}

		target, err = findRoundLocation(ctx, repoFactory, round)
		if err != nil {
			return err
		}

		cursor := session.CurrentRound
		outcome = outcomeFor(target)
		if err := session.Resolve(outcome, srv.now()); err != nil {
			return errors.Wrap(domainerrors.ErrGameAlreadyComplete.WithDetails("round already resolved"), err.Error())
		}

		if err := repoFactory.SessionRepo().UpdateIfRound(ctx, session, cursor); err != nil {
			if errors.Is(err, entity.ErrRoundAlreadyResolved) {
				return errors.Wrap(domainerrors.ErrGameAlreadyComplete.WithDetails("round already resolved"), "lost round update")
			}
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
			}

			return errors.Wrap(err, "failed to update session")
		}

		if session.IsCompleted() && !srv.asyncRanking() {
			if _, err := recordCompletion(ctx, repoFactory, session, rankingLocation(srv.cfg)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve round", slog.Any("error", err), slog.String("session_id", sessionID.String()))

		return nil, errors.Wrap(err, "failed to resolve round")
	}

	if session.IsCompleted() {
		srv.announceCompletion(reqCtx, session)
	}

	return &usecase.RoundResult{
		Distance: outcome.Distance,
		Score:    outcome.Score,
		CorrectLocation: &usecase.CorrectLocation{
			Lat:        target.Latitude,
			Lng:        target.Longitude,
			Name:       target.Name,
			Prefecture: target.Prefecture,
			City:       target.City,
		},
		IsComplete:   session.IsCompleted(),
		IsTimeUp:     outcome.TimedOut,
		TotalScore:   session.TotalScore,
		CurrentRound: session.CurrentRound,
		TotalRounds:  session.TotalRounds(),
	}, nil
}

// announceCompletion runs after the session is committed and never fails the
// request. With async ranking the worker only learns about the session from
// the event, so an unpublished completion is recorded here instead.
func (srv *gameService) announceCompletion(ctx context.Context, session *entity.Session) {
	err := srv.publishCompletion(ctx, session)
	if err == nil {
		return
	}

	srv.log(ctx).Error("Failed to publish session completion",
		slog.Any("error", err),
		slog.String("session_id", session.ID.String()),
		slog.Bool("async_ranking", srv.asyncRanking()),
	)
	if !srv.asyncRanking() {
		return
	}

	if err := srv.recordInline(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to record unpublished completion",
			slog.Any("error", err),
			slog.String("session_id", session.ID.String()),
		)
	}
}

func (srv *gameService) publishCompletion(ctx context.Context, session *entity.Session) error {
	if srv.publisher == nil {
		return errors.New("no event publisher configured")
	}

	event := &service.SessionCompletedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		SessionID:   session.ID.String(),
		TotalScore:  session.TotalScore,
		TotalRounds: session.TotalRounds(),
		CompletedAt: srv.now().UTC().Format(time.RFC3339),
	}
	if session.UserID != nil {
		event.UserID = session.UserID.String()
	}
	if session.CompletedAt != nil {
		event.CompletedAt = session.CompletedAt.UTC().Format(time.RFC3339)
	}

	return errors.Wrap(srv.publisher.PublishSessionCompleted(ctx, event), "failed to publish session completed event")
}

// recordInline records a completion in its own transaction. A worker that
// already recorded the session turns this into a no-op.
func (srv *gameService) recordInline(ctx context.Context, session *entity.Session) error {
	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var recorded bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		recorded, err = recordCompletion(ctx, repoFactory, session, rankingLocation(srv.cfg))

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to record completion")
	}
	srv.log(ctx).Info("Completion recorded without the worker",
		slog.String("session_id", session.ID.String()),
		slog.Bool("recorded", recorded),
	)

	return nil
}

// GetResults returns every round joined with its location and image.
func (srv *gameService) GetResults(ctx context.Context, sessionID uuid.UUID) (*usecase.SessionResults, error) {
	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var (
		session   *entity.Session
		locations map[int64]*entity.Location
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		session, err = findSession(ctx, repoFactory, sessionID)
		if err != nil {
			return err
		}

		ids := make([]int64, 0, len(session.Rounds))
		for _, r := range session.Rounds {
			ids = append(ids, r.LocationID)
		}
		found, err := repoFactory.LocationRepo().FindByIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to find locations")
		}

		locations = make(map[int64]*entity.Location, len(found))
		for _, loc := range found {
			locations[loc.ID] = loc
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get results")
	}

	details := make([]*usecase.RoundDetail, 0, len(session.Rounds))
	for i, r := range session.Rounds {
		detail := &usecase.RoundDetail{
			RoundIndex: i,
			Guess:      r.Guess,
			Distance:   r.Distance,
			Score:      r.Score,
			TimeSpent:  r.TimeSpent,
			TimedOut:   r.TimedOut,
			AnsweredAt: r.AnsweredAt,
		}
		if loc, ok := locations[r.LocationID]; ok {
			detail.Location = loc
			detail.Media = loc.FindMedia(r.MediaID)
		}
		details = append(details, detail)
	}

	return &usecase.SessionResults{
		SessionID:       session.ID,
		UserID:          session.UserID,
		Status:          session.Status,
		CurrentRound:    session.CurrentRound,
		TotalRounds:     session.TotalRounds(),
		TotalScore:      session.TotalScore,
		AverageDistance: session.AverageDistance(),
		StartedAt:       session.StartedAt,
		CompletedAt:     session.CompletedAt,
		Rounds:          details,
	}, nil
}

// ResultQRCode renders a share code for an existing session.
func (srv *gameService) ResultQRCode(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := findSession(ctx, repoFactory, sessionID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}

	png, err := srv.qrCode.GenerateResultQR(sessionID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

// AbandonStale closes playing sessions idle for longer than olderThan.
func (srv *gameService) AbandonStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		olderThan = defaultAbandonAfter
		if srv.cfg != nil && srv.cfg.Worker != nil && srv.cfg.Worker.AbandonAfter > 0 {
			olderThan = srv.cfg.Worker.AbandonAfter
		}
	}
	cutoff := srv.now().Add(-olderThan)

	ctx, cancel := withStorageTimeout(ctx, srv.cfg)
	defer cancel()

	var abandoned int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		abandoned, err = repoFactory.SessionRepo().AbandonStale(ctx, cutoff)

		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to abandon stale sessions")
	}
	srv.log(ctx).Info("Stale sessions abandoned", slog.Int64("count", abandoned), slog.Time("cutoff", cutoff))

	return abandoned, nil
}

func findSession(ctx context.Context, repoFactory repository.RepositoryFactory, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := repoFactory.SessionRepo().FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return session, nil
}

func findRoundLocation(ctx context.Context, repoFactory repository.RepositoryFactory, round *entity.Round) (*entity.Location, error) {
	loc, err := repoFactory.LocationRepo().FindByID(ctx, round.LocationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrLocationNotFound, "location %d", round.LocationID)
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return loc, nil
}

func challengeFor(session *entity.Session, loc *entity.Location) *usecase.RoundChallenge {
	round := session.Current()
	if round == nil || loc == nil {
		return nil
	}

	return &usecase.RoundChallenge{
		RoundIndex: session.CurrentRound,
		Location: &usecase.ChallengeLocation{
			ID:         loc.ID,
			Difficulty: loc.Difficulty,
		},
		Media:   withoutAlt(loc.FindMedia(round.MediaID)),
		Gallery: withoutAltAll(loc.ReadyMedia()),
	}
}

// withoutAlt copies an image without its alt text, which usually names the place.
func withoutAlt(m *entity.MediaAsset) *entity.MediaAsset {
	if m == nil {
		return nil
	}
	c := *m
	c.Alt = ""

	return &c
}

func withoutAltAll(media []*entity.MediaAsset) []*entity.MediaAsset {
	out := make([]*entity.MediaAsset, 0, len(media))
	for _, m := range media {
		out = append(out, withoutAlt(m))
	}

	return out
}

func (srv *gameService) toSessionView(session *entity.Session, challenge *usecase.RoundChallenge) *usecase.SessionView {
	return &usecase.SessionView{
		SessionID:    session.ID,
		UserID:       session.UserID,
		Status:       session.Status,
		CurrentRound: session.CurrentRound,
		TotalRounds:  session.TotalRounds(),
		TotalScore:   session.TotalScore,
		StartedAt:    session.StartedAt,
		CompletedAt:  session.CompletedAt,
		MapBounds: &usecase.MapView{
			MinLat: srv.bounds.Min.Lat(),
			MinLng: srv.bounds.Min.Lon(),
			MaxLat: srv.bounds.Max.Lat(),
			MaxLng: srv.bounds.Max.Lon(),
		},
		Challenge: challenge,
	}
}
