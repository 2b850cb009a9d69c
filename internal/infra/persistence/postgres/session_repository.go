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
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new instance of SessionRepository
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	m := fromSessionDomain(session)
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewStorageUnavailableError(err, "failed to create session")
	}

	return nil
}

// FindByID always reads from the primary so a guess sees the latest cursor.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var m model.SessionModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, domainerrors.NewStorageUnavailableError(err, "failed to find session")
	}

	return toSessionDomain(&m), nil
}

// UpdateIfRound is a compare-and-set on current_round.
func (repo *sessionRepository) UpdateIfRound(ctx context.Context, session *entity.Session, expectedRound int) error {
	m := fromSessionDomain(session)
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.SessionModel{}).
		Where("id = ? AND current_round = ? AND status = ?", session.ID, expectedRound, string(entity.SessionStatusPlaying)).
		Updates(map[string]any{
			"rounds":        m.Rounds,
			"current_round": m.CurrentRound,
			"total_score":   m.TotalScore,
			"status":        m.Status,
			"completed_at":  m.CompletedAt,
			"updated_at":    m.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewStorageUnavailableError(result.Error, "failed to update session")
	}
	if result.RowsAffected == 0 {
		return entity.ErrRoundAlreadyResolved
	}

	return nil
}

func (repo *sessionRepository) AbandonStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.SessionModel{}).
		Where("status = ? AND updated_at < ?", string(entity.SessionStatusPlaying), cutoff).
		Updates(map[string]any{
			"status":     string(entity.SessionStatusAbandoned),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, domainerrors.NewStorageUnavailableError(result.Error, "failed to abandon stale sessions")
	}

	return result.RowsAffected, nil
}

func toSessionDomain(m *model.SessionModel) *entity.Session {
	records := m.Rounds.Data()
	rounds := make([]entity.Round, 0, len(records))
	for _, r := range records {
		round := entity.Round{
			LocationID: r.LocationID,
			MediaID:    r.MediaID,
			Distance:   r.Distance,
			Score:      r.Score,
			TimeSpent:  r.TimeSpent,
			TimedOut:   r.TimedOut,
			AnsweredAt: r.AnsweredAt,
		}
		if r.Guess != nil {
			round.Guess = &entity.Coordinate{Lat: r.Guess.Lat, Lng: r.Guess.Lng}
		}
		rounds = append(rounds, round)
	}

	return &entity.Session{
		ID:           m.ID,
		UserID:       m.UserID,
		Rounds:       rounds,
		CurrentRound: m.CurrentRound,
		TotalScore:   m.TotalScore,
		Status:       entity.SessionStatus(m.Status),
		StartedAt:    m.StartedAt,
		CompletedAt:  m.CompletedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromSessionDomain(s *entity.Session) *model.SessionModel {
	records := make([]model.RoundRecord, 0, len(s.Rounds))
	for _, r := range s.Rounds {
		record := model.RoundRecord{
			LocationID: r.LocationID,
			MediaID:    r.MediaID,
			Distance:   r.Distance,
			Score:      r.Score,
			TimeSpent:  r.TimeSpent,
			TimedOut:   r.TimedOut,
			AnsweredAt: r.AnsweredAt,
		}
		if r.Guess != nil {
			record.Guess = &model.GuessRecord{Lat: r.Guess.Lat, Lng: r.Guess.Lng}
		}
		records = append(records, record)
	}

	return &model.SessionModel{
		ID:           s.ID,
		UserID:       s.UserID,
		Rounds:       datatypes.NewJSONType(records),
		CurrentRound: s.CurrentRound,
		TotalRounds:  s.TotalRounds(),
		TotalScore:   s.TotalScore,
		Status:       string(s.Status),
		StartedAt:    s.StartedAt,
		CompletedAt:  s.CompletedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
