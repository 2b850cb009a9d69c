package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrRoundAlreadyResolved is returned when a round is answered twice or the
// session has no round left to answer.
var ErrRoundAlreadyResolved = errors.New("round already resolved")

// SessionStatus is the lifecycle state of a game session.
type SessionStatus string

const (
	SessionStatusPlaying   SessionStatus = "playing"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusAbandoned SessionStatus = "abandoned"
)

// Round is one challenge inside a session. LocationID and MediaID are fixed
// at creation; the remaining fields are written exactly once.
type Round struct {
	LocationID int64       // The location being guessed.
	MediaID    int64       // The image shown to the player.
	Guess      *Coordinate // The player's guess; nil when the round timed out.
	Distance   *float64    // Kilometres between guess and truth; nil when timed out.
	Score      *int        // Points awarded; set iff the round is answered.
	TimeSpent  *float64    // Seconds the player spent, as reported by the client.
	TimedOut   bool        // True when the round was closed without a guess.
	AnsweredAt *time.Time  // When the round was resolved.
}

// IsAnswered reports whether the round has been resolved.
func (r *Round) IsAnswered() bool {
	return r.Score != nil
}

// RoundOutcome is the result applied to the current round.
type RoundOutcome struct {
	Guess     *Coordinate
	Distance  *float64
	Score     int
	TimeSpent *float64
	TimedOut  bool
}

// Session is one playthrough of N rounds.
type Session struct {
	ID           uuid.UUID
	UserID       *uuid.UUID
	Rounds       []Round
	CurrentRound int
	TotalScore   int
	Status       SessionStatus
	StartedAt    time.Time
	CompletedAt  *time.Time
	UpdatedAt    time.Time
}

// NewSession builds a playing session over the given rounds.
func NewSession(userID *uuid.UUID, rounds []Round, now time.Time) *Session {
	return &Session{
		ID:           uuid.New(),
		UserID:       userID,
		Rounds:       rounds,
		CurrentRound: 0,
		TotalScore:   0,
		Status:       SessionStatusPlaying,
		StartedAt:    now,
		UpdatedAt:    now,
	}
}

// TotalRounds returns N.
func (s *Session) TotalRounds() int {
	return len(s.Rounds)
}

// IsFinished reports whether every round has been resolved.
func (s *Session) IsFinished() bool {
	return s.CurrentRound >= len(s.Rounds)
}

// IsCompleted reports whether the session reached the completed state.
func (s *Session) IsCompleted() bool {
	return s.Status == SessionStatusCompleted
}

// Current returns the round awaiting an answer, or nil once finished.
func (s *Session) Current() *Round {
	if s.IsFinished() {
		return nil
	}

	return &s.Rounds[s.CurrentRound]
}

// Resolve writes outcome onto the current round, advances the cursor,
// recomputes the total and completes the session after the last round.
func (s *Session) Resolve(outcome RoundOutcome, at time.Time) error {
	if s.Status != SessionStatusPlaying {
		return ErrRoundAlreadyResolved
	}

	round := s.Current()
	if round == nil || round.IsAnswered() {
		return ErrRoundAlreadyResolved
	}

	score := outcome.Score
	answeredAt := at
	round.Guess = outcome.Guess
	round.Distance = outcome.Distance
	round.Score = &score
	round.TimeSpent = outcome.TimeSpent
	round.TimedOut = outcome.TimedOut
	round.AnsweredAt = &answeredAt

	s.CurrentRound++
	s.TotalScore = s.sumScores()
	s.UpdatedAt = at

	if s.IsFinished() {
		completedAt := at
		s.Status = SessionStatusCompleted
		s.CompletedAt = &completedAt
	}

	return nil
}

// AverageDistance is the mean distance over rounds that have one. Timed-out
// rounds are excluded; zero when no round has a distance.
func (s *Session) AverageDistance() float64 {
	var (
		sum   float64
		count int
	)
	for i := range s.Rounds {
		if d := s.Rounds[i].Distance; d != nil {
			sum += *d
			count++
		}
	}
	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

func (s *Session) sumScores() int {
	total := 0
	for i := range s.Rounds {
		if sc := s.Rounds[i].Score; sc != nil {
			total += *sc
		}
	}

	return total
}
