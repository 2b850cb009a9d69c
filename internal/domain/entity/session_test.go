package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(n int) *Session {
	rounds := make([]Round, n)
	for i := range rounds {
		rounds[i] = Round{LocationID: int64(i + 1), MediaID: int64(100 + i)}
	}

	return NewSession(nil, rounds, time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC))
}

func distancePtr(v float64) *float64 {
	return &v
}

func TestSession_ResolveAdvancesAndCompletes(t *testing.T) {
	s := newTestSession(2)
	at := s.StartedAt.Add(time.Minute)

	require.NoError(t, s.Resolve(RoundOutcome{Distance: distancePtr(3), Score: 3800}, at))
	assert.Equal(t, 1, s.CurrentRound)
	assert.Equal(t, 3800, s.TotalScore)
	assert.Equal(t, SessionStatusPlaying, s.Status)
	assert.Nil(t, s.CompletedAt)

	require.NoError(t, s.Resolve(RoundOutcome{Distance: distancePtr(5), Score: 3600}, at))
	assert.Equal(t, 2, s.CurrentRound)
	assert.Equal(t, 7400, s.TotalScore)
	assert.Equal(t, SessionStatusCompleted, s.Status)
	require.NotNil(t, s.CompletedAt)
	assert.True(t, s.IsFinished())
	assert.Nil(t, s.Current())
}

func TestSession_ResolveAfterFinishFails(t *testing.T) {
	s := newTestSession(1)
	require.NoError(t, s.Resolve(RoundOutcome{Score: 5000, Distance: distancePtr(0)}, time.Now()))

	err := s.Resolve(RoundOutcome{Score: 5000}, time.Now())
	assert.ErrorIs(t, err, ErrRoundAlreadyResolved)
	assert.Equal(t, 5000, s.TotalScore)
	assert.Equal(t, 1, s.CurrentRound)
}

func TestSession_ResolveAbandonedFails(t *testing.T) {
	s := newTestSession(3)
	s.Status = SessionStatusAbandoned

	assert.ErrorIs(t, s.Resolve(RoundOutcome{Score: 10}, time.Now()), ErrRoundAlreadyResolved)
}

func TestSession_TimedOutRound(t *testing.T) {
	s := newTestSession(2)

	require.NoError(t, s.Resolve(RoundOutcome{TimedOut: true}, time.Now()))

	r := s.Rounds[0]
	assert.True(t, r.IsAnswered())
	assert.True(t, r.TimedOut)
	assert.Nil(t, r.Guess)
	assert.Nil(t, r.Distance)
	assert.Equal(t, 0, *r.Score)
	assert.Equal(t, 1, s.CurrentRound)
}

func TestSession_AverageDistanceSkipsTimedOutRounds(t *testing.T) {
	s := newTestSession(3)
	now := time.Now()
	require.NoError(t, s.Resolve(RoundOutcome{Distance: distancePtr(10), Score: 3000}, now))
	require.NoError(t, s.Resolve(RoundOutcome{TimedOut: true}, now))
	require.NoError(t, s.Resolve(RoundOutcome{Distance: distancePtr(30), Score: 2500}, now))

	assert.InDelta(t, 20.0, s.AverageDistance(), 1e-9)
	assert.Equal(t, 5500, s.TotalScore)
}

func TestSession_AverageDistanceAllTimedOut(t *testing.T) {
	s := newTestSession(2)
	now := time.Now()
	require.NoError(t, s.Resolve(RoundOutcome{TimedOut: true}, now))
	require.NoError(t, s.Resolve(RoundOutcome{TimedOut: true}, now))

	assert.Equal(t, 0.0, s.AverageDistance())
	assert.Equal(t, 0, s.TotalScore)
	assert.True(t, s.IsCompleted())
}
