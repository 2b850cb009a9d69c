package scoring

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var (
	kusatsu = orb.Point{138.5969, 36.6227}
	tokyo   = orb.Point{139.7671, 35.6812}
	beppu   = orb.Point{131.4914, 33.2846}
)

func TestDistanceKm_Identity(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(kusatsu, kusatsu))
	assert.Equal(t, 0.0, DistanceKm(orb.Point{0, 0}, orb.Point{0, 0}))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	assert.InDelta(t, DistanceKm(kusatsu, tokyo), DistanceKm(tokyo, kusatsu), 1e-9)
	assert.InDelta(t, DistanceKm(beppu, tokyo), DistanceKm(tokyo, beppu), 1e-9)
}

func TestDistanceKm_KnownValues(t *testing.T) {
	// One degree of latitude on the 6371 km sphere.
	assert.InDelta(t, 111.19, DistanceKm(orb.Point{0, 0}, orb.Point{0, 1}), 0.01)
	assert.InDelta(t, 148.0, DistanceKm(kusatsu, tokyo), 2.0)
	// Antipodes are half the circumference.
	assert.InDelta(t, 20015.09, DistanceKm(orb.Point{0, 0}, orb.Point{180, 0}), 0.1)
}

func TestScore_Bands(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     int
	}{
		{"exact", 0, 5000},
		{"half km", 0.5, 4500},
		{"just under one km", 0.9999, 4000},
		{"one km", 1, 4000},
		{"three km", 3, 3800},
		{"five km", 5, 3600},
		{"nine and a half km", 9.5, 3150},
		{"ten km", 10, 3000},
		{"thirty km", 30, 2500},
		{"fifty km", 50, 2000},
		{"seventy five km", 75, 1500},
		{"hundred km", 100, 1000},
		{"three hundred km", 300, 600},
		{"five hundred km", 500, 500},
		{"thousand km", 1000, 250},
		{"fifteen hundred km", 1500, 0},
		{"far away", 20000, 0},
		{"quarter km", 0.25, 4750},
		{"rounds half up", 1.005, 4000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.distance))
		})
	}
}

func TestScore_Range(t *testing.T) {
	for d := 0.0; d < 3000; d += 0.37 {
		s := Score(d)
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, MaxScore)
	}
}

func TestScore_NonIncreasingWithinSegments(t *testing.T) {
	// The curve is monotone on [0, 500) and on [500, ∞); it steps up at 500 km.
	segments := [][2]float64{{0, 499.99}, {500, 5000}}
	for _, seg := range segments {
		prev := Score(seg[0])
		for d := seg[0]; d <= seg[1]; d += 0.01 {
			cur := Score(d)
			if cur > prev {
				t.Fatalf("score increased from %d to %d at %.2f km", prev, cur, d)
			}
			prev = cur
		}
	}
}

func TestScore_ContinuousAtBandEdges(t *testing.T) {
	const eps = 1e-9
	for _, edge := range []float64{1, 50, 100} {
		assert.InDelta(t, Score(edge-eps), Score(edge), 1, "edge %.0f km", edge)
	}
}

func TestScore_Deterministic(t *testing.T) {
	assert.Equal(t, Score(123.456), Score(123.456))
}
