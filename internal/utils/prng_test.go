package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseWeighted(t *testing.T) {
	weights := []float64{1, 0, 3}

	tests := []struct {
		name string
		draw float64
		want int
	}{
		{"low draw picks first", 0.0, 0},
		{"boundary belongs to first bucket", 0.25, 0},
		{"zero weight is skipped", 0.26, 2},
		{"top of range", 0.999, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChooseWeighted(NewSequenceRand(tt.draw), weights)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChooseWeightedEmpty(t *testing.T) {
	assert.Equal(t, -1, ChooseWeighted(NewSequenceRand(0.5), nil))
	assert.Equal(t, -1, ChooseWeighted(NewSequenceRand(0.5), []float64{0, -1}))
}

func TestPRNGServiceIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, 0, a.Intn(0))
}

func TestIntBetweenInclusive(t *testing.T) {
	assert.Equal(t, 14, IntBetween(NewSequenceRand(0), 14, 466))
	assert.Equal(t, 466, IntBetween(NewSequenceRand(0.99999), 14, 466))
	assert.Equal(t, 5, IntBetween(NewSequenceRand(0.5), 5, 5))
}
