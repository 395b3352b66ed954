package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulletPierceBudget(t *testing.T) {
	b := NewBullet(1, 0, 0, 0, -260, 5, 520, 2)
	assert.False(t, b.RegisterHit(10))
	assert.True(t, b.HasHit(10))
	assert.False(t, b.RegisterHit(10), "same id does not consume the budget twice")
	assert.True(t, b.RegisterHit(11))
}

func TestBulletStepTracksDistance(t *testing.T) {
	b := NewBullet(1, 10, 100, 30, -40, 5, 60, 1)
	b.Step(1)
	assert.Equal(t, Position{10, 100}, b.Prev)
	assert.Equal(t, Position{40, 60}, b.Position)
	assert.InDelta(t, 50, b.Travelled, 1e-9)
	assert.False(t, b.OutOfRange())
	b.Step(1)
	assert.True(t, b.OutOfRange())
}

func TestNewBulletClampsPierce(t *testing.T) {
	assert.Equal(t, 1, NewBullet(1, 0, 0, 0, 0, 1, 0, 0).Pierce)
}
