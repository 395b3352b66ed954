package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsInTimeOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.After(0.3, func() { got = append(got, "c") })
	s.After(0.1, func() { got = append(got, "a") })
	s.After(0.1, func() { got = append(got, "b") })

	s.Advance(0.05)
	assert.Empty(t, got)
	s.Advance(0.2)
	assert.Equal(t, []string{"a", "b"}, got)
	s.Advance(1)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerDrainsNestedDueActions(t *testing.T) {
	s := NewScheduler()
	var got []int
	s.After(0.1, func() {
		got = append(got, 1)
		s.After(0.05, func() { got = append(got, 2) })
		s.After(1, func() { got = append(got, 3) })
	})
	s.Advance(0.5)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 1, s.Len())
}

func TestSchedulerFrozenWithoutAdvance(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.After(0.2, func() { ran = true })
	s.Advance(0.1)
	// Пауза: время не двигается.
	for i := 0; i < 100; i++ {
		s.Advance(0.1)
	}
	assert.False(t, ran)
	s.Advance(0.25)
	assert.True(t, ran)
}
