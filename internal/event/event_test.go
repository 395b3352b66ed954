package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name string
	log  *[]string
	got  []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

func TestDispatchReachesSubscribersOfTheType(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(WaveStarted, b)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{Exp: 3}})

	require.Len(t, a.got, 1)
	assert.Empty(t, b.got)
	assert.Equal(t, 3, a.got[0].Data.(EnemyKilledData).Exp)
}

func TestDispatchFollowsSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var log []string
	d.Subscribe(LevelUpReady, &recorder{name: "state", log: &log})
	d.Subscribe(LevelUpReady, &recorder{name: "game", log: &log})

	d.Dispatch(Event{Type: LevelUpReady, Data: 1})
	assert.Equal(t, []string{"state", "game"}, log)
}

func TestDispatchWithoutSubscribers(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: ShotFired}) })
}
