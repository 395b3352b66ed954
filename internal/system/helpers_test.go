package system

import (
	"testing"

	"line-defense/internal/component"
	"line-defense/internal/defs"
	"line-defense/internal/entity"
	"line-defense/internal/event"
	"line-defense/internal/interfaces"
	"line-defense/internal/utils"

	"github.com/stretchr/testify/require"
)

// world bundles the systems a test needs, wired the same way the game does.
type world struct {
	lib        *defs.Library
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	progress   *ProgressionSystem
	damage     *DamageSystem
	scheduler  *Scheduler
	casting    *CastingSystem
	rng        utils.Rand
}

func newWorld(t *testing.T, rng utils.Rand) *world {
	t.Helper()
	lib, err := defs.LoadLibrary()
	require.NoError(t, err)

	w := &world{
		lib:        lib,
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		scheduler:  NewScheduler(),
		rng:        rng,
	}
	w.ecs.Player.CritChance = 0
	w.progress = NewProgressionSystem(lib)
	w.damage = NewDamageSystem(w.ecs, w.progress, rng, w.dispatcher)
	w.casting = NewCastingSystem(w.ecs, w.progress, w.damage, w.scheduler, rng,
		interfaces.NopRenderer{}, interfaces.NopAudio{}, w.dispatcher)
	return w
}

// spawn places an enemy of kind at (x, y) with the given hp.
func (w *world) spawn(kind defs.EnemyKind, x, y, hp float64) *component.Enemy {
	def := w.lib.Enemy(kind)
	id := w.ecs.NewEntity()
	e := component.NewEnemy(id, def, x, y, hp, def.Speed)
	w.ecs.Enemies.Add(id, e)
	return e
}

// advance moves simulation time forward and drains due actions.
func (w *world) advance(dt float64) {
	w.ecs.GameTime += dt
	w.scheduler.Advance(w.ecs.GameTime)
}

func (w *world) unlock(id defs.SkillID, lv int) {
	for i := 0; i < lv; i++ {
		w.progress.LevelUp(defs.Main(id))
	}
}

type eventLog struct{ got []event.Event }

func (l *eventLog) OnEvent(e event.Event) { l.got = append(l.got, e) }

// collect records every event of type t.
func collect(d *event.Dispatcher, t event.EventType) *[]event.Event {
	l := &eventLog{}
	d.Subscribe(t, l)
	return &l.got
}

// dealt returns the damage recorded for source so far.
func (w *world) dealt(source string) float64 {
	for _, e := range w.damage.Stats().Breakdown() {
		if e.Source == source {
			return e.Amount
		}
	}
	return 0
}
