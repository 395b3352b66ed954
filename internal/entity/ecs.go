// internal/entity/ecs.go
package entity

import (
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Player      *component.Player
	PlayerState *component.PlayerStateComponent
	Run         *component.RunState

	Enemies          *Store[component.Enemy]
	Bullets          *Store[component.Bullet]
	SecondaryBullets *Store[component.Bullet]
	EnemyShots       *Store[component.EnemyShot]

	Tornados     *Store[component.Tornado]
	Beams        *Store[component.Beam]
	Cars         *Store[component.Car]
	Vortexes     *Store[component.Vortex]
	IceFogs      *Store[component.IceFog]
	BurnZones    *Store[component.BurnZone]
	NapalmShells *Store[component.NapalmShell]
}

func NewECS() *ECS {
	return &ECS{
		NextID: 1,
		Player: component.NewPlayer(),
		PlayerState: &component.PlayerStateComponent{
			Level:         1,
			XPToNextLevel: config.InitialXPToNext,
		},
		Run: &component.RunState{
			Phase:        component.PhaseRunning,
			Wave:         1,
			MaxWaves:     config.MaxNormalWaves,
			BaseQuota:    config.ZombiesPerWave,
			DefenseHP:    config.DefenseHealth,
			DefenseMaxHP: config.DefenseHealth,
		},
		Enemies:          NewStore[component.Enemy](),
		Bullets:          NewStore[component.Bullet](),
		SecondaryBullets: NewStore[component.Bullet](),
		EnemyShots:       NewStore[component.EnemyShot](),
		Tornados:         NewStore[component.Tornado](),
		Beams:            NewStore[component.Beam](),
		Cars:             NewStore[component.Car](),
		Vortexes:         NewStore[component.Vortex](),
		IceFogs:          NewStore[component.IceFog](),
		BurnZones:        NewStore[component.BurnZone](),
		NapalmShells:     NewStore[component.NapalmShell](),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Enemy returns a live enemy by id.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.Enemies.Get(id)
	if !ok || !e.Alive() {
		return nil, false
	}
	return e, true
}

// LiveEnemies returns the enemies that are alive right now, in id order.
func (ecs *ECS) LiveEnemies() []*component.Enemy {
	all := ecs.Enemies.All()
	out := make([]*component.Enemy, 0, len(all))
	for _, e := range all {
		if e.Alive() {
			out = append(out, e)
		}
	}
	return out
}

// Sweep drops every entity marked as removed. Called once at the end of a tick.
// Returns the enemies that left the roster.
func (ecs *ECS) Sweep() []*component.Enemy {
	gone := ecs.Enemies.Sweep(func(e *component.Enemy) bool { return e.Removed })
	ecs.Bullets.Sweep(func(b *component.Bullet) bool { return b.Removed })
	ecs.SecondaryBullets.Sweep(func(b *component.Bullet) bool { return b.Removed })
	ecs.EnemyShots.Sweep(func(s *component.EnemyShot) bool { return s.Removed })
	ecs.Tornados.Sweep(func(t *component.Tornado) bool { return t.Removed })
	ecs.Beams.Sweep(func(b *component.Beam) bool { return b.Removed })
	ecs.Cars.Sweep(func(c *component.Car) bool { return c.Removed })
	ecs.Vortexes.Sweep(func(v *component.Vortex) bool { return v.Removed })
	ecs.IceFogs.Sweep(func(f *component.IceFog) bool { return f.Removed })
	ecs.BurnZones.Sweep(func(z *component.BurnZone) bool { return z.Removed })
	ecs.NapalmShells.Sweep(func(n *component.NapalmShell) bool { return n.Removed })
	return gone
}
