// internal/component/projectile.go
package component

import (
	"line-defense/internal/types"
	"math"
)

// Bullet представляет летящий снаряд оружия игрока: основной или осколок от разделения.
type Bullet struct {
	ID types.EntityID
	Position
	Prev Position
	Velocity
	Damage      float64
	Radius      float64
	Size        float64
	Travelled   float64
	MaxDistance float64
	Pierce      int
	Secondary   bool
	// ExcludedTarget — цель, породившая осколок; по ней осколок не попадает.
	ExcludedTarget types.EntityID
	HitIDs         map[types.EntityID]struct{}
	Removed        bool
}

// NewBullet creates a bullet with an empty hit set.
func NewBullet(id types.EntityID, x, y, vx, vy, damage, maxDistance float64, pierce int) *Bullet {
	return &Bullet{
		ID:          id,
		Position:    Position{X: x, Y: y},
		Prev:        Position{X: x, Y: y},
		Velocity:    Velocity{VX: vx, VY: vy},
		Damage:      damage,
		Radius:      1.5,
		Size:        1,
		MaxDistance: maxDistance,
		Pierce:      max(1, pierce),
		HitIDs:      make(map[types.EntityID]struct{}),
	}
}

// Step moves the bullet and remembers the previous position for the swept test.
func (b *Bullet) Step(dt float64) {
	b.Prev = b.Position
	dx, dy := b.VX*dt, b.VY*dt
	b.X += dx
	b.Y += dy
	b.Travelled += math.Hypot(dx, dy)
}

// OutOfRange reports whether the bullet flew farther than allowed.
func (b *Bullet) OutOfRange() bool {
	return b.MaxDistance > 0 && b.Travelled > b.MaxDistance
}

// HasHit reports whether id was already damaged by this bullet.
func (b *Bullet) HasHit(id types.EntityID) bool {
	_, ok := b.HitIDs[id]
	return ok
}

// RegisterHit records id and reports whether the pierce budget is exhausted.
func (b *Bullet) RegisterHit(id types.EntityID) bool {
	b.HitIDs[id] = struct{}{}
	return len(b.HitIDs) >= b.Pierce
}

// EnemyShot — снаряд стрелка, летит вниз к линии обороны.
type EnemyShot struct {
	ID types.EntityID
	Position
	VY      float64
	Damage  float64
	Removed bool
}
