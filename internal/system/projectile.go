// internal/system/projectile.go
package system

import (
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/entity"
	"line-defense/internal/types"
	"line-defense/internal/utils"
	"math"
	"sort"
)

const (
	split4Factor         = 0.5
	split2Factor         = 0.6
	splitExcludeMaxSize  = 3.0
	splitSearchFactor    = 0.8
	splitOffsetPerSize   = 4.0
	splitOffsetMin       = 10.0
	splitSectorHalfAngle = math.Pi / 2
	bulletBoundsMarginX  = 30.0
	bulletBoundsMarginY  = 40.0
)

// ProjectileSystem двигает пули оружия, проверяет попадания и порождает осколки.
type ProjectileSystem struct {
	ecs      *entity.ECS
	progress *ProgressionSystem
	damage   *DamageSystem
	talents  *TalentSystem
}

func NewProjectileSystem(ecs *entity.ECS, progress *ProgressionSystem, damage *DamageSystem, talents *TalentSystem) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, progress: progress, damage: damage, talents: talents}
}

func (s *ProjectileSystem) Update(dt float64) {
	for _, b := range s.ecs.Bullets.All() {
		if b.Removed {
			continue
		}
		b.Step(dt)
		if b.OutOfRange() {
			b.Removed = true
			continue
		}
		if hit := s.findHit(b); hit != nil {
			s.strike(b, hit)
			angle := math.Atan2(b.VY, b.VX)
			s.split(b.X, b.Y, angle, b.Damage, hit)
			if b.RegisterHit(hit.ID) {
				b.Removed = true
				continue
			}
		}
		if outOfBounds(b) {
			b.Removed = true
		}
	}

	for _, b := range s.ecs.SecondaryBullets.All() {
		if b.Removed {
			continue
		}
		b.Step(dt)
		if b.OutOfRange() {
			b.Removed = true
			continue
		}
		if hit := s.findHit(b); hit != nil {
			s.strike(b, hit)
			b.Removed = true
			continue
		}
		if outOfBounds(b) {
			b.Removed = true
		}
	}
}

func outOfBounds(b *component.Bullet) bool {
	return b.X < -bulletBoundsMarginX || b.X > config.ScreenWidth+bulletBoundsMarginX ||
		b.Y < -bulletBoundsMarginY || b.Y > config.ScreenHeight+bulletBoundsMarginY
}

// findHit returns the first enemy, in roster order, the bullet touches this tick.
// The point test runs first; a bullet that moved is also swept along its path.
func (s *ProjectileSystem) findHit(b *component.Bullet) *component.Enemy {
	moved := utils.Dist(b.Prev.X, b.Prev.Y, b.X, b.Y)
	for _, e := range s.ecs.LiveEnemies() {
		if b.HasHit(e.ID) {
			continue
		}
		if b.Secondary && e.ID == b.ExcludedTarget && e.Size <= splitExcludeMaxSize {
			continue
		}
		hitR := e.Radius() + b.Radius + config.HitTolerance
		if utils.Dist(e.X, e.Y, b.X, b.Y) <= hitR {
			return e
		}
		if moved > config.SweepMinDistance &&
			utils.DistPointToSegment(e.X, e.Y, b.Prev.X, b.Prev.Y, b.X, b.Y) <= hitR {
			return e
		}
	}
	return nil
}

// strike resolves weapon damage with a crit roll, then rolls the on-hit talents.
func (s *ProjectileSystem) strike(b *component.Bullet, e *component.Enemy) {
	s.damage.Strike(e, b.Damage, defs.DamagePhysical, SourceWeapon)
	s.talents.OnHit(e)
}

type splitCandidate struct {
	id    types.EntityID
	angle float64
	dist  float64
}

// split spawns secondary bullets at the hit point. Four-way splitting replaces
// two-way when both are levelled; each level adds one more set.
func (s *ProjectileSystem) split(x, y, angle, damage float64, hit *component.Enemy) {
	ws := s.progress.Weapon(config.PlayerDamage)
	var (
		sets   int
		bases  []float64
		factor float64
	)
	switch {
	case ws.Split4 > 0:
		sets, factor = ws.Split4, split4Factor
		for k := 0; k < 4; k++ {
			bases = append(bases, angle+float64(k)*math.Pi/2)
		}
	case ws.Split2 > 0:
		sets, factor = ws.Split2, split2Factor
		bases = []float64{angle - math.Pi/2, angle + math.Pi/2}
	default:
		return
	}

	excluded := hit.ID
	if hit.Size > splitExcludeMaxSize {
		excluded = 0
	}
	offset := math.Max(hit.Size*splitOffsetPerSize, splitOffsetMin)
	nearby := s.splitCandidates(x, y, excluded)
	p := s.ecs.Player

	for n := 0; n < sets; n++ {
		for _, a := range aimSplits(bases, nearby) {
			ox := x + math.Cos(a+math.Pi)*offset
			oy := y + math.Sin(a+math.Pi)*offset
			id := s.ecs.NewEntity()
			sb := component.NewBullet(id, ox, oy,
				math.Cos(a)*config.SecondaryBulletSpeed, math.Sin(a)*config.SecondaryBulletSpeed,
				damage*factor, p.Range*config.SecondaryRangeFactor, 1)
			sb.Secondary = true
			sb.ExcludedTarget = excluded
			s.ecs.SecondaryBullets.Add(id, sb)
		}
	}
}

func (s *ProjectileSystem) splitCandidates(x, y float64, excluded types.EntityID) []splitCandidate {
	radius := s.ecs.Player.Range * splitSearchFactor
	var out []splitCandidate
	for _, e := range s.ecs.LiveEnemies() {
		if e.ID == excluded {
			continue
		}
		d := utils.Dist(x, y, e.X, e.Y)
		if d > 0 && d <= radius {
			out = append(out, splitCandidate{id: e.ID, angle: math.Atan2(e.Y-y, e.X-x), dist: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].dist < out[j].dist })
	return out
}

// aimSplits bends every base direction toward the nearest enemy within ±90°
// of it; each enemy is claimed by one direction only.
func aimSplits(bases []float64, nearby []splitCandidate) []float64 {
	out := make([]float64, len(bases))
	used := make(map[types.EntityID]bool)
	for i, base := range bases {
		out[i] = base
		for _, c := range nearby {
			if used[c.id] {
				continue
			}
			if math.Abs(utils.AngleDiff(base, c.angle)) <= splitSectorHalfAngle {
				out[i] = c.angle
				used[c.id] = true
				break
			}
		}
	}
	return out
}
