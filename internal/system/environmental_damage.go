// internal/system/environmental_damage.go
package system

import (
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/entity"
	"line-defense/internal/interfaces"
	"line-defense/internal/utils"
	"math"
)

const (
	napalmBurnSec     = 2.0
	napalmRefreshPad  = 0.5
	tornadoRemoveY    = -50.0
	carRemoveY        = -80.0
	vortexMinDistance = 1.0
)

// EffectSystem продвигает долгоживущие эффекты скиллов: снаряды напалма,
// горящие зоны, лучи, машины, вихри, ледяные поля и смерчи.
type EffectSystem struct {
	ecs      *entity.ECS
	progress *ProgressionSystem
	damage   *DamageSystem
	audio    interfaces.Audio
}

func NewEffectSystem(ecs *entity.ECS, progress *ProgressionSystem, damage *DamageSystem, audio interfaces.Audio) *EffectSystem {
	return &EffectSystem{ecs: ecs, progress: progress, damage: damage, audio: audio}
}

// Update advances every effect by dt. An effect whose lifetime ends is marked
// removed in the same tick and swept at the end of it.
func (s *EffectSystem) Update(dt float64) {
	s.updateNapalmShells(dt)
	s.updateBurnZones(dt)
	s.updateBeams(dt)
	s.updateCars(dt)
	s.updateVortexes(dt)
	s.updateIceFogs(dt)
	s.updateTornados(dt)
}

// hit applies effect damage through the damage-taken multiplier.
func (s *EffectSystem) hit(e *component.Enemy, amount float64, id defs.SkillID) {
	lib := s.progress.Library()
	s.damage.Scaled(e, amount, skillDamageType(lib, id), skillSource(lib, id))
}

func (s *EffectSystem) updateNapalmShells(dt float64) {
	for _, n := range s.ecs.NapalmShells.All() {
		if n.Removed {
			continue
		}
		n.Elapsed += dt
		t := n.Elapsed
		n.X = n.Start.X + n.VX*t
		n.Y = n.Start.Y + n.VY*t + 0.5*n.Gravity*t*t

		arrived := t >= n.Flight
		if !arrived && n.Y <= config.ScreenHeight && n.Y >= -50 {
			continue
		}
		x, y := n.X, n.Y
		if arrived {
			x, y = n.Target.X, n.Target.Y
		}
		n.Removed = true
		s.igniteZone(x, y, n.Payload)
	}
}

// igniteZone creates the burning area where a shell lands: instant damage plus burn.
func (s *EffectSystem) igniteZone(x, y float64, p component.NapalmPayload) {
	now := s.ecs.GameTime
	for _, e := range enemiesWithin(s.ecs, x, y, p.Radius) {
		s.hit(e, p.Damage, defs.SkillNapalm)
		if e.Alive() {
			e.Status.ApplyBurn(now, napalmBurnSec, p.PctPerSec)
		}
	}
	id := s.ecs.NewEntity()
	s.ecs.BurnZones.Add(id, &component.BurnZone{
		ID:        id,
		Position:  component.Position{X: x, Y: y},
		Radius:    p.Radius,
		PctPerSec: p.PctPerSec,
		Remaining: p.ZoneTTL,
	})
	s.audio.PlayOneShot(interfaces.SoundExplosion)
}

func (s *EffectSystem) updateBurnZones(dt float64) {
	now := s.ecs.GameTime
	for _, z := range s.ecs.BurnZones.All() {
		if z.Removed {
			continue
		}
		z.Remaining -= dt
		dur := math.Min(napalmBurnSec, z.Remaining+napalmRefreshPad)
		for _, e := range enemiesWithin(s.ecs, z.X, z.Y, z.Radius) {
			e.Status.ApplyBurn(now, dur, z.PctPerSec)
		}
		if z.Remaining <= 0 {
			z.Removed = true
		}
	}
}

// updateBeams re-aims each beam at the nearest enemy in the firing arc and
// damages everything within its width of the player-to-aim segment.
func (s *EffectSystem) updateBeams(dt float64) {
	p := s.ecs.Player
	for _, b := range s.ecs.Beams.All() {
		if b.Removed {
			continue
		}
		b.Remaining -= dt
		if t := nearestEnemyInArc(s.ecs); t != nil {
			b.AimX, b.AimY = t.X, t.Y
		}
		for _, e := range s.ecs.LiveEnemies() {
			if utils.DistPointToSegment(e.X, e.Y, p.X, p.Y, b.AimX, b.AimY) <= b.Width {
				s.hit(e, b.DPS*dt, defs.SkillHighEnergyRay)
			}
		}
		if b.Remaining <= 0 {
			b.Removed = true
		}
	}
}

func (s *EffectSystem) updateCars(dt float64) {
	for _, c := range s.ecs.Cars.All() {
		if c.Removed {
			continue
		}
		c.Remaining -= dt
		c.Y += c.VY * dt
		for _, e := range s.ecs.LiveEnemies() {
			if _, done := c.HitIDs[e.ID]; done {
				continue
			}
			if math.Abs(e.X-c.X) > c.HalfWidth || e.Y > c.Y || e.Y < c.Y-c.Height {
				continue
			}
			c.HitIDs[e.ID] = struct{}{}
			s.hit(e, c.Damage, defs.SkillArmoredCar)
			e.Status.KnockUp(c.Knockback)
		}
		if c.Remaining <= 0 || c.Y < carRemoveY {
			c.Removed = true
		}
	}
}

// updateVortexes тянет врагов к центру, тем сильнее, чем ближе к центру.
func (s *EffectSystem) updateVortexes(dt float64) {
	for _, v := range s.ecs.Vortexes.All() {
		if v.Removed {
			continue
		}
		v.Remaining -= dt
		for _, e := range s.ecs.LiveEnemies() {
			dx, dy := v.X-e.X, v.Y-e.Y
			d := math.Hypot(dx, dy)
			if d > v.Radius || d <= vortexMinDistance {
				continue
			}
			pull := v.Pull * (1 - d/v.Radius) * dt
			e.X += dx / d * pull
			e.Y += dy / d * pull
			s.hit(e, v.DPS*dt, defs.SkillMiniVortex)
		}
		if v.Remaining <= 0 {
			v.Removed = true
		}
	}
}

func (s *EffectSystem) updateIceFogs(dt float64) {
	now := s.ecs.GameTime
	for _, f := range s.ecs.IceFogs.All() {
		if f.Removed {
			continue
		}
		f.Remaining -= dt
		for _, e := range enemiesWithin(s.ecs, f.X, f.Y, f.Radius) {
			s.hit(e, f.DPS*dt, defs.SkillIceStorm)
			if e.Alive() {
				e.Status.ApplyFreeze(now, f.FreezeSec)
			}
		}
		if f.Remaining <= 0 {
			f.Removed = true
		}
	}
}

func (s *EffectSystem) updateTornados(dt float64) {
	for _, t := range s.ecs.Tornados.All() {
		if t.Removed {
			continue
		}
		t.Remaining -= dt
		t.Y += t.VY * dt
		for _, e := range enemiesWithin(s.ecs, t.X, t.Y, t.Radius) {
			s.hit(e, t.DPS*dt, defs.SkillTornado)
		}
		if t.Remaining <= 0 || t.Y < tornadoRemoveY {
			t.Removed = true
		}
	}
}
