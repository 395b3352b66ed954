// internal/system/skill_zone.go
package system

import (
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"math"
)

const (
	napalmFlightSec = 0.8
	napalmGravity   = 400.0
)

func init() {
	registerCast(defs.SkillTornado, castTornado)
	registerCast(defs.SkillNapalm, castNapalm)
	registerCast(defs.SkillMiniVortex, castMiniVortex)
	registerCast(defs.SkillIceStorm, castIceStorm)
}

// castTornado выпускает смерчи от линии обороны вверх; живут до верхнего края.
func castTornado(c *CastingSystem, lv int) {
	r := (18 + float64(lv)*4) * c.progress.RadiusMult(defs.SkillTornado)
	dps := c.skillDamage(defs.SkillTornado, lv, 15+float64(lv)*6)
	count := 1 + c.progress.CountBonus(defs.SkillTornado)

	startY := config.DefenseLineY - 6
	vy := -55 - float64(lv)*10
	ttl := (math.Abs(startY/vy) + 0.5) * c.progress.DurationMult(defs.SkillTornado)

	for i := 0; i < count; i++ {
		x := clampTo(c.ecs.Player.X+centredOffset(i, count, 26), 20, config.ScreenWidth-20)
		id := c.ecs.NewEntity()
		c.ecs.Tornados.Add(id, &component.Tornado{
			ID:        id,
			Position:  component.Position{X: x, Y: startY},
			VY:        vy,
			Radius:    r,
			DPS:       dps,
			Remaining: ttl,
		})
	}
}

// castNapalm throws a shell on a ballistic arc that lands on the nearest
// enemy after a fixed flight time and leaves a burning zone.
func castNapalm(c *CastingSystem, lv int) {
	target := c.nearest()
	if target == nil {
		return
	}
	start := component.Position{X: c.ecs.Player.X, Y: c.ecs.Player.Y - config.BulletMuzzleOffset}
	dx := target.X - start.X
	dy := target.Y - start.Y
	t := napalmFlightSec
	// y(t) = y0 + vy*t + g*t²/2 должно попасть в цель ровно через t.
	vx := dx / t
	vy := (dy - 0.5*napalmGravity*t*t) / t

	id := c.ecs.NewEntity()
	c.ecs.NapalmShells.Add(id, &component.NapalmShell{
		ID:       id,
		Start:    start,
		Position: start,
		VX:       vx,
		VY:       vy,
		Gravity:  napalmGravity,
		Flight:   t,
		Target:   component.Position{X: target.X, Y: target.Y},
		Payload: component.NapalmPayload{
			Radius:    55*c.progress.RadiusMult(defs.SkillNapalm) + float64(lv)*4,
			Damage:    c.skillDamage(defs.SkillNapalm, lv, 30+float64(lv)*10),
			PctPerSec: (0.05 + float64(lv)*0.008) * c.progress.DamageMult(defs.SkillNapalm),
			ZoneTTL:   (4.0 + float64(lv)*0.5) * c.progress.DurationMult(defs.SkillNapalm),
		},
	})
}

// castMiniVortex ставит вихри у ближайшего врага.
func castMiniVortex(c *CastingSystem, lv int) {
	target := c.nearest()
	if target == nil {
		return
	}
	count := 1 + c.progress.CountBonus(defs.SkillMiniVortex)
	r := (80 + float64(lv)*6) * c.progress.RadiusMult(defs.SkillMiniVortex)
	ttl := (3.6 + float64(lv)*0.25) * c.progress.DurationMult(defs.SkillMiniVortex)
	dps := c.skillDamage(defs.SkillMiniVortex, lv, 12+float64(lv)*4)
	pull := 60 + float64(lv)*8

	for i := 0; i < count; i++ {
		offY := 0.0
		if count > 1 {
			offY = (c.rng.Float64() - 0.5) * 40
		}
		x := clampTo(target.X+centredOffset(i, count, 50), r, config.ScreenWidth-r)
		y := clampTo(target.Y+offY, r, config.DefenseLineY-r)
		id := c.ecs.NewEntity()
		c.ecs.Vortexes.Add(id, &component.Vortex{
			ID:        id,
			Position:  component.Position{X: x, Y: y},
			Radius:    r,
			DPS:       dps,
			Pull:      pull,
			Remaining: ttl,
		})
	}
}

// castIceStorm covers the area in front of the line with freezing fog.
func castIceStorm(c *CastingSystem, lv int) {
	count := 1 + c.progress.CountBonus(defs.SkillIceStorm)
	r := (120 + float64(lv)*8) * c.progress.RadiusMult(defs.SkillIceStorm)
	dur := c.progress.DurationMult(defs.SkillIceStorm)
	ttl := (4.0 + float64(lv)*0.6) * dur
	freeze := (0.6 + float64(lv)*0.1) * dur
	dps := c.skillDamage(defs.SkillIceStorm, lv, 15+float64(lv)*5)
	baseY := config.DefenseLineY - 160

	for i := 0; i < count; i++ {
		offY := 0.0
		if count > 1 {
			offY = (c.rng.Float64() - 0.5) * 40
		}
		x := clampTo(c.ecs.Player.X+centredOffset(i, count, 60), r, config.ScreenWidth-r)
		y := clampTo(baseY+offY, r, config.DefenseLineY-r)
		id := c.ecs.NewEntity()
		c.ecs.IceFogs.Add(id, &component.IceFog{
			ID:        id,
			Position:  component.Position{X: x, Y: y},
			Radius:    r,
			DPS:       dps,
			FreezeSec: freeze,
			Remaining: ttl,
		})
	}
}
