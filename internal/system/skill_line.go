// internal/system/skill_line.go
package system

import (
	"image/color"
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/types"
	"line-defense/internal/utils"
	"math"
	"sort"
)

var (
	iceColor   = color.RGBA{107, 255, 234, 160}
	laserColor = color.RGBA{255, 230, 107, 230}
)

const (
	icePierceStagger = 0.1
	icePiercePierce  = 1
	armoredCarDelay  = 0.4
	armoredCarSpeed  = -130.0
	armoredCarHalfW  = 18.0
	armoredCarHeight = 46.0
)

func init() {
	registerCast(defs.SkillIcePierce, castIcePierce)
	registerCast(defs.SkillHighEnergyRay, castHighEnergyRay)
	registerCast(defs.SkillGuidedLaser, castGuidedLaser)
	registerCast(defs.SkillArmoredCar, castArmoredCar)
}

// castIcePierce fires ice lances from the player. The first aims at the nearest
// enemy, later ones at random enemies; each damages and may freeze the first
// enemies along its path, nearest first.
func castIcePierce(c *CastingSystem, lv int) {
	count := 1 + c.progress.CountBonus(defs.SkillIcePierce)
	width := (10 + float64(lv)*2) * c.progress.RadiusMult(defs.SkillIcePierce)
	dmg := c.skillDamage(defs.SkillIcePierce, lv, 18+float64(lv)*6)
	freezeChance := math.Min(0.6, 0.18+float64(lv)*0.04)
	freezeSec := (1.2 + float64(lv)*0.12) * c.progress.DurationMult(defs.SkillIcePierce)

	lance := func(i int) {
		p := c.ecs.Player
		tx, ty := utils.Between(c.rng, 50, config.ScreenWidth-50), 0.0
		if i == 0 {
			if t := c.nearest(); t != nil {
				tx, ty = t.X, t.Y
			}
		} else if live := c.ecs.LiveEnemies(); len(live) > 0 {
			t := live[c.rng.Intn(len(live))]
			tx, ty = t.X, t.Y
		}

		dir, ok := utils.Vec2{X: tx - p.X, Y: ty - p.Y}.Normalize()
		if !ok {
			return
		}
		reach := math.Max(utils.Dist(p.X, p.Y, tx, ty), math.Hypot(config.ScreenWidth, config.ScreenHeight))
		ex, ey := p.X+dir.X*reach, p.Y+dir.Y*reach

		candidates := c.ecs.LiveEnemies()
		byDistance(candidates, p.X, p.Y)
		hits := 0
		for _, e := range candidates {
			if hits >= icePiercePierce {
				break
			}
			if utils.DistPointToSegment(e.X, e.Y, p.X, p.Y, ex, ey) > width {
				continue
			}
			hits++
			c.hit(e, dmg, defs.SkillIcePierce)
			if c.rng.Float64() < freezeChance {
				e.Status.ApplyFreeze(c.ecs.GameTime, freezeSec)
			}
		}
		c.line(p.X, p.Y, ex, ey, width, iceColor, 0.25)
	}

	lance(0)
	for i := 1; i < count; i++ {
		c.scheduler.After(float64(i)*icePierceStagger, func() { lance(i) })
	}
}

// castHighEnergyRay запускает луч, который каждый тик наводится заново.
func castHighEnergyRay(c *CastingSystem, lv int) {
	target := c.nearest()
	if target == nil {
		return
	}
	id := c.ecs.NewEntity()
	c.ecs.Beams.Add(id, &component.Beam{
		ID:        id,
		AimX:      target.X,
		AimY:      target.Y,
		Width:     (8 + float64(lv)*1.2) * c.progress.RadiusMult(defs.SkillHighEnergyRay),
		DPS:       c.skillDamage(defs.SkillHighEnergyRay, lv, 35+float64(lv)*10),
		Remaining: (4.0 + float64(lv)*0.22) * c.progress.DurationMult(defs.SkillHighEnergyRay),
	})
	c.ring(target.X, target.Y, 12, laserColor, 0.3)
}

// castGuidedLaser strikes the count weakest enemies once each.
func castGuidedLaser(c *CastingSystem, lv int) {
	count := 2 + c.progress.CountBonus(defs.SkillGuidedLaser) + lv/2
	dmg := c.skillDamage(defs.SkillGuidedLaser, lv, 22+float64(lv)*7)

	targets := c.ecs.LiveEnemies()
	if len(targets) == 0 {
		return
	}
	sort.SliceStable(targets, func(i, j int) bool { return targets[i].Health.Value < targets[j].Health.Value })
	if len(targets) > count {
		targets = targets[:count]
	}
	p := c.ecs.Player
	for _, e := range targets {
		x, y := e.X, e.Y
		c.hit(e, dmg, defs.SkillGuidedLaser)
		c.line(p.X, p.Y, x, y, 2, laserColor, 0.18)
	}
}

// castArmoredCar выпускает машины от линии обороны вверх с задержкой друг за другом.
func castArmoredCar(c *CastingSystem, lv int) {
	count := 1 + c.progress.CountBonus(defs.SkillArmoredCar)
	dmg := c.skillDamage(defs.SkillArmoredCar, lv, 28+float64(lv)*8)
	kb := 120 + float64(lv)*18
	ttl := (config.DefenseLineY/math.Abs(armoredCarSpeed) + 0.5) * c.progress.DurationMult(defs.SkillArmoredCar)

	for i := 0; i < count; i++ {
		x := clampTo(c.ecs.Player.X+centredOffset(i, count, 30), armoredCarHalfW, config.ScreenWidth-armoredCarHalfW)
		launch := func() {
			id := c.ecs.NewEntity()
			c.ecs.Cars.Add(id, &component.Car{
				ID:        id,
				Position:  component.Position{X: x, Y: config.DefenseLineY},
				VY:        armoredCarSpeed,
				HalfWidth: armoredCarHalfW,
				Height:    armoredCarHeight,
				Damage:    dmg,
				Knockback: kb,
				Remaining: ttl,
				HitIDs:    make(map[types.EntityID]struct{}),
			})
		}
		if i == 0 {
			launch()
			continue
		}
		c.scheduler.After(float64(i)*armoredCarDelay, launch)
	}
}
