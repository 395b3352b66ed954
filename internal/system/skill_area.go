// internal/system/skill_area.go
package system

import (
	"image/color"
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/interfaces"
	"math"
)

var (
	auroraColor    = color.RGBA{107, 255, 234, 90}
	explosionColor = color.RGBA{255, 107, 107, 160}
	fireColor      = color.RGBA{255, 107, 0, 200}
	windColor      = color.RGBA{155, 107, 255, 180}
)

// Задержки многократных ударов.
const (
	thermobaricStagger = 0.3
	airBlastStagger    = 0.15
	carpetBombStagger  = 0.12
)

func init() {
	registerCast(defs.SkillAurora, castAurora)
	registerCast(defs.SkillThermobaric, castThermobaric)
	registerCast(defs.SkillAirBlast, castAirBlast)
	registerCast(defs.SkillCarpetBomb, castCarpetBomb)
}

// castAurora бьёт вертикальным столбом света по X ближайшего врага.
func castAurora(c *CastingSystem, lv int) {
	target := c.nearest()
	if target == nil {
		return
	}
	x := target.X
	halfW := (14 + float64(lv)*4) * c.progress.RadiusMult(defs.SkillAurora)
	dmg := c.skillDamage(defs.SkillAurora, lv, 8+float64(lv)*3.2)

	for _, e := range c.ecs.LiveEnemies() {
		if e.Y > config.DefenseLineY {
			continue
		}
		if math.Abs(e.X-x) <= halfW {
			c.hit(e, dmg, defs.SkillAurora)
		}
	}
	c.mark(component.Marker{Shape: component.MarkerRect, X: x - halfW, Y: 0, W: halfW * 2, H: config.DefenseLineY, Color: auroraColor, Duration: 0.3})
}

// castThermobaric fires one shell per count; each later shell lands after a
// stagger, re-targets the nearest enemy and scatters a little.
func castThermobaric(c *CastingSystem, lv int) {
	if c.nearest() == nil {
		return
	}
	count := 1 + c.progress.CountBonus(defs.SkillThermobaric)
	r := 60*c.progress.RadiusMult(defs.SkillThermobaric) + float64(lv)*6
	dmg := c.skillDamage(defs.SkillThermobaric, lv, 40+float64(lv)*12)

	burst := func(i int) {
		cur := c.nearest()
		if cur == nil {
			return
		}
		x, y := cur.X, cur.Y
		if i > 0 {
			x = clampTo(x+(c.rng.Float64()-0.5)*40, 30, config.ScreenWidth-30)
			y = clampTo(y+(c.rng.Float64()-0.5)*40, 50, config.DefenseLineY-50)
		}
		for _, e := range enemiesWithin(c.ecs, x, y, r) {
			c.hit(e, dmg, defs.SkillThermobaric)
		}
		c.ring(x, y, r, explosionColor, 0.3)
		c.mark(component.Marker{Shape: component.MarkerCircle, X: x, Y: y, Radius: r * 0.4, Color: fireColor, Duration: 0.2})
		c.audio.PlayOneShot(interfaces.SoundExplosion)
	}

	burst(0)
	for i := 1; i < count; i++ {
		c.scheduler.After(float64(i)*thermobaricStagger, func() { burst(i) })
	}
}

// castAirBlast отбрасывает всех врагов в радиусе перед линией обороны.
func castAirBlast(c *CastingSystem, lv int) {
	count := 1 + c.progress.CountBonus(defs.SkillAirBlast)
	r := (90 + float64(lv)*6) * c.progress.RadiusMult(defs.SkillAirBlast)
	dmg := c.skillDamage(defs.SkillAirBlast, lv, 15+float64(lv)*5)
	kb := 150 + float64(lv)*25
	y := config.DefenseLineY - 40

	for i := 0; i < count; i++ {
		x := clampTo(c.ecs.Player.X+centredOffset(i, count, 30), r, config.ScreenWidth-r)
		blast := func() {
			for _, e := range enemiesWithin(c.ecs, x, y, r) {
				c.hit(e, dmg, defs.SkillAirBlast)
				e.Status.KnockUp(kb)
			}
			c.ring(x, y, r, windColor, 0.3)
		}
		if i == 0 {
			blast()
			continue
		}
		c.scheduler.After(float64(i)*airBlastStagger, blast)
	}
}

// castCarpetBomb drops count bombs around the nearest enemy; each detonates on its own delay.
func castCarpetBomb(c *CastingSystem, lv int) {
	target := c.nearest()
	if target == nil {
		return
	}
	count := 4 + c.progress.CountBonus(defs.SkillCarpetBomb) + lv/2
	r := (55 + float64(lv)*4) * c.progress.RadiusMult(defs.SkillCarpetBomb)
	dmg := c.skillDamage(defs.SkillCarpetBomb, lv, 35+float64(lv)*10)

	for i := 0; i < count; i++ {
		angle := 2*math.Pi/float64(count)*float64(i) + c.rng.Float64()*0.3
		dist := 20 + c.rng.Float64()*40
		bx := clampTo(target.X+math.Cos(angle)*dist, 24, config.ScreenWidth-24)
		by := clampTo(target.Y+math.Sin(angle)*dist, 90, config.DefenseLineY-90)
		delay := float64(i) * carpetBombStagger

		c.ring(bx, by, r, explosionColor, delay)
		c.scheduler.After(delay, func() {
			for _, e := range enemiesWithin(c.ecs, bx, by, r) {
				c.hit(e, dmg, defs.SkillCarpetBomb)
			}
			c.mark(component.Marker{Shape: component.MarkerCircle, X: bx, Y: by, Radius: r, Color: explosionColor, Duration: 0.25})
			c.audio.PlayOneShot(interfaces.SoundExplosion)
		})
	}
}
