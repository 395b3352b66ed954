// internal/system/skill_electric.go
package system

import (
	"image/color"
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/interfaces"
	"line-defense/internal/types"
	"line-defense/internal/utils"
)

var electricColor = color.RGBA{140, 180, 255, 220}

const (
	empStrikeInterval    = 1.0
	empChainCheckDelay   = 0.2
	empChainRecastDelay  = 0.1
	empElectricDamageMul = 1.8
	empExplosionWidth    = 25.0
	empExplosionMul      = 0.5
)

func init() {
	registerCast(defs.SkillEmpPierce, castEmpPierce)
	registerCast(defs.SkillChainElectron, castChainElectron)
}

func castEmpPierce(c *CastingSystem, lv int) {
	empCast(c, lv, false)
}

// empCast запускает серию ударов EMP. Если взята ветка chain и хоть один удар
// убил врага, вся серия повторяется один раз; повтор идёт с suppress=true.
func empCast(c *CastingSystem, lv int, suppress bool) {
	total := 1 + c.progress.CountBonus(defs.SkillEmpPierce)
	if c.progress.Has(defs.SkillEmpPierce, defs.UpgradeExtra1) {
		total++
	}
	if c.progress.Has(defs.SkillEmpPierce, defs.UpgradeExtra2) {
		total += 2
	}

	killedAny := false
	strike := func() {
		if empStrike(c, lv) {
			killedAny = true
		}
	}
	strike()
	for i := 1; i < total; i++ {
		c.scheduler.After(float64(i)*empStrikeInterval, strike)
	}

	if suppress || !c.progress.Has(defs.SkillEmpPierce, defs.UpgradeChain) {
		return
	}
	c.scheduler.After(float64(total-1)*empStrikeInterval+empChainCheckDelay, func() {
		if !killedAny {
			return
		}
		c.scheduler.After(empChainRecastDelay, func() { empCast(c, lv, true) })
	})
}

// empStrike hits a random enemy from the nearer half of the field and reports
// whether anything died.
func empStrike(c *CastingSystem, lv int) bool {
	p := c.ecs.Player
	var pool []*component.Enemy
	for _, e := range c.ecs.LiveEnemies() {
		if e.Y < config.DefenseLineY {
			pool = append(pool, e)
		}
	}
	if len(pool) == 0 {
		return false
	}
	byDistance(pool, p.X, p.Y)
	pool = pool[:max(1, len(pool)/2)]
	target := pool[c.rng.Intn(len(pool))]
	x, y := target.X, target.Y

	r := (18 + float64(lv)*2) * c.progress.RadiusMult(defs.SkillEmpPierce)
	dmg := c.skillDamage(defs.SkillEmpPierce, lv, 20+float64(lv)*6)
	if c.progress.Has(defs.SkillEmpPierce, defs.UpgradeElectricDamage) {
		dmg *= empElectricDamageMul
	}
	shockMult := 1.2 + float64(lv)*0.05
	shockSec := (4.0 + float64(lv)*0.2) * c.progress.DurationMult(defs.SkillEmpPierce)
	explosion := c.progress.Has(defs.SkillEmpPierce, defs.UpgradeExplosion)
	src := c.source(defs.SkillEmpPierce)

	killed := false
	outer := r
	if explosion {
		outer = r + empExplosionWidth
	}
	for _, e := range enemiesWithin(c.ecs, x, y, outer) {
		d := utils.Dist(x, y, e.X, e.Y)
		if d <= r {
			// Шок вешается после удара: сам удар им не усиливается.
			if _, _, k := c.damage.Strike(e, dmg, defs.DamageElectric, src); k {
				killed = true
			}
			e.Status.ApplyShock(c.ecs.GameTime, shockSec, shockMult)
			continue
		}
		if _, _, k := c.damage.Strike(e, dmg*empExplosionMul, defs.DamageElectric, src); k {
			killed = true
		}
	}

	c.line(x, 0, x, y, 3, electricColor, 0.2)
	c.ring(x, y, r, electricColor, 0.3)
	if explosion {
		c.ring(x, y, outer, explosionColor, 0.3)
	}
	c.audio.PlayOneShot(interfaces.SoundZap)
	return killed
}

// castChainElectron бьёт ближайшего врага и прыгает по цепочке к ближайшим непоражённым.
func castChainElectron(c *CastingSystem, lv int) {
	cur := c.nearest()
	if cur == nil {
		return
	}
	jumps := 3 + c.progress.CountBonus(defs.SkillChainElectron) + lv/2
	jumpR := (90 + float64(lv)*4) * c.progress.RadiusMult(defs.SkillChainElectron)
	dmg := c.skillDamage(defs.SkillChainElectron, lv, 18+float64(lv)*5)

	hit := map[types.EntityID]struct{}{}
	fromX, fromY := c.ecs.Player.X, c.ecs.Player.Y
	for n := 0; n < jumps && cur != nil; n++ {
		hit[cur.ID] = struct{}{}
		x, y := cur.X, cur.Y
		c.hit(cur, dmg, defs.SkillChainElectron)
		c.line(fromX, fromY, x, y, 2, electricColor, 0.15)
		fromX, fromY = x, y
		cur = nextChainTarget(c, x, y, jumpR, hit)
	}
	c.audio.PlayOneShot(interfaces.SoundZap)
}

// nextChainTarget — ближайший живой враг в радиусе прыжка, ещё не задетый цепью.
func nextChainTarget(c *CastingSystem, x, y, jumpR float64, hit map[types.EntityID]struct{}) *component.Enemy {
	var best *component.Enemy
	bestD := jumpR
	for _, e := range c.ecs.LiveEnemies() {
		if _, ok := hit[e.ID]; ok {
			continue
		}
		if d := utils.Dist(x, y, e.X, e.Y); d <= bestD {
			bestD = d
			best = e
		}
	}
	return best
}
