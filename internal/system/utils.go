// internal/system/utils.go
package system

import (
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/entity"
	"line-defense/internal/utils"
	"math"
	"sort"
)

// playerArc — сектор стрельбы игрока: радиус дальности и слепая зона снизу.
func playerArc(p *component.Player) utils.Arc {
	return utils.Arc{
		CX:           p.X,
		CY:           p.Y,
		Radius:       p.Range,
		AnglePercent: config.FiringArcPercent,
		BlindCenter:  config.BlindZoneCenter,
	}
}

// nearestEnemy returns the live enemy closest to (x, y) regardless of range.
func nearestEnemy(ecs *entity.ECS, x, y float64) *component.Enemy {
	var best *component.Enemy
	bestD := math.Inf(1)
	for _, e := range ecs.LiveEnemies() {
		d := utils.Dist(x, y, e.X, e.Y)
		if d < bestD {
			bestD = d
			best = e
		}
	}
	return best
}

// nearestEnemyInArc — ближайший живой враг в секторе стрельбы игрока.
func nearestEnemyInArc(ecs *entity.ECS) *component.Enemy {
	arc := playerArc(ecs.Player)
	var best *component.Enemy
	bestD := math.Inf(1)
	for _, e := range ecs.LiveEnemies() {
		if !arc.Contains(e.X, e.Y) {
			continue
		}
		d := utils.Dist(arc.CX, arc.CY, e.X, e.Y)
		if d < bestD {
			bestD = d
			best = e
		}
	}
	return best
}

// enemiesWithin returns live enemies whose centre lies within r of (x, y).
func enemiesWithin(ecs *entity.ECS, x, y, r float64) []*component.Enemy {
	var out []*component.Enemy
	for _, e := range ecs.LiveEnemies() {
		if utils.Dist(x, y, e.X, e.Y) <= r {
			out = append(out, e)
		}
	}
	return out
}

// byDistance sorts enemies by distance from (x, y), nearest first. Ties keep id order.
func byDistance(list []*component.Enemy, x, y float64) {
	sort.SliceStable(list, func(i, j int) bool {
		return utils.Dist(x, y, list[i].X, list[i].Y) < utils.Dist(x, y, list[j].X, list[j].Y)
	})
}

// clampTo clamps v to [lo, hi]; when the range is inverted lo wins.
func clampTo(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// centredOffset spreads count items symmetrically around 0 with the given step.
func centredOffset(i, count int, step float64) float64 {
	if count <= 1 {
		return 0
	}
	return (float64(i) - float64(count-1)/2) * step
}

// skillSource is the name damage of a skill is recorded under.
func skillSource(lib *defs.Library, id defs.SkillID) string {
	if name := lib.Skill(defs.Main(id)).Name; name != "" {
		return name
	}
	return string(id)
}

func skillDamageType(lib *defs.Library, id defs.SkillID) defs.DamageType {
	return lib.Skill(defs.Main(id)).DamageType
}
