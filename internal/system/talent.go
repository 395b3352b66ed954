// internal/system/talent.go
package system

import (
	"image/color"
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/entity"
	"line-defense/internal/interfaces"
	"line-defense/internal/utils"
)

const (
	teleportChancePerLevel  = 0.012
	instakillChancePerLevel = 0.01
)

var instakillColor = color.RGBA{255, 215, 0, 255}

// TalentSystem срабатывает на попадания оружия и ведёт анимацию телепорта.
type TalentSystem struct {
	ecs      *entity.ECS
	progress *ProgressionSystem
	damage   *DamageSystem
	rng      utils.Rand
	renderer interfaces.Renderer
}

func NewTalentSystem(ecs *entity.ECS, progress *ProgressionSystem, damage *DamageSystem, rng utils.Rand, renderer interfaces.Renderer) *TalentSystem {
	return &TalentSystem{ecs: ecs, progress: progress, damage: damage, rng: rng, renderer: renderer}
}

// OnHit rolls the on-hit talents against a target the weapon just damaged.
// It reports whether the target was instakilled.
func (s *TalentSystem) OnHit(target *component.Enemy) bool {
	if !target.Alive() {
		return false
	}
	if lv := s.progress.LevelOf(defs.SkillTalentTeleport); lv > 0 && target.Teleport == nil {
		if s.rng.Float64() < teleportChancePerLevel*float64(lv) {
			s.teleport(target)
		}
	}
	if lv := s.progress.LevelOf(defs.SkillTalentInstakill); lv > 0 && !target.Boss {
		if s.rng.Float64() < instakillChancePerLevel*float64(lv) {
			x, y := target.X, target.Y
			s.damage.Apply(target, target.Health.Value, SourceInstakill, false)
			s.renderer.Spawn(component.Marker{Shape: component.MarkerCircle, X: x, Y: y, Radius: 20, Color: instakillColor, Duration: 0.2})
			return true
		}
	}
	return false
}

func (s *TalentSystem) teleport(e *component.Enemy) {
	e.Teleport = &component.Teleport{
		FromX: e.X,
		FromY: e.Y,
		ToX:   utils.Between(s.rng, config.SpawnMarginX, config.ScreenWidth-config.SpawnMarginX),
		ToY:   config.SpawnY,
	}
}

// Update moves teleporting enemies along their path. On arrival the enemy
// walks toward the line again from the spawn row.
func (s *TalentSystem) Update(dt float64) {
	for _, e := range s.ecs.LiveEnemies() {
		tp := e.Teleport
		if tp == nil {
			continue
		}
		tp.Progress += dt / config.TeleportAnimSec
		if tp.Progress >= 1 {
			e.X, e.Y = tp.ToX, tp.ToY
			e.Teleport = nil
			e.Attacking = false
			e.Cooldown = 0
			continue
		}
		e.X = utils.Lerp(tp.FromX, tp.ToX, tp.Progress)
		e.Y = utils.Lerp(tp.FromY, tp.ToY, tp.Progress)
	}
}
