// internal/system/aura.go
package system

import (
	"image/color"
	"line-defense/internal/component"
	"line-defense/internal/entity"
	"line-defense/internal/interfaces"
)

var (
	frozenAuraColor  = color.RGBA{107, 255, 234, 160}
	shockedAuraColor = color.RGBA{140, 180, 255, 160}
	burningAuraColor = color.RGBA{255, 107, 0, 160}
)

// AuraSystem рисует ореолы статусов вокруг врагов: заморозка, шок, горение.
type AuraSystem struct {
	ecs      *entity.ECS
	renderer interfaces.Renderer
}

func NewAuraSystem(ecs *entity.ECS, renderer interfaces.Renderer) *AuraSystem {
	return &AuraSystem{ecs: ecs, renderer: renderer}
}

// Update emits one ring per active status; rings of several statuses nest outward.
func (s *AuraSystem) Update(float64) {
	now := s.ecs.GameTime
	for _, e := range s.ecs.LiveEnemies() {
		r := e.Radius() + 2
		for _, st := range []struct {
			on bool
			c  color.RGBA
		}{
			{e.Status.IsFrozen(now), frozenAuraColor},
			{e.Status.IsShocked(now), shockedAuraColor},
			{e.Status.IsBurning(now), burningAuraColor},
		} {
			if !st.on {
				continue
			}
			s.renderer.Spawn(component.Marker{Shape: component.MarkerRing, X: e.X, Y: e.Y, Radius: r, Width: 1.5, Color: st.c})
			r += 2.5
		}
	}
}
