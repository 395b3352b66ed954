// internal/system/visual_effect.go
package system

import (
	"image/color"
	"line-defense/internal/component"
	"line-defense/internal/entity"
	"line-defense/internal/interfaces"
	"math"
)

var (
	tornadoColor = color.RGBA{155, 107, 255, 120}
	beamColor    = color.RGBA{255, 230, 107, 200}
	carColor     = color.RGBA{169, 193, 255, 230}
	vortexColor  = color.RGBA{155, 107, 255, 70}
	fogColor     = color.RGBA{107, 220, 255, 70}
	burnColor    = color.RGBA{255, 107, 0, 80}
	shellColor   = color.RGBA{255, 140, 0, 255}
)

// VisualEffectSystem каждый кадр отдаёт рендереру примитивы долгоживущих эффектов.
// Маркеры с нулевой длительностью живут один кадр.
type VisualEffectSystem struct {
	ecs      *entity.ECS
	renderer interfaces.Renderer
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, renderer interfaces.Renderer) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, renderer: renderer}
}

func (s *VisualEffectSystem) Update(float64) {
	p := s.ecs.Player
	// Пульсация зон напалма.
	pulse := 0.75 + 0.25*math.Sin(s.ecs.GameTime*10)

	for _, z := range s.ecs.BurnZones.All() {
		if !z.Removed {
			c := burnColor
			c.A = uint8(float64(c.A) * pulse)
			s.renderer.Spawn(component.Marker{Shape: component.MarkerCircle, X: z.X, Y: z.Y, Radius: z.Radius, Color: c})
		}
	}
	for _, f := range s.ecs.IceFogs.All() {
		if !f.Removed {
			s.renderer.Spawn(component.Marker{Shape: component.MarkerCircle, X: f.X, Y: f.Y, Radius: f.Radius, Color: fogColor})
		}
	}
	for _, v := range s.ecs.Vortexes.All() {
		if !v.Removed {
			s.renderer.Spawn(component.Marker{Shape: component.MarkerCircle, X: v.X, Y: v.Y, Radius: v.Radius, Color: vortexColor})
			s.renderer.Spawn(component.Marker{Shape: component.MarkerRing, X: v.X, Y: v.Y, Radius: v.Radius, Width: 3, Color: tornadoColor})
		}
	}
	for _, t := range s.ecs.Tornados.All() {
		if !t.Removed {
			s.renderer.Spawn(component.Marker{Shape: component.MarkerCircle, X: t.X, Y: t.Y, Radius: t.Radius, Color: tornadoColor})
		}
	}
	for _, b := range s.ecs.Beams.All() {
		if !b.Removed {
			s.renderer.Spawn(component.Marker{Shape: component.MarkerLine, X: p.X, Y: p.Y, X2: b.AimX, Y2: b.AimY, Width: b.Width, Color: beamColor})
		}
	}
	for _, c := range s.ecs.Cars.All() {
		if !c.Removed {
			s.renderer.Spawn(component.Marker{Shape: component.MarkerRect, X: c.X - c.HalfWidth/2, Y: c.Y - c.Height, W: c.HalfWidth, H: c.Height, Color: carColor})
		}
	}
	for _, n := range s.ecs.NapalmShells.All() {
		if !n.Removed {
			s.renderer.Spawn(component.Marker{Shape: component.MarkerCircle, X: n.X, Y: n.Y, Radius: 4, Color: shellColor})
		}
	}
}
