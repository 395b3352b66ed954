// pkg/render/world_renderer.go
package render

import (
	"image/color"
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/entity"
	"line-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Полупрозрачные цвета заданы без premultiply, Fade(c, 1) приводит их к виду ebiten.
var (
	tornadoColor   = Fade(color.RGBA{180, 220, 255, 90}, 1)
	beamColor      = Fade(color.RGBA{255, 80, 200, 200}, 1)
	carColor       = color.RGBA{120, 130, 90, 255}
	vortexColor    = Fade(color.RGBA{140, 120, 255, 80}, 1)
	fogColor       = Fade(color.RGBA{170, 230, 255, 60}, 1)
	burnColor      = Fade(color.RGBA{255, 110, 30, 70}, 1)
	shellColor     = color.RGBA{255, 150, 40, 255}
	frozenTint     = color.RGBA{150, 220, 255, 255}
	shockTint      = color.RGBA{255, 255, 120, 255}
	selectionColor = Fade(color.RGBA{255, 255, 255, 200}, 1)
)

// WorldRenderer рисует поле боя прямо из хранилища сущностей.
type WorldRenderer struct {
	ecs     *entity.ECS
	markers *MarkerRenderer
	bg      *ebiten.Image
}

func NewWorldRenderer(ecs *entity.ECS, markers *MarkerRenderer) *WorldRenderer {
	return &WorldRenderer{ecs: ecs, markers: markers}
}

// SetECS points the renderer at the store of a new run.
func (r *WorldRenderer) SetECS(ecs *entity.ECS) { r.ecs = ecs }

// renderBackground рисует неподвижный задник один раз.
func (r *WorldRenderer) renderBackground() {
	r.bg = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	r.bg.Fill(config.BackgroundColor)
	vector.StrokeLine(r.bg, 0, config.DefenseLineY, config.ScreenWidth, config.DefenseLineY, 3, Fade(config.DefenseLineColor, 1), true)
}

// Draw renders the field. selected is the pinned weapon target, or 0.
func (r *WorldRenderer) Draw(screen *ebiten.Image, selected types.EntityID) {
	if r.bg == nil {
		r.renderBackground()
	}
	screen.DrawImage(r.bg, nil)

	ecs := r.ecs
	now := ecs.GameTime

	for _, z := range ecs.BurnZones.All() {
		vector.DrawFilledCircle(screen, float32(z.X), float32(z.Y), float32(z.Radius), burnColor, true)
	}
	for _, f := range ecs.IceFogs.All() {
		vector.DrawFilledCircle(screen, float32(f.X), float32(f.Y), float32(f.Radius), fogColor, true)
	}
	for _, v := range ecs.Vortexes.All() {
		vector.DrawFilledCircle(screen, float32(v.X), float32(v.Y), float32(v.Radius), vortexColor, true)
	}

	for _, e := range ecs.LiveEnemies() {
		c := FromHex(e.Color)
		if e.Status.IsFrozen(now) {
			c = frozenTint
		} else if e.Status.IsShocked(now) {
			c = shockTint
		}
		rad := float32(e.Radius())
		vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), rad, c, true)
		if e.Status.IsBurning(now) {
			vector.StrokeCircle(screen, float32(e.X), float32(e.Y), rad+2, 1, burnColor, true)
		}
		if selected != 0 && e.ID == selected {
			vector.StrokeCircle(screen, float32(e.X), float32(e.Y), rad+4, 1.5, selectionColor, true)
		}
		r.drawHealthBar(screen, e)
	}

	for _, t := range ecs.Tornados.All() {
		vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(t.Radius), tornadoColor, true)
	}
	for _, c := range ecs.Cars.All() {
		vector.DrawFilledRect(screen, float32(c.X-c.HalfWidth), float32(c.Y-c.Height/2), float32(2*c.HalfWidth), float32(c.Height), carColor, true)
	}
	p := ecs.Player
	for _, b := range ecs.Beams.All() {
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(b.AimX), float32(b.AimY), float32(b.Width), beamColor, true)
	}
	for _, s := range ecs.NapalmShells.All() {
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), 4, shellColor, true)
	}

	for _, b := range ecs.Bullets.All() {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), config.BulletColor, true)
	}
	for _, b := range ecs.SecondaryBullets.All() {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), config.SecondaryColor, true)
	}
	for _, s := range ecs.EnemyShots.All() {
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), 3, config.EnemyShotColor, true)
	}

	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 10, config.PlayerColor, true)

	if r.markers != nil {
		r.markers.Draw(screen)
	}
}

func (r *WorldRenderer) drawHealthBar(screen *ebiten.Image, e *component.Enemy) {
	if e.Health.Max <= 0 || e.Health.Value >= e.Health.Max {
		return
	}
	w := float32(e.Radius() * 2)
	x := float32(e.X) - w/2
	y := float32(e.Y-e.Radius()) - 5
	frac := float32(e.Health.Value / e.Health.Max)
	vector.DrawFilledRect(screen, x, y, w, 2, Fade(config.HPBarBackColor, 1), false)
	vector.DrawFilledRect(screen, x, y, w*frac, 2, Fade(config.DefenseLineColor, 1), false)
}
