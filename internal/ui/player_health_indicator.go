// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"line-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	healthBarWidth  = 300
	healthBarHeight = 10
)

var (
	healthHighColor = color.RGBA{60, 140, 255, 255}
	healthLowColor  = color.RGBA{220, 50, 50, 255}
)

// DefenseIndicator отображает здоровье линии обороны.
type DefenseIndicator struct {
	X, Y float32
}

func NewDefenseIndicator(x, y float32) *DefenseIndicator {
	return &DefenseIndicator{X: x, Y: y}
}

// HealthColor — синий, пока больше половины, дальше красный.
func HealthColor(hp, maxHP float64) color.RGBA {
	if maxHP > 0 && hp > maxHP/2 {
		return healthHighColor
	}
	return healthLowColor
}

// Draw рисует полосу и подпись над ней.
func (i *DefenseIndicator) Draw(screen *ebiten.Image, hp, maxHP float64) {
	ratio := 0.0
	if maxHP > 0 {
		ratio = max(0, min(1, hp/maxHP))
	}
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, config.HPBarBackColor, true)
	if ratio > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, float32(healthBarWidth*ratio), healthBarHeight, HealthColor(hp, maxHP), true)
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, 1, color.White, true)

	label := fmt.Sprintf("%.0f/%.0f", max(0, hp), maxHP)
	DrawCentered(screen, label, int(i.X+healthBarWidth/2), int(i.Y)-lineHeight, config.TextLightColor)
}
