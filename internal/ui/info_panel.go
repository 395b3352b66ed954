// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"line-defense/internal/config"
	"line-defense/internal/interfaces"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth     = 170
	panelHeight    = 120
	panelMargin    = 5
	animationSpeed = 10.0
	breakdownRows  = 6
)

// InfoPanel — выезжающая сбоку панель с характеристиками оружия.
type InfoPanel struct {
	IsVisible bool
	currentX  float64
	targetX   float64
}

func NewInfoPanel() *InfoPanel {
	return &InfoPanel{
		currentX: config.ScreenWidth,
		targetX:  config.ScreenWidth,
	}
}

// Toggle shows the panel or slides it away.
func (p *InfoPanel) Toggle() {
	if p.targetX < config.ScreenWidth {
		p.targetX = config.ScreenWidth
		return
	}
	p.IsVisible = true
	p.targetX = config.ScreenWidth - panelWidth - panelMargin
}

// Update двигает панель к цели с постоянной скоростью.
func (p *InfoPanel) Update() {
	if p.currentX == p.targetX {
		return
	}
	diff := p.targetX - p.currentX
	if math.Abs(diff) < animationSpeed {
		p.currentX = p.targetX
	} else if diff > 0 {
		p.currentX += animationSpeed
	} else {
		p.currentX -= animationSpeed
	}
	if p.currentX >= config.ScreenWidth {
		p.IsVisible = false
	}
}

// WeaponLines formats the weapon fields of the HUD.
func WeaponLines(h *HUDStore) []string {
	split := "-"
	if n := h.Int(interfaces.FieldWeaponSplit); n > 0 {
		split = fmt.Sprintf("x%d", n)
	}
	return []string{
		fmt.Sprintf("Damage   %.1f", h.Number(interfaces.FieldWeaponDamage)),
		fmt.Sprintf("Interval %.2fs", h.Number(interfaces.FieldWeaponInterval)),
		fmt.Sprintf("Burst    %d", h.Int(interfaces.FieldWeaponBurst)),
		fmt.Sprintf("Bullets  %d", h.Int(interfaces.FieldWeaponBullets)),
		fmt.Sprintf("Pierce   %d", h.Int(interfaces.FieldWeaponPierce)),
		fmt.Sprintf("Split    %s", split),
		fmt.Sprintf("Crit     %.0f%%", h.Number(interfaces.FieldWeaponCrit)*100),
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, h *HUDStore) {
	if !p.IsVisible {
		return
	}
	x, y := float32(p.currentX), float32(60)
	vector.DrawFilledRect(screen, x, y, panelWidth, panelHeight, config.PanelColor, true)
	vector.StrokeRect(screen, x, y, panelWidth, panelHeight, 1, config.TextLightColor, true)
	DrawText(screen, "WEAPON", int(x)+8, int(y)+4, config.HighlightColor)
	for i, line := range WeaponLines(h) {
		DrawText(screen, line, int(x)+8, int(y)+4+(i+1)*lineHeight, config.TextLightColor)
	}
}

// BreakdownLines formats the top damage sources, largest first.
func BreakdownLines(entries []interfaces.DamageEntry, rows int) []string {
	var out []string
	for i, e := range entries {
		if i >= rows {
			break
		}
		out = append(out, fmt.Sprintf("%-18s %7.0f %3.0f%%", e.Source, e.Amount, e.Share*100))
	}
	return out
}

// DrawBreakdown рисует таблицу урона по источникам в левом верхнем углу.
func DrawBreakdown(screen *ebiten.Image, h *HUDStore) {
	lines := BreakdownLines(h.Breakdown(), breakdownRows)
	if len(lines) == 0 {
		return
	}
	lines = append(lines, fmt.Sprintf("%-18s %7.0f", "Total", h.Number(interfaces.FieldDamageTotal)))
	for i, line := range lines {
		DrawText(screen, line, panelMargin, 60+i*lineHeight, config.TextLightColor)
	}
}

// DrawSkillsBar lists unlocked actives above the player.
func DrawSkillsBar(screen *ebiten.Image, h *HUDStore) {
	text := h.Text(interfaces.FieldSkills)
	if text == "" {
		return
	}
	lines := strings.Split(text, "\n")
	top := int(config.DefenseLineY) - 8 - len(lines)*lineHeight
	for i, line := range lines {
		DrawText(screen, line, panelMargin, top+i*lineHeight, config.SecondaryColor)
	}
}
