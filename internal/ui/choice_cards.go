// internal/ui/choice_cards.go
package ui

import (
	"fmt"
	"image"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	cardWidth  = 400
	cardHeight = 110
	cardGap    = 16
)

// ChoiceCards раскладывает карточки выбора улучшения столбиком по центру экрана.
type ChoiceCards struct {
	Top int
}

func NewChoiceCards() *ChoiceCards {
	return &ChoiceCards{Top: 140}
}

// Rect returns the screen rectangle of card i.
func (c *ChoiceCards) Rect(i int) image.Rectangle {
	x := (config.ScreenWidth - cardWidth) / 2
	y := c.Top + i*(cardHeight+cardGap)
	return image.Rect(x, y, x+cardWidth, y+cardHeight)
}

// HitTest returns the index of the card under the point, or -1.
func (c *ChoiceCards) HitTest(x, y, n int) int {
	for i := 0; i < n; i++ {
		if image.Pt(x, y).In(c.Rect(i)) {
			return i
		}
	}
	return -1
}

// Draw рисует карточки. levels[i] — текущий уровень i-й карточки.
func (c *ChoiceCards) Draw(screen *ebiten.Image, choices []defs.SkillDefinition, levels []int, cursorX, cursorY int) {
	DrawCentered(screen, "LEVEL UP - choose one (1/2/3)", config.ScreenWidth/2, c.Top-30, config.HighlightColor)
	hover := c.HitTest(cursorX, cursorY, len(choices))
	for i, def := range choices {
		r := c.Rect(i)
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), cardWidth, cardHeight, config.PanelColor, true)
		border := config.TextLightColor
		if i == hover {
			border = config.HighlightColor
		}
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), cardWidth, cardHeight, 2, border, true)

		lv := 0
		if i < len(levels) {
			lv = levels[i]
		}
		x, y := r.Min.X+10, r.Min.Y+8
		DrawText(screen, fmt.Sprintf("%d. %s", i+1, def.Name), x, y, config.HighlightColor)
		DrawText(screen, CardSubtitle(def, lv), x, y+lineHeight, config.TextLightColor)
		for j, line := range Wrap(def.Desc, (cardWidth-20)/7) {
			if j >= 4 {
				break
			}
			DrawText(screen, line, x, y+(j+2)*lineHeight+4, config.TextLightColor)
		}
	}
}

// CardSubtitle — категория и переход уровня.
func CardSubtitle(def defs.SkillDefinition, level int) string {
	kind := string(def.Category)
	if def.Key.IsUpgrade() {
		kind = "upgrade of " + string(def.Key.Main)
	}
	if level == 0 && def.IsMain() {
		return fmt.Sprintf("[%s] NEW", kind)
	}
	return fmt.Sprintf("[%s] Lv %d -> %d / %d", kind, level, level+1, def.MaxLevel)
}

// Wrap splits s into lines of at most width characters on spaces.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	for _, w := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
