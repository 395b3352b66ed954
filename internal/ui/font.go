// internal/ui/font.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face — моноширинный шрифт HUD, без внешних файлов.
var Face font.Face = basicfont.Face7x13

const lineHeight = 15

// TextWidth returns the pixel width of s in Face.
func TextWidth(s string) int {
	b := text.BoundString(Face, s)
	return b.Max.X - b.Min.X
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, Face, x, y+Face.Metrics().Ascent.Ceil(), clr)
}

// DrawCentered draws s centered horizontally on cx.
func DrawCentered(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	DrawText(screen, s, cx-TextWidth(s)/2, y, clr)
}

// DrawOutlined рисует текст с обводкой в thickness пикселей.
func DrawOutlined(screen *ebiten.Image, s string, x, y, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(screen, s, x+dx, y+dy, outline)
		}
	}
	DrawText(screen, s, x, y, clr)
}
