// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"line-defense/internal/config"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.HighlightColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// IsBossWave — волны с боссом выделяются красным.
func IsBossWave(wave int) bool {
	return wave == config.BossWave || wave == config.FinalBossWave
}

// Draw рисует римский номер и под ним текстовую подпись волны.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int, label string) {
	if wave <= 0 {
		return
	}
	roman := toRoman(wave)
	textColor := i.Color
	if IsBossWave(wave) {
		textColor = color.RGBA{255, 60, 60, 255}
	}
	DrawOutlined(screen, roman, i.X-TextWidth(roman)/2, i.Y, i.OutlineThickness, textColor, i.OutlineColor)
	DrawCentered(screen, label, i.X, i.Y+lineHeight, config.TextLightColor)
}
