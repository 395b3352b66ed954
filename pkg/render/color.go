// pkg/render/color.go
package render

import "image/color"

// FromHex turns 0xRRGGBB into an opaque color.
func FromHex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// Fade scales the alpha of c by k in [0,1]. Non-premultiplied input, premultiplied output,
// как ждёт ebiten.
func Fade(c color.RGBA, k float64) color.RGBA {
	k = max(0, min(1, k))
	a := float64(c.A) / 255 * k
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
