// internal/component/visual.go
package component

import "image/color"

// MarkerShape — форма визуального примитива.
type MarkerShape int

const (
	MarkerCircle MarkerShape = iota
	MarkerRing
	MarkerLine
	MarkerRect
)

// Marker описывает одноразовый визуальный примитив, передаваемый рендереру.
// Ядро не читает его обратно.
type Marker struct {
	Shape    MarkerShape
	X, Y     float64
	X2, Y2   float64 // конец линии
	Radius   float64
	W, H     float64
	Width    float64 // толщина линии
	Color    color.RGBA
	Duration float64
}
