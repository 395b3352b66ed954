// internal/utils/geometry.go
package utils

import "math"

// Epsilon below which a length is treated as zero.
const Epsilon = 1e-6

// Vec2 — точка или вектор на плоскости.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector and false when v has (near) zero length.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l < Epsilon {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// Dist — евклидово расстояние между двумя точками.
func Dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// DistPointToSegment возвращает расстояние от точки p до отрезка ab.
// Вырожденный отрезок сводится к расстоянию до точки a.
func DistPointToSegment(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq < Epsilon*Epsilon {
		return Dist(px, py, ax, ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	t = Clamp(t, 0, 1)
	return Dist(px, py, ax+t*dx, ay+t*dy)
}

// Arc описывает сектор: центр, радиус, направление слепой зоны и её ширина.
// AnglePercent — доля полной окружности, в которой разрешена стрельба.
type Arc struct {
	CX, CY       float64
	Radius       float64
	AnglePercent float64
	BlindCenter  float64
}

// AngleAllowed сообщает, лежит ли направление angle вне слепой зоны.
func (a Arc) AngleAllowed(angle float64) bool {
	blind := 2 * math.Pi * (1 - a.AnglePercent)
	if blind <= 0 {
		return true
	}
	return math.Abs(AngleDiff(a.BlindCenter, angle)) > blind/2
}

// Contains — точка внутри радиуса и вне слепой зоны.
func (a Arc) Contains(x, y float64) bool {
	d := Dist(a.CX, a.CY, x, y)
	if d > a.Radius {
		return false
	}
	if d < Epsilon {
		return true
	}
	return a.AngleAllowed(math.Atan2(y-a.CY, x-a.CX))
}
