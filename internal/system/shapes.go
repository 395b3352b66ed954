// internal/system/shapes.go
package system

import (
	"fmt"
	"line-defense/internal/config"
	"line-defense/internal/utils"
)

// ShapeKind — вариант формы зоны срабатывания.
type ShapeKind int

const (
	// ShapeArcRange — сектор вокруг игрока со слепой зоной внизу.
	ShapeArcRange ShapeKind = iota
)

// RangeShape is the trigger area a skill checks before casting.
// Only the arc-range variant is reachable; every skill uses it.
type RangeShape struct {
	Kind         ShapeKind
	Radius       float64
	AnglePercent float64
}

// ArcRange builds the default trigger sector.
func ArcRange(radius float64) RangeShape {
	return RangeShape{Kind: ShapeArcRange, Radius: radius, AnglePercent: config.FiringArcPercent}
}

// Contains reports whether (x, y) lies inside the shape centred at (cx, cy).
func (r RangeShape) Contains(cx, cy, x, y float64) bool {
	switch r.Kind {
	case ShapeArcRange:
		return utils.Arc{
			CX:           cx,
			CY:           cy,
			Radius:       r.Radius,
			AnglePercent: r.AnglePercent,
			BlindCenter:  config.BlindZoneCenter,
		}.Contains(x, y)
	default:
		panic(fmt.Sprintf("system: unknown range shape %d", r.Kind))
	}
}
