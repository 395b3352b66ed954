// internal/component/effects.go
package component

import "line-defense/internal/types"

// Persistent skill effects. Each one is advanced once per tick by the effect
// system and removed in the same tick its lifetime runs out.

// Tornado поднимается вверх от линии обороны и наносит урон в радиусе.
type Tornado struct {
	ID types.EntityID
	Position
	VY        float64
	Radius    float64
	DPS       float64
	Remaining float64
	Removed   bool
}

// Beam — луч высокой энергии, каждый тик перенацеливается на ближайшего врага в секторе.
type Beam struct {
	ID        types.EntityID
	AimX      float64
	AimY      float64
	Width     float64
	DPS       float64
	Remaining float64
	Removed   bool
}

// Car — бронемашина, едет вверх и таранит каждого врага один раз.
type Car struct {
	ID types.EntityID
	Position
	VY        float64
	HalfWidth float64
	Height    float64
	Damage    float64
	Knockback float64
	Remaining float64
	HitIDs    map[types.EntityID]struct{}
	Removed   bool
}

// Vortex стягивает врагов к центру и наносит урон каждый тик.
type Vortex struct {
	ID types.EntityID
	Position
	Radius    float64
	DPS       float64
	Pull      float64
	Remaining float64
	Removed   bool
}

// IceFog — поле, которое каждый тик замораживает и ранит врагов внутри.
type IceFog struct {
	ID types.EntityID
	Position
	Radius    float64
	DPS       float64
	FreezeSec float64
	Remaining float64
	Removed   bool
}

// BurnZone — горящая область напалма.
type BurnZone struct {
	ID types.EntityID
	Position
	Radius    float64
	PctPerSec float64
	Remaining float64
	Removed   bool
}

// NapalmShell летит по баллистической дуге и создаёт BurnZone при падении.
type NapalmShell struct {
	ID    types.EntityID
	Start Position
	Position
	VX, VY  float64
	Gravity float64
	Elapsed float64
	Flight  float64
	Target  Position
	Payload NapalmPayload
	Removed bool
}

// NapalmPayload is what the shell releases on landing.
type NapalmPayload struct {
	Radius    float64
	Damage    float64
	PctPerSec float64
	ZoneTTL   float64
}
