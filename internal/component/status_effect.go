// internal/component/status_effect.go
package component

import "line-defense/internal/utils"

// StatusEffects — таймеры статусов врага. Все значения — абсолютное время симуляции.
// Новое наложение никогда не ослабляет действующее: длительность и сила берутся по максимуму.
type StatusEffects struct {
	FrozenUntil   float64
	ShockedUntil  float64
	ShockMult     float64
	BurningUntil  float64
	BurnPctPerSec float64
	ExtraVy       float64 // отбрасывание, всегда <= 0
}

// NewStatusEffects returns a clean status record.
func NewStatusEffects() StatusEffects {
	return StatusEffects{ShockMult: 1}
}

func (s *StatusEffects) IsFrozen(now float64) bool  { return now < s.FrozenUntil }
func (s *StatusEffects) IsShocked(now float64) bool { return now < s.ShockedUntil }
func (s *StatusEffects) IsBurning(now float64) bool { return now < s.BurningUntil }

// ApplyFreeze — заморозка: не двигается и не атакует.
func (s *StatusEffects) ApplyFreeze(now, duration float64) {
	s.FrozenUntil = max(s.FrozenUntil, now+duration)
}

// ApplyShock — шок: увеличивает получаемый урон.
func (s *StatusEffects) ApplyShock(now, duration, mult float64) {
	s.ShockedUntil = max(s.ShockedUntil, now+duration)
	s.ShockMult = max(s.ShockMult, mult)
}

// ApplyBurn — горение: процент от максимального здоровья в секунду.
func (s *StatusEffects) ApplyBurn(now, duration, pctPerSec float64) {
	s.BurningUntil = max(s.BurningUntil, now+duration)
	s.BurnPctPerSec = max(s.BurnPctPerSec, pctPerSec)
}

// ShockMultiplier returns the active shock multiplier or 1.
func (s *StatusEffects) ShockMultiplier(now float64) float64 {
	if s.IsShocked(now) {
		return s.ShockMult
	}
	return 1
}

// BurnDamage returns the burn damage for this tick; the caller applies it.
func (s *StatusEffects) BurnDamage(dt, now, maxHP float64) float64 {
	if !s.IsBurning(now) {
		return 0
	}
	return maxHP * s.BurnPctPerSec * dt
}

// KnockUp pushes the enemy upward; a weaker push never replaces a stronger one.
func (s *StatusEffects) KnockUp(strength float64) {
	if strength < 0 {
		strength = -strength
	}
	s.ExtraVy = min(s.ExtraVy, -strength)
}

// DecayKnockback moves ExtraVy toward zero by the given fraction.
func (s *StatusEffects) DecayKnockback(rate float64) {
	s.ExtraVy = utils.Lerp(s.ExtraVy, 0, rate)
}
