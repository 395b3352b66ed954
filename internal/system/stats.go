// internal/system/stats.go
package system

import (
	"line-defense/internal/interfaces"
	"sort"
)

// Источники урона, не являющиеся скиллами.
const (
	SourceWeapon    = "main_weapon"
	SourceBurn      = "burn"
	SourceInstakill = "instakill"
)

// DamageStats накапливает нанесённый урон по источникам.
type DamageStats struct {
	bySource map[string]float64
	total    float64
}

func NewDamageStats() *DamageStats {
	return &DamageStats{bySource: make(map[string]float64)}
}

// Record adds amount to source. Non-positive amounts are ignored.
func (s *DamageStats) Record(source string, amount float64) {
	if amount <= 0 {
		return
	}
	s.bySource[source] += amount
	s.total += amount
}

func (s *DamageStats) Total() float64 { return s.total }

// Breakdown returns every source sorted by damage, largest first.
func (s *DamageStats) Breakdown() []interfaces.DamageEntry {
	out := make([]interfaces.DamageEntry, 0, len(s.bySource))
	for src, amount := range s.bySource {
		share := 0.0
		if s.total > 0 {
			share = amount / s.total
		}
		out = append(out, interfaces.DamageEntry{Source: src, Amount: amount, Share: share})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Source < out[j].Source
	})
	return out
}
