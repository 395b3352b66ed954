// internal/ui/hud.go
package ui

import (
	"line-defense/internal/interfaces"
	"slices"
)

// HUDStore запоминает последние значения, которые прислала симуляция.
// Отрисовка читает их отсюда, ядро ничего не читает обратно.
type HUDStore struct {
	numbers   map[string]float64
	texts     map[string]string
	breakdown []interfaces.DamageEntry
}

var _ interfaces.HUD = (*HUDStore)(nil)

func NewHUDStore() *HUDStore {
	return &HUDStore{
		numbers: make(map[string]float64),
		texts:   make(map[string]string),
	}
}

func (h *HUDStore) SetNumber(name string, v float64) { h.numbers[name] = v }

func (h *HUDStore) SetText(name, text string) { h.texts[name] = text }

// SetDamageBreakdown keeps a copy; the caller may reuse its slice.
func (h *HUDStore) SetDamageBreakdown(entries []interfaces.DamageEntry) {
	h.breakdown = slices.Clone(entries)
}

func (h *HUDStore) Number(name string) float64 { return h.numbers[name] }

func (h *HUDStore) Int(name string) int { return int(h.numbers[name]) }

func (h *HUDStore) Text(name string) string { return h.texts[name] }

func (h *HUDStore) Breakdown() []interfaces.DamageEntry { return h.breakdown }
