// internal/interfaces/sinks.go
package interfaces

import "line-defense/internal/component"

// Renderer принимает одноразовые визуальные примитивы. Ядро ничего не читает обратно.
type Renderer interface {
	Spawn(m component.Marker)
}

// Sound — идентификатор короткого звука.
type Sound string

const (
	SoundShot      Sound = "shot"
	SoundExplosion Sound = "explosion"
	SoundZap       Sound = "zap"
	SoundLevelUp   Sound = "level_up"
	SoundBoss      Sound = "boss"
	SoundDefeat    Sound = "defeat"
)

// Channel — громкостной канал.
type Channel string

const (
	ChannelMaster Channel = "master"
	ChannelSFX    Channel = "sfx"
	ChannelMusic  Channel = "music"
)

// Audio is the fire-and-forget sound sink.
type Audio interface {
	PlayOneShot(s Sound)
	StartLoop()
	StopLoop()
	SetVolume(ch Channel, v float64)
}

// HUD field names pushed by the simulation.
const (
	FieldDefenseHP    = "defense_hp"
	FieldDefenseMaxHP = "defense_max_hp"
	FieldLevel        = "level"
	FieldXP           = "xp"
	FieldXPNext       = "xp_next"
	FieldWave         = "wave"
	FieldWaveLabel    = "wave_label"
	FieldTimeAlive    = "time_alive"
	FieldKills        = "kills"
	FieldPhase        = "phase"
	FieldDamageTotal  = "damage_total"

	// Оружие.
	FieldWeaponDamage   = "weapon_damage"
	FieldWeaponInterval = "weapon_interval"
	FieldWeaponBurst    = "weapon_burst"
	FieldWeaponBullets  = "weapon_bullets"
	FieldWeaponPierce   = "weapon_pierce"
	FieldWeaponSplit    = "weapon_split"
	FieldWeaponCrit     = "weapon_crit"

	// FieldSkills is a text field, one unlocked active per line.
	FieldSkills = "skills"
)

// DamageEntry — одна строка таблицы урона по источникам.
type DamageEntry struct {
	Source string
	Amount float64
	Share  float64
}

// HUD is the push-only sink for numbers and text shown to the player.
type HUD interface {
	SetNumber(name string, v float64)
	SetText(name, text string)
	SetDamageBreakdown(entries []DamageEntry)
}

// NopRenderer drops every marker.
type NopRenderer struct{}

func (NopRenderer) Spawn(component.Marker) {}

// NopAudio is silent.
type NopAudio struct{}

func (NopAudio) PlayOneShot(Sound)          {}
func (NopAudio) StartLoop()                 {}
func (NopAudio) StopLoop()                  {}
func (NopAudio) SetVolume(Channel, float64) {}

// NopHUD ignores all updates.
type NopHUD struct{}

func (NopHUD) SetNumber(string, float64)        {}
func (NopHUD) SetText(string, string)           {}
func (NopHUD) SetDamageBreakdown([]DamageEntry) {}

// HUDFanout pushes every update to several sinks.
type HUDFanout []HUD

func (f HUDFanout) SetNumber(name string, v float64) {
	for _, h := range f {
		h.SetNumber(name, v)
	}
}

func (f HUDFanout) SetText(name, text string) {
	for _, h := range f {
		h.SetText(name, text)
	}
}

func (f HUDFanout) SetDamageBreakdown(entries []DamageEntry) {
	for _, h := range f {
		h.SetDamageBreakdown(entries)
	}
}
