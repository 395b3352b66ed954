// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 480
	ScreenHeight = 640
	MaxDeltaTime = 0.06

	DefenseLineY  = 520.0
	DefenseHealth = 2000.0

	PlayerX              = ScreenWidth / 2
	PlayerY              = ScreenHeight - 44
	PlayerRange          = 520.0
	PlayerFireInterval   = 0.5
	PlayerDamage         = 5.0
	PlayerCritChance     = 0.05
	PlayerCritDamageMult = 1.5

	// Слепая зона игрока: 20% окружности, центр смотрит вниз.
	FiringArcPercent = 0.8
	BlindZoneCenter  = math.Pi / 2

	BulletSpeed          = 260.0 // pixels per second
	BulletRadius         = 1.5
	BulletMuzzleOffset   = 8.0
	SecondaryBulletSpeed = 100.0
	SecondaryRangeFactor = 0.6
	HitTolerance         = 2.0
	SweepMinDistance     = 0.1
	BurstIntervalSec     = 0.03

	EnemyRadiusPerSize = 6.0
	KnockbackDecay     = 0.12
	EnemyShotOffsetY   = 10.0

	SpawnMarginX    = 14
	SpawnY          = -16.0
	ZombiesPerWave  = 15
	MaxNormalWaves  = 20
	BossWave        = 10
	FinalBossWave   = 20
	ResistantWave   = 5
	ResistantWeight = 0.2

	MaxMainSkills   = 4
	DraftChoices    = 3
	DraftMaxTries   = 50
	InitialXPToNext = 10

	SkillTriggerRangeFactor = 0.9
	SkillRetryFraction      = 0.1

	TeleportAnimSec = 0.2
)

// CalculateXPForNextLevel возвращает порог опыта для следующего уровня.
func CalculateXPForNextLevel(level int) int {
	return int(math.Floor(10 + float64(level)*4))
}

var (
	BackgroundColor  = color.RGBA{12, 15, 20, 255}
	DefenseLineColor = color.RGBA{220, 60, 60, 200}
	PlayerColor      = color.RGBA{74, 209, 255, 255}
	BulletColor      = color.RGBA{255, 255, 200, 255}
	SecondaryColor   = color.RGBA{255, 220, 140, 255}
	EnemyShotColor   = color.RGBA{255, 230, 107, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	PanelColor       = color.RGBA{20, 24, 34, 220}
	HighlightColor   = color.RGBA{255, 215, 0, 255}
	HPBarBackColor   = color.RGBA{68, 0, 0, 204}
	XPBarFillColor   = color.RGBA{70, 100, 120, 220}
	StrokeWidth      = float32(2.0)
)
