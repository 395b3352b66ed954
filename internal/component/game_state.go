// internal/component/game_state.go
package component

// RunPhase — фаза забега.
type RunPhase int

const (
	PhaseRunning RunPhase = iota
	PhaseLevelUp
	PhaseEndlessPrompt
	PhaseDefeat
	PhaseVictory
)

func (p RunPhase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseLevelUp:
		return "level_up"
	case PhaseEndlessPrompt:
		return "endless_prompt"
	case PhaseDefeat:
		return "defeat"
	case PhaseVictory:
		return "victory"
	}
	return "unknown"
}

// Paused reports whether gameplay time is frozen in this phase.
func (p RunPhase) Paused() bool {
	return p == PhaseLevelUp || p == PhaseEndlessPrompt
}

// Over reports whether the run has ended.
func (p RunPhase) Over() bool {
	return p == PhaseDefeat || p == PhaseVictory
}

// RunState — состояние забега: волна, линия обороны, режимы сложности.
type RunState struct {
	Phase RunPhase

	Wave          int
	MaxWaves      int
	BaseQuota     int
	ZombiesInWave int
	WaveCleared   bool
	SpawnTimer    float64
	SpawnInterval float64

	CrazyMode   bool
	EndlessMode bool

	TimeAlive    float64
	DefenseHP    float64
	DefenseMaxHP float64
	Killed       int
}
