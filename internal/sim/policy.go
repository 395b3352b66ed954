// internal/sim/policy.go
package sim

import (
	"fmt"
	"line-defense/internal/defs"
)

// Policy picks one of the offered cards. choices is never empty.
type Policy func(choices []defs.SkillDefinition) int

// First всегда берёт первую карточку.
func First([]defs.SkillDefinition) int { return 0 }

// Priority takes the card with the highest Priority; ties go to the earlier card.
func Priority(choices []defs.SkillDefinition) int {
	best := 0
	for i, c := range choices {
		if c.Priority > choices[best].Priority {
			best = i
		}
	}
	return best
}

// PolicyByName resolves the sim.policy config value.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "", "first":
		return First, nil
	case "priority":
		return Priority, nil
	default:
		return nil, fmt.Errorf("unknown draft policy %q", name)
	}
}
