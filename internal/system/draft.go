// internal/system/draft.go
package system

import (
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/utils"
)

// DraftPool выбирает варианты улучшений при повышении уровня.
type DraftPool struct {
	progress *ProgressionSystem
	rng      utils.Rand
	maxMain  int
}

func NewDraftPool(progress *ProgressionSystem, rng utils.Rand, maxMain int) *DraftPool {
	if maxMain <= 0 {
		maxMain = config.MaxMainSkills
	}
	return &DraftPool{progress: progress, rng: rng, maxMain: maxMain}
}

// Candidates returns every definition that may be offered right now.
// Once the active-skill cap is reached new actives stop appearing;
// weapon spread, passives and branches stay in the pool.
func (d *DraftPool) Candidates() []defs.SkillDefinition {
	lib := d.progress.Library()
	capped := d.progress.ActiveCount() >= d.maxMain
	var out []defs.SkillDefinition
	for _, key := range lib.SkillOrder() {
		def := lib.Skill(key)
		if !d.progress.Eligible(def) {
			continue
		}
		// После лимита из основных карточек активных остаётся только bullet_spread
		// (у неё своя категория), пассивки и ветки уже взятых скиллов доступны.
		if capped && def.IsMain() && def.Category == defs.CategoryActive {
			continue
		}
		out = append(out, def)
	}
	return out
}

// Pick3Distinct draws up to three distinct choices by weight. When fewer than
// three distinct candidates exist the remaining slots repeat weighted draws.
func (d *DraftPool) Pick3Distinct() []defs.SkillDefinition {
	eligible := d.Candidates()
	if len(eligible) == 0 {
		return nil
	}
	weights := make([]float64, len(eligible))
	for i, def := range eligible {
		weights[i] = def.Weight
	}

	seen := make(map[defs.SkillKey]bool)
	out := make([]defs.SkillDefinition, 0, config.DraftChoices)
	for tries := 0; len(out) < config.DraftChoices && tries < config.DraftMaxTries; tries++ {
		i := utils.ChooseWeighted(d.rng, weights)
		if i < 0 {
			break
		}
		if seen[eligible[i].Key] {
			continue
		}
		seen[eligible[i].Key] = true
		out = append(out, eligible[i])
	}
	for len(out) < config.DraftChoices {
		i := utils.ChooseWeighted(d.rng, weights)
		if i < 0 {
			break
		}
		out = append(out, eligible[i])
	}
	return out
}
