// internal/defs/loader.go
package defs

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

var (
	// ErrInvalidTable is returned when a table parses but is inconsistent.
	ErrInvalidTable = errors.New("invalid definition table")
	// ErrUnknownSkill is returned when an override references a skill that does not exist.
	ErrUnknownSkill = errors.New("unknown skill")
)

// Library — все статические таблицы одного запуска.
type Library struct {
	Enemies map[EnemyKind]EnemyDefinition
	Skills  map[SkillKey]SkillDefinition

	order []SkillKey
}

// Enemy возвращает описание вида врага. Отсутствие записи — ошибка программиста.
func (l *Library) Enemy(kind EnemyKind) EnemyDefinition {
	def, ok := l.Enemies[kind]
	if !ok {
		panic(fmt.Sprintf("defs: unknown enemy kind %q", kind))
	}
	return def
}

// Skill возвращает описание скилла или ветки по ключу.
func (l *Library) Skill(key SkillKey) SkillDefinition {
	def, ok := l.Skills[key]
	if !ok {
		panic(fmt.Sprintf("defs: unknown skill %s", key))
	}
	return def
}

// SkillOrder returns every skill key ordered by priority, then by key.
func (l *Library) SkillOrder() []SkillKey {
	return l.order
}

// LoadLibrary parses the embedded tables.
func LoadLibrary() (*Library, error) {
	enemyData, err := dataFS.ReadFile("data/enemies.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions: %w", err)
	}
	skillData, err := dataFS.ReadFile("data/skills.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read skill definitions: %w", err)
	}

	enemies, err := ParseEnemies(enemyData)
	if err != nil {
		return nil, err
	}
	skills, err := ParseSkills(skillData)
	if err != nil {
		return nil, err
	}

	lib := &Library{Enemies: enemies, Skills: skills}
	lib.order = sortedKeys(skills)
	if err := lib.validate(); err != nil {
		return nil, err
	}

	slog.Debug("definitions loaded", "enemies", len(enemies), "skills", len(skills))
	return lib, nil
}

// MustLoadLibrary is LoadLibrary for callers that cannot continue without tables.
func MustLoadLibrary() *Library {
	lib, err := LoadLibrary()
	if err != nil {
		panic(err)
	}
	return lib
}

// ParseEnemies decodes the enemy table.
func ParseEnemies(data []byte) (map[EnemyKind]EnemyDefinition, error) {
	var list []EnemyDefinition
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	out := make(map[EnemyKind]EnemyDefinition, len(list))
	for _, def := range list {
		if def.Kind == "" || def.HP <= 0 || def.Size <= 0 {
			return nil, fmt.Errorf("enemy %q: %w", def.Kind, ErrInvalidTable)
		}
		if _, dup := out[def.Kind]; dup {
			return nil, fmt.Errorf("duplicate enemy %q: %w", def.Kind, ErrInvalidTable)
		}
		out[def.Kind] = def
	}
	return out, nil
}

type skillFile struct {
	UpgradeDefaults struct {
		Weight       float64 `yaml:"weight"`
		MaxLevel     int     `yaml:"max_level"`
		PriorityBase int     `yaml:"priority_base"`
	} `yaml:"upgrade_defaults"`
	Mains []struct {
		ID            SkillID        `yaml:"id"`
		Name          string         `yaml:"name"`
		Desc          string         `yaml:"desc"`
		Category      SkillCategory  `yaml:"category"`
		Weight        float64        `yaml:"weight"`
		MaxLevel      int            `yaml:"max_level"`
		Priority      int            `yaml:"priority"`
		DamageType    DamageType     `yaml:"damage_type"`
		Requires      SkillID        `yaml:"requires"`
		RequiresLevel int            `yaml:"requires_level"`
		Cooldown      *CooldownCurve `yaml:"cooldown"`
	} `yaml:"mains"`
	Upgrades []struct {
		Main     SkillID     `yaml:"main"`
		Kind     UpgradeKind `yaml:"kind"`
		Name     string      `yaml:"name"`
		Desc     string      `yaml:"desc"`
		Weight   *float64    `yaml:"weight"`
		MaxLevel *int        `yaml:"max_level"`
	} `yaml:"upgrades"`
}

// ParseSkills decodes the skill table and expands the standard upgrade branches
// of every active skill before applying overrides.
func ParseSkills(data []byte) (map[SkillKey]SkillDefinition, error) {
	var f skillFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skill definitions: %w", err)
	}

	out := make(map[SkillKey]SkillDefinition)
	prio := f.UpgradeDefaults.PriorityBase
	for _, m := range f.Mains {
		key := Main(m.ID)
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("duplicate skill %s: %w", key, ErrInvalidTable)
		}
		out[key] = SkillDefinition{
			Key:           key,
			Name:          m.Name,
			Desc:          m.Desc,
			Category:      m.Category,
			Weight:        m.Weight,
			MaxLevel:      m.MaxLevel,
			Priority:      m.Priority,
			DamageType:    m.DamageType,
			Requires:      m.Requires,
			RequiresLevel: m.RequiresLevel,
			Cooldown:      m.Cooldown,
		}
		if m.Category != CategoryActive {
			continue
		}
		for _, kind := range StandardUpgrades {
			bk := Branch(m.ID, kind)
			out[bk] = SkillDefinition{
				Key:        bk,
				Name:       m.Name + ": " + upgradeTitles[kind],
				Desc:       upgradeDesc(m.Name, kind),
				Category:   CategoryUpgrade,
				Weight:     f.UpgradeDefaults.Weight,
				MaxLevel:   f.UpgradeDefaults.MaxLevel,
				Priority:   prio,
				DamageType: m.DamageType,
			}
			prio++
		}
	}

	for _, u := range f.Upgrades {
		parent, ok := out[Main(u.Main)]
		if !ok {
			return nil, fmt.Errorf("upgrade %s/%s: %w", u.Main, u.Kind, ErrUnknownSkill)
		}
		key := Branch(u.Main, u.Kind)
		def, exists := out[key]
		if !exists {
			def = SkillDefinition{
				Key:        key,
				Name:       parent.Name + ": " + string(u.Kind),
				Category:   CategoryUpgrade,
				Weight:     f.UpgradeDefaults.Weight,
				MaxLevel:   f.UpgradeDefaults.MaxLevel,
				Priority:   prio,
				DamageType: parent.DamageType,
			}
			prio++
		}
		if u.Name != "" {
			def.Name = parent.Name + ": " + u.Name
		}
		if u.Desc != "" {
			def.Desc = u.Desc
		}
		if u.Weight != nil {
			def.Weight = *u.Weight
		}
		if u.MaxLevel != nil {
			def.MaxLevel = *u.MaxLevel
		}
		out[key] = def
	}
	return out, nil
}

func (l *Library) validate() error {
	for _, id := range ActiveSkills {
		def, ok := l.Skills[Main(id)]
		if !ok {
			return fmt.Errorf("active skill %s: %w", id, ErrUnknownSkill)
		}
		if def.Cooldown == nil {
			return fmt.Errorf("active skill %s has no cooldown curve: %w", id, ErrInvalidTable)
		}
	}
	for _, def := range l.Skills {
		if parent, _, ok := def.Parent(); ok {
			if _, exists := l.Skills[Main(parent)]; !exists {
				return fmt.Errorf("skill %s requires %s: %w", def.Key, parent, ErrUnknownSkill)
			}
		}
	}
	required := append([]EnemyKind{KindWalker, KindBrute, KindSpitter, KindBoss, KindFinalBoss}, ResistantKinds...)
	for _, kind := range required {
		if _, ok := l.Enemies[kind]; !ok {
			return fmt.Errorf("enemy kind %s missing: %w", kind, ErrInvalidTable)
		}
	}
	return nil
}

func sortedKeys(skills map[SkillKey]SkillDefinition) []SkillKey {
	keys := make([]SkillKey, 0, len(skills))
	for k := range skills {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := skills[keys[i]], skills[keys[j]]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return keys[i].String() < keys[j].String()
	})
	return keys
}
