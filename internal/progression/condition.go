package progression

import (
	"strings"

	"github.com/wildlog/wildlog_api/internal/models"
)

type ConditionKind string

const (
	KindCount      ConditionKind = "count"
	KindSpecies    ConditionKind = "species"
	KindRarity     ConditionKind = "rarity"
	KindLocation   ConditionKind = "location"
	KindTimeWindow ConditionKind = "time_window"
	KindFamily     ConditionKind = "family"
	KindLevel      ConditionKind = "level"
)

// CategoryStreak switches a count condition from collection size to the
// current streak.
const CategoryStreak = "streak"

// Condition is a closed set of badge predicates. Only the types in this file
// implement it.
type Condition interface {
	Kind() ConditionKind
	sealed()
}

type CountCondition struct {
	Threshold int
}

type SpeciesCondition struct {
	SpeciesID string
}

// RarityCondition matches when the sighted species' rarity label contains
// Contains.
type RarityCondition struct {
	Contains string
}

type LocationCondition struct {
	Location models.Location
}

// TimeWindowCondition covers hours in [StartHour, EndHour). A start after
// the end wraps past midnight.
type TimeWindowCondition struct {
	StartHour int
	EndHour   int
}

type FamilyCondition struct {
	Family    string
	Threshold int
}

type LevelCondition struct {
	Threshold int
}

// UnknownCondition keeps catalog entries with an unrecognised kind loadable.
// It never matches.
type UnknownCondition struct {
	Name string
}

func (CountCondition) Kind() ConditionKind      { return KindCount }
func (SpeciesCondition) Kind() ConditionKind    { return KindSpecies }
func (RarityCondition) Kind() ConditionKind     { return KindRarity }
func (LocationCondition) Kind() ConditionKind   { return KindLocation }
func (TimeWindowCondition) Kind() ConditionKind { return KindTimeWindow }
func (FamilyCondition) Kind() ConditionKind     { return KindFamily }
func (LevelCondition) Kind() ConditionKind      { return KindLevel }
func (c UnknownCondition) Kind() ConditionKind  { return ConditionKind(c.Name) }

func (CountCondition) sealed()      {}
func (SpeciesCondition) sealed()    {}
func (RarityCondition) sealed()     {}
func (LocationCondition) sealed()   {}
func (TimeWindowCondition) sealed() {}
func (FamilyCondition) sealed()     {}
func (LevelCondition) sealed()      {}
func (UnknownCondition) sealed()    {}

// Contains reports whether hour is inside the window.
func (c TimeWindowCondition) Contains(hour int) bool {
	if hour < 0 || hour > 23 {
		return false
	}
	if c.StartHour > c.EndHour {
		return hour >= c.StartHour || hour < c.EndHour
	}
	return hour >= c.StartHour && hour < c.EndHour
}

// Describe flattens a condition into its kind and parameters for API output.
func Describe(c Condition) (ConditionKind, map[string]any) {
	switch c := c.(type) {
	case CountCondition:
		return c.Kind(), map[string]any{"threshold": c.Threshold}
	case SpeciesCondition:
		return c.Kind(), map[string]any{"species_id": c.SpeciesID}
	case RarityCondition:
		return c.Kind(), map[string]any{"rarity": c.Contains}
	case LocationCondition:
		return c.Kind(), map[string]any{"location": c.Location}
	case TimeWindowCondition:
		return c.Kind(), map[string]any{"start_hour": c.StartHour, "end_hour": c.EndHour}
	case FamilyCondition:
		return c.Kind(), map[string]any{"family": c.Family, "threshold": c.Threshold}
	case LevelCondition:
		return c.Kind(), map[string]any{"threshold": c.Threshold}
	case UnknownCondition:
		return c.Kind(), map[string]any{}
	}
	return "", map[string]any{}
}

// Families maps a taxonomic family key to the genus prefixes that belong to it.
type Families map[string][]string

// Count returns how many of the given scientific names fall into family.
// Unknown families count nothing.
func (f Families) Count(family string, scientificNames []string) int {
	prefixes := f[family]
	if len(prefixes) == 0 {
		return 0
	}
	n := 0
	for _, name := range scientificNames {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		for _, prefix := range prefixes {
			prefix = strings.ToLower(strings.TrimSpace(prefix))
			if prefix != "" && strings.HasPrefix(name, prefix) {
				n++
				break
			}
		}
	}
	return n
}
