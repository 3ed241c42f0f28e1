package progression

import (
	"math"
	"strings"

	"github.com/wildlog/wildlog_api/internal/models"
)

type XPMode string

const (
	XPModeFlat    XPMode = "flat"
	XPModeFormula XPMode = "formula"
)

// BaseXP is what every sighting is worth under the formula before bonuses.
const BaseXP = 10

var discoveryBonuses = []struct {
	label string
	bonus int64
}{
	{"legendary", 250},
	{"epic", 100},
	{"uncommon", 15},
	{"rare", 40},
	{"common", 5},
}

// DiscoveryBonus is the first-find bonus under the formula. A tier wins over
// the rarity label. Labels are matched by substring so "very rare" is rare.
func DiscoveryBonus(species models.Species) int64 {
	for _, label := range []string{species.Tier, species.Rarity} {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == "" {
			continue
		}
		for _, b := range discoveryBonuses {
			if strings.Contains(label, b.label) {
				return b.bonus
			}
		}
	}
	return 0
}

func StreakMultiplier(streak int) float64 {
	switch {
	case streak >= 30:
		return 3
	case streak >= 7:
		return 2
	case streak >= 2:
		return 1.5
	default:
		return 1
	}
}

// FlatXP is the primary path: a new species is worth its catalog points, a
// repeat is worth nothing.
func FlatXP(species models.Species, isNew bool) int64 {
	if !isNew || species.Points < 0 {
		return 0
	}
	return species.Points
}

// FormulaXP computes round((BaseXP + discovery bonus) * streak multiplier).
// capped zeroes the result for spam-prone species over their daily limit.
func FormulaXP(species models.Species, isNew bool, streak int, capped bool) int64 {
	if capped {
		return 0
	}
	value := int64(BaseXP)
	if isNew {
		value += DiscoveryBonus(species)
	}
	return int64(math.Round(float64(value) * StreakMultiplier(streak)))
}

// IsSpamProne reports whether speciesID contains any of the configured spam
// fragments.
func IsSpamProne(speciesID string, spamSpecies []string) bool {
	id := strings.ToLower(speciesID)
	for _, fragment := range spamSpecies {
		fragment = strings.ToLower(strings.TrimSpace(fragment))
		if fragment != "" && strings.Contains(id, fragment) {
			return true
		}
	}
	return false
}

// DailyCapReached reports whether a spam-prone species already contributed
// XP dailyCap times today. A cap of zero disables the limit.
func DailyCapReached(speciesID string, spamSpecies []string, dailyCap, countToday int) bool {
	if dailyCap <= 0 || !IsSpamProne(speciesID, spamSpecies) {
		return false
	}
	return countToday >= dailyCap
}
