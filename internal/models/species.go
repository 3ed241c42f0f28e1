package models

import (
	"strings"
	"unicode"
)

type Location string

const (
	LocationLocal    Location = "local"
	LocationVacation Location = "vacation"
)

const (
	TierEpic      = "epic"
	TierLegendary = "legendary"
)

// VacationPrefix marks ad-hoc species ids that are not in the catalog.
const VacationPrefix = "vacation_"

// VacationPoints is what an ad-hoc vacation find is worth on the flat path.
const VacationPoints = 10

// Species is immutable catalog data.
type Species struct {
	ID             string   `json:"id" toml:"id"`
	CommonName     string   `json:"common_name" toml:"common_name"`
	ScientificName string   `json:"scientific_name" toml:"scientific_name"`
	Rarity         string   `json:"rarity" toml:"rarity"`
	Points         int64    `json:"points" toml:"points"`
	Tier           string   `json:"tier,omitempty" toml:"tier"`
	Location       Location `json:"location" toml:"location"`
}

func (s Species) IsVacation() bool {
	return s.Location == LocationVacation || IsVacationID(s.ID)
}

func IsVacationID(id string) bool {
	return strings.HasPrefix(id, VacationPrefix)
}

// NewVacationSpecies builds the record used for a find the catalog does not
// know about.
func NewVacationSpecies(name string) Species {
	slug := Slug(name)
	if IsVacationID(slug) {
		slug = strings.TrimPrefix(slug, VacationPrefix)
	}
	return Species{
		ID:         VacationPrefix + slug,
		CommonName: name,
		Rarity:     "common",
		Points:     VacationPoints,
		Location:   LocationVacation,
	}
}

// Slug lowercases s and joins its words with underscores.
func Slug(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			pendingSep = false
			continue
		}
		pendingSep = true
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}

// LevelBracket is one row of the level table. The last row is the catch-all.
type LevelBracket struct {
	Ceiling int64  `json:"xp_ceiling" toml:"xp_ceiling"`
	Level   int    `json:"level" toml:"level"`
	Title   string `json:"title" toml:"title"`
}
