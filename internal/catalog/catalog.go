// Package catalog loads the static species, badge and level tables the
// progression engine evaluates against.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/progression"
)

const (
	speciesFile     = "species.toml"
	badgesFile      = "badges.toml"
	swarmBadgesFile = "swarm_badges.toml"
	levelsFile      = "levels.toml"
	familiesFile    = "families.toml"
)

//go:embed data/*.toml
var embedded embed.FS

type speciesDoc struct {
	Species []models.Species `toml:"species"`
}

type badgeDoc struct {
	Badges []badgeRecord `toml:"badge"`
}

type badgeRecord struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Category    string `toml:"category"`
	Condition   string `toml:"condition"`
	Reward      int64  `toml:"reward"`

	Threshold int    `toml:"threshold"`
	SpeciesID string `toml:"species_id"`
	Rarity    string `toml:"rarity"`
	Location  string `toml:"location"`
	StartHour *int   `toml:"start_hour"`
	EndHour   *int   `toml:"end_hour"`
	Family    string `toml:"family"`
}

type levelDoc struct {
	Levels []models.LevelBracket `toml:"level"`
}

type familyDoc struct {
	Families map[string][]string `toml:"families"`
}

// Result is a loaded catalog plus the non-fatal problems found in it.
type Result struct {
	Catalog  *progression.Catalog
	Warnings []string
}

// Load reads the catalog from dir, or from the tables built into the binary
// when dir is empty.
func Load(dir string) (Result, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return Result{}, fmt.Errorf("failed to open embedded catalog: %w", err)
		}
		return LoadFS(sub)
	}
	return LoadFS(os.DirFS(dir))
}

func LoadFS(fsys fs.FS) (Result, error) {
	var (
		speciesData speciesDoc
		badgeData   badgeDoc
		swarmData   badgeDoc
		levelData   levelDoc
		familyData  familyDoc
		warnings    []string
	)

	files := []struct {
		name     string
		into     any
		optional bool
	}{
		{speciesFile, &speciesData, false},
		{badgesFile, &badgeData, false},
		{swarmBadgesFile, &swarmData, true},
		{levelsFile, &levelData, false},
		{familiesFile, &familyData, true},
	}
	for _, f := range files {
		meta, err := toml.DecodeFS(fsys, f.name, f.into)
		if err != nil {
			if f.optional && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Result{}, fmt.Errorf("failed to decode %s: %w", f.name, err)
		}
		for _, key := range meta.Undecoded() {
			warnings = append(warnings, fmt.Sprintf("%s: unknown key %q", f.name, key.String()))
		}
	}

	species, speciesWarnings, err := validateSpecies(speciesData.Species)
	if err != nil {
		return Result{}, err
	}
	warnings = append(warnings, speciesWarnings...)

	known := make(map[string]bool, len(species))
	for _, s := range species {
		known[s.ID] = true
	}

	badges, badgeWarnings, err := buildBadges(badgesFile, badgeData.Badges, known, familyData.Families)
	if err != nil {
		return Result{}, err
	}
	warnings = append(warnings, badgeWarnings...)

	swarmBadges, swarmWarnings, err := buildBadges(swarmBadgesFile, swarmData.Badges, known, familyData.Families)
	if err != nil {
		return Result{}, err
	}
	warnings = append(warnings, swarmWarnings...)

	if err := validateLevels(levelData.Levels); err != nil {
		return Result{}, err
	}

	return Result{
		Catalog:  progression.NewCatalog(species, badges, swarmBadges, levelData.Levels, progression.Families(familyData.Families)),
		Warnings: warnings,
	}, nil
}
