package catalog

import (
	"fmt"
	"slices"

	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/progression"
)

func validateSpecies(species []models.Species) ([]models.Species, []string, error) {
	if len(species) == 0 {
		return nil, nil, fmt.Errorf("%s: no species defined", speciesFile)
	}

	var warnings []string
	seen := make(map[string]bool, len(species))
	out := make([]models.Species, 0, len(species))
	for i, s := range species {
		if s.ID == "" {
			return nil, nil, fmt.Errorf("%s: species #%d has no id", speciesFile, i+1)
		}
		if seen[s.ID] {
			return nil, nil, fmt.Errorf("%s: duplicate species id %q", speciesFile, s.ID)
		}
		seen[s.ID] = true

		if s.Points < 0 {
			return nil, nil, fmt.Errorf("%s: species %q has negative points", speciesFile, s.ID)
		}
		switch s.Location {
		case "":
			s.Location = models.LocationLocal
		case models.LocationLocal, models.LocationVacation:
		default:
			return nil, nil, fmt.Errorf("%s: species %q has unknown location %q", speciesFile, s.ID, s.Location)
		}
		if s.Tier != "" && s.Tier != models.TierEpic && s.Tier != models.TierLegendary {
			warnings = append(warnings, fmt.Sprintf("%s: species %q has unknown tier %q", speciesFile, s.ID, s.Tier))
		}
		if models.IsVacationID(s.ID) {
			warnings = append(warnings, fmt.Sprintf("%s: species %q uses the ad-hoc vacation prefix", speciesFile, s.ID))
		}
		out = append(out, s)
	}
	return out, warnings, nil
}

func buildBadges(file string, records []badgeRecord, species map[string]bool, families map[string][]string) ([]progression.Badge, []string, error) {
	var warnings []string
	seen := make(map[string]bool, len(records))
	badges := make([]progression.Badge, 0, len(records))

	for i, r := range records {
		if r.ID == "" {
			return nil, nil, fmt.Errorf("%s: badge #%d has no id", file, i+1)
		}
		if seen[r.ID] {
			return nil, nil, fmt.Errorf("%s: duplicate badge id %q", file, r.ID)
		}
		seen[r.ID] = true
		if r.Reward < 0 {
			return nil, nil, fmt.Errorf("%s: badge %q has a negative reward", file, r.ID)
		}

		condition, err := buildCondition(r)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: badge %q: %w", file, r.ID, err)
		}
		switch c := condition.(type) {
		case progression.UnknownCondition:
			warnings = append(warnings, fmt.Sprintf("%s: badge %q has unknown condition %q and will never be awarded", file, r.ID, c.Name))
		case progression.SpeciesCondition:
			if !species[c.SpeciesID] {
				warnings = append(warnings, fmt.Sprintf("%s: badge %q targets unknown species %q", file, r.ID, c.SpeciesID))
			}
		case progression.FamilyCondition:
			if _, ok := families[c.Family]; !ok {
				warnings = append(warnings, fmt.Sprintf("%s: badge %q targets unknown family %q", file, r.ID, c.Family))
			}
		}

		badges = append(badges, progression.Badge{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Category:    r.Category,
			Reward:      r.Reward,
			Condition:   condition,
		})
	}
	return badges, warnings, nil
}

func buildCondition(r badgeRecord) (progression.Condition, error) {
	switch progression.ConditionKind(r.Condition) {
	case progression.KindCount:
		if r.Threshold < 1 {
			return nil, fmt.Errorf("count threshold must be at least 1")
		}
		return progression.CountCondition{Threshold: r.Threshold}, nil
	case progression.KindSpecies:
		if r.SpeciesID == "" {
			return nil, fmt.Errorf("species condition needs species_id")
		}
		return progression.SpeciesCondition{SpeciesID: r.SpeciesID}, nil
	case progression.KindRarity:
		if r.Rarity == "" {
			return nil, fmt.Errorf("rarity condition needs rarity")
		}
		return progression.RarityCondition{Contains: r.Rarity}, nil
	case progression.KindLocation:
		loc := models.Location(r.Location)
		if loc != models.LocationLocal && loc != models.LocationVacation {
			return nil, fmt.Errorf("location condition needs local or vacation, got %q", r.Location)
		}
		return progression.LocationCondition{Location: loc}, nil
	case progression.KindTimeWindow:
		if r.StartHour == nil || r.EndHour == nil {
			return nil, fmt.Errorf("time window needs start_hour and end_hour")
		}
		start, end := *r.StartHour, *r.EndHour
		if start < 0 || start > 23 || end < 0 || end > 24 || start == end {
			return nil, fmt.Errorf("invalid time window %d-%d", start, end)
		}
		return progression.TimeWindowCondition{StartHour: start, EndHour: end}, nil
	case progression.KindFamily:
		if r.Family == "" || r.Threshold < 1 {
			return nil, fmt.Errorf("family condition needs family and a threshold of at least 1")
		}
		return progression.FamilyCondition{Family: r.Family, Threshold: r.Threshold}, nil
	case progression.KindLevel:
		if r.Threshold < 1 {
			return nil, fmt.Errorf("level threshold must be at least 1")
		}
		return progression.LevelCondition{Threshold: r.Threshold}, nil
	}
	return progression.UnknownCondition{Name: r.Condition}, nil
}

func validateLevels(levels []models.LevelBracket) error {
	if len(levels) == 0 {
		return fmt.Errorf("%s: no levels defined", levelsFile)
	}
	sorted := slices.Clone(levels)
	slices.SortFunc(sorted, func(a, b models.LevelBracket) int {
		switch {
		case a.Ceiling < b.Ceiling:
			return -1
		case a.Ceiling > b.Ceiling:
			return 1
		}
		return 0
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Ceiling == sorted[i-1].Ceiling {
			return fmt.Errorf("%s: duplicate xp_ceiling %d", levelsFile, sorted[i].Ceiling)
		}
		if sorted[i].Level <= sorted[i-1].Level {
			return fmt.Errorf("%s: level numbers must grow with xp_ceiling", levelsFile)
		}
	}
	if sorted[0].Ceiling <= 0 {
		return fmt.Errorf("%s: first xp_ceiling must be positive", levelsFile)
	}
	return nil
}
