package progression

import "github.com/wildlog/wildlog_api/internal/models"

var fallbackBracket = models.LevelBracket{Level: 1}

// ResolveLevel returns the first bracket whose ceiling is above xp. The table
// must be sorted by ceiling; the last bracket catches everything beyond.
func ResolveLevel(xp int64, table []models.LevelBracket) models.LevelBracket {
	if len(table) == 0 {
		return fallbackBracket
	}
	for _, bracket := range table {
		if bracket.Ceiling > xp {
			return bracket
		}
	}
	return table[len(table)-1]
}

// LevelProgress describes how far xp is into its bracket.
type LevelProgress struct {
	Level     models.LevelBracket `json:"level"`
	XPToNext  int64               `json:"xp_to_next"`
	Percent   int                 `json:"percent"`
	MaxedOut  bool                `json:"maxed_out"`
	NextLevel *int                `json:"next_level,omitempty"`
}

func ResolveProgress(xp int64, table []models.LevelBracket) LevelProgress {
	current := ResolveLevel(xp, table)
	progress := LevelProgress{Level: current}

	idx := -1
	for i, bracket := range table {
		if bracket == current {
			idx = i
			break
		}
	}
	if idx < 0 || idx == len(table)-1 || current.Ceiling <= xp {
		progress.MaxedOut = true
		progress.Percent = 100
		return progress
	}

	var floor int64
	if idx > 0 {
		floor = table[idx-1].Ceiling
	}
	next := table[idx+1].Level
	progress.NextLevel = &next
	progress.XPToNext = current.Ceiling - xp

	span := current.Ceiling - floor
	if span > 0 {
		progress.Percent = int((xp - floor) * 100 / span)
	}
	progress.Percent = min(max(progress.Percent, 0), 100)
	return progress
}
