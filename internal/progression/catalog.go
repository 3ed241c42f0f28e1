package progression

import (
	"slices"
	"strings"

	"github.com/wildlog/wildlog_api/internal/models"
)

// Badge is an immutable catalog entry.
type Badge struct {
	ID          string
	Name        string
	Description string
	Category    string
	Reward      int64
	Condition   Condition
}

// Catalog is the reference data the engine evaluates against. It is built
// once at startup and only read afterwards.
type Catalog struct {
	species      map[string]models.Species
	speciesOrder []string

	Badges      []Badge
	SwarmBadges []Badge
	Levels      []models.LevelBracket
	Families    Families
}

func NewCatalog(species []models.Species, badges, swarmBadges []Badge, levels []models.LevelBracket, families Families) *Catalog {
	c := &Catalog{
		species:     make(map[string]models.Species, len(species)),
		Badges:      slices.Clone(badges),
		SwarmBadges: slices.Clone(swarmBadges),
		Levels:      slices.Clone(levels),
		Families:    families,
	}
	for _, s := range species {
		if _, dup := c.species[s.ID]; !dup {
			c.speciesOrder = append(c.speciesOrder, s.ID)
		}
		c.species[s.ID] = s
	}
	slices.SortStableFunc(c.Levels, func(a, b models.LevelBracket) int {
		switch {
		case a.Ceiling < b.Ceiling:
			return -1
		case a.Ceiling > b.Ceiling:
			return 1
		}
		return 0
	})
	if c.Families == nil {
		c.Families = Families{}
	}
	return c
}

func (c *Catalog) Species(id string) (models.Species, bool) {
	s, ok := c.species[id]
	return s, ok
}

// AllSpecies returns the species in catalog order.
func (c *Catalog) AllSpecies() []models.Species {
	out := make([]models.Species, 0, len(c.speciesOrder))
	for _, id := range c.speciesOrder {
		out = append(out, c.species[id])
	}
	return out
}

// Resolve maps a species id or common name to a catalog entry. Anything the
// catalog does not know becomes an ad-hoc vacation record.
func (c *Catalog) Resolve(idOrName string) (models.Species, bool) {
	key := strings.TrimSpace(idOrName)
	if s, ok := c.species[key]; ok {
		return s, true
	}
	if s, ok := c.species[models.Slug(key)]; ok {
		return s, true
	}
	for _, id := range c.speciesOrder {
		s := c.species[id]
		if strings.EqualFold(s.CommonName, key) || (s.ScientificName != "" && strings.EqualFold(s.ScientificName, key)) {
			return s, true
		}
	}
	if models.IsVacationID(key) {
		return models.Species{
			ID:         key,
			CommonName: strings.TrimPrefix(key, models.VacationPrefix),
			Rarity:     "common",
			Points:     models.VacationPoints,
			Location:   models.LocationVacation,
		}, false
	}
	return models.NewVacationSpecies(key), false
}

// IsVacation reports whether id is a personal find that stays out of swarm
// totals.
func (c *Catalog) IsVacation(id string) bool {
	if models.IsVacationID(id) {
		return true
	}
	if s, ok := c.species[id]; ok {
		return s.Location == models.LocationVacation
	}
	return false
}

func (c *Catalog) scientificNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if s, ok := c.species[id]; ok && s.ScientificName != "" {
			names = append(names, s.ScientificName)
		}
	}
	return names
}

func (c *Catalog) Level(xp int64) models.LevelBracket {
	return ResolveLevel(xp, c.Levels)
}
