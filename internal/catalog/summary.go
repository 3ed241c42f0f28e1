package catalog

import (
	"fmt"
	"io"
	"sort"

	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/progression"
)

type Summary struct {
	Species         int
	VacationSpecies int
	Badges          int
	SwarmBadges     int
	Levels          int
	Families        int
	BadgesByKind    map[progression.ConditionKind]int
}

func Summarize(c *progression.Catalog) Summary {
	s := Summary{
		Badges:       len(c.Badges),
		SwarmBadges:  len(c.SwarmBadges),
		Levels:       len(c.Levels),
		Families:     len(c.Families),
		BadgesByKind: map[progression.ConditionKind]int{},
	}
	for _, sp := range c.AllSpecies() {
		s.Species++
		if sp.Location == models.LocationVacation {
			s.VacationSpecies++
		}
	}
	for _, b := range c.Badges {
		if b.Condition != nil {
			s.BadgesByKind[b.Condition.Kind()]++
		}
	}
	return s
}

func (s Summary) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "species:      %d (%d vacation)\nbadges:       %d\nswarm badges: %d\nlevels:       %d\nfamilies:     %d\n",
		s.Species, s.VacationSpecies, s.Badges, s.SwarmBadges, s.Levels, s.Families); err != nil {
		return err
	}
	kinds := make([]string, 0, len(s.BadgesByKind))
	for kind := range s.BadgesByKind {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		if _, err := fmt.Fprintf(w, "  %-12s %d\n", kind, s.BadgesByKind[progression.ConditionKind(kind)]); err != nil {
			return err
		}
	}
	return nil
}
