package progression

import (
	"time"

	"github.com/wildlog/wildlog_api/internal/models"
)

var (
	redFox   = models.Species{ID: "red_fox", CommonName: "Red Fox", ScientificName: "Vulpes vulpes", Rarity: "common", Points: 100, Location: models.LocationLocal}
	barnOwl  = models.Species{ID: "barn_owl", CommonName: "Barn Owl", ScientificName: "Tyto alba", Rarity: "uncommon", Points: 250, Location: models.LocationLocal}
	greatTit = models.Species{ID: "great_tit", CommonName: "Great Tit", ScientificName: "Parus major", Rarity: "common", Points: 40, Location: models.LocationLocal}
	blueTit  = models.Species{ID: "blue_tit", CommonName: "Blue Tit", ScientificName: "Cyanistes caeruleus", Rarity: "common", Points: 40, Location: models.LocationLocal}
	lynx     = models.Species{ID: "eurasian_lynx", CommonName: "Eurasian Lynx", ScientificName: "Lynx lynx", Rarity: "very rare", Points: 800, Tier: models.TierLegendary, Location: models.LocationLocal}
	kangaroo = models.Species{ID: "red_kangaroo", CommonName: "Red Kangaroo", ScientificName: "Osphranter rufus", Rarity: "common", Points: 60, Location: models.LocationVacation}
	pigeon   = models.Species{ID: "rock_pigeon", CommonName: "Rock Pigeon", ScientificName: "Columba livia", Rarity: "common", Points: 5, Location: models.LocationLocal}
)

var testLevels = []models.LevelBracket{
	{Ceiling: 100, Level: 1, Title: "Hatchling"},
	{Ceiling: 500, Level: 2, Title: "Fledgling"},
	{Ceiling: 1000, Level: 3, Title: "Tracker"},
	{Ceiling: 1 << 62, Level: 4, Title: "Ranger"},
}

func testCatalog(badges ...Badge) *Catalog {
	return NewCatalog(
		[]models.Species{redFox, barnOwl, greatTit, blueTit, lynx, kangaroo, pigeon},
		badges,
		[]Badge{
			{ID: "swarm_4", Name: "Flock of Four", Reward: 20, Condition: CountCondition{Threshold: 4}},
			{ID: "swarm_10", Name: "Ten Together", Reward: 100, Condition: CountCondition{Threshold: 10}},
			{ID: "swarm_streak_2", Name: "Busy Flock", Category: CategoryStreak, Reward: 15, Condition: CountCondition{Threshold: 2}},
		},
		testLevels,
		Families{"tits": {"Parus", "Cyanistes"}, "owls": {"Tyto", "Strix", "Bubo"}},
	)
}

func day(y int, m time.Month, d int) models.Date {
	return models.Date{Year: y, Month: m, Day: d}
}

var today = day(2024, time.June, 15)
