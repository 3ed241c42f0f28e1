package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildlog/wildlog_api/internal/models"
)

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		xp            int64
		expectedLevel int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{499, 2},
		{500, 3},
		{999, 3},
		{1000, 4},
		{1 << 40, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expectedLevel, ResolveLevel(tt.xp, testLevels).Level, "xp=%d", tt.xp)
	}
}

func TestResolveLevel_LastBracketCatchesOverflow(t *testing.T) {
	table := []models.LevelBracket{{Ceiling: 10, Level: 1}, {Ceiling: 20, Level: 2, Title: "Top"}}

	assert.Equal(t, "Top", ResolveLevel(500, table).Title)
	assert.Equal(t, 1, ResolveLevel(-5, table).Level)
}

func TestResolveLevel_EmptyTable(t *testing.T) {
	assert.Equal(t, 1, ResolveLevel(1234, nil).Level)
}

func TestResolveProgress(t *testing.T) {
	p := ResolveProgress(300, testLevels)
	assert.Equal(t, 2, p.Level.Level)
	assert.Equal(t, int64(200), p.XPToNext)
	assert.Equal(t, 50, p.Percent)
	require.NotNil(t, p.NextLevel)
	assert.Equal(t, 3, *p.NextLevel)
	assert.False(t, p.MaxedOut)

	p = ResolveProgress(0, testLevels)
	assert.Equal(t, 0, p.Percent)
	assert.Equal(t, int64(100), p.XPToNext)

	p = ResolveProgress(5000, testLevels)
	assert.True(t, p.MaxedOut)
	assert.Equal(t, 100, p.Percent)
	assert.Nil(t, p.NextLevel)
}

func TestCatalog_SortsLevels(t *testing.T) {
	c := NewCatalog(nil, nil, nil, []models.LevelBracket{
		{Ceiling: 1000, Level: 3},
		{Ceiling: 100, Level: 1},
		{Ceiling: 500, Level: 2},
	}, nil)

	assert.Equal(t, 2, c.Level(250).Level)
	assert.Equal(t, []int{1, 2, 3}, []int{c.Levels[0].Level, c.Levels[1].Level, c.Levels[2].Level})
}
