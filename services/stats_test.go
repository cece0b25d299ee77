package services

import (
	"testing"

	"mahjongmaven/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyEntry(date string, playerIDs ...string) models.HistoryEntry {
	roster := testRoster()
	byID := map[string]models.Participant{}
	for _, p := range roster {
		byID[p.ID] = p
	}

	players := []models.Participant{}
	for _, id := range playerIDs {
		players = append(players, byID[id])
	}
	return models.HistoryEntry{Game: models.Game{
		Date:    date,
		Host:    players[0],
		Players: players,
		Status:  models.StatusFinalized,
	}}
}

func statNames(stats []PlayerStats) []string {
	names := make([]string, 0, len(stats))
	for _, s := range stats {
		names = append(names, s.Participant.Name)
	}
	return names
}

func TestProjectStatsCountsAndOrder(t *testing.T) {
	history := []models.HistoryEntry{
		historyEntry("2025-06-01", "1", "2", "3", "4"),
		historyEntry("2025-05-31", "2", "3", "4", "5"),
		historyEntry("2025-05-30", "3", "4", "1", "2"),
	}

	stats := ProjectStats(history, testRoster())

	require.Len(t, stats, 5)
	// Bob, Carol and Dana tie on three games; the tie keeps roster order.
	assert.Equal(t, []string{"Bob", "Carol", "Dana", "Alice", "Eve"}, statNames(stats))
	assert.Equal(t, 3, stats[0].GamesPlayed)
	assert.Equal(t, 3, stats[2].GamesPlayed)
	assert.Equal(t, 2, stats[3].GamesPlayed)
	assert.Equal(t, 1, stats[4].GamesPlayed)
}

func TestProjectStatsIncludesZeroCounts(t *testing.T) {
	stats := ProjectStats(nil, testRoster())

	require.Len(t, stats, 5)
	for i, s := range stats {
		assert.Equal(t, 0, s.GamesPlayed)
		assert.Equal(t, testRoster()[i].ID, s.Participant.ID, "zero-count ties keep roster order")
	}
}

func TestProjectStatsIgnoresUnknownPlayers(t *testing.T) {
	entry := historyEntry("2025-06-01", "1", "2", "3", "4")
	entry.Players = append(entry.Players, models.Participant{ID: "ghost", Name: "Ghost"})

	stats := ProjectStats([]models.HistoryEntry{entry}, testRoster())

	require.Len(t, stats, 5, "only roster members are projected")
}
