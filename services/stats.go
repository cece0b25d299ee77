package services

import (
	"sort"

	"mahjongmaven/models"
)

type PlayerStats struct {
	Participant models.Participant `json:"participant"`
	GamesPlayed int                `json:"games_played"`
}

// ProjectStats counts games played per roster member across the
// history archive. Every roster member appears, zero counts included.
// Ordered most games first; ties keep roster order.
func ProjectStats(history []models.HistoryEntry, roster []models.Participant) []PlayerStats {
	counts := map[string]int{}
	for _, p := range roster {
		counts[p.ID] = 0
	}

	for _, entry := range history {
		for _, player := range entry.Players {
			if _, ok := counts[player.ID]; ok {
				counts[player.ID]++
			}
		}
	}

	stats := make([]PlayerStats, 0, len(roster))
	for _, p := range roster {
		stats = append(stats, PlayerStats{Participant: p, GamesPlayed: counts[p.ID]})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].GamesPlayed > stats[j].GamesPlayed
	})
	return stats
}
