package services

import (
	"sort"

	"mahjongmaven/models"
)

// PlayersRequired is the table size for a Mah Jong game.
const PlayersRequired = 4

// ScheduleGames proposes at most one game per candidate date. It is a
// pure function: the roster, the availability table and the date list
// go in, an ordered list of proposed games comes out, and nothing is
// mutated. Dates without enough players or without a willing host are
// simply skipped.
func ScheduleGames(participants []models.Participant, availability models.AvailabilityTable, dates []string) []models.Game {
	scheduled := []models.Game{}

	for _, date := range dates {
		availablePlayers := []models.Participant{}
		availableHosts := []models.Participant{}

		for _, p := range participants {
			day, ok := availability[p.ID][date]
			if !ok || !day.Available {
				// Hosting without availability counts as neither;
				// a host candidate must be an available player first.
				continue
			}
			availablePlayers = append(availablePlayers, p)
			if day.Hosting {
				availableHosts = append(availableHosts, p)
			}
		}

		if len(availablePlayers) < PlayersRequired || len(availableHosts) == 0 {
			continue
		}

		// First willing host in roster order gets to host.
		host := availableHosts[0]

		otherPlayers := []models.Participant{}
		for _, p := range availablePlayers {
			if p.ID != host.ID {
				otherPlayers = append(otherPlayers, p)
			}
		}

		players := append([]models.Participant{host}, otherPlayers[:PlayersRequired-1]...)
		waitlist := otherPlayers[PlayersRequired-1:]

		scheduled = append(scheduled, models.Game{
			Date:     date,
			Host:     host,
			Players:  sortPlayersByName(players),
			Waitlist: waitlist,
			Status:   models.StatusProposed,
		})
	}

	return scheduled
}

// sortPlayersByName orders a player list ascending by display name,
// stably and case-sensitively. Display stability only.
func sortPlayersByName(players []models.Participant) []models.Participant {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})
	return players
}
