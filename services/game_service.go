package services

import (
	"log"
	"sort"
	"sync"
	"time"

	"mahjongmaven/models"
)

// SchedulingWindowDays is the rolling window of candidate dates
// considered on each scheduling run.
const SchedulingWindowDays = 7

// GameService owns the live game set and the game history. Lifecycle
// commands and the archive step read-modify-write both, so everything
// runs behind one mutex; the scheduler itself stays a pure function.
//
// Commands follow a robust idempotent policy: an unknown date,
// participant or host id makes the command a no-op, never an error.
type GameService struct {
	mu           sync.Mutex
	roster       []models.Participant
	availability *AvailabilityService
	games        []models.Game
	history      []models.HistoryEntry
}

func NewGameService(roster []models.Participant, availability *AvailabilityService) *GameService {
	return &GameService{
		roster:       roster,
		availability: availability,
		games:        []models.Game{},
		history:      []models.HistoryEntry{},
	}
}

// Roster returns the fixed participant roster in canonical order.
func (s *GameService) Roster() []models.Participant {
	return append([]models.Participant{}, s.roster...)
}

// SchedulingWindow returns the candidate dates for a run: seven
// consecutive calendar days starting at now's local date.
func SchedulingWindow(now time.Time) []string {
	dates := make([]string, 0, SchedulingWindowDays)
	for i := 0; i < SchedulingWindowDays; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates
}

// Reschedule archives elapsed games and then computes a fresh schedule
// over the rolling window, atomically from the caller's point of view.
// The new live set replaces the old one entirely.
func (s *GameService) Reschedule(now time.Time) []models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.archiveElapsed(now)

	table := s.availability.Snapshot()
	s.games = ScheduleGames(s.roster, table, SchedulingWindow(now))
	log.Printf("Scheduling run complete: %d games proposed, %d history entries", len(s.games), len(s.history))

	return copyGames(s.games)
}

// archiveElapsed moves games dated strictly before now's date into
// history, deduplicated on (date, host id), and re-sorts history
// newest-first. Caller holds the lock.
func (s *GameService) archiveElapsed(now time.Time) {
	today := now.Format("2006-01-02")

	remaining := []models.Game{}
	for _, game := range s.games {
		if game.Date >= today {
			remaining = append(remaining, game)
			continue
		}
		if s.historyContains(game.Date, game.Host.ID) {
			continue
		}
		s.history = append(s.history, models.HistoryEntry{Game: game})
	}

	sort.SliceStable(s.history, func(i, j int) bool {
		return s.history[i].Date > s.history[j].Date
	})
	s.games = remaining
}

func (s *GameService) historyContains(date, hostID string) bool {
	for _, entry := range s.history {
		if entry.Date == date && entry.Host.ID == hostID {
			return true
		}
	}
	return false
}

// CancelPlayer removes a participant from a game's player list and
// promotes the first waitlisted participant into the open seat.
// Cancellation is allowed on finalized games as well; plans change
// after confirmation too.
func (s *GameService) CancelPlayer(date, participantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := s.findGame(date)
	if game == nil {
		return
	}

	idx := -1
	for i, p := range game.Players {
		if p.ID == participantID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	game.Players = append(game.Players[:idx], game.Players[idx+1:]...)

	if len(game.Waitlist) > 0 {
		next := game.Waitlist[0]
		game.Waitlist = append([]models.Participant{}, game.Waitlist[1:]...)
		game.Players = sortPlayersByName(append(game.Players, next))
	}

	log.Printf("Cancelled participant %s for %s (%d playing, %d waitlisted)", participantID, date, len(game.Players), len(game.Waitlist))
}

// FinalizeGame confirms a proposed game. Finalizing twice leaves the
// game finalized.
func (s *GameService) FinalizeGame(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := s.findGame(date)
	if game == nil {
		return
	}
	game.Status = models.StatusFinalized
	log.Printf("Game on %s finalized (host %s)", date, game.Host.Name)
}

// ChangeHost reassigns a game's host to another roster member. Only
// the host reference changes; players and waitlist keep their seats.
// The new host does not have to be seated in the game.
func (s *GameService) ChangeHost(date, newHostID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := s.findGame(date)
	if game == nil {
		return
	}

	for _, p := range s.roster {
		if p.ID == newHostID {
			game.Host = p
			log.Printf("Host for %s changed to %s", date, p.Name)
			return
		}
	}
}

// SetWinner records the winner on a history entry. Unknown dates and
// ids not on the roster are ignored.
func (s *GameService) SetWinner(date, winnerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.onRoster(winnerID) {
		return
	}
	for i := range s.history {
		if s.history[i].Date == date {
			s.history[i].WinnerID = winnerID
			return
		}
	}
}

// GameByDate returns a copy of the live game for a date, if any.
func (s *GameService) GameByDate(date string) (models.Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := s.findGame(date)
	if game == nil {
		return models.Game{}, false
	}
	return copyGame(*game), true
}

// Games returns a copy of the live game set in schedule order.
func (s *GameService) Games() []models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyGames(s.games)
}

// History returns a copy of the archive, newest first.
func (s *GameService) History() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]models.HistoryEntry, 0, len(s.history))
	for _, entry := range s.history {
		copied := entry
		copied.Game = copyGame(entry.Game)
		history = append(history, copied)
	}
	return history
}

// Stats projects per-participant games-played counts from history.
func (s *GameService) Stats() []PlayerStats {
	return ProjectStats(s.History(), s.roster)
}

func (s *GameService) findGame(date string) *models.Game {
	for i := range s.games {
		if s.games[i].Date == date {
			return &s.games[i]
		}
	}
	return nil
}

func (s *GameService) onRoster(participantID string) bool {
	for _, p := range s.roster {
		if p.ID == participantID {
			return true
		}
	}
	return false
}

func copyGame(game models.Game) models.Game {
	game.Players = append([]models.Participant{}, game.Players...)
	game.Waitlist = append([]models.Participant{}, game.Waitlist...)
	return game
}

func copyGames(games []models.Game) []models.Game {
	copied := make([]models.Game, 0, len(games))
	for _, game := range games {
		copied = append(copied, copyGame(game))
	}
	return copied
}
