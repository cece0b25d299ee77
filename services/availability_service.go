package services

import (
	"sync"

	"mahjongmaven/models"
)

// AvailabilityService holds the shared availability table. Each
// participant owns their own row; rows are written independently, so
// one lock over the table is enough for the handler goroutines.
type AvailabilityService struct {
	mu    sync.RWMutex
	table models.AvailabilityTable
}

func NewAvailabilityService() *AvailabilityService {
	return &AvailabilityService{
		table: models.AvailabilityTable{},
	}
}

// Set records one participant's entry for one date. Hosting is cleared
// when the participant is not available, so a row can never claim
// hosting without availability.
func (s *AvailabilityService) Set(participantID, date string, day models.DayAvailability) {
	if !day.Available {
		day.Hosting = false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.table[participantID]
	if !ok {
		row = models.ParticipantAvailability{}
		s.table[participantID] = row
	}
	row[date] = day
}

// ForParticipant returns a copy of one participant's row. The copy may
// be empty but is never nil.
func (s *AvailabilityService) ForParticipant(participantID string) models.ParticipantAvailability {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := models.ParticipantAvailability{}
	for date, day := range s.table[participantID] {
		row[date] = day
	}
	return row
}

// Snapshot returns a deep copy of the whole table for a scheduling run.
func (s *AvailabilityService) Snapshot() models.AvailabilityTable {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table := models.AvailabilityTable{}
	for id, row := range s.table {
		copied := models.ParticipantAvailability{}
		for date, day := range row {
			copied[date] = day
		}
		table[id] = copied
	}
	return table
}
