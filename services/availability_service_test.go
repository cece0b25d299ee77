package services

import (
	"testing"

	"mahjongmaven/models"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilitySetAndGet(t *testing.T) {
	s := NewAvailabilityService()

	s.Set("1", "2025-06-02", models.DayAvailability{Available: true, Hosting: true})
	s.Set("1", "2025-06-03", models.DayAvailability{Available: true})

	row := s.ForParticipant("1")
	assert.Equal(t, models.DayAvailability{Available: true, Hosting: true}, row["2025-06-02"])
	assert.Equal(t, models.DayAvailability{Available: true}, row["2025-06-03"])
}

func TestAvailabilityHostingClearedWhenUnavailable(t *testing.T) {
	s := NewAvailabilityService()

	s.Set("1", "2025-06-02", models.DayAvailability{Available: false, Hosting: true})

	row := s.ForParticipant("1")
	assert.False(t, row["2025-06-02"].Hosting, "hosting implies availability")
}

func TestAvailabilityUnknownParticipantIsEmptyRow(t *testing.T) {
	s := NewAvailabilityService()

	row := s.ForParticipant("nobody")

	assert.NotNil(t, row)
	assert.Empty(t, row)
}

func TestAvailabilitySnapshotIsDetached(t *testing.T) {
	s := NewAvailabilityService()
	s.Set("1", "2025-06-02", models.DayAvailability{Available: true})

	snapshot := s.Snapshot()
	snapshot["1"]["2025-06-02"] = models.DayAvailability{}
	snapshot["2"] = models.ParticipantAvailability{"2025-06-02": {Available: true}}

	assert.True(t, s.ForParticipant("1")["2025-06-02"].Available)
	assert.Empty(t, s.ForParticipant("2"))
}
