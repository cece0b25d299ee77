package services

import (
	"fmt"
	"strings"
	"time"

	"mahjongmaven/models"
)

const (
	icsProdID      = "-//MahJongMaven//EN"
	icsUIDSuffix   = "@mahjongmaven.app"
	eventSummary   = "Mah Jong Game"
	eventStartHour = 19 // games start at 7 PM local time
	eventDuration  = 3 * time.Hour
	icsTimeLayout  = "20060102T150405Z"
	gameDateLayout = "2006-01-02"
)

// BuildICS renders a calendar event document for a game: a VEVENT
// starting at 7 PM local on the game date, three hours long, with the
// player and waitlist rosters in the description. Line endings are
// CRLF and timestamps are UTC, per the calendar interchange grammar.
func BuildICS(game models.Game, now time.Time) (string, error) {
	day, err := time.ParseInLocation(gameDateLayout, game.Date, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid game date %q: %w", game.Date, err)
	}

	start := day.Add(eventStartHour * time.Hour)
	end := start.Add(eventDuration)

	description := fmt.Sprintf("Players: %s.", joinNames(game.Players))
	if len(game.Waitlist) > 0 {
		// Escaped newline inside the DESCRIPTION value.
		description += fmt.Sprintf("\\nWaitlist: %s.", joinNames(game.Waitlist))
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + icsProdID,
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s-%s%s", game.Date, game.Host.ID, icsUIDSuffix),
		"DTSTAMP:" + now.UTC().Format(icsTimeLayout),
		"DTSTART:" + start.UTC().Format(icsTimeLayout),
		"DTEND:" + end.UTC().Format(icsTimeLayout),
		"SUMMARY:" + eventSummary,
		"LOCATION:Hosted by " + game.Host.Name,
		"DESCRIPTION:" + description,
		"END:VEVENT",
		"END:VCALENDAR",
	}

	return strings.Join(lines, "\r\n"), nil
}

func joinNames(players []models.Participant) string {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
