package models

// HistoryEntry is a retired game plus the winner, once recorded.
// Entries are keyed by (Date, Host.ID) and kept newest-first.
type HistoryEntry struct {
	Game
	WinnerID string `json:"winner_id,omitempty"`
}
