package models

type GameStatus string

const (
	StatusProposed  GameStatus = "proposed"
	StatusFinalized GameStatus = "finalized"
)

// Game is one day's session. Date is unique within the live game set.
// Players always contains the host and holds at most four entries;
// overflow sits on the waitlist in promotion order.
type Game struct {
	Date     string        `json:"date"` // YYYY-MM-DD
	Host     Participant   `json:"host"`
	Players  []Participant `json:"players"`
	Waitlist []Participant `json:"waitlist"`
	Status   GameStatus    `json:"status"`
}
