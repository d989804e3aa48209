package entity

import "fmt"

// Stats tracks round results across sessions. Counters are loaded at startup,
// bumped once per completed round and persisted after every round.
type Stats struct {
	Wins   int `json:"wins" db:"wins"`
	Losses int `json:"losses" db:"losses"`
	Ties   int `json:"ties" db:"ties"`
}

func NewStats() *Stats {
	return &Stats{}
}

func (that *Stats) RecordWin() {
	that.Wins++
}

func (that *Stats) RecordLoss() {
	that.Losses++
}

func (that *Stats) RecordTie() {
	that.Ties++
}

// Scoreboard - renders the counters as a single scoreboard line.
func (that *Stats) Scoreboard() string {
	return fmt.Sprintf("Wins: %d • Losses: %d • Ties: %d", that.Wins, that.Losses, that.Ties)
}
