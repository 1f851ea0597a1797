// Package stats records finished episodes and matches, summarises them in
// blocks and exports them.
package stats

import (
	"time"

	"boardai/searcher"

	"github.com/google/uuid"
)

const (
	TileGame = "tile"
	NoGoGame = "nogo"
)

// GameMetric describes one finished tile episode or NoGo match.
type GameMetric struct {
	Game      string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Steps     int    // Actions applied, openings included
	Score     int    // Tile game: sum of slide rewards
	MaxTile   int    // Tile game: largest exponent on the final board
	Winner    string // NoGo: name of the winning agent
	Loser     string // NoGo: name of the side that could not move
}

// MoveMetric is the search metric of one decision.
type MoveMetric struct {
	Step   int
	Player string
	searcher.SearchMetric
}

type GameRecord struct {
	Run     string
	Episode int
	GameMetric
}

type MoveRecord struct {
	Run     string
	Episode int
	MoveMetric
}

// Recorder stamps metrics with a run ID and an episode counter.
type Recorder struct {
	run     string
	episode int
	games   []GameRecord
	moves   []MoveRecord
}

func NewRecorder() *Recorder {
	return &Recorder{run: uuid.NewString()}
}

func (r *Recorder) Run() string {
	return r.run
}

// Add records a finished game and its moves, returning the game record.
func (r *Recorder) Add(game GameMetric, moves []MoveMetric) GameRecord {
	r.episode++
	record := GameRecord{Run: r.run, Episode: r.episode, GameMetric: game}
	r.games = append(r.games, record)
	for _, m := range moves {
		r.moves = append(r.moves, MoveRecord{Run: r.run, Episode: r.episode, MoveMetric: m})
	}
	return record
}

func (r *Recorder) Games() []GameRecord {
	return r.games
}

func (r *Recorder) Moves() []MoveRecord {
	return r.moves
}
