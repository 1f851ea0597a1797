package stats

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Reach is the share of episodes whose largest tile was at least 2^Exponent.
type Reach struct {
	Exponent int
	Rate     float64
}

// Block summarises consecutive games.
type Block struct {
	First, Last int // Episode numbers, inclusive
	AvgScore    float64
	MaxScore    int
	Reach       []Reach        // Tile game only, ascending exponents
	Wins        map[string]int // NoGo only
	AvgDuration time.Duration
}

// Summary accumulates games and closes a Block every size games.
type Summary struct {
	size    int
	log     zerolog.Logger
	pending []GameRecord
}

func NewSummary(size int) *Summary {
	if size <= 0 {
		panic(fmt.Sprintf("invalid block size %d", size))
	}
	return &Summary{
		size: size,
		log:  log.With().Str("component", "stats").Logger(),
	}
}

// Add returns the completed block when record fills one.
func (s *Summary) Add(record GameRecord) (Block, bool) {
	s.pending = append(s.pending, record)
	if len(s.pending) < s.size {
		return Block{}, false
	}
	block := Summarise(s.pending)
	s.pending = s.pending[:0]
	s.logBlock(block)
	return block, true
}

// Flush summarises whatever is pending.
func (s *Summary) Flush() (Block, bool) {
	if len(s.pending) == 0 {
		return Block{}, false
	}
	block := Summarise(s.pending)
	s.pending = s.pending[:0]
	s.logBlock(block)
	return block, true
}

func Summarise(records []GameRecord) Block {
	if len(records) == 0 {
		return Block{}
	}
	block := Block{
		First: records[0].Episode,
		Last:  records[len(records)-1].Episode,
	}

	var total int
	var elapsed time.Duration
	lowest, highest := -1, 0
	counts := map[int]int{}
	for _, r := range records {
		total += r.Score
		elapsed += r.Duration
		if r.Score > block.MaxScore {
			block.MaxScore = r.Score
		}
		switch r.Game {
		case TileGame:
			counts[r.MaxTile]++
			if lowest < 0 || r.MaxTile < lowest {
				lowest = r.MaxTile
			}
			if r.MaxTile > highest {
				highest = r.MaxTile
			}
		case NoGoGame:
			if block.Wins == nil {
				block.Wins = map[string]int{}
			}
			block.Wins[r.Winner]++
		}
	}
	block.AvgScore = float64(total) / float64(len(records))
	block.AvgDuration = elapsed / time.Duration(len(records))

	if lowest >= 0 {
		reached := len(records)
		for e := lowest; e <= highest; e++ {
			block.Reach = append(block.Reach, Reach{Exponent: e, Rate: float64(reached) / float64(len(records))})
			reached -= counts[e]
		}
	}
	return block
}

func (s *Summary) logBlock(b Block) {
	event := s.log.Info().
		Int("first", b.First).
		Int("last", b.Last).
		Dur("avg_duration", b.AvgDuration)
	if b.Wins != nil {
		dict := zerolog.Dict()
		for name, wins := range b.Wins {
			dict = dict.Int(name, wins)
		}
		event.Dict("wins", dict).Msg("block complete")
		return
	}

	reach := zerolog.Dict()
	for _, r := range b.Reach {
		reach = reach.Float64(fmt.Sprint(1<<r.Exponent), r.Rate)
	}
	event.
		Float64("avg_score", b.AvgScore).
		Int("max_score", b.MaxScore).
		Dict("reach", reach).
		Msg("block complete")
}
