package engine

import (
	"boardai/searcher"
	"boardai/stats"
)

// MaxMoves bounds a single game.
const MaxMoves = 10000

type Engine interface {
	// Run plays one game until an agent cannot act or MaxMoves is reached
	Run() (gameMetric stats.GameMetric, moveMetrics []stats.MoveMetric)
}

// searchReporter is implemented by agents that search each decision.
type searchReporter interface {
	Metrics() searcher.SearchMetric
}

func moveMetric(step int, a interface{ Name() string }) (stats.MoveMetric, bool) {
	reporter, ok := a.(searchReporter)
	if !ok {
		return stats.MoveMetric{}, false
	}
	return stats.MoveMetric{Step: step, Player: a.Name(), SearchMetric: reporter.Metrics()}, true
}
