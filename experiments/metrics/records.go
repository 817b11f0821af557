package metrics

import (
	"time"

	"gametree/searcher"
)

type AgentConfig struct {
	ID          int           `json:"id"`
	Kind        string        `json:"kind"` // "mcts", "random", or "greedy"
	TimeBudget  time.Duration `json:"timeBudget"`
	Iterations  int           `json:"iterations"`
	Exploration float64       `json:"exploration"`
}

type GameRecord struct {
	ID        string // Game UUID
	Agent1    int    // AgentConfig.ID
	Agent2    int    // AgentConfig.ID
	Starter   int    // AgentConfig.ID of the first mover
	Winner    string // Winning player, or "draw"
	Moves     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type MoveRecord struct {
	Game   string // GameRecord.ID
	Step   int
	Player string
	searcher.SearchMetrics
}
