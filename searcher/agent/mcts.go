package agent

import (
	"time"

	"gametree/game"
	"gametree/searcher"
)

// MCTSAgent picks actions by tree search, pinning a fixed iteration
// budget per move; the time budget comes from each SelectAction call.
type MCTSAgent struct {
	mcts       *searcher.MCTS
	iterations int
}

// NewMCTSAgent returns an agent searching with the given engine.
// iterations follows the searcher convention: negative means unbounded,
// in which case each call must supply a bounded time budget.
func NewMCTSAgent(mcts *searcher.MCTS, iterations int) *MCTSAgent {
	return &MCTSAgent{mcts: mcts, iterations: iterations}
}

func (a *MCTSAgent) SelectAction(state game.State, timeBudget time.Duration) (game.Action, error) {
	return a.mcts.BestAction(state, timeBudget, a.iterations)
}

// Reset discards the engine's search tree.
func (a *MCTSAgent) Reset() {
	a.mcts.Reset()
}
