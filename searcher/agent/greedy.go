package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"gametree/game"
)

type greedyAgent struct {
	rng *rand.Rand
}

// NewGreedyAgent returns an agent that probes one ply ahead and takes
// an immediately winning action when one exists, falling back to a
// uniform random pick otherwise.
func NewGreedyAgent() Agent {
	return greedyAgent{rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano())))}
}

func (a greedyAgent) SelectAction(state game.State, timeBudget time.Duration) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return nil, nil
	}

	mover := state.Player()
	best := make([]game.Action, 0, len(actions))
	bestScore := 0.0
	for _, action := range actions {
		// Ending the game scores from the mover's point of view;
		// anything else rates neutral.
		score := 0.0
		game.WithPlayed(state, action, func() {
			if state.IsTerminal() {
				score = state.Score(mover)
			}
		})
		switch {
		case len(best) == 0 || score > bestScore:
			bestScore = score
			best = append(best[:0], action)
		case score == bestScore:
			best = append(best, action)
		}
	}
	return best[a.rng.Intn(len(best))], nil
}
