package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"gametree/game"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the legal
// actions. It serves as the baseline opponent in experiments.
func NewRandomAgent() Agent {
	return randomAgent{rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano())))}
}

func (a randomAgent) SelectAction(state game.State, timeBudget time.Duration) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return nil, nil
	}
	return actions[a.rng.Intn(len(actions))], nil
}
