package agent

import (
	"time"

	"gametree/game"
)

type Agent interface {
	// SelectAction returns the action to play from the given state, or
	// nil when the state is terminal. timeBudget caps the thinking time
	// for agents that search; negative means unbounded. The state is
	// restored before SelectAction returns.
	SelectAction(state game.State, timeBudget time.Duration) (game.Action, error)
}
