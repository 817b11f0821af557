package searcher

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"gametree/game"
)

// DefaultExploration is the exploration weight used when none is
// configured.
const DefaultExploration = 1.0

// ErrUnboundedSearch is returned by Search when both the time and the
// iteration budget are negative: such a search would never terminate.
var ErrUnboundedSearch = errors.New("searcher: unbounded search: time and iteration budgets both negative")

// errOutOfTime unwinds the selection descent of the current iteration
// when the time budget elapses. Never surfaced to callers.
var errOutOfTime = errors.New("searcher: out of time")

type Option func(*MCTS)

// WithExploration sets the exploration weight used during selection.
// Negative values are ignored.
func WithExploration(explore float64) Option {
	return func(m *MCTS) {
		if explore >= 0 {
			m.exploration = explore
		}
	}
}

// WithNodeFactory substitutes the node statistics implementation used
// for new trees.
func WithNodeFactory(factory NodeFactory) Option {
	return func(m *MCTS) {
		if factory != nil {
			m.factory = factory
		}
	}
}

// WithRand sets the engine's randomness source.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithCollector sets the metrics collector driven during Search.
func WithCollector(collector MetricsCollector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.collector = collector
		}
	}
}

// MCTS runs Monte Carlo Tree Search over any game.State. It owns the
// tree it builds, and the state passed to a search for the duration of
// the call. An MCTS must not be used from more than one goroutine.
type MCTS struct {
	exploration float64
	factory     NodeFactory
	rng         *rand.Rand
	collector   MetricsCollector
	root        Node
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: DefaultExploration,
		factory:     func() Node { return newUCTNode() },
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		collector:   NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search builds a fresh tree rooted at state and grows it one iteration
// at a time until the time budget elapses or the iteration count is
// reached. A negative budget is unbounded in that dimension; both
// negative is rejected with ErrUnboundedSearch. A zero budget performs
// no iterations but still expands the root, leaving all children
// unvisited. Searching a terminal state is a no-op.
//
// state is mutated during the search and restored before Search
// returns. Time is checked at selection steps only, so the final
// iteration may overrun the time budget by up to one roll-out.
func (m *MCTS) Search(state game.State, timeBudget time.Duration, iterations int) error {
	if timeBudget < 0 && iterations < 0 {
		return ErrUnboundedSearch
	}
	if state.IsTerminal() { // Nothing to search
		return nil
	}

	m.collector.Start()
	start := time.Now()
	inTime := func() bool {
		return timeBudget < 0 || time.Since(start) < timeBudget
	}

	root := m.factory()
	root.Expand(state)
	m.root = root

	completed := 0
	for iterations < 0 || completed < iterations {
		node, applied, pov, err := m.descend(root, state, inTime)
		if err != nil { // Out of time: discard the partial iteration
			unwind(state, applied)
			break
		}
		score, moves := m.rollOut(state, pov)
		node.Backup(score)
		unwind(state, applied)

		completed++
		m.collector.AddIteration()
		m.collector.AddRolloutMoves(moves)
	}

	size := root.Size()
	m.collector.SetTreeSize(size)
	log.Debug().
		Int("iterations", completed).
		Int("tree_size", size).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	return nil
}

// BestAction searches and then returns the most promising immediate
// action by conservative estimate, the favorite child at exploration
// weight zero. A terminal state yields a nil action.
func (m *MCTS) BestAction(state game.State, timeBudget time.Duration, iterations int) (game.Action, error) {
	if err := m.Search(state, timeBudget, iterations); err != nil {
		return nil, err
	}
	if state.IsTerminal() {
		return nil, nil
	}
	favorite := m.root.FavoriteChild(0)
	if favorite == nil {
		return nil, nil
	}
	return favorite.Action(), nil
}

// Reset discards the current tree.
func (m *MCTS) Reset() {
	m.root = nil
}

// Root is the tree built by the last Search; nil before any search or
// after Reset.
func (m *MCTS) Root() Node {
	return m.root
}

// descend runs the selection and expansion phases of one iteration:
// starting at the root it repeatedly plays the child maximizing the
// upper confidence bound, stopping at the first unvisited child or at a
// childless node; a childless non-terminal node is expanded and one
// random child played into. It returns the node to simulate from, the
// number of actions played onto state, and the perspective for the
// roll-out score: the player who was to move at the returned node's
// parent.
func (m *MCTS) descend(root Node, state game.State, inTime func() bool) (node Node, applied int, pov game.Player, err error) {
	node = root
	pov = state.Player()
	for !node.IsLeaf() {
		if !inTime() {
			return node, applied, pov, errOutOfTime
		}
		child := m.pickChild(node)
		pov = state.Player()
		state.Play(child.Action())
		applied++
		node = child
		if node.Visits() == 0 { // Fresh node: simulate from here
			return node, applied, pov, nil
		}
	}

	if !state.IsTerminal() {
		node.Expand(state)
		if children := node.Children(); len(children) > 0 {
			child := children[m.rng.Intn(len(children))]
			pov = state.Player()
			state.Play(child.Action())
			applied++
			node = child
		}
	}
	return node, applied, pov, nil
}

// pickChild returns the child maximizing the upper confidence bound,
// ties broken uniformly at random.
func (m *MCTS) pickChild(node Node) Node {
	ties := maxNodes(node.Children(), func(c Node) float64 {
		return c.UpperBound(m.exploration)
	})
	return ties[m.rng.Intn(len(ties))]
}

// rollOut plays uniformly random legal actions until the game ends,
// scores the terminal position for pov, then undoes every move it
// played. A counted loop, so stack use stays flat on long games.
func (m *MCTS) rollOut(state game.State, pov game.Player) (score float64, moves int) {
	for !state.IsTerminal() {
		actions := state.LegalActions()
		state.Play(actions[m.rng.Intn(len(actions))]) // Random rollout policy
		moves++
	}
	score = state.Score(pov)
	unwind(state, moves)
	return score, moves
}

func unwind(state game.State, n int) {
	for ; n > 0; n-- {
		state.Undo()
	}
}
