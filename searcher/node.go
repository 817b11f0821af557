// Package searcher implements Monte Carlo Tree Search over the game
// capability interface: descent by upper confidence bound, single-node
// expansion, uniformly random roll-out to a terminal state, and
// sign-alternating back-propagation, repeated under a time or iteration
// budget.
package searcher

import (
	"math"

	"gametree/game"
)

// Node is one node of a search tree, holding the visit and score
// statistics for the position reached by its action and deriving the
// confidence bounds used during selection and final move choice.
//
// A Node is owned by its parent; the back-reference to the parent is
// non-owning and absent at the root. Trees are homogeneous: Expand
// creates children of the implementation's own kind, so a NodeFactory
// fixes the statistics strategy for a whole tree by producing its root.
type Node interface {
	// Action is the move leading from the parent's position to this
	// node's position; nil at the root.
	Action() game.Action
	// Parent is nil at the root.
	Parent() Node
	// Children is empty until Expand is called.
	Children() []Node
	// Visits is the number of times this node was reached during search.
	Visits() int

	// Expand creates one child per legal action of state, which must be
	// the position this node stands for. A second call is a no-op.
	Expand(state game.State)
	// Backup records a visit and accumulates score here, then walks up
	// the parent chain accumulating the score with alternating sign.
	Backup(score float64)

	// UpperBound and LowerBound are the UCB1 confidence bounds under
	// the given exploration weight. An unvisited node has lower bound 0
	// and upper bound +Inf, or 0 when explore is 0.
	UpperBound(explore float64) float64
	LowerBound(explore float64) float64
	// Value is the conservative estimate used for final move choice,
	// the lower bound.
	Value(explore float64) float64
	// FavoriteChild returns the child maximizing Value, ties broken
	// uniformly at random, or nil if the node has no children.
	FavoriteChild(explore float64) Node

	IsLeaf() bool
	IsRoot() bool
	// Size is the number of nodes in the subtree rooted here.
	Size() int
}

// NodeFactory produces the root node of a fresh search tree.
type NodeFactory func() Node

// maxNodes returns every node attaining the maximum of eval over nodes.
func maxNodes(nodes []Node, eval func(Node) float64) []Node {
	best := math.Inf(-1)
	var ties []Node
	for _, n := range nodes {
		switch v := eval(n); {
		case v > best:
			best = v
			ties = append(ties[:0], n)
		case v == best:
			ties = append(ties, n)
		}
	}
	return ties
}
