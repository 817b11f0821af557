package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"gametree/game"
)

// uctNode is the default Node implementation: plain UCB1 statistics.
//
// rewards accumulates roll-out scores from the perspective of the player
// about to move at this node's parent, so signs alternate with depth
// during back-propagation.
type uctNode struct {
	action   game.Action
	parent   *uctNode
	children []Node
	rewards  float64
	visits   int
}

func newUCTNode() *uctNode {
	return &uctNode{}
}

func (n *uctNode) Action() game.Action { return n.action }

func (n *uctNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *uctNode) Children() []Node { return n.children }

func (n *uctNode) Visits() int { return n.visits }

func (n *uctNode) Expand(state game.State) {
	if n.children != nil { // Already expanded
		return
	}
	actions := state.LegalActions()
	n.children = make([]Node, 0, len(actions))
	for _, a := range actions {
		n.children = append(n.children, &uctNode{action: a, parent: n})
	}
}

func (n *uctNode) Backup(score float64) {
	for node, s := n, score; node != nil; node, s = node.parent, -s {
		node.visits++
		node.rewards += s
	}
}

func (n *uctNode) UpperBound(explore float64) float64 {
	if n.visits == 0 {
		if explore == 0 {
			return 0
		}
		return math.Inf(1) // Unvisited nodes are picked first
	}
	return n.mean() + explore*n.radius()
}

func (n *uctNode) LowerBound(explore float64) float64 {
	if n.visits == 0 {
		return 0
	}
	return n.mean() - explore*n.radius()
}

func (n *uctNode) Value(explore float64) float64 {
	return n.LowerBound(explore)
}

func (n *uctNode) mean() float64 {
	return n.rewards / float64(n.visits)
}

// radius is the UCB1 exploration term sqrt(2*ln(parent.visits)/visits).
// Only meaningful with visits >= 1, which implies the parent has been
// visited at least once.
func (n *uctNode) radius() float64 {
	if n.parent == nil {
		return 0
	}
	return math.Sqrt(2 * math.Log(float64(n.parent.visits)) / float64(n.visits))
}

func (n *uctNode) FavoriteChild(explore float64) Node {
	if len(n.children) == 0 {
		return nil
	}
	ties := maxNodes(n.children, func(c Node) float64 { return c.Value(explore) })
	return ties[rand.Intn(len(ties))]
}

func (n *uctNode) IsLeaf() bool { return len(n.children) == 0 }

func (n *uctNode) IsRoot() bool { return n.parent == nil }

func (n *uctNode) Size() int {
	size := 1
	for _, c := range n.children {
		size += c.Size()
	}
	return size
}
