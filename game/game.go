// Package game defines the capability interface a turn-based game must
// expose to be searchable. The searcher knows nothing about any concrete
// game beyond this boundary.
package game

// Player identifies one side of a game.
type Player string

// Action is a single legal move. It is opaque to the searcher, which only
// passes it back into Play and out of a search as the chosen move.
type Action any

// State is a mutable game position supporting exact move undo. A State is
// mutated in place by Play and restored by Undo; a searcher holding a
// State is its sole mutator for the duration of a search.
type State interface {
	// Player returns the player about to move.
	Player() Player

	// LegalActions returns the moves available in the current position,
	// in a stable order. Non-terminal states have at least one.
	LegalActions() []Action

	// Play applies a legal action to the state.
	Play(Action)

	// Undo reverts the most recent Play, restoring the prior position
	// exactly.
	Undo()

	// IsTerminal reports whether the game is over.
	IsTerminal() bool

	// Score returns the terminal outcome from the given player's
	// perspective: positive for a win, negative for a loss, zero for a
	// draw. Zero-sum: the two sides see the same magnitude with opposite
	// signs. Only defined when IsTerminal is true.
	Score(Player) float64
}

// WithPlayed applies action to state, runs fn, and undoes the action
// before returning. The undo happens exactly once on every exit path,
// including a panic inside fn.
func WithPlayed(s State, a Action, fn func()) {
	s.Play(a)
	defer s.Undo()
	fn()
}
