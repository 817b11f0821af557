package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gametree/game"
)

func playAll(b *Board, cells ...Cell) {
	for _, c := range cells {
		b.Play(c)
	}
}

// snapshot captures every observable accessor of a board.
type snapshot struct {
	render   string
	player   game.Player
	terminal bool
	actions  []game.Action
}

func observe(b *Board) snapshot {
	return snapshot{
		render:   b.String(),
		player:   b.Player(),
		terminal: b.IsTerminal(),
		actions:  b.LegalActions(),
	}
}

func TestPlayer(t *testing.T) {
	t.Run("X moves first and turns alternate", func(t *testing.T) {
		b := New()
		require.Equal(t, X, b.Player())

		b.Play(Cell(4))
		require.Equal(t, O, b.Player())

		b.Play(Cell(0))
		require.Equal(t, X, b.Player())
	})
}

func TestLegalActions(t *testing.T) {
	t.Run("a fresh board offers all nine cells", func(t *testing.T) {
		b := New()
		require.Len(t, b.LegalActions(), 9)
	})

	t.Run("occupied cells are excluded", func(t *testing.T) {
		b := New()
		playAll(b, 4, 0)

		actions := b.LegalActions()
		require.Len(t, actions, 7)
		require.NotContains(t, actions, game.Action(Cell(4)))
		require.NotContains(t, actions, game.Action(Cell(0)))
	})

	t.Run("a decided board offers no actions", func(t *testing.T) {
		b := New()
		playAll(b, 0, 3, 1, 4, 2) // X wins the top row

		require.Empty(t, b.LegalActions())
	})
}

func TestWinDetection(t *testing.T) {
	cases := []struct {
		name   string
		moves  []Cell
		winner game.Player
	}{
		{"X wins a row", []Cell{0, 3, 1, 4, 2}, X},
		{"X wins a column", []Cell{0, 1, 3, 2, 6}, X},
		{"X wins a diagonal", []Cell{0, 1, 4, 2, 8}, X},
		{"O wins a row", []Cell{0, 3, 1, 4, 8, 5}, O},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New()
			playAll(b, tc.moves...)

			require.True(t, b.IsTerminal())
			require.Equal(t, 1.0, b.Score(tc.winner))
		})
	}
}

func TestScoreIsZeroSum(t *testing.T) {
	t.Run("the winner and loser see opposite signs", func(t *testing.T) {
		b := New()
		playAll(b, 0, 3, 1, 4, 2)

		require.Equal(t, 1.0, b.Score(X))
		require.Equal(t, -1.0, b.Score(O))
	})

	t.Run("a drawn board scores zero for both sides", func(t *testing.T) {
		b := New()
		playAll(b, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		require.True(t, b.IsTerminal())
		require.Equal(t, 0.0, b.Score(X))
		require.Equal(t, 0.0, b.Score(O))
	})
}

func TestUndo(t *testing.T) {
	t.Run("play then undo restores every observable, for every legal action", func(t *testing.T) {
		b := New()
		playAll(b, 0, 4, 8)

		before := observe(b)
		for _, a := range b.LegalActions() {
			b.Play(a)
			b.Undo()
			require.Equal(t, before, observe(b), "after playing and undoing %v", a)
		}
	})

	t.Run("undo unwinds a full game back to the empty board", func(t *testing.T) {
		b := New()
		empty := observe(b)
		moves := []Cell{0, 3, 1, 4, 2}
		playAll(b, moves...)

		for range moves {
			b.Undo()
		}
		require.Equal(t, empty, observe(b))
	})

	t.Run("undo with no history panics", func(t *testing.T) {
		require.Panics(t, func() { New().Undo() })
	})

	t.Run("playing an occupied cell panics", func(t *testing.T) {
		b := New()
		b.Play(Cell(4))
		require.Panics(t, func() { b.Play(Cell(4)) })
	})
}

func TestString(t *testing.T) {
	b := New()
	playAll(b, 4, 0, 8)

	require.Equal(t, "O . .\n. X .\n. . X\n", b.String())
}

func TestCellString(t *testing.T) {
	require.Equal(t, "a1", Cell(0).String())
	require.Equal(t, "b2", Cell(4).String())
	require.Equal(t, "c3", Cell(8).String())
}
