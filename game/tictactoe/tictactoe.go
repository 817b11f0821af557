// Package tictactoe implements the classic 3x3 game as a fully
// undoable game.State.
package tictactoe

import (
	"fmt"
	"strings"

	"gametree/game"
)

const (
	X = game.Player("X")
	O = game.Player("O")
)

// Cell is a board position, row-major from the top-left corner.
type Cell int

func (c Cell) String() string {
	return fmt.Sprintf("%c%d", 'a'+int(c)%3, int(c)/3+1)
}

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is a tic-tac-toe position. X always moves first. The zero value
// is not usable; call New.
type Board struct {
	cells   [9]game.Player
	history []Cell
}

func New() *Board {
	return &Board{history: make([]Cell, 0, 9)}
}

func (b *Board) Player() game.Player {
	if len(b.history)%2 == 0 {
		return X
	}
	return O
}

func (b *Board) LegalActions() []game.Action {
	if b.winner() != "" {
		return nil
	}
	actions := make([]game.Action, 0, 9-len(b.history))
	for i, p := range b.cells {
		if p == "" {
			actions = append(actions, Cell(i))
		}
	}
	return actions
}

func (b *Board) Play(a game.Action) {
	c := a.(Cell)
	if b.cells[c] != "" {
		panic(fmt.Sprintf("tictactoe: cell %v is occupied", c))
	}
	b.cells[c] = b.Player()
	b.history = append(b.history, c)
}

func (b *Board) Undo() {
	if len(b.history) == 0 {
		panic("tictactoe: no move to undo")
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.cells[last] = ""
}

func (b *Board) IsTerminal() bool {
	return b.winner() != "" || len(b.history) == 9
}

func (b *Board) Score(p game.Player) float64 {
	w := b.winner()
	switch w {
	case "":
		return 0
	case p:
		return 1
	default:
		return -1
	}
}

func (b *Board) winner() game.Player {
	for _, l := range lines {
		p := b.cells[l[0]]
		if p != "" && p == b.cells[l[1]] && p == b.cells[l[2]] {
			return p
		}
	}
	return ""
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if p := b.cells[3*r+c]; p == "" {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(p))
			}
			if c < 2 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
