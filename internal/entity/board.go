package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

const BoardSize = 9

// WinLines lists every winning triple: rows, then columns, then diagonals.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid in row-major order. It is a value type, so assigning a Board copies it.
type Board [BoardSize]Mark

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Other returns the opponent's mark.
func (that Mark) Other() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func ParseMark(value string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, value)
	}
}

func validIndex(index int) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	return nil
}

func IsEmpty(board Board, index int) (bool, error) {
	if err := validIndex(index); err != nil {
		return false, err
	}

	return board[index] == Empty, nil
}

// Place returns a copy of board with mark at index. The input board is left untouched.
func Place(board Board, index int, mark Mark) (Board, error) {
	empty, err := IsEmpty(board, index)
	if err != nil {
		return board, err
	}

	if !empty {
		return board, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	board[index] = mark

	return board, nil
}

func CheckWin(board Board, mark Mark) bool {
	_, ok := WinningLine(board, mark)
	return ok
}

// WinningLine returns the first line, in WinLines order, fully owned by mark.
func WinningLine(board Board, mark Mark) ([3]int, bool) {
	if mark == Empty {
		return [3]int{}, false
	}

	for _, line := range WinLines {
		if board[line[0]] == mark && board[line[1]] == mark && board[line[2]] == mark {
			return line, true
		}
	}

	return [3]int{}, false
}

func IsFull(board Board) bool {
	for _, cell := range board {
		if cell == Empty {
			return false
		}
	}

	return true
}

// IsDraw - the board is full and nobody has a line.
func IsDraw(board Board) bool {
	if CheckWin(board, X) || CheckWin(board, O) {
		return false
	}

	return IsFull(board)
}

// LegalMoves returns empty cell indices in ascending order.
func LegalMoves(board Board) []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range board {
		if cell == Empty {
			moves = append(moves, i)
		}
	}

	return moves
}

func (that Board) String() string {
	var sb strings.Builder

	for i, cell := range that {
		if cell == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(cell.String())
		}

		if i%3 == 2 && i != BoardSize-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
