package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Mode string

const (
	ModeTwoPlayer  Mode = "two-player"
	ModeVsComputer Mode = "computer"
)

type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Outcome is derived from a board, it is never tracked on its own.
type Outcome struct {
	Status Status
	Winner Mark
}

func ParseMode(value string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(value))); mode {
	case ModeTwoPlayer, ModeVsComputer:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(mark Mark) Outcome {
	return Outcome{Status: StatusWin, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

// Evaluate derives the outcome after mover placed a mark. The win check goes first:
// a full board with a line is a win, not a draw.
func Evaluate(board Board, mover Mark) Outcome {
	if CheckWin(board, mover) {
		return Win(mover)
	}

	if IsDraw(board) {
		return Draw()
	}

	return InProgress()
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return that.Winner.String() + " wins!"
	case StatusDraw:
		return "It's a draw!"
	default:
		return string(StatusInProgress)
	}
}
