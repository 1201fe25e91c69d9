package service

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0

	// NoMove is returned by BestMove when the board is already terminal.
	NoMove = -1
)

type BotService interface {
	BestMove(board entity.Board, computer, human entity.Mark) (int, bool)
}

type botService struct{}

// NewBotService returns a bot that plays perfectly by searching the full game tree.
func NewBotService() BotService {
	return &botService{}
}

// BestMove picks the first legal move, in ascending cell order, with the highest minimax score.
// It reports false when no move can be made, which is a normal end of game and not an error.
func (that *botService) BestMove(board entity.Board, computer, human entity.Mark) (int, bool) {
	if entity.CheckWin(board, computer) || entity.CheckWin(board, human) {
		return NoMove, false
	}

	bestScore := scoreLoss - 1
	bestMove := NoMove

	// board is a copy, marks are placed and cleared on it without touching the caller's value
	for _, cell := range entity.LegalMoves(board) {
		board[cell] = computer
		score := Score(board, computer, human, false)
		board[cell] = entity.Empty

		if score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	return bestMove, bestMove != NoMove
}

// Score evaluates board from the computer's point of view, searching until every branch ends.
// maximizing tells whether the computer is the one to move.
func Score(board entity.Board, computer, human entity.Mark, maximizing bool) int {
	switch {
	case entity.CheckWin(board, computer):
		return scoreWin
	case entity.CheckWin(board, human):
		return scoreLoss
	case entity.IsFull(board):
		return scoreDraw
	}

	mark, best := human, scoreWin+1
	if maximizing {
		mark, best = computer, scoreLoss-1
	}

	for _, cell := range entity.LegalMoves(board) {
		board[cell] = mark
		score := Score(board, computer, human, !maximizing)
		board[cell] = entity.Empty

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
