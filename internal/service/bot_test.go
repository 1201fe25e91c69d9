package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.X
	o = entity.O
	e = entity.Empty
)

func TestBotService_BestMove(t *testing.T) {
	bot := NewBotService()

	t.Run("Blocks the only open win", func(t *testing.T) {
		// Given: X threatens the top row and O holds the center
		board := entity.Board{x, x, e, e, o, e, e, e, e}

		// When: the computer plays O
		move, ok := bot.BestMove(board, o, x)

		// Then: it blocks at index 2
		require.True(t, ok)
		assert.Equal(t, 2, move)
	})

	t.Run("Takes an immediate win over a block", func(t *testing.T) {
		// Given: both sides have two in a row, O to move
		board := entity.Board{x, x, e, o, o, e, x, e, e}

		// When: the computer plays O
		move, ok := bot.BestMove(board, o, x)

		// Then: it completes its own row
		require.True(t, ok)
		assert.Equal(t, 5, move)
	})

	t.Run("Replies to a center opening with the first corner", func(t *testing.T) {
		board := entity.Board{e, e, e, e, x, e, e, e, e}

		move, ok := bot.BestMove(board, o, x)

		require.True(t, ok)
		assert.Equal(t, 0, move)
	})

	t.Run("Is deterministic", func(t *testing.T) {
		boards := []entity.Board{
			{},
			{e, e, e, e, x, e, e, e, e},
			{x, e, e, e, o, e, e, e, x},
			{x, o, x, e, e, e, e, e, e},
		}

		for _, board := range boards {
			first, ok := bot.BestMove(board, o, x)
			require.True(t, ok)

			for i := 0; i < 5; i++ {
				again, _ := bot.BestMove(board, o, x)
				assert.Equal(t, first, again, "board:\n%s", board)
			}
		}
	})

	t.Run("Does not modify the board", func(t *testing.T) {
		board := entity.Board{x, e, e, e, o, e, e, e, x}
		snapshot := board

		_, _ = bot.BestMove(board, o, x)

		assert.Equal(t, snapshot, board)
	})

	t.Run("Returns no move on a full board", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, o, o, x, x}

		move, ok := bot.BestMove(board, o, x)

		assert.False(t, ok)
		assert.Equal(t, NoMove, move)
	})

	t.Run("Returns no move on a won board", func(t *testing.T) {
		board := entity.Board{x, x, x, o, o, e, e, e, e}

		move, ok := bot.BestMove(board, o, x)

		assert.False(t, ok)
		assert.Equal(t, NoMove, move)
	})
}

func TestScore(t *testing.T) {
	t.Run("Terminal boards", func(t *testing.T) {
		assert.Equal(t, scoreWin, Score(entity.Board{o, o, o, x, x, e, x, e, e}, o, x, false))
		assert.Equal(t, scoreLoss, Score(entity.Board{x, x, x, o, o, e, e, e, e}, o, x, true))
		assert.Equal(t, scoreDraw, Score(entity.Board{x, o, x, x, o, o, o, x, x}, o, x, true))
	})

	t.Run("Empty board is a draw with perfect play", func(t *testing.T) {
		assert.Equal(t, scoreDraw, Score(entity.Board{}, o, x, false))
		assert.Equal(t, scoreDraw, Score(entity.Board{}, x, o, true))
	})
}

func TestBotService_NeverLoses(t *testing.T) {
	bot := NewBotService()

	// play walks every legal human reply; the computer answers with BestMove.
	var play func(t *testing.T, board entity.Board, turn, computer entity.Mark) int
	play = func(t *testing.T, board entity.Board, turn, computer entity.Mark) int {
		t.Helper()

		human := computer.Other()
		if entity.CheckWin(board, human) {
			t.Fatalf("computer %s lost:\n%s", computer, board)
		}
		if entity.CheckWin(board, computer) || entity.IsFull(board) {
			return 1
		}

		if turn == computer {
			move, ok := bot.BestMove(board, computer, human)
			require.True(t, ok)

			next, err := entity.Place(board, move, computer)
			require.NoError(t, err)

			return play(t, next, human, computer)
		}

		games := 0
		for _, cell := range entity.LegalMoves(board) {
			next, err := entity.Place(board, cell, human)
			require.NoError(t, err)

			games += play(t, next, computer, computer)
		}

		return games
	}

	t.Run("Computer as O", func(t *testing.T) {
		games := play(t, entity.Board{}, x, o)
		assert.Positive(t, games)
	})

	t.Run("Computer as X", func(t *testing.T) {
		games := play(t, entity.Board{}, x, x)
		assert.Positive(t, games)
	})
}

func TestBotService_CenterOpeningEndsInDraw(t *testing.T) {
	bot := NewBotService()

	// Given: X opens in the center
	board, err := entity.Place(entity.Board{}, 4, x)
	require.NoError(t, err)

	// When: both sides keep playing the minimax move
	turn := o
	for !entity.CheckWin(board, x) && !entity.CheckWin(board, o) && !entity.IsFull(board) {
		move, ok := bot.BestMove(board, turn, turn.Other())
		require.True(t, ok)

		board, err = entity.Place(board, move, turn)
		require.NoError(t, err)

		turn = turn.Other()
	}

	// Then: the game is drawn
	assert.True(t, entity.IsDraw(board), "board:\n%s", board)
}
