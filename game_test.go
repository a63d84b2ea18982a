package main

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &Config{Seed: 1, NormalOptimalChance: defaultOptimalChance}
	return NewSession(cfg, log)
}

func TestSession_StartRequiresDifficulty(t *testing.T) {
	// Given: an idle session with no difficulty selected
	s := newTestSession(t)

	// When: starting a game
	err := s.Start()

	// Then: the start is rejected
	require.ErrorIs(t, err, ErrNoDifficulty)
	require.Equal(t, StateIdle, s.State())
}

func TestSession_StartBeginsPlayerTurn(t *testing.T) {
	// Given: a session with a difficulty selected
	s := newTestSession(t)
	s.SetDifficulty(DifficultyHard)

	// When: starting a game
	require.NoError(t, s.Start())

	// Then: the board is empty and the player moves first
	require.Equal(t, StatePlayerTurn, s.State())
	require.Equal(t, InProgress, s.Outcome())
	require.Equal(t, Board{}, s.Snapshot())
}

func TestSession_PlayerMoveValidation(t *testing.T) {
	t.Run("rejected before a game starts", func(t *testing.T) {
		s := newTestSession(t)
		require.ErrorIs(t, s.PlayerMove(0), ErrNotYourTurn)
	})

	t.Run("rejected out of range", func(t *testing.T) {
		s := newTestSession(t)
		s.SetDifficulty(DifficultyEasy)
		require.NoError(t, s.Start())
		require.ErrorIs(t, s.PlayerMove(-1), ErrInvalidCell)
		require.ErrorIs(t, s.PlayerMove(9), ErrInvalidCell)
	})

	t.Run("rejected on occupied cell", func(t *testing.T) {
		// Given: a running game where the player and computer each moved
		s := newTestSession(t)
		s.SetDifficulty(DifficultyEasy)
		require.NoError(t, s.Start())
		require.NoError(t, s.PlayerMove(4))
		idx, err := s.ComputerMove()
		require.NoError(t, err)

		// Then: both occupied cells reject a second claim
		require.ErrorIs(t, s.PlayerMove(4), ErrCellOccupied)
		require.ErrorIs(t, s.PlayerMove(idx), ErrCellOccupied)
		// And: the board is untouched by the rejected moves
		claimed := 0
		for _, c := range s.Snapshot() {
			if c != Empty {
				claimed++
			}
		}
		require.Equal(t, 2, claimed)
	})

	t.Run("rejected during the computer's turn", func(t *testing.T) {
		s := newTestSession(t)
		s.SetDifficulty(DifficultyEasy)
		require.NoError(t, s.Start())
		require.NoError(t, s.PlayerMove(0))
		require.ErrorIs(t, s.PlayerMove(1), ErrNotYourTurn)
	})
}

func TestSession_ComputerMoveOnlyOnItsTurn(t *testing.T) {
	// Given: a fresh game, player to move
	s := newTestSession(t)
	s.SetDifficulty(DifficultyHard)
	require.NoError(t, s.Start())

	// When: asking for a computer move out of turn
	_, err := s.ComputerMove()

	// Then: it is rejected
	require.ErrorIs(t, err, ErrNotYourTurn)
}

func TestSession_TurnsAlternate(t *testing.T) {
	// Given: a running game
	s := newTestSession(t)
	s.SetDifficulty(DifficultyHard)
	require.NoError(t, s.Start())

	// When: the player moves
	require.NoError(t, s.PlayerMove(0))

	// Then: it is the computer's turn, and back again after its reply
	require.Equal(t, StateComputerTurn, s.State())
	idx, err := s.ComputerMove()
	require.NoError(t, err)
	require.Equal(t, ComputerMark, s.Snapshot()[idx])
	require.Equal(t, StatePlayerTurn, s.State())
}

func TestSession_GameOverBlocksFurtherMoves(t *testing.T) {
	// Given: a finished game
	s := playUntilGameOver(t, DifficultyEasy)

	// Then: both sides are blocked from moving
	require.ErrorIs(t, s.PlayerMove(firstEmpty(s.Snapshot())), ErrGameOver)
	_, err := s.ComputerMove()
	require.ErrorIs(t, err, ErrGameOver)
}

func TestSession_ResetReturnsToIdle(t *testing.T) {
	// Given: a game with a few moves on the board
	s := newTestSession(t)
	s.SetDifficulty(DifficultyNormal)
	require.NoError(t, s.Start())
	require.NoError(t, s.PlayerMove(4))
	_, err := s.ComputerMove()
	require.NoError(t, err)

	// When: resetting the session
	s.Reset()

	// Then: the board is all-empty, the outcome in progress, the state idle
	require.Equal(t, Board{}, s.Snapshot())
	require.Equal(t, InProgress, s.Outcome())
	require.Equal(t, StateIdle, s.State())
	// And: the difficulty survives, so the next game can start directly
	require.Equal(t, DifficultyNormal, s.Difficulty())
	require.NoError(t, s.Start())
}

func TestSession_HardGameNeverEndsInPlayerWin(t *testing.T) {
	// Given/When: a full game against Hard where the player always
	// grabs the first empty cell
	s := playUntilGameOver(t, DifficultyHard)

	// Then: minimax never loses
	outcome := s.Outcome()
	require.NotEqual(t, PlayerWin, outcome)
	assert.Contains(t, []Outcome{ComputerWin, Draw}, outcome)
}

func TestSession_TallyTracksFinishedGames(t *testing.T) {
	// Given: a couple of finished games on one session... tallies are
	// per-session, so use explicit games on the same instance
	s := newTestSession(t)
	s.SetDifficulty(DifficultyHard)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Start())
		playOut(t, s)
	}

	// Then: every game is accounted for
	tally := s.Tally()
	require.Equal(t, 3, tally.PlayerWins+tally.ComputerWins+tally.Draws)
	// And: none of them was a player win against minimax
	require.Zero(t, tally.PlayerWins)
}

func TestSession_SetDifficultyAbandonsRunningGame(t *testing.T) {
	// Given: a running game
	s := newTestSession(t)
	s.SetDifficulty(DifficultyEasy)
	require.NoError(t, s.Start())
	require.NoError(t, s.PlayerMove(0))

	// When: the difficulty changes mid-game
	s.SetDifficulty(DifficultyHard)

	// Then: the game is abandoned and the new difficulty selected
	require.Equal(t, StateIdle, s.State())
	require.Equal(t, Board{}, s.Snapshot())
	require.Equal(t, DifficultyHard, s.Difficulty())
}

// playUntilGameOver starts a game at the given difficulty and plays the
// player's first-empty-cell strategy until the game ends.
func playUntilGameOver(t *testing.T, level Difficulty) *Session {
	t.Helper()
	s := newTestSession(t)
	s.SetDifficulty(level)
	require.NoError(t, s.Start())
	playOut(t, s)
	return s
}

// playOut drives an already started game to completion.
func playOut(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 9 && s.State() != StateGameOver; i++ {
		require.NoError(t, s.PlayerMove(firstEmpty(s.Snapshot())))
		if s.State() == StateGameOver {
			break
		}
		_, err := s.ComputerMove()
		require.NoError(t, err)
	}
	require.Equal(t, StateGameOver, s.State())
}

func firstEmpty(b Board) int {
	for i, c := range b {
		if c == Empty {
			return i
		}
	}
	return -1
}
