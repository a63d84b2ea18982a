package main

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GameState defines the possible states of a game session.
type GameState int

const (
	StateIdle GameState = iota
	StatePlayerTurn
	StateComputerTurn
	StateGameOver
)

// Errors returned by session operations.
var (
	ErrNoDifficulty = errors.New("no difficulty selected")
	ErrNotYourTurn  = errors.New("not the player's turn")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameOver     = errors.New("game is already over")
)

// Tally is the per-run score card shown in the top bar. It lives only
// for the lifetime of the process; game history is not persisted.
type Tally struct {
	PlayerWins   int
	ComputerWins int
	Draws        int
}

// Session owns the state of one game at a time: the board, whose turn
// it is, and the selected difficulty. The mutex guards against the
// Fyne tap handlers and the delayed computer-turn timers racing.
type Session struct {
	mu         sync.Mutex
	board      Board
	state      GameState
	difficulty Difficulty
	outcome    Outcome
	tally      Tally
	gameID     string
	mover      mover
	log        *logrus.Logger
}

// NewSession creates an idle session. A seed of 0 falls back to the
// current time so default runs are not identical.
func NewSession(cfg *Config, log *logrus.Logger) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		state:      StateIdle,
		difficulty: DifficultyNotSelected,
		mover: mover{
			rng:           rand.New(rand.NewSource(seed)),
			optimalChance: cfg.NormalOptimalChance,
		},
		log: log,
	}
}

// SetDifficulty selects the strategy for the next game. Changing it
// while a game is running ends that game and returns to Idle; the
// difficulty is immutable for a game's duration.
func (s *Session) SetDifficulty(level Difficulty) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if level < DifficultyNotSelected || level > DifficultyHard {
		s.log.WithField("difficulty", int(level)).Warn("ignoring invalid difficulty")
		return
	}
	if s.state != StateIdle {
		s.resetLocked()
	}
	s.difficulty = level
}

// Start begins a new game. The player is X and always moves first.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.difficulty == DifficultyNotSelected {
		return ErrNoDifficulty
	}
	if s.state != StateIdle {
		s.resetLocked()
	}
	s.board = Board{}
	s.outcome = InProgress
	s.state = StatePlayerTurn
	s.gameID = uuid.NewString()
	s.log.WithFields(logrus.Fields{
		"game_id":    s.gameID,
		"difficulty": s.difficulty.String(),
	}).Info("game started")
	return nil
}

// Reset abandons any running game and returns to Idle. The tally and
// the selected difficulty survive a reset.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// resetLocked clears the game-specific state. Caller holds the mutex.
func (s *Session) resetLocked() {
	s.board = Board{}
	s.outcome = InProgress
	s.state = StateIdle
	s.gameID = ""
}

// PlayerMove claims cell idx for the player. Moves outside the
// player's turn, out of range, or on an occupied cell are rejected
// without touching the board.
func (s *Session) PlayerMove(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateGameOver {
		return ErrGameOver
	}
	if s.state != StatePlayerTurn {
		return ErrNotYourTurn
	}
	if idx < 0 || idx >= len(s.board) {
		return ErrInvalidCell
	}
	if s.board[idx] != Empty {
		return ErrCellOccupied
	}
	s.board[idx] = PlayerMark
	s.log.WithFields(logrus.Fields{
		"game_id": s.gameID,
		"cell":    idx,
	}).Debug("player move")
	if !s.finishIfTerminalLocked() {
		s.state = StateComputerTurn
	}
	return nil
}

// ComputerMove picks and applies the computer's move for the selected
// difficulty, returning the claimed cell index.
func (s *Session) ComputerMove() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateGameOver {
		return -1, ErrGameOver
	}
	if s.state != StateComputerTurn {
		return -1, ErrNotYourTurn
	}
	idx := s.mover.choose(s.board, s.difficulty)
	if idx < 0 {
		// Unreachable while the terminal check runs after every move,
		// but do not crash on an impossible board.
		s.state = StateGameOver
		s.outcome = Draw
		return -1, ErrGameOver
	}
	s.board[idx] = ComputerMark
	s.log.WithFields(logrus.Fields{
		"game_id": s.gameID,
		"cell":    idx,
	}).Debug("computer move")
	if !s.finishIfTerminalLocked() {
		s.state = StatePlayerTurn
	}
	return idx, nil
}

// finishIfTerminalLocked evaluates the board and, when the game has
// ended, records the outcome and moves to GameOver. Caller holds the
// mutex. Returns true when the game is over.
func (s *Session) finishIfTerminalLocked() bool {
	outcome := s.board.Evaluate()
	if outcome == InProgress {
		return false
	}
	s.outcome = outcome
	s.state = StateGameOver
	switch outcome {
	case PlayerWin:
		s.tally.PlayerWins++
	case ComputerWin:
		s.tally.ComputerWins++
	case Draw:
		s.tally.Draws++
	}
	s.log.WithFields(logrus.Fields{
		"game_id":    s.gameID,
		"difficulty": s.difficulty.String(),
		"outcome":    outcome.String(),
	}).Info("game over")
	return true
}

// State returns the current session state.
func (s *Session) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Difficulty returns the currently selected difficulty.
func (s *Session) Difficulty() Difficulty {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.difficulty
}

// Outcome returns the result of the current game, InProgress until the
// game is over.
func (s *Session) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Snapshot returns a copy of the board for rendering. Board is a value
// type, so the caller cannot mutate session state through it.
func (s *Session) Snapshot() Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// Tally returns the per-run score card.
func (s *Session) Tally() Tally {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tally
}
