package main

import "math/rand"

// Difficulty selects the computer's move strategy for a game.
type Difficulty int

const (
	DifficultyNotSelected Difficulty = iota
	DifficultyEasy
	DifficultyNormal
	DifficultyHard
)

// String returns the label shown in the difficulty selector.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	}
	return "Not Selected"
}

// defaultOptimalChance is how often Normal plays the optimal move
// instead of a random one.
const defaultOptimalChance = 0.7

// mover picks the computer's next move for a board. rng is the owning
// session's generator so games are reproducible under a fixed seed.
type mover struct {
	rng           *rand.Rand
	optimalChance float64
}

// choose returns the index of an empty cell for the computer to claim,
// or -1 when the board has no empty cell left.
func (m *mover) choose(b Board, level Difficulty) int {
	switch level {
	case DifficultyEasy:
		return m.easyMove(b)
	case DifficultyNormal:
		return m.normalMove(b)
	case DifficultyHard:
		return m.hardMove(b)
	}
	// No level selected should never reach a computer turn; fall back
	// to a random legal move rather than crash.
	return m.easyMove(b)
}

// easyMove picks uniformly at random among the empty cells.
func (m *mover) easyMove(b Board) int {
	cells := b.EmptyCells()
	if len(cells) == 0 {
		return -1
	}
	return cells[m.rng.Intn(len(cells))]
}

// normalMove plays the optimal move with probability optimalChance and
// a random one otherwise, giving an opponent that is beatable but not weak.
func (m *mover) normalMove(b Board) int {
	if m.rng.Float64() < m.optimalChance {
		return m.hardMove(b)
	}
	return m.easyMove(b)
}

// hardMove runs a full minimax over the remaining game tree. Ties are
// broken by the first-found (lowest) index: cells are scanned in
// ascending order and a candidate only replaces the current best on a
// strictly greater score.
func (m *mover) hardMove(b Board) int {
	bestScore := -2 // Below the minimum reachable score of -1.
	bestMove := -1
	for i := range b {
		if b[i] != Empty {
			continue
		}
		b[i] = ComputerMark
		score := minimax(b, false)
		b[i] = Empty
		if score > bestScore {
			bestScore = score
			bestMove = i
		}
	}
	return bestMove
}

// minimax scores a board from the computer's perspective: +1 computer
// win, -1 player win, 0 draw. The computer maximizes, the player
// minimizes. No depth limit is needed on a 9-cell board.
func minimax(b Board, maximizing bool) int {
	switch b.Evaluate() {
	case ComputerWin:
		return 1
	case PlayerWin:
		return -1
	case Draw:
		return 0
	}
	if maximizing {
		best := -2
		for i := range b {
			if b[i] != Empty {
				continue
			}
			b[i] = ComputerMark
			if score := minimax(b, false); score > best {
				best = score
			}
			b[i] = Empty
		}
		return best
	}
	best := 2
	for i := range b {
		if b[i] != Empty {
			continue
		}
		b[i] = PlayerMark
		if score := minimax(b, true); score < best {
			best = score
		}
		b[i] = Empty
	}
	return best
}
