package main

// Cell holds the state of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	PlayerMark
	ComputerMark
)

// String returns the mark drawn on the board for this cell.
func (c Cell) String() string {
	switch c {
	case PlayerMark:
		return "X"
	case ComputerMark:
		return "O"
	}
	return ""
}

// Board is the fixed 3x3 grid stored row-major, indices 0..8.
type Board [9]Cell

// Outcome is the terminal status of a board.
type Outcome int

const (
	InProgress Outcome = iota
	PlayerWin
	ComputerWin
	Draw
)

// String returns a short label for logging.
func (o Outcome) String() string {
	switch o {
	case PlayerWin:
		return "player_win"
	case ComputerWin:
		return "computer_win"
	case Draw:
		return "draw"
	}
	return "in_progress"
}

// winningTriples lists the 8 lines that decide a game:
// 3 rows, 3 columns and 2 diagonals.
var winningTriples = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate returns the terminal status of the board. Draw is only
// reported once every cell is occupied and no triple is uniform.
func (b Board) Evaluate() Outcome {
	for _, t := range winningTriples {
		a := b[t[0]]
		if a != Empty && a == b[t[1]] && a == b[t[2]] {
			if a == PlayerMark {
				return PlayerWin
			}
			return ComputerWin
		}
	}
	for _, c := range b {
		if c == Empty {
			return InProgress
		}
	}
	return Draw
}

// WinningTriple returns the indices of the first uniformly occupied
// triple, for highlighting the line at game over. ok is false while
// nobody has won.
func (b Board) WinningTriple() (triple [3]int, ok bool) {
	for _, t := range winningTriples {
		a := b[t[0]]
		if a != Empty && a == b[t[1]] && a == b[t[2]] {
			return t, true
		}
	}
	return [3]int{}, false
}

// EmptyCells returns the indices of all unclaimed cells in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, len(b))
	for i, c := range b {
		if c == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}
