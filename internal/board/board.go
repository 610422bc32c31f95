// Package board holds the pure win-line geometry for square NxN boards.
// Cells are addressed as index = row*columns + col.
package board

// RowCol converts a cell index to its (row, col) position.
func RowCol(cell, columns int) (int, int) {
	return cell / columns, cell % columns
}

// InBounds reports whether cell addresses a square on a rows x columns board.
func InBounds(cell, rows, columns int) bool {
	return cell >= 0 && cell < rows*columns
}

// IsWinningMove reports whether the player owning the cells in occupied has a
// completed line after playing (row, col). The full row and the full column of
// the move are checked, and both fixed diagonals are checked on every move
// whether or not the move lies on them. A fully-owned diagonal therefore
// registers a win even when the triggering move is elsewhere; that matches the
// shipped ruleset and is kept on purpose.
func IsWinningMove(rows, columns, row, col int, occupied []int) bool {
	return winsRow(row, columns, occupied) ||
		winsColumn(col, rows, occupied) ||
		winsMainDiagonal(rows, columns, occupied) ||
		winsAntiDiagonal(rows, columns, occupied)
}

func winsRow(row, columns int, occupied []int) bool {
	for col := 0; col < columns; col++ {
		if !contains(occupied, row*columns+col) {
			return false
		}
	}
	return true
}

func winsColumn(col, rows int, occupied []int) bool {
	for row := 0; row < rows; row++ {
		if !contains(occupied, col+rows*row) {
			return false
		}
	}
	return true
}

// Main diagonal: cells r*(columns+1), top-left to bottom-right.
func winsMainDiagonal(rows, columns int, occupied []int) bool {
	for row := 0; row < rows; row++ {
		if !contains(occupied, row*(columns+1)) {
			return false
		}
	}
	return true
}

// Anti-diagonal: cells (columns-1)*(1+r), top-right to bottom-left.
func winsAntiDiagonal(rows, columns int, occupied []int) bool {
	for row := 0; row < rows; row++ {
		if !contains(occupied, (columns-1)*(1+row)) {
			return false
		}
	}
	return true
}

func contains(cells []int, cell int) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}
