package engine

// CountCells counts the cells of a specific kind in the grid
func CountCells(cells [][]CellKind, kind CellKind) int {
	count := 0
	for _, row := range cells {
		for _, cell := range row {
			if cell == kind {
				count++
			}
		}
	}
	return count
}

// CountWalkable counts every walkable cell in the grid
func CountWalkable(cells [][]CellKind) int {
	count := 0
	for _, row := range cells {
		for _, cell := range row {
			if cell.Walkable() {
				count++
			}
		}
	}
	return count
}

// UnreachableCells returns the walkable cells that are not on path, in row-major order
func UnreachableCells(cells [][]CellKind, path []Coordinate) []Coordinate {
	onPath := make(map[Coordinate]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var missing []Coordinate
	for r, row := range cells {
		for c, cell := range row {
			pos := Coordinate{Row: r, Col: c}
			if cell.Walkable() && !onPath[pos] {
				missing = append(missing, pos)
			}
		}
	}
	return missing
}

