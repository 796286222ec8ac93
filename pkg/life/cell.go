package life

// Cell is the state of a single grid position. Values are stored one byte
// per cell so the backing slice can be handed to renderers as raw bytes.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

const (
	aliveGlyph = '◼'
	deadGlyph  = '◻'
)

// Toggled returns the opposite state.
func (c Cell) Toggled() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// Glyph returns the rune used for text snapshots.
func (c Cell) Glyph() rune {
	if c == Alive {
		return aliveGlyph
	}
	return deadGlyph
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// next applies Conway's rule: survival on 2 or 3 neighbors, birth on exactly 3.
func next(c Cell, neighbors int) Cell {
	if neighbors == 3 || (c == Alive && neighbors == 2) {
		return Alive
	}
	return Dead
}
