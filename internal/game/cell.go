package game

// Cell is one discrete grid position.
type Cell struct {
	X, Y int
}

// InBounds reports whether the cell lies inside the grid.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < GridWidth && c.Y >= 0 && c.Y < GridHeight
}

// Add returns the cell one step away in the given direction.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Direction is one of the four cardinal unit vectors.
type Direction struct {
	X, Y int
}

var (
	DirUp    = Direction{X: 0, Y: -1}
	DirDown  = Direction{X: 0, Y: 1}
	DirLeft  = Direction{X: -1, Y: 0}
	DirRight = Direction{X: 1, Y: 0}
)

// Opposite returns the reversed direction. A pending turn equal to the
// opposite of the committed direction is rejected so the snake can never
// fold back onto its own neck.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// CellSet is value-keyed set membership for cells.
type CellSet map[Cell]struct{}

func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s CellSet) Add(c Cell)           { s[c] = struct{}{} }
func (s CellSet) Contains(c Cell) bool { _, ok := s[c]; return ok }

// FreeCells enumerates, in row-major order, every cell inside the spawn
// margin that is not excluded. Pure function of the grid bounds and the
// exclusion set; callers pick uniformly from the result.
func FreeCells(exclude CellSet) []Cell {
	minX, maxX := SpawnMargin, GridWidth-1-SpawnMargin
	minY, maxY := SpawnMargin, GridHeight-1-SpawnMargin
	var out []Cell
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := Cell{X: x, Y: y}
			if !exclude.Contains(c) {
				out = append(out, c)
			}
		}
	}
	return out
}
