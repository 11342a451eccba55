package field

import "fmt"

// Tile is one maze cell.
type Tile uint8

const (
	TileWall Tile = iota
	TileDot
	TileEmpty
	TilePower
	TileHouse
	TileDoor
)

// tileRunes maps the text template alphabet to tiles.
var tileRunes = map[rune]Tile{
	'#': TileWall,
	'.': TileDot,
	' ': TileEmpty,
	'o': TilePower,
	'H': TileHouse,
	'-': TileDoor,
}

// DefaultMaze is the 21x22 chase layout. The open ends of rows 8, 10 and 12
// are tunnels.
var DefaultMaze = []string{
	"#####################",
	"#.........#.........#",
	"#.###.###.#.###.###.#",
	"#o###.###.#.###.###o#",
	"#...................#",
	"#.###.#.#####.#.###.#",
	"#.....#...#...#.....#",
	"#####.### # ###.#####",
	"    #.#       #.#    ",
	"#####.# ##-## #.#####",
	"     .  #HHH#  .     ",
	"#####.# ##### #.#####",
	"    #.#       #.#    ",
	"#####.# ##### #.#####",
	"#.........#.........#",
	"#.###.###.#.###.###.#",
	"#o..#..... .....#..o#",
	"###.#.#.#####.#.#.###",
	"#.....#...#...#.....#",
	"#.#######.#.#######.#",
	"#...................#",
	"#####################",
}

// Maze is a tile grid with pellet bookkeeping.
type Maze struct {
	cols  int
	rows  int
	tiles []Tile
	total int
	eaten int
}

// ParseMaze builds a maze from text rows of equal width.
func ParseMaze(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("field: maze has no rows")
	}
	cols := len([]rune(rows[0]))
	if cols == 0 {
		return nil, fmt.Errorf("field: maze has no columns")
	}

	m := &Maze{cols: cols, rows: len(rows), tiles: make([]Tile, 0, cols*len(rows))}
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("field: maze row %d has %d columns, expected %d", r, len(runes), cols)
		}
		for c, ch := range runes {
			t, ok := tileRunes[ch]
			if !ok {
				return nil, fmt.Errorf("field: maze row %d col %d: unknown tile %q", r, c, ch)
			}
			if t == TileDot || t == TilePower {
				m.total++
			}
			m.tiles = append(m.tiles, t)
		}
	}
	return m, nil
}

// MustParseMaze is ParseMaze for compiled-in layouts.
func MustParseMaze(rows []string) *Maze {
	m, err := ParseMaze(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Cols returns the maze width in tiles.
func (m *Maze) Cols() int { return m.cols }

// Rows returns the maze height in tiles.
func (m *Maze) Rows() int { return m.rows }

// WrapCol maps any column into [0, Cols).
func (m *Maze) WrapCol(c int) int {
	c %= m.cols
	if c < 0 {
		c += m.cols
	}
	return c
}

// At returns the tile at (c, r). Rows outside the grid read as walls;
// columns wrap around through the tunnels.
func (m *Maze) At(c, r int) Tile {
	if r < 0 || r >= m.rows {
		return TileWall
	}
	return m.tiles[r*m.cols+m.WrapCol(c)]
}

// Passable reports whether a mover may enter (c, r). The ghost house and its
// door admit ghosts only.
func (m *Maze) Passable(c, r int, ghost bool) bool {
	switch m.At(c, r) {
	case TileWall:
		return false
	case TileHouse, TileDoor:
		return ghost
	default:
		return true
	}
}

// Consume eats the pellet at (c, r) and returns what was eaten:
// TileDot, TilePower, or TileEmpty when there was nothing. Cells outside the
// grid hold nothing.
func (m *Maze) Consume(c, r int) Tile {
	if c < 0 || c >= m.cols || r < 0 || r >= m.rows {
		return TileEmpty
	}
	i := r*m.cols + c
	switch t := m.tiles[i]; t {
	case TileDot, TilePower:
		m.tiles[i] = TileEmpty
		m.eaten++
		return t
	}
	return TileEmpty
}

// Total returns the number of pellets the maze started with.
func (m *Maze) Total() int { return m.total }

// Eaten returns the number of pellets consumed.
func (m *Maze) Eaten() int { return m.eaten }

// Remaining returns the number of pellets left.
func (m *Maze) Remaining() int { return m.total - m.eaten }

// Clone returns an independent copy.
func (m *Maze) Clone() *Maze {
	cp := *m
	cp.tiles = append([]Tile(nil), m.tiles...)
	return &cp
}
