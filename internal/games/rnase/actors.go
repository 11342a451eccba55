package rnase

import (
	"math"

	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/field"
)

// Dir is a maze heading.
type Dir int

const (
	DirRight Dir = iota
	DirDown
	DirLeft
	DirUp
)

var (
	dirDX = [4]int{1, 0, -1, 0}
	dirDY = [4]int{0, 1, 0, -1}
)

// Reverse returns the opposite heading.
func (d Dir) Reverse() Dir {
	return (d + 2) % 4
}

// Step returns the tile one move away in direction d.
func (d Dir) Step(col, row, n int) (int, int) {
	return col + dirDX[d]*n, row + dirDY[d]*n
}

func (d Dir) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "up"
	}
}

// dirFor maps a direction action to a heading.
func dirFor(in core.InputFrame) (Dir, bool) {
	switch {
	case in.Has(core.ActionRight):
		return DirRight, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionUp):
		return DirUp, true
	}
	return 0, false
}

// Mover is the continuous body shared by the player and the ghosts.
// Pos is in pixels; Col and Row are the tile the body is in.
type Mover struct {
	Col, Row int
	Pos      core.Vec2
	Dir      Dir
	Speed    float64
}

// Player is the RNase enzyme.
type Player struct {
	Mover
	Next   Dir
	Moving bool
	Alive  bool
}

// Ghost is one RNase inhibitor.
type Ghost struct {
	Mover
	ID         int
	Name       string
	Frightened bool
	Eaten      bool
	InHouse    bool
	Exiting    bool
	Release    float64

	// tile of the last heading decision; a ghost decides once per tile
	turnCol, turnRow int
	turned           bool
}

// turnAround reverses the ghost on the spot. The tile it is in may be
// decided again.
func (gh *Ghost) turnAround() {
	gh.Dir = gh.Dir.Reverse()
	gh.turned = false
}

// Active reports whether the ghost roams the maze and can touch the player.
func (gh *Ghost) Active() bool {
	return !gh.Eaten && !gh.InHouse
}

// center returns the pixel center of a tile.
func (g *Game) center(col, row int) core.Vec2 {
	ts := g.cfg.Maze.TileSize
	return core.Vec2{X: float64(col)*ts + ts/2, Y: float64(row)*ts + ts/2}
}

// centerEps absorbs float drift when a body lands exactly on a center.
const centerEps = 1e-6

// reachesCenter reports whether a body moving step pixels along its heading
// arrives at or crosses its tile center this frame, and how far away the
// center is. A center already behind the body does not count.
func (g *Game) reachesCenter(m *Mover, step float64) (float64, bool) {
	c := g.center(m.Col, m.Row)
	ahead := float64(dirDX[m.Dir])*(c.X-m.Pos.X) + float64(dirDY[m.Dir])*(c.Y-m.Pos.Y)
	if ahead < -centerEps || ahead > step+centerEps {
		return 0, false
	}
	return core.ClampF(ahead, 0, step), true
}

// advance moves m along its heading and wraps it through the side tunnels.
// A body leaving column 0 reappears in the last column and vice versa.
func (g *Game) advance(m *Mover, step float64) {
	ts := g.cfg.Maze.TileSize
	cols := g.maze.Cols()
	m.Pos.X += float64(dirDX[m.Dir]) * step
	m.Pos.Y += float64(dirDY[m.Dir]) * step

	col := int(math.Floor(m.Pos.X / ts))
	switch {
	case m.Pos.X < -ts/2:
		m.Pos.X = float64(cols)*ts - ts/2
		col = cols - 1
	case m.Pos.X > float64(cols)*ts+ts/2:
		m.Pos.X = ts / 2
		col = 0
	}
	m.Col = col
	m.Row = int(math.Floor(m.Pos.Y / ts))
}

func (g *Game) playerSpeed() float64 {
	p := &g.cfg.Player
	speed := g.cfg.Maze.TileSize / p.SpeedDiv
	if g.level > 1 {
		speed += float64(g.level) * p.SpeedPerLevel
	}
	return speed
}

func (g *Game) ghostSpeed() float64 {
	gc := &g.cfg.Ghosts
	speed := g.cfg.Maze.TileSize / gc.SpeedDiv
	if g.level > 1 {
		speed += float64(g.level) * gc.SpeedPerLevel
	}
	return speed
}

func (g *Game) initPlayer() {
	start := g.cfg.Player.Start
	g.player = Player{
		Mover: Mover{
			Col:   start.Col,
			Row:   start.Row,
			Pos:   g.center(start.Col, start.Row),
			Dir:   DirLeft,
			Speed: g.playerSpeed(),
		},
		Next:  DirLeft,
		Alive: true,
	}
}

// initGhosts places the ghosts: the first waits outside the door, the rest
// leave the house one release step apart.
func (g *Game) initGhosts() {
	gc := &g.cfg.Ghosts
	g.ghosts = g.ghosts[:0]
	for i, start := range gc.Starts {
		name := ""
		if i < len(gc.Names) {
			name = gc.Names[i]
		}
		gh := Ghost{
			Mover: Mover{
				Col:   start.Col,
				Row:   start.Row,
				Pos:   g.center(start.Col, start.Row),
				Dir:   DirUp,
				Speed: g.ghostSpeed(),
			},
			ID:      i,
			Name:    name,
			InHouse: i > 0,
			Release: float64(i) * gc.ReleaseStep,
		}
		g.ghosts = append(g.ghosts, gh)
	}
}

// movePlayer turns at tile centers toward the queued heading when that tile
// is open, and stops against walls. Whatever is left of the step after a
// turn is spent in the new heading.
func (g *Game) movePlayer(dt float64) {
	p := &g.player
	if !p.Alive {
		return
	}
	step := p.Speed * dt

	ahead, ok := g.reachesCenter(&p.Mover, step)
	if !ok {
		if p.Moving {
			g.advance(&p.Mover, step)
		}
		return
	}
	p.Pos = g.center(p.Col, p.Row)
	if c, r := p.Next.Step(p.Col, p.Row, 1); g.maze.Passable(c, r, false) {
		p.Dir = p.Next
	}
	if c, r := p.Dir.Step(p.Col, p.Row, 1); !g.maze.Passable(c, r, false) {
		p.Moving = false
		return
	}
	p.Moving = true
	g.advance(&p.Mover, step-ahead)
}

// collect eats the pellet under the player.
func (g *Game) collect() {
	p := &g.player
	switch g.maze.Consume(p.Col, p.Row) {
	case field.TileDot:
		g.rnaEaten++
		g.score += g.cfg.Scoring.Dot
	case field.TilePower:
		g.rnaEaten++
		g.score += g.cfg.Scoring.Power
		g.effects.Burst(g.rng, p.Pos, core.ColorPink, powerParticles, powerSpeed, powerLife)
		g.frighten()
	}
}

// moveGhost runs one ghost through its house, exit, homing or roaming
// behaviour.
func (g *Game) moveGhost(gh *Ghost, dt float64) {
	if gh.InHouse {
		gh.Release -= dt
		if gh.Release > 0 {
			gh.Pos.Y += math.Sin(float64(g.tickCount)*0.08+float64(gh.ID)) * 0.5 * dt
			return
		}
		gh.InHouse = false
		gh.Exiting = true
	}

	if gh.Exiting {
		g.exitHouse(gh, gh.Speed*dt)
		return
	}

	if gh.Eaten {
		g.returnHome(gh, gh.Speed*g.cfg.Ghosts.EatenSpeed*dt)
		return
	}

	speed := gh.Speed
	if gh.Frightened {
		speed *= g.cfg.Ghosts.FrightSpeed
	}
	step := speed * dt

	ahead, ok := g.reachesCenter(&gh.Mover, step)
	if ok && !(gh.turned && gh.turnCol == gh.Col && gh.turnRow == gh.Row) {
		gh.Pos = g.center(gh.Col, gh.Row)
		gh.Dir = g.chooseDir(gh)
		gh.turnCol, gh.turnRow, gh.turned = gh.Col, gh.Row, true
		step -= ahead
	}
	g.advance(&gh.Mover, step)
}

// exitHouse lines the ghost up with the door, then lifts it to the exit tile.
func (g *Game) exitHouse(gh *Ghost, step float64) {
	door := g.center(g.cfg.Maze.Door.Col, g.cfg.Maze.Exit.Row)
	if math.Abs(gh.Pos.X-door.X) > 2 {
		if door.X > gh.Pos.X {
			gh.Pos.X += step
		} else {
			gh.Pos.X -= step
		}
		return
	}
	gh.Pos.X = door.X
	if gh.Pos.Y > door.Y {
		gh.Pos.Y -= step
		return
	}
	gh.Pos.Y = door.Y
	gh.Col, gh.Row = g.cfg.Maze.Exit.Col, g.cfg.Maze.Exit.Row
	gh.Exiting = false
	gh.Dir = DirLeft
	gh.turned = false
}

// returnHome flies an eaten ghost straight to the house, ignoring walls.
func (g *Game) returnHome(gh *Ghost, step float64) {
	home := g.cfg.Maze.Home
	target := g.center(home.Col, home.Row)
	delta := target.Sub(gh.Pos)
	dist := delta.Len()
	if dist < step {
		gh.Pos = target
		gh.Col, gh.Row = home.Col, home.Row
		gh.Eaten = false
		gh.Frightened = false
		gh.InHouse = true
		gh.Release = g.cfg.Ghosts.Rerelease
		return
	}
	gh.Pos = gh.Pos.Add(delta.Scale(step / dist))
	ts := g.cfg.Maze.TileSize
	gh.Col = int(math.Floor(gh.Pos.X / ts))
	gh.Row = int(math.Floor(gh.Pos.Y / ts))
}
