package mazetext

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/micromouse/maze"
)

// Document is a parsed diagram.
type Document struct {
	// Maze is the ground-truth maze described by the diagram.
	Maze *maze.Maze
	// Goal is the cell marked 'G'.
	Goal maze.Position
	// Start is the cell marked 'S', or the south-west corner when
	// HasStart is false.
	Start    maze.Position
	HasStart bool
}

// segment is one SetWall call discovered in the diagram.
type segment struct {
	row, col int
	dir      maze.Direction
}

// parser holds the state of one diagram load.
type parser struct {
	lines    []string
	first    int // 1-based line number of lines[0]
	width    int // characters per wall segment / cell interior
	lineLen  int
	rows     int
	cols     int
	walls    []segment
	hwall    [][]bool // [rows+1][cols], true for '-'
	vwall    [][]bool // [rows][cols+1], true for '|'
	goal     maze.Position
	start    maze.Position
	hasGoal  bool
	hasStart bool
}

// Parse reads a diagram from r. opts are applied after the size and
// start taken from the diagram, so callers may override the heading.
// Returns ErrEmpty, a *SyntaxError wrapping ErrSyntax, ErrNoGoal, or a
// maze construction error.
func Parse(r io.Reader, opts ...maze.Option) (*Document, error) {
	p := &parser{}
	if err := p.read(r); err != nil {
		return nil, err
	}
	if err := p.layout(); err != nil {
		return nil, err
	}
	for i, line := range p.lines {
		var err error
		if i%2 == 0 {
			err = p.horizontal(i, line)
		} else {
			err = p.vertical(i, line)
		}
		if err != nil {
			return nil, err
		}
	}
	if !p.hasGoal {
		return nil, ErrNoGoal
	}
	return p.build(opts)
}

// ParseFile parses the diagram stored at path.
func ParseFile(path string, opts ...maze.Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazetext: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// read collects the lines between the first and last non-blank line.
func (p *parser) read(r io.Reader) error {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), " \r"))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("mazetext: read: %w", err)
	}

	lo, hi := 0, len(lines)
	for lo < hi && strings.TrimSpace(lines[lo]) == "" {
		lo++
	}
	for hi > lo && strings.TrimSpace(lines[hi-1]) == "" {
		hi--
	}
	if lo == hi {
		return ErrEmpty
	}
	p.lines = lines[lo:hi]
	p.first = lo + 1
	return nil
}

// layout derives segment width and dimensions from the first line and
// the line count.
func (p *parser) layout() error {
	top := p.lines[0]
	if top[0] != '+' {
		return p.syntax(0, 0, "'+'")
	}
	next := strings.IndexByte(top[1:], '+')
	switch {
	case next < 0:
		return &SyntaxError{Line: p.first, Expected: "a second '+' on the first line"}
	case next == 0:
		return p.syntax(0, 1, "'-' or ' '")
	}
	p.width = next
	p.lineLen = len(top)
	p.cols = (p.lineLen - 1) / (p.width + 1)
	if p.cols*(p.width+1)+1 != p.lineLen {
		return &SyntaxError{Line: p.first, Expected: fmt.Sprintf("a multiple of %d characters plus one", p.width+1)}
	}
	if len(p.lines)%2 == 0 {
		return &SyntaxError{Line: p.first + len(p.lines), Expected: "a closing horizontal line"}
	}
	p.rows = (len(p.lines) - 1) / 2
	if p.rows > maze.MaxSize || p.cols > maze.MaxSize {
		return fmt.Errorf("mazetext: %w: %dx%d", maze.ErrBadSize, p.rows, p.cols)
	}

	p.hwall = make([][]bool, p.rows+1)
	for i := range p.hwall {
		p.hwall[i] = make([]bool, p.cols)
	}
	p.vwall = make([][]bool, p.rows)
	for i := range p.vwall {
		p.vwall[i] = make([]bool, p.cols+1)
	}
	return nil
}

func (p *parser) syntax(i, x int, expected string) *SyntaxError {
	return &SyntaxError{Line: p.first + i, Col: x + 1, Found: rune(p.lines[i][x]), Expected: expected}
}

// fit pads a trimmed line with spaces and rejects overlong ones.
func (p *parser) fit(i int, line string) (string, error) {
	if len(line) > p.lineLen {
		p.lines[i] = line
		return "", p.syntax(i, p.lineLen, "end of line")
	}
	line += strings.Repeat(" ", p.lineLen-len(line))
	p.lines[i] = line
	return line, nil
}

// horizontal parses a pillar line; i is the index into p.lines and also
// the row boundary times two.
func (p *parser) horizontal(i int, line string) error {
	line, err := p.fit(i, line)
	if err != nil {
		return err
	}
	r := i / 2
	for c := 0; c <= p.cols; c++ {
		x := c * (p.width + 1)
		if line[x] != '+' {
			return p.syntax(i, x, "'+'")
		}
		if c == p.cols {
			break
		}
		seg := line[x+1 : x+1+p.width]
		switch seg {
		case strings.Repeat("-", p.width):
			p.hwall[r][c] = true
			if r == p.rows {
				p.walls = append(p.walls, segment{row: p.rows - 1, col: c, dir: maze.South})
			} else {
				p.walls = append(p.walls, segment{row: r, col: c, dir: maze.North})
			}
		case strings.Repeat(" ", p.width):
		default:
			if seg[0] != '-' && seg[0] != ' ' {
				return p.syntax(i, x+1, "'-' or ' '")
			}
			for k := 1; k < len(seg); k++ {
				if seg[k] != seg[0] {
					return p.syntax(i, x+1+k, fmt.Sprintf("%q", seg[0]))
				}
			}
		}
	}
	return nil
}

// vertical parses a cell line.
func (p *parser) vertical(i int, line string) error {
	line, err := p.fit(i, line)
	if err != nil {
		return err
	}
	r := i / 2
	for c := 0; c <= p.cols; c++ {
		x := c * (p.width + 1)
		switch line[x] {
		case '|':
			p.vwall[r][c] = true
			if c == p.cols {
				p.walls = append(p.walls, segment{row: r, col: p.cols - 1, dir: maze.East})
			} else {
				p.walls = append(p.walls, segment{row: r, col: c, dir: maze.West})
			}
		case ' ':
		default:
			return p.syntax(i, x, "'|' or ' '")
		}
		if c == p.cols {
			break
		}
		if err := p.interior(i, x+1, maze.Position{Row: r, Col: c}); err != nil {
			return err
		}
	}
	return nil
}

// interior scans the inside of one cell starting at column x.
func (p *parser) interior(i, x int, at maze.Position) error {
	marked := false
	for k := x; k < x+p.width; k++ {
		ch := p.lines[i][k]
		switch ch {
		case ' ':
			continue
		case 'G', 'S':
		default:
			return p.syntax(i, k, "' ', 'G' or 'S'")
		}
		if marked {
			return p.syntax(i, k, "a single marker per cell")
		}
		marked = true
		if ch == 'G' {
			if p.hasGoal {
				return p.syntax(i, k, "a single 'G'")
			}
			p.goal, p.hasGoal = at, true
		} else {
			if p.hasStart {
				return p.syntax(i, k, "a single 'S'")
			}
			p.start, p.hasStart = at, true
		}
	}
	return nil
}

// closed reports whether the diagram walls side d of cell at.
func (p *parser) closed(at maze.Position, d maze.Direction) bool {
	switch d {
	case maze.North:
		return p.hwall[at.Row][at.Col]
	case maze.South:
		return p.hwall[at.Row+1][at.Col]
	case maze.West:
		return p.vwall[at.Row][at.Col]
	default:
		return p.vwall[at.Row][at.Col+1]
	}
}

// build creates the maze and replays every discovered wall into it.
func (p *parser) build(opts []maze.Option) (*Document, error) {
	start, heading := maze.Position{Row: p.rows - 1, Col: 0}, maze.North
	if p.hasStart {
		start = p.start
		for _, d := range [...]maze.Direction{maze.North, maze.East, maze.South, maze.West} {
			if _, inside := p.neighbor(start, d); inside && !p.closed(start, d) {
				heading = d
				break
			}
		}
	}

	mopts := append([]maze.Option{
		maze.WithSize(p.rows, p.cols),
		maze.WithStart(start, heading),
	}, opts...)
	m, err := maze.New(mopts...)
	if err != nil {
		return nil, fmt.Errorf("mazetext: %w", err)
	}
	for _, s := range p.walls {
		m.SetWall(s.row, s.col, s.dir, maze.Present)
	}

	return &Document{Maze: m, Goal: p.goal, Start: m.Start(), HasStart: p.hasStart}, nil
}

func (p *parser) neighbor(at maze.Position, d maze.Direction) (maze.Position, bool) {
	n := at.Step(d)
	return n, n.Row >= 0 && n.Row < p.rows && n.Col >= 0 && n.Col < p.cols
}
