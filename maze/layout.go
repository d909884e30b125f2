package maze

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"pacman/game"
)

//go:embed layouts/*.lay
var layoutFiles embed.FS

// Layout is the static part of a maze: walls and starting positions.
// Row 0 is the top of the maze.
type Layout struct {
	Name        string
	Width       int
	Height      int
	walls       []bool
	Food        []game.Position
	Capsules    []game.Position
	PacmanStart game.Position
	GhostStarts []game.Position
}

// ParseLayout reads a maze drawn with '%' walls, '.' food, 'o' capsules,
// 'P' for pacman, 'G' for ghosts and spaces for empty cells.
func ParseLayout(name, text string) (*Layout, error) {
	rows := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout %s is empty", name)
	}

	l := &Layout{Name: name, Width: len(rows[0]), Height: len(rows)}
	l.walls = make([]bool, l.Width*l.Height)
	pacmen := 0
	for y, row := range rows {
		if len(row) != l.Width {
			return nil, fmt.Errorf("layout %s: row %d has width %d, expected %d", name, y, len(row), l.Width)
		}
		for x, cell := range row {
			p := game.Position{X: x, Y: y}
			switch cell {
			case '%':
				l.walls[l.index(p)] = true
			case '.':
				l.Food = append(l.Food, p)
			case 'o':
				l.Capsules = append(l.Capsules, p)
			case 'P':
				l.PacmanStart = p
				pacmen++
			case 'G':
				l.GhostStarts = append(l.GhostStarts, p)
			case ' ':
			default:
				return nil, fmt.Errorf("layout %s: unexpected character %q at (%d, %d)", name, cell, x, y)
			}
		}
	}
	if pacmen != 1 {
		return nil, fmt.Errorf("layout %s: expected one pacman, found %d", name, pacmen)
	}
	return l, nil
}

// LoadLayout returns one of the bundled layouts by name.
func LoadLayout(name string) (*Layout, error) {
	data, err := layoutFiles.ReadFile(path.Join("layouts", name+".lay"))
	if err != nil {
		return nil, fmt.Errorf("failed to load layout %s: %w", name, err)
	}
	return ParseLayout(name, string(data))
}

// LayoutNames lists the bundled layouts.
func LayoutNames() []string {
	entries, err := layoutFiles.ReadDir("layouts")
	if err != nil {
		panic(fmt.Sprintf("bundled layouts are unreadable: %v", err))
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".lay"))
	}
	sort.Strings(names)
	return names
}

// HasWall treats every cell outside the maze as a wall.
func (l *Layout) HasWall(p game.Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= l.Width || p.Y >= l.Height {
		return true
	}
	return l.walls[l.index(p)]
}

func (l *Layout) index(p game.Position) int {
	return p.Y*l.Width + p.X
}

// Cells returns the number of cells, walls included.
func (l *Layout) Cells() int {
	return l.Width * l.Height
}

// moves lists the directions leading out of p into open cells.
func (l *Layout) moves(p game.Position) []Direction {
	moves := []Direction{}
	for _, d := range Directions {
		if !l.HasWall(d.Apply(p)) {
			moves = append(moves, d)
		}
	}
	return moves
}
