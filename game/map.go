package game

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

const (
	wallSymbol    = '%'
	itemSymbol    = '.'
	powerUpSymbol = 'o'
	seekerSymbol  = 'P'
	chaserSymbol  = 'G'
	emptySymbol   = ' '
)

// Layout is the static part of a game: walls and starting positions. It is
// shared by every state derived from it and never modified after parsing.
type Layout struct {
	Width        int
	Height       int
	Walls        []bool // Indexed by y*Width+x
	Items        []Position
	PowerUps     []Position
	SeekerStart  Position
	ChaserStarts []Position
}

// ParseLayout builds a layout from rows of symbols, top row first.
func ParseLayout(rows []string) (*Layout, error) {
	rows = trimBlankRows(rows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout is empty")
	}

	l := &Layout{
		Width:  len(rows[0]),
		Height: len(rows),
	}
	l.Walls = make([]bool, l.Width*l.Height)

	seekers := 0
	for y, row := range rows {
		if len(row) != l.Width {
			return nil, fmt.Errorf("layout row %d has width %d, expected %d", y, len(row), l.Width)
		}
		for x, symbol := range row {
			p := Position{X: x, Y: y}
			switch symbol {
			case wallSymbol:
				l.Walls[l.index(p)] = true
			case itemSymbol:
				l.Items = append(l.Items, p)
			case powerUpSymbol:
				l.PowerUps = append(l.PowerUps, p)
			case seekerSymbol:
				l.SeekerStart = p
				seekers++
			case chaserSymbol:
				l.ChaserStarts = append(l.ChaserStarts, p)
			case emptySymbol:
			default:
				return nil, fmt.Errorf("layout row %d has unknown symbol %q at column %d", y, symbol, x)
			}
		}
	}

	if seekers != 1 {
		return nil, fmt.Errorf("layout must contain exactly one seeker, found %d", seekers)
	}
	return l, nil
}

// LoadLayout reads a layout file from disk.
func LoadLayout(path string) (*Layout, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	l, err := ParseLayout(strings.Split(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return l, nil
}

// CreateLayout returns one of the built-in layouts by name.
func CreateLayout(name string) (*Layout, error) {
	rows, ok := builtinLayouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (available: %s)", name, strings.Join(LayoutNames(), ", "))
	}
	return ParseLayout(rows)
}

// LayoutNames lists the built-in layouts in alphabetical order.
func LayoutNames() []string {
	names := make([]string, 0, len(builtinLayouts))
	for name := range builtinLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsWall reports whether p is a wall. Positions off the grid count as walls.
func (l *Layout) IsWall(p Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= l.Width || p.Y >= l.Height {
		return true
	}
	return l.Walls[l.index(p)]
}

func (l *Layout) index(p Position) int {
	return p.Y*l.Width + p.X
}

func trimBlankRows(rows []string) []string {
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

var builtinLayouts = map[string][]string{
	"open": {
		"%%%%%%%%%%",
		"%P.......%",
		"%.%%.%%..%",
		"%....o..G%",
		"%%%%%%%%%%",
	},
	"small": {
		"%%%%%%%%%%%%%%%%%%%%",
		"%......%G  G%......%",
		"%.%%...%%  %%...%%.%",
		"%.%o.%........%.o%.%",
		"%.%%.%.%%%%%%.%.%%.%",
		"%........P.........%",
		"%%%%%%%%%%%%%%%%%%%%",
	},
	// Every route from the seeker to an item passes a chaser.
	"trapped": {
		"%%%%%%%%",
		"%  P  G%",
		"%G%%%%.%",
		"%.    .%",
		"%%%%%%%%",
	},
	"minimax": {
		"%%%%%%%%%",
		"%.P    G%",
		"%.%%%%%.%",
		"%.      %",
		"%G     .%",
		"%%%%%%%%%",
	},
	"capsule": {
		"%%%%%%%",
		"%P.o.G%",
		"%.%%%.%",
		"%.....%",
		"%%%%%%%",
	},
}
