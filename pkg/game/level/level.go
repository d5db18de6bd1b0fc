// Package level holds the static level data: the stair graph between rooms and the
// layout templates rooms are built from. Both are embedded YAML documents.
package level

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"stonesnspells/pkg/engine/physics"
	"stonesnspells/pkg/game/entities"
)

//go:embed graph.yaml
var graphYAML []byte

//go:embed rooms.yaml
var roomsYAML []byte

// Grid divisions used by layout cells.
const (
	GridColumns = 16
	GridRows    = 12
)

// Fraction is a position written as "num/den" of the room size.
type Fraction struct {
	Num, Den int
}

// UnmarshalYAML parses "num/den".
func (f *Fraction) UnmarshalYAML(value *yaml.Node) error {
	num, den, ok := strings.Cut(value.Value, "/")
	if !ok {
		return fmt.Errorf("line %d: fraction %q is not num/den", value.Line, value.Value)
	}
	var err error
	if f.Num, err = strconv.Atoi(strings.TrimSpace(num)); err != nil {
		return fmt.Errorf("line %d: fraction %q: %w", value.Line, value.Value, err)
	}
	if f.Den, err = strconv.Atoi(strings.TrimSpace(den)); err != nil {
		return fmt.Errorf("line %d: fraction %q: %w", value.Line, value.Value, err)
	}
	if f.Den == 0 {
		return fmt.Errorf("line %d: fraction %q has a zero denominator", value.Line, value.Value)
	}
	return nil
}

// Of returns the fraction of total, truncated like the rest of the pixel maths.
func (f Fraction) Of(total int) int {
	return total * f.Num / f.Den
}

// Cell is one layout grid cell.
type Cell struct {
	X, Y int
}

// Pixels returns the top-left corner of the cell in a width x height room.
func (c Cell) Pixels(width, height int) (x, y int) {
	return width * c.X / GridColumns, height * c.Y / GridRows
}

// CellRange is a block of cells written "x,y" where either side may be "a..b".
type CellRange []Cell

// UnmarshalYAML parses "x,y" with optional inclusive ranges.
func (r *CellRange) UnmarshalYAML(value *yaml.Node) error {
	xs, ys, ok := strings.Cut(value.Value, ",")
	if !ok {
		return fmt.Errorf("line %d: cell %q is not x,y", value.Line, value.Value)
	}
	x0, x1, err := parseSpan(xs)
	if err != nil {
		return fmt.Errorf("line %d: cell %q: %w", value.Line, value.Value, err)
	}
	y0, y1, err := parseSpan(ys)
	if err != nil {
		return fmt.Errorf("line %d: cell %q: %w", value.Line, value.Value, err)
	}
	*r = (*r)[:0]
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			*r = append(*r, Cell{X: x, Y: y})
		}
	}
	return nil
}

func parseSpan(s string) (lo, hi int, err error) {
	a, b, isRange := strings.Cut(strings.TrimSpace(s), "..")
	if lo, err = strconv.Atoi(a); err != nil {
		return 0, 0, err
	}
	if !isRange {
		return lo, lo, nil
	}
	if hi, err = strconv.Atoi(b); err != nil {
		return 0, 0, err
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("range %d..%d is reversed", lo, hi)
	}
	return lo, hi, nil
}

// EnemySpawn places one enemy.
type EnemySpawn struct {
	Kind string   `yaml:"kind"`
	X    Fraction `yaml:"x"`
	Y    Fraction `yaml:"y"`
}

var enemyKinds = map[string]entities.EnemyKind{
	"evil_rock":  entities.EnemyEvilRock,
	"sound_bat":  entities.EnemySoundBat,
	"golem_boss": entities.EnemyGolemBoss,
}

// EnemyKind resolves the spawn's kind name.
func (s EnemySpawn) EnemyKind() (entities.EnemyKind, error) {
	kind, ok := enemyKinds[s.Kind]
	if !ok {
		return 0, fmt.Errorf("unknown enemy kind %q", s.Kind)
	}
	return kind, nil
}

// Template is the layout of one room.
type Template struct {
	Enemies      []EnemySpawn `yaml:"enemies"`
	Obstacles    []CellRange  `yaml:"obstacles"`
	ChestSlots   []CellRange  `yaml:"chest_slots"`
	StairsActive bool         `yaml:"stairs_active"`
	Boss         bool         `yaml:"boss"`
}

// ObstacleCells flattens the obstacle ranges.
func (t Template) ObstacleCells() []Cell {
	return flatten(t.Obstacles)
}

// ChestCells flattens the chest slots. One of them gets the chest, the rest minecarts.
func (t Template) ChestCells() []Cell {
	return flatten(t.ChestSlots)
}

func flatten(ranges []CellRange) []Cell {
	var cells []Cell
	for _, r := range ranges {
		cells = append(cells, r...)
	}
	return cells
}

// Graph is the stair topology between rooms.
type Graph struct {
	Start int                    `yaml:"start"`
	Boss  int                    `yaml:"boss"`
	Rooms map[int]map[string]int `yaml:"rooms"`

	edges map[int]map[physics.Direction]int
}

// Stairs returns the neighbours of a room by direction.
func (g *Graph) Stairs(room int) map[physics.Direction]int {
	return g.edges[room]
}

// RoomIDs returns every room id in ascending order.
func (g *Graph) RoomIDs() []int {
	ids := make([]int, 0, len(g.Rooms))
	for id := range g.Rooms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (g *Graph) resolve() error {
	g.edges = make(map[int]map[physics.Direction]int, len(g.Rooms))
	for id, stairs := range g.Rooms {
		edges := make(map[physics.Direction]int, len(stairs))
		for token, next := range stairs {
			d, err := physics.ParseDirection(token)
			if err != nil {
				return fmt.Errorf("room %d: %w", id, err)
			}
			if _, ok := g.Rooms[next]; !ok {
				return fmt.Errorf("room %d: stairs %s lead to unknown room %d", id, d, next)
			}
			edges[d] = next
		}
		g.edges[id] = edges
	}
	if _, ok := g.Rooms[g.Start]; !ok {
		return fmt.Errorf("start room %d is not in the graph", g.Start)
	}
	if _, ok := g.Rooms[g.Boss]; !ok {
		return fmt.Errorf("boss room %d is not in the graph", g.Boss)
	}
	return nil
}

// Level is the parsed level data.
type Level struct {
	Graph     Graph
	Start     Template
	Boss      Template
	Combat    []string
	Templates map[string]Template
}

type roomsFile struct {
	Start     Template            `yaml:"start"`
	Boss      Template            `yaml:"boss"`
	Combat    []string            `yaml:"combat"`
	Templates map[string]Template `yaml:",inline"`
}

// Load parses the embedded level data.
func Load() (*Level, error) {
	return Parse(graphYAML, roomsYAML)
}

// Parse builds a Level from a graph document and a rooms document.
func Parse(graphDoc, roomsDoc []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(graphDoc, &lvl.Graph); err != nil {
		return nil, fmt.Errorf("parse room graph: %w", err)
	}
	if err := lvl.Graph.resolve(); err != nil {
		return nil, fmt.Errorf("room graph: %w", err)
	}

	var rooms roomsFile
	if err := yaml.Unmarshal(roomsDoc, &rooms); err != nil {
		return nil, fmt.Errorf("parse room templates: %w", err)
	}
	lvl.Start, lvl.Boss, lvl.Combat, lvl.Templates = rooms.Start, rooms.Boss, rooms.Combat, rooms.Templates

	if len(lvl.Combat) == 0 {
		return nil, fmt.Errorf("room templates: no combat layouts listed")
	}
	for _, name := range lvl.Combat {
		if _, ok := lvl.Templates[name]; !ok {
			return nil, fmt.Errorf("room templates: combat layout %q is not defined", name)
		}
	}
	all := append([]Template{lvl.Start, lvl.Boss}, templateValues(lvl.Templates)...)
	for _, t := range all {
		for _, spawn := range t.Enemies {
			if _, err := spawn.EnemyKind(); err != nil {
				return nil, fmt.Errorf("room templates: %w", err)
			}
		}
	}
	return &lvl, nil
}

// CombatTemplate returns the combat layout with the given index into Combat.
func (l *Level) CombatTemplate(i int) Template {
	return l.Templates[l.Combat[i%len(l.Combat)]]
}

func templateValues(m map[string]Template) []Template {
	out := make([]Template, 0, len(m))
	for _, t := range m {
		out = append(out, t)
	}
	return out
}
