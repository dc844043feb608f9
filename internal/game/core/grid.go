package core

import "fmt"

// TerrainFunc assigns terrain to a coordinate while a grid is built
type TerrainFunc func(Coordinate) Terrain

// Grid is a hexagon of tiles within Radius steps of the origin.
// The set of coordinates never changes after NewGrid; only tile contents do.
type Grid struct {
	Radius int
	T      []Tile // ordered by q ascending, then r ascending
	index  map[Coordinate]int
}

// NewGrid builds every tile with cube distance <= radius from the origin.
// A nil terrain function yields an all-plain grid.
func NewGrid(radius int, terrain TerrainFunc) *Grid {
	if radius < 0 {
		radius = 0
	}
	n := 1 + 3*radius*(radius+1)
	g := &Grid{
		Radius: radius,
		T:      make([]Tile, 0, n),
		index:  make(map[Coordinate]int, n),
	}
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			c := Coordinate{Q: q, R: r}
			if c.Length() > radius {
				continue
			}
			t := TerrainPlain
			if terrain != nil {
				t = terrain(c)
			}
			g.index[c] = len(g.T)
			g.T = append(g.T, Tile{
				Coord:   c,
				Terrain: t,
				Owner:   NeutralID,
			})
		}
	}
	return g
}

// Len is the number of tiles
func (g *Grid) Len() int { return len(g.T) }

// Contains reports whether the coordinate is part of the grid
func (g *Grid) Contains(c Coordinate) bool {
	_, ok := g.index[c]
	return ok
}

// Idx returns the tile index for a coordinate, or -1 when outside the grid
func (g *Grid) Idx(c Coordinate) int {
	if i, ok := g.index[c]; ok {
		return i
	}
	return -1
}

// GetTile safely returns a tile pointer if the coordinate is valid, nil otherwise
func (g *Grid) GetTile(c Coordinate) *Tile {
	i, ok := g.index[c]
	if !ok {
		return nil
	}
	return &g.T[i]
}

// Neighbors returns the adjacent coordinates that exist in the grid, in direction order
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	result := make([]Coordinate, 0, 6)
	for _, n := range c.Neighbors() {
		if g.Contains(n) {
			result = append(result, n)
		}
	}
	return result
}

// Distance is the hex metric; it does not require either point to be in the grid
func (g *Grid) Distance(a, b Coordinate) int {
	return a.DistanceTo(b)
}

// Coordinates returns every coordinate in grid order
func (g *Grid) Coordinates() []Coordinate {
	out := make([]Coordinate, len(g.T))
	for i := range g.T {
		out[i] = g.T[i].Coord
	}
	return out
}

// Clone deep-copies the grid. The coordinate index is shared since topology is immutable.
func (g *Grid) Clone() *Grid {
	c := &Grid{Radius: g.Radius, index: g.index, T: make([]Tile, len(g.T))}
	copy(c.T, g.T)
	return c
}

func (g *Grid) String() string {
	return fmt.Sprintf("Grid(radius=%d, tiles=%d)", g.Radius, len(g.T))
}
