package core

import (
	"fmt"

	"github.com/mitchelldurbincs/HexConquest/internal/common"
)

// Coordinate is an axial hex position. The third cube axis is S() = -Q-R.
type Coordinate struct {
	Q, R int
}

// NewCoordinate creates a new coordinate with the given q and r values
func NewCoordinate(q, r int) Coordinate {
	return Coordinate{Q: q, R: r}
}

// S returns the implied third cube coordinate
func (c Coordinate) S() int {
	return -c.Q - c.R
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{Q: c.Q + other.Q, R: c.R + other.R}
}

// Sub returns a new coordinate that is the difference between this coordinate and another
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{Q: c.Q - other.Q, R: c.R - other.R}
}

// Scale multiplies both axes by k
func (c Coordinate) Scale(k int) Coordinate {
	return Coordinate{Q: c.Q * k, R: c.R * k}
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Q == other.Q && c.R == other.R
}

// DistanceTo returns the minimum number of hex steps to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) int {
	dq := c.Q - other.Q
	dr := c.R - other.R
	return (common.Abs(dq) + common.Abs(dq+dr) + common.Abs(dr)) / 2
}

// Length is the distance from the origin
func (c Coordinate) Length() int {
	return c.DistanceTo(Coordinate{})
}

// IsAdjacentTo checks if the two coordinates share an edge
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	return c.DistanceTo(other) == 1
}

// Neighbors returns the six adjacent coordinates in direction order.
// Bounds are not checked; see Grid.Neighbors.
func (c Coordinate) Neighbors() [6]Coordinate {
	var result [6]Coordinate
	for i, d := range DirectionVectors {
		result[i] = c.Add(d)
	}
	return result
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// Direction is one of the six hex edges
type Direction int

const (
	East Direction = iota
	NorthEast
	NorthWest
	West
	SouthWest
	SouthEast
)

// DirectionVectors holds the axial delta for each direction, indexed by Direction
var DirectionVectors = [6]Coordinate{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Move returns a new coordinate moved one step in the given direction
func (c Coordinate) Move(direction Direction) Coordinate {
	if direction < East || direction > SouthEast {
		return c
	}
	return c.Add(DirectionVectors[direction])
}

// DirectionTo returns the direction from this coordinate to an adjacent coordinate.
// Returns -1 if the coordinates are not adjacent.
func (c Coordinate) DirectionTo(other Coordinate) Direction {
	delta := other.Sub(c)
	for i, d := range DirectionVectors {
		if d == delta {
			return Direction(i)
		}
	}
	return -1
}

// Distance is the hex metric between two coordinates
func Distance(a, b Coordinate) int {
	return a.DistanceTo(b)
}
