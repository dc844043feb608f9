package core

import "slices"

// ReachableSet maps each reachable coordinate to the cheapest movement cost of entering it
type ReachableSet map[Coordinate]int

// Contains reports whether c can be reached
func (rs ReachableSet) Contains(c Coordinate) bool {
	_, ok := rs[c]
	return ok
}

// Coordinates returns the reachable coordinates sorted by q then r
func (rs ReachableSet) Coordinates() []Coordinate {
	out := make([]Coordinate, 0, len(rs))
	for c := range rs {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCoord)
	return out
}

func compareCoord(a, b Coordinate) int {
	if a.Q != b.Q {
		return a.Q - b.Q
	}
	return a.R - b.R
}

// PathFinder answers movement queries over a grid's terrain.
// Occupancy is ignored; callers decide what may stand where.
type PathFinder struct {
	grid *Grid
}

// NewPathFinder creates a path finder bound to a grid
func NewPathFinder(grid *Grid) *PathFinder {
	return &PathFinder{grid: grid}
}

func (pf *PathFinder) enterable(c Coordinate) bool {
	t := pf.grid.GetTile(c)
	return t != nil && t.IsPassable()
}

// ReachableTiles returns every coordinate that can be entered from start without
// the summed terrain cost exceeding budget. The start itself is not included.
func (pf *PathFinder) ReachableTiles(start Coordinate, budget int) ReachableSet {
	result := make(ReachableSet)
	if budget <= 0 || !pf.grid.Contains(start) {
		return result
	}

	best := map[Coordinate]int{start: 0}
	queue := []Coordinate{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		spent := best[cur]

		for _, n := range pf.grid.Neighbors(cur) {
			if !pf.enterable(n) {
				continue
			}
			cost := spent + pf.grid.GetTile(n).Terrain.MoveCost()
			if cost > budget {
				continue
			}
			if prev, seen := best[n]; seen && prev <= cost {
				continue
			}
			best[n] = cost
			queue = append(queue, n)
		}
	}

	delete(best, start)
	for c, cost := range best {
		result[c] = cost
	}
	return result
}

// FindPath runs a breadth-first search that counts steps only and gives up
// beyond maxSteps. The result runs from the first step after start up to and
// including end; it is empty when end cannot be reached within the bound.
func (pf *PathFinder) FindPath(start, end Coordinate, maxSteps int) []Coordinate {
	if start == end || maxSteps <= 0 {
		return nil
	}
	if !pf.grid.Contains(start) || !pf.enterable(end) {
		return nil
	}

	parent := map[Coordinate]Coordinate{start: start}
	depth := map[Coordinate]int{start: 0}
	queue := []Coordinate{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if depth[cur] >= maxSteps {
			continue
		}
		for _, n := range pf.grid.Neighbors(cur) {
			if _, seen := parent[n]; seen || !pf.enterable(n) {
				continue
			}
			parent[n] = cur
			depth[n] = depth[cur] + 1
			if n == end {
				return unwind(parent, start, end)
			}
			queue = append(queue, n)
		}
	}
	return nil
}

func unwind(parent map[Coordinate]Coordinate, start, end Coordinate) []Coordinate {
	var path []Coordinate
	for c := end; c != start; c = parent[c] {
		path = append(path, c)
	}
	slices.Reverse(path)
	return path
}
