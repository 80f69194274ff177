package grid

// neighborOffsets lists the 4-directional (row,col) deltas in the fixed
// order up, down, left, right. Path search relies on this exact order
// for deterministic tie-breaking, so it is shared rather than redeclared.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NeighborOffsets returns the 4-directional neighbor deltas in the fixed
// traversal order up, down, left, right.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [4][2]int {
	return neighborOffsets
}

// Regions finds all contiguous groups of free cells under 4-directional
// connectivity. Returns a slice of regions; each region is a slice of
// row-major cell indices in discovery order. The outer slice is ordered
// by each region's first cell in row-major scan order, so the result is
// fully deterministic.
//
// To convert an index back to (row,col), use Coordinate(idx).
//
// Time:   O(n²·4).
// Memory: O(n²) for visited flags and output.
func (g *Grid) Regions() [][]int {
	total := g.side * g.side
	seen := make([]bool, total)
	var regions [][]int

	for row := 0; row < g.side; row++ {
		for col := 0; col < g.side; col++ {
			if !g.Free(row, col) {
				continue // blocked
			}
			i0 := g.Index(row, col)
			if seen[i0] {
				continue
			}
			// BFS to collect the region
			queue := []int{i0}
			seen[i0] = true
			var region []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				region = append(region, u)
				ur, uc := g.Coordinate(u)
				for _, d := range neighborOffsets {
					vr, vc := ur+d[0], uc+d[1]
					if !g.InBounds(vr, vc) || !g.Free(vr, vc) {
						continue
					}
					vi := g.Index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}
