package canvas

import "pixl/core"

// FillArea repaints the 4-connected region of same-colored cells containing
// (x, y) with col and returns the number of cells changed.
//
// The target color is read once from the seed before the traversal starts;
// neighbours are always compared against it, never against cells the fill has
// already repainted. A seed outside the canvas, or a fill color equal to the
// seed's color, changes nothing.
func (c *Canvas) FillArea(x, y int, col core.Color) int {
	if !c.inBounds(x, y) {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	target := c.grid[y*c.width+x]
	if target == col {
		return 0
	}

	visited := newBitset(len(c.grid))
	queue := []core.Point{{X: x, Y: y}}
	filled := 0

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		i := p.Y*c.width + p.X
		if visited.has(i) {
			continue
		}
		visited.set(i)

		if c.grid[i] != target {
			continue
		}
		c.grid[i] = col
		filled++

		for _, d := range core.Directions {
			n := p.Add(d.Delta())
			if c.inBounds(n.X, n.Y) && !visited.has(n.Y*c.width+n.X) {
				queue = append(queue, n)
			}
		}
	}

	return filled
}

// bitset tracks visited cells during a fill.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int) {
	b[i/64] |= 1 << (uint(i) % 64)
}

func (b bitset) has(i int) bool {
	return b[i/64]&(1<<(uint(i)%64)) != 0
}
