// Package spatial provides a quadtree for broad-phase queries over
// sprite bounds. It reports candidates whose stored rects intersect a
// query area; exact overlap tests stay with the caller.
package spatial

import (
	"github.com/lixenwraith/glint/vmath"
)

const (
	// DefaultMaxDepth bounds subdivision when the constructor gets zero
	DefaultMaxDepth = 6

	// DefaultMaxItems is the per-node load that triggers a split
	DefaultMaxItems = 8
)

type entry struct {
	item   any
	bounds vmath.Rect
}

type node struct {
	bounds vmath.Rect
	depth  int
	items  []entry
	child  [4]*node
}

// Quadtree indexes items by rect. Not safe for concurrent use; rebuild
// or Reset between frames when bounds move.
type Quadtree struct {
	root     *node
	maxDepth int
	maxItems int
	count    int
}

// NewQuadtree covers bounds; maxDepth and maxItems fall back to the
// defaults when non-positive
func NewQuadtree(bounds vmath.Rect, maxDepth, maxItems int) *Quadtree {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &Quadtree{
		root:     &node{bounds: bounds},
		maxDepth: maxDepth,
		maxItems: maxItems,
	}
}

// Insert stores item under bounds. Items straddling quadrant seams live
// at the straddled node; items outside the tree bounds live at the root.
func (q *Quadtree) Insert(item any, bounds vmath.Rect) {
	q.root.insert(entry{item: item, bounds: bounds}, q.maxDepth, q.maxItems)
	q.count++
}

// Query appends every stored item whose rect intersects area
func (q *Quadtree) Query(area vmath.Rect) []any {
	var out []any
	q.root.query(area, &out)
	return out
}

// Len reports how many items the tree holds
func (q *Quadtree) Len() int {
	return q.count
}

// Reset empties the tree for the next frame, keeping the root bucket's
// storage
func (q *Quadtree) Reset() {
	q.root.items = q.root.items[:0]
	q.root.child = [4]*node{}
	q.count = 0
}

func (n *node) insert(e entry, maxDepth, maxItems int) {
	if n.child[0] != nil {
		if c := n.childContaining(e.bounds); c != nil {
			c.insert(e, maxDepth, maxItems)
			return
		}
		n.items = append(n.items, e)
		return
	}

	n.items = append(n.items, e)
	if len(n.items) > maxItems && n.depth < maxDepth {
		n.subdivide(maxDepth, maxItems)
	}
}

func (n *node) subdivide(maxDepth, maxItems int) {
	cx := (n.bounds.X0 + n.bounds.X1) / 2
	cy := (n.bounds.Y0 + n.bounds.Y1) / 2
	quads := [4]vmath.Rect{
		{X0: n.bounds.X0, Y0: n.bounds.Y0, X1: cx, Y1: cy},
		{X0: cx, Y0: n.bounds.Y0, X1: n.bounds.X1, Y1: cy},
		{X0: n.bounds.X0, Y0: cy, X1: cx, Y1: n.bounds.Y1},
		{X0: cx, Y0: cy, X1: n.bounds.X1, Y1: n.bounds.Y1},
	}
	for i := range quads {
		n.child[i] = &node{bounds: quads[i], depth: n.depth + 1}
	}

	kept := n.items[:0]
	for _, e := range n.items {
		if c := n.childContaining(e.bounds); c != nil {
			c.insert(e, maxDepth, maxItems)
		} else {
			kept = append(kept, e)
		}
	}
	n.items = kept
}

func (n *node) childContaining(b vmath.Rect) *node {
	for _, c := range n.child {
		if c != nil && c.bounds.ContainsRect(b) {
			return c
		}
	}
	return nil
}

func (n *node) query(area vmath.Rect, out *[]any) {
	for _, e := range n.items {
		if e.bounds.Intersects(area) {
			*out = append(*out, e.item)
		}
	}
	for _, c := range n.child {
		if c != nil && c.bounds.Intersects(area) {
			c.query(area, out)
		}
	}
}
