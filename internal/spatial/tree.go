package spatial

import (
	"sort"

	"github.com/golang/geo/r3"
)

// Item is anything with a bounding box.
type Item interface {
	Bounds() Box
}

// Options tune hierarchy construction.
type Options struct {
	// MaxDepth caps the number of levels below the root. Zero means unbounded.
	MaxDepth int
	// LeafSize is the largest item count a node may hold without being split.
	// Values below one are treated as one.
	LeafSize int
}

// Hit is one ray intersection result.
type Hit[T Item] struct {
	Item     T
	Distance float64
}

type node struct {
	bounds Box
	left   *node
	right  *node
	// items holds indices into Tree.items; only leaves carry items.
	items []int
}

func (n *node) leaf() bool {
	return n.left == nil && n.right == nil
}

// Tree is an immutable bounding-volume hierarchy.
type Tree[T Item] struct {
	root   *node
	items  []T
	boxes  []Box
	order  []int
	leaves int
	depth  int
}

// Build constructs a hierarchy over a private copy of items. Each internal
// node splits its items at the median of their box centres along the axis on
// which those centres spread widest; equal centres keep their input order, so
// the result depends only on the order of items.
func Build[T Item](items []T, opts Options) *Tree[T] {
	if opts.LeafSize < 1 {
		opts.LeafSize = 1
	}
	t := &Tree[T]{
		items: append([]T(nil), items...),
		boxes: make([]Box, len(items)),
	}
	if len(t.items) == 0 {
		return t
	}

	idx := make([]int, len(t.items))
	centers := make([]r3.Vector, len(t.items))
	for i, item := range t.items {
		t.boxes[i] = item.Bounds()
		centers[i] = t.boxes[i].Center()
		idx[i] = i
	}

	b := builder[T]{tree: t, centers: centers, opts: opts}
	t.root = b.build(idx, 0)
	t.order = make([]int, 0, len(t.items))
	t.walk(t.root, func(n *node) { t.order = append(t.order, n.items...) })
	return t
}

type builder[T Item] struct {
	tree    *Tree[T]
	centers []r3.Vector
	opts    Options
}

func (b *builder[T]) build(idx []int, depth int) *node {
	n := &node{bounds: b.tree.boxes[idx[0]]}
	for _, i := range idx[1:] {
		n.bounds = n.bounds.Union(b.tree.boxes[i])
	}
	if depth > b.tree.depth {
		b.tree.depth = depth
	}

	if len(idx) <= b.opts.LeafSize || (b.opts.MaxDepth > 0 && depth >= b.opts.MaxDepth) {
		n.items = append([]int(nil), idx...)
		b.tree.leaves++
		return n
	}

	axis := b.splitAxis(idx)
	sorted := append([]int(nil), idx...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci := component(b.centers[sorted[i]], axis)
		cj := component(b.centers[sorted[j]], axis)
		if ci != cj {
			return ci < cj
		}
		return sorted[i] < sorted[j]
	})
	mid := len(sorted) / 2
	n.left = b.build(sorted[:mid], depth+1)
	n.right = b.build(sorted[mid:], depth+1)
	return n
}

func (b *builder[T]) splitAxis(idx []int) int {
	lo := b.centers[idx[0]]
	hi := lo
	for _, i := range idx[1:] {
		c := b.centers[i]
		lo = r3.Vector{X: min(lo.X, c.X), Y: min(lo.Y, c.Y), Z: min(lo.Z, c.Z)}
		hi = r3.Vector{X: max(hi.X, c.X), Y: max(hi.Y, c.Y), Z: max(hi.Z, c.Z)}
	}
	spread := hi.Sub(lo)
	axis := 0
	if spread.Y > spread.X {
		axis = 1
	}
	if spread.Z > component(spread, axis) {
		axis = 2
	}
	return axis
}

func (t *Tree[T]) walk(n *node, visit func(*node)) {
	if n == nil {
		return
	}
	if n.leaf() {
		visit(n)
		return
	}
	t.walk(n.left, visit)
	t.walk(n.right, visit)
}

// Len returns the number of indexed items.
func (t *Tree[T]) Len() int {
	return len(t.items)
}

// Leaves returns the number of leaf nodes.
func (t *Tree[T]) Leaves() int {
	return t.leaves
}

// Depth returns the deepest leaf level; a single-leaf tree has depth zero.
func (t *Tree[T]) Depth() int {
	return t.depth
}

// Bounds returns the box enclosing every item. ok is false for an empty tree.
func (t *Tree[T]) Bounds() (Box, bool) {
	if t.root == nil {
		return Box{}, false
	}
	return t.root.bounds, true
}

// Items returns every indexed item in leaf order.
func (t *Tree[T]) Items() []T {
	out := make([]T, 0, len(t.order))
	for _, i := range t.order {
		out = append(out, t.items[i])
	}
	return out
}

// LeafItems returns the items of each leaf, in leaf order.
func (t *Tree[T]) LeafItems() [][]T {
	out := make([][]T, 0, t.leaves)
	t.walk(t.root, func(n *node) {
		group := make([]T, 0, len(n.items))
		for _, i := range n.items {
			group = append(group, t.items[i])
		}
		out = append(out, group)
	})
	return out
}

// ItemsAt returns the items whose box contains p.
func (t *Tree[T]) ItemsAt(p r3.Vector) []T {
	var out []T
	t.search(t.root, func(b Box) bool { return b.Contains(p) }, func(i int) {
		out = append(out, t.items[i])
	})
	return out
}

// Overlapping returns the items whose box overlaps q.
func (t *Tree[T]) Overlapping(q Box) []T {
	var out []T
	t.search(t.root, q.Overlaps, func(i int) {
		out = append(out, t.items[i])
	})
	return out
}

// Raycast returns every item crossed by the ray origin + t*dir, t >= 0,
// nearest first. Items at equal distance keep leaf order.
func (t *Tree[T]) Raycast(origin, dir r3.Vector) []Hit[T] {
	var hits []Hit[T]
	t.search(t.root, func(b Box) bool {
		_, ok := b.IntersectRay(origin, dir)
		return ok
	}, func(i int) {
		if d, ok := t.boxes[i].IntersectRay(origin, dir); ok {
			hits = append(hits, Hit[T]{Item: t.items[i], Distance: d})
		}
	})
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

func (t *Tree[T]) search(n *node, accept func(Box) bool, emit func(int)) {
	if n == nil || !accept(n.bounds) {
		return
	}
	if n.leaf() {
		for _, i := range n.items {
			if accept(t.boxes[i]) {
				emit(i)
			}
		}
		return
	}
	t.search(n.left, accept, emit)
	t.search(n.right, accept, emit)
}
