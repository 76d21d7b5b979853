// Package spatial indexes rectangles in an R-tree for hit-testing and for
// narrowing the anchors considered by snapping to those near the agent.
//
// The tree only produces candidates; every query re-checks candidates with
// the exact cmath predicate, so results follow cmath semantics (touching
// rectangles intersect, boundaries are inside) regardless of how the tree
// treats boundaries.
package spatial

import (
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/gogpu/cmath"
)

// R-tree node fan-out.
const (
	minChildren = 25
	maxChildren = 50
)

// minExtent keeps zero-sized rectangles and points representable in the
// tree, which rejects non-positive lengths. Queries are padded by the same
// amount so touching candidates are not lost.
const minExtent = 1e-9

// Index is an R-tree of rectangles identified by insertion order.
// An Index is not safe for concurrent mutation.
type Index struct {
	tree  *rtreego.Rtree
	rects []cmath.Rectangle
}

type entry struct {
	id     int
	bounds rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect { return e.bounds }

// New builds an index over rects. The id of rects[i] is i.
func New(rects ...cmath.Rectangle) *Index {
	x := &Index{tree: rtreego.NewTree(2, minChildren, maxChildren)}
	for _, r := range rects {
		x.Insert(r)
	}
	return x
}

// Insert adds r and returns its id.
func (x *Index) Insert(r cmath.Rectangle) int {
	id := len(x.rects)
	x.rects = append(x.rects, r)
	bb, err := treeRect(r.Positive(), 0)
	if err != nil {
		cmath.Logger().Debug("spatial: rectangle not indexed", "rect", r, "err", err)
		return id
	}
	x.tree.Insert(&entry{id: id, bounds: bb})
	return id
}

// Len returns the number of inserted rectangles.
func (x *Index) Len() int { return len(x.rects) }

// Rect returns the rectangle with the given id.
func (x *Index) Rect(id int) cmath.Rectangle { return x.rects[id] }

// Intersecting returns the ids of rectangles that overlap or touch r, in
// ascending order.
func (x *Index) Intersecting(r cmath.Rectangle) []int {
	return x.search(r, func(o cmath.Rectangle) bool { return o.Positive().Intersects(r) })
}

// Overlapping returns the ids of rectangles that share a positive area
// with r, in ascending order.
func (x *Index) Overlapping(r cmath.Rectangle) []int {
	return x.search(r, func(o cmath.Rectangle) bool {
		_, ok := o.Positive().Intersection(r)
		return ok
	})
}

// At returns the ids of rectangles containing p, in ascending order. The
// last id is the topmost in paint order.
func (x *Index) At(p cmath.Vector2) []int {
	q := cmath.Rect(p.X, p.Y, 0, 0)
	return x.search(q, func(o cmath.Rectangle) bool { return o.Positive().ContainsPoint(p) })
}

// Near returns the ids of rectangles within margin of r on both axes,
// which are the only anchors able to snap to r with threshold margin.
func (x *Index) Near(r cmath.Rectangle, margin float64) []int {
	grown, err := r.Pad(cmath.UniformPadding(max(margin, 0)))
	if err != nil {
		return nil
	}
	return x.search(grown, func(o cmath.Rectangle) bool { return o.Positive().Intersects(grown) })
}

func (x *Index) search(q cmath.Rectangle, keep func(cmath.Rectangle) bool) []int {
	bb, err := treeRect(q.Positive(), minExtent)
	if err != nil {
		return nil
	}
	var ids []int
	for _, s := range x.tree.SearchIntersect(bb) {
		e := s.(*entry)
		if keep(x.rects[e.id]) {
			ids = append(ids, e.id)
		}
	}
	slices.Sort(ids)
	return ids
}

func treeRect(r cmath.Rectangle, pad float64) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{r.X - pad, r.Y - pad},
		[]float64{max(r.Width+2*pad, minExtent), max(r.Height+2*pad, minExtent)},
	)
}
