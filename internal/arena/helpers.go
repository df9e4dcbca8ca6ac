package arena

import "github.com/billyrieger/hashlife/internal/tile"

// GetBit reads the cell at local coordinate (x, y) relative to id's own
// top-left origin. x and y must be in [0, side) where side = 2^level(id).
func (a *Arena) GetBit(id NodeId, x, y int64) bool {
	n := a.nodes[id]
	if n.IsLeaf() {
		return n.Tile.Get(int(y), int(x))
	}
	half := int64(1) << (n.Level - 1)
	switch {
	case x < half && y < half:
		return a.GetBit(n.NW, x, y)
	case x >= half && y < half:
		return a.GetBit(n.NE, x-half, y)
	case x < half && y >= half:
		return a.GetBit(n.SW, x, y-half)
	default:
		return a.GetBit(n.SE, x-half, y-half)
	}
}

// SetBit returns a node equal to id except the cell at local (x, y)
// takes the given value. It recurses into exactly one child (or flips
// one tile bit at a leaf) and re-interns every node on the path back to
// the root of this subtree.
func (a *Arena) SetBit(id NodeId, x, y int64, alive bool) (NodeId, error) {
	n := a.nodes[id]
	if n.IsLeaf() {
		return a.InternLeaf(n.Tile.Set(int(y), int(x), alive))
	}
	half := int64(1) << (n.Level - 1)
	nw, ne, sw, se := n.NW, n.NE, n.SW, n.SE
	var err error
	switch {
	case x < half && y < half:
		nw, err = a.SetBit(nw, x, y, alive)
	case x >= half && y < half:
		ne, err = a.SetBit(ne, x-half, y, alive)
	case x < half && y >= half:
		sw, err = a.SetBit(sw, x, y-half, alive)
	default:
		se, err = a.SetBit(se, x-half, y-half, alive)
	}
	if err != nil {
		return 0, err
	}
	return a.InternBranch(nw, ne, sw, se)
}

// Center returns the centered level-(ℓ-1) sub-square of a level-ℓ (ℓ≥4)
// node, built from the four innermost grandchildren: the SE grandchild
// of nw, the SW grandchild of ne, the NE grandchild of sw, and the NW
// grandchild of se. This is a pure structural rearrangement: every
// sub-node it touches already exists in the arena.
func (a *Arena) Center(id NodeId) (NodeId, error) {
	n := a.nodes[id]
	nw, ne, sw, se := a.nodes[n.NW], a.nodes[n.NE], a.nodes[n.SW], a.nodes[n.SE]
	if nw.IsLeaf() {
		return a.InternLeaf(tile.CenterOf(nw.Tile, ne.Tile, sw.Tile, se.Tile))
	}
	return a.InternBranch(nw.SE, ne.SW, sw.NE, se.NW)
}

// Expand returns a node one level larger than id whose own Center equals
// id: id's content is surrounded by a ring of emptiness. This is how the
// universe facade grows the root, both to accommodate out-of-bounds
// writes and to give a step() enough headroom.
func (a *Arena) Expand(id NodeId) (NodeId, error) {
	n := a.nodes[id]
	if n.IsLeaf() {
		nwChild, err := a.InternLeaf(n.Tile.TrimNW().ShiftBy(4, 4))
		if err != nil {
			return 0, err
		}
		neChild, err := a.InternLeaf(n.Tile.TrimNE().ShiftBy(-4, 4))
		if err != nil {
			return 0, err
		}
		swChild, err := a.InternLeaf(n.Tile.TrimSW().ShiftBy(4, -4))
		if err != nil {
			return 0, err
		}
		seChild, err := a.InternLeaf(n.Tile.TrimSE().ShiftBy(-4, -4))
		if err != nil {
			return 0, err
		}
		return a.InternBranch(nwChild, neChild, swChild, seChild)
	}

	empty, err := a.Empty(n.Level - 1)
	if err != nil {
		return 0, err
	}
	nwChild, err := a.InternBranch(empty, empty, empty, n.NW)
	if err != nil {
		return 0, err
	}
	neChild, err := a.InternBranch(empty, empty, n.NE, empty)
	if err != nil {
		return 0, err
	}
	swChild, err := a.InternBranch(empty, n.SW, empty, empty)
	if err != nil {
		return 0, err
	}
	seChild, err := a.InternBranch(n.SE, empty, empty, empty)
	if err != nil {
		return 0, err
	}
	return a.InternBranch(nwChild, neChild, swChild, seChild)
}

// BBox is an inclusive, local-coordinate bounding box of a node's live
// cells.
type BBox struct {
	XMin, YMin, XMax, YMax int64
}

// Translate shifts b by (dx, dy).
func (b BBox) Translate(dx, dy int64) BBox {
	return BBox{b.XMin + dx, b.YMin + dy, b.XMax + dx, b.YMax + dy}
}

func (b BBox) union(other BBox) BBox {
	if other.XMin < b.XMin {
		b.XMin = other.XMin
	}
	if other.XMax > b.XMax {
		b.XMax = other.XMax
	}
	if other.YMin < b.YMin {
		b.YMin = other.YMin
	}
	if other.YMax > b.YMax {
		b.YMax = other.YMax
	}
	return b
}

// BoundingBox reports the tight bounding box of id's live cells in its
// own local coordinate frame, or ok == false if id is empty.
func (a *Arena) BoundingBox(id NodeId) (box BBox, ok bool) {
	n := a.nodes[id]
	if n.Population == 0 {
		return BBox{}, false
	}
	if n.IsLeaf() {
		for r := 0; r < 8; r++ {
			for c := 0; c < 8; c++ {
				if !n.Tile.Get(r, c) {
					continue
				}
				cell := BBox{int64(c), int64(r), int64(c), int64(r)}
				if !ok {
					box, ok = cell, true
				} else {
					box = box.union(cell)
				}
			}
		}
		return box, ok
	}
	half := int64(1) << (n.Level - 1)
	offsets := [4]struct {
		child  NodeId
		dx, dy int64
	}{
		{n.NW, 0, 0},
		{n.NE, half, 0},
		{n.SW, 0, half},
		{n.SE, half, half},
	}
	for _, o := range offsets {
		cb, cok := a.BoundingBox(o.child)
		if !cok {
			continue
		}
		cb = cb.Translate(o.dx, o.dy)
		if !ok {
			box, ok = cb, true
		} else {
			box = box.union(cb)
		}
	}
	return box, ok
}
