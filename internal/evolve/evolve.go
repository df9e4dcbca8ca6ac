// Package evolve implements the memoized macrocell step: advancing a
// quadtree node by 2^j generations and returning the node's centered
// half at one level down. The recursive structure — nine overlapping
// sub-squares assembled from existing children, a half-step that
// recurses once and a full-step that recurses twice to double the
// advance — mirrors the jump/step split found in the original_source
// evolution code, renamed here to match a single evolve(node, j)
// contract.
package evolve

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/billyrieger/hashlife/internal/arena"
)

// ErrStepOutOfRange is returned when j does not satisfy
// 0 <= j <= level(node)-2, or the node is below the minimum level (4) an
// evolve step can be computed for.
var ErrStepOutOfRange = errors.New("evolve: step exponent out of range for node level")

type cacheKey struct {
	node arena.NodeId
	step uint8
}

// Evolver memoizes evolve(node, j) results over the lifetime of one
// Arena. A node/step pair is only ever computed once; every later request
// for the same pair is a map lookup.
type Evolver struct {
	arena *arena.Arena
	cache map[cacheKey]arena.NodeId
	log   *zap.Logger
}

// New creates an Evolver over a. A nil logger defaults to zap.NewNop().
func New(a *arena.Arena, logger *zap.Logger) *Evolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evolver{
		arena: a,
		cache: make(map[cacheKey]arena.NodeId, 1024),
		log:   logger,
	}
}

// Len reports how many (node, step) results are currently cached.
func (e *Evolver) Len() int { return len(e.cache) }

// Evolve returns the node representing n advanced by 2^j generations,
// one level smaller than n. n must be a branch at level >= 4, and j must
// satisfy 0 <= j <= level(n)-2.
func (e *Evolver) Evolve(n arena.NodeId, j uint8) (arena.NodeId, error) {
	lvl := e.arena.Level(n)
	if lvl < 4 {
		return 0, fmt.Errorf("%w: level %d below minimum 4", ErrStepOutOfRange, lvl)
	}
	if j > lvl-2 {
		return 0, fmt.Errorf("%w: step %d exceeds max %d for level %d", ErrStepOutOfRange, j, lvl-2, lvl)
	}

	key := cacheKey{node: n, step: j}
	if result, ok := e.cache[key]; ok {
		return result, nil
	}

	var result arena.NodeId
	var err error
	if lvl == 4 {
		result, err = e.evolveBase(n, j)
	} else {
		result, err = e.evolveRecursive(n, lvl, j)
	}
	if err != nil {
		return 0, err
	}

	e.cache[key] = result
	if len(e.cache)%(1<<14) == 0 {
		e.log.Debug("evolve cache growth", zap.Int("entries", len(e.cache)))
	}
	return result, nil
}

func (e *Evolver) evolveBase(n arena.NodeId, j uint8) (arena.NodeId, error) {
	node := e.arena.Get(n)
	nw := e.arena.Get(node.NW).Tile
	ne := e.arena.Get(node.NE).Tile
	sw := e.arena.Get(node.SW).Tile
	se := e.arena.Get(node.SE).Tile
	return e.arena.InternLeaf(baseCase(nw, ne, sw, se, j))
}

// subsquares holds the nine overlapping level-(ℓ-1) squares a level-ℓ
// branch is partitioned into: four corners coinciding with n's own
// children, four edges and one center built from pairs and quads of
// n's grandchildren via pure InternBranch calls.
type subsquares struct {
	a, b, c arena.NodeId
	d, e, f arena.NodeId
	g, h, i arena.NodeId
}

func (ev *Evolver) partition(n arena.NodeId) (subsquares, error) {
	node := ev.arena.Get(n)
	nw, ne, sw, se := ev.arena.Get(node.NW), ev.arena.Get(node.NE), ev.arena.Get(node.SW), ev.arena.Get(node.SE)

	var s subsquares
	var err error
	s.a, s.c, s.g, s.i = node.NW, node.NE, node.SW, node.SE

	if s.b, err = ev.arena.InternBranch(nw.NE, ne.NW, nw.SE, ne.SW); err != nil {
		return subsquares{}, err
	}
	if s.d, err = ev.arena.InternBranch(nw.SW, nw.SE, sw.NW, sw.NE); err != nil {
		return subsquares{}, err
	}
	if s.f, err = ev.arena.InternBranch(ne.SW, ne.SE, se.NW, se.NE); err != nil {
		return subsquares{}, err
	}
	if s.h, err = ev.arena.InternBranch(sw.NE, se.NW, sw.SE, se.SW); err != nil {
		return subsquares{}, err
	}
	if s.e, err = ev.arena.Center(n); err != nil {
		return subsquares{}, err
	}
	return s, nil
}

func (ev *Evolver) evolveRecursive(n arena.NodeId, lvl uint8, j uint8) (arena.NodeId, error) {
	sub, err := ev.partition(n)
	if err != nil {
		return 0, err
	}

	if j < lvl-2 {
		return ev.halfStep(sub, j)
	}
	return ev.fullStep(sub, lvl)
}

// halfStep evolves each of the nine sub-squares by j (at most their own
// maximum, lvl-3), then extracts four full squares from the 3x3 grid
// by taking the structural center of each overlapping 2x2 window — no
// further evolution needed, since j left slack in every sub-square's own
// margin.
func (ev *Evolver) halfStep(sub subsquares, j uint8) (arena.NodeId, error) {
	advanced := make(map[arena.NodeId]arena.NodeId, 9)
	for _, id := range []arena.NodeId{sub.a, sub.b, sub.c, sub.d, sub.e, sub.f, sub.g, sub.h, sub.i} {
		if _, ok := advanced[id]; ok {
			continue
		}
		r, err := ev.Evolve(id, j)
		if err != nil {
			return 0, err
		}
		advanced[id] = r
	}

	quad := func(nw, ne, sw, se arena.NodeId) (arena.NodeId, error) {
		branch, err := ev.arena.InternBranch(advanced[nw], advanced[ne], advanced[sw], advanced[se])
		if err != nil {
			return 0, err
		}
		return ev.arena.Center(branch)
	}

	w, err := quad(sub.a, sub.b, sub.d, sub.e)
	if err != nil {
		return 0, err
	}
	x, err := quad(sub.b, sub.c, sub.e, sub.f)
	if err != nil {
		return 0, err
	}
	y, err := quad(sub.d, sub.e, sub.g, sub.h)
	if err != nil {
		return 0, err
	}
	z, err := quad(sub.e, sub.f, sub.h, sub.i)
	if err != nil {
		return 0, err
	}
	return ev.arena.InternBranch(w, x, y, z)
}

// fullStep evolves each of the nine sub-squares by their own maximum step
// (lvl-3), combines the results into four overlapping level-(ℓ-1)
// squares, and evolves each of those by its own maximum step again. Two
// maximal sub-square advances in sequence double to exactly 2^(lvl-2)
// generations, matching what a requested j == lvl-2 owes the caller.
func (ev *Evolver) fullStep(sub subsquares, lvl uint8) (arena.NodeId, error) {
	subMax := lvl - 3

	advanced := make(map[arena.NodeId]arena.NodeId, 9)
	for _, id := range []arena.NodeId{sub.a, sub.b, sub.c, sub.d, sub.e, sub.f, sub.g, sub.h, sub.i} {
		if _, ok := advanced[id]; ok {
			continue
		}
		r, err := ev.Evolve(id, subMax)
		if err != nil {
			return 0, err
		}
		advanced[id] = r
	}

	combine := func(nw, ne, sw, se arena.NodeId) (arena.NodeId, error) {
		return ev.arena.InternBranch(advanced[nw], advanced[ne], advanced[sw], advanced[se])
	}

	w, err := combine(sub.a, sub.b, sub.d, sub.e)
	if err != nil {
		return 0, err
	}
	x, err := combine(sub.b, sub.c, sub.e, sub.f)
	if err != nil {
		return 0, err
	}
	y, err := combine(sub.d, sub.e, sub.g, sub.h)
	if err != nil {
		return 0, err
	}
	z, err := combine(sub.e, sub.f, sub.h, sub.i)
	if err != nil {
		return 0, err
	}

	// w, x, y, z are level lvl-1; each still owes exactly the same subMax
	// advance its own children already received once.
	w2, err := ev.Evolve(w, subMax)
	if err != nil {
		return 0, err
	}
	x2, err := ev.Evolve(x, subMax)
	if err != nil {
		return 0, err
	}
	y2, err := ev.Evolve(y, subMax)
	if err != nil {
		return 0, err
	}
	z2, err := ev.Evolve(z, subMax)
	if err != nil {
		return 0, err
	}
	return ev.arena.InternBranch(w2, x2, y2, z2)
}
