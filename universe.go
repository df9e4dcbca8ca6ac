// Package hashlife is the universe facade: the single entry point that
// owns an arena and evolver and exposes the coordinate-space operations
// (set/get cell, step, population, bounding box) spec.md §4.5/§6
// describes. It plays the role the teacher's StateTree facade played over
// its own tree/arena packages: a small struct wrapping the engine
// packages, never leaking their internal types.
package hashlife

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/billyrieger/hashlife/internal/arena"
	"github.com/billyrieger/hashlife/internal/evolve"
)

// MaxStepLog2 is the largest step exponent SetStepLog2 accepts. Step also
// needs a root of level k+2 or more, which at k = 62 exceeds
// arena.MaxLevel (63), so a Step at that exponent returns ErrStepTooLarge.
const MaxStepLog2 = 62

// Universe is a single Game of Life board backed by a hash-consed
// quadtree. The zero value is not usable; construct with New.
type Universe struct {
	arena  *arena.Arena
	evolve *evolve.Evolver
	log    *zap.Logger

	root       arena.NodeId
	stepLog2   uint8
	generation *big.Int
}

// New creates an empty universe. A nil logger defaults to zap.NewNop().
func New(logger *zap.Logger) (*Universe, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := arena.New(logger)
	root, err := a.Empty(arena.LeafLevel)
	if err != nil {
		return nil, err
	}
	return &Universe{
		arena:      a,
		evolve:     evolve.New(a, logger),
		log:        logger,
		root:       root,
		generation: new(big.Int),
	}, nil
}

// Logger returns the logger this universe was constructed with.
func (u *Universe) Logger() *zap.Logger { return u.log }

// Stats reports engine-internal counters without leaking engine types,
// for internal/telemetry to feed into Prometheus gauges.
type Stats struct {
	NodeCount    int
	CacheEntries int
	Population   *big.Int
	Generation   *big.Int
}

// Stats returns a snapshot of the universe's current counters.
func (u *Universe) Stats() Stats {
	return Stats{
		NodeCount:    u.arena.Len(),
		CacheEntries: u.evolve.Len(),
		Population:   u.Population(),
		Generation:   new(big.Int).Set(u.generation),
	}
}

// half returns 2^(level-1), the root's local center offset, as an int64.
func half(level uint8) int64 { return int64(1) << (level - 1) }

// toLocal maps a global coordinate to the root's local, top-left-origin
// frame.
func (u *Universe) toLocal(x, y int64) (lx, ly int64) {
	h := half(u.arena.Level(u.root))
	return x + h, y + h
}

// growToContain expands the root until its half-side strictly exceeds
// max(|x|, |y|), the condition set_cell needs before it can recurse.
func (u *Universe) growToContain(x, y int64) error {
	abs := x
	if abs < 0 {
		abs = -abs
	}
	if y > abs {
		abs = y
	} else if -y > abs {
		abs = -y
	}
	for half(u.arena.Level(u.root)) <= abs {
		if u.arena.Level(u.root) >= arena.MaxLevel {
			return ErrCoordinateOutOfRange
		}
		expanded, err := u.arena.Expand(u.root)
		if err != nil {
			return err
		}
		u.root = expanded
	}
	return nil
}

// SetCell sets the cell at (x, y) to the given state, growing the root as
// needed.
func (u *Universe) SetCell(x, y int64, alive bool) error {
	if err := u.growToContain(x, y); err != nil {
		return err
	}
	lx, ly := u.toLocal(x, y)
	updated, err := u.arena.SetBit(u.root, lx, ly, alive)
	if err != nil {
		return err
	}
	u.root = updated
	return nil
}

// GetCell reports whether (x, y) is alive. Coordinates outside the
// current root are dead, not an error.
func (u *Universe) GetCell(x, y int64) bool {
	h := half(u.arena.Level(u.root))
	if x < -h || x >= h || y < -h || y >= h {
		return false
	}
	lx, ly := u.toLocal(x, y)
	return u.arena.GetBit(u.root, lx, ly)
}

// SetStepLog2 sets the step exponent k used by Step; k must be in
// [0, MaxStepLog2]. Changing k never invalidates the step cache, since
// cache entries are keyed on (node, j).
func (u *Universe) SetStepLog2(k uint8) error {
	if k > MaxStepLog2 {
		return fmt.Errorf("%w: k=%d exceeds max %d", ErrStepTooLarge, k, MaxStepLog2)
	}
	u.stepLog2 = k
	return nil
}

// StepLog2 returns the current step exponent.
func (u *Universe) StepLog2() uint8 { return u.stepLog2 }

// minPaddingCheckLevel is the lowest root level at which hasEmptyPaddingRing
// can inspect each corner child's inner grandchild without running past a
// leaf; below it, padding is assumed insufficient and the root is grown
// unconditionally, the same way original_source/smeagol/src/life.rs's
// pad() short-circuits on `root.level() < INITIAL_LEVEL` before touching
// any grandchild field.
const minPaddingCheckLevel = arena.LeafLevel + 3

// ensureHeadroom grows the root only while it actually lacks the headroom
// Step needs: its level must be at least k+2 (evolve(root, k)'s own
// requirement), and it must already carry an empty ring of padding around
// its live content (spec.md §4.5). Grounded on life.rs's pad(), which
// loops on exactly these conditions rather than expanding unconditionally
// on every step — an unconditional expand would run the root into
// arena.MaxLevel after a bounded number of Step calls regardless of
// pattern state.
func (u *Universe) ensureHeadroom(k uint8) error {
	for {
		level := u.arena.Level(u.root)
		if int(level) >= int(k)+2 && int(level) >= minPaddingCheckLevel && u.hasEmptyPaddingRing() {
			return nil
		}
		if level >= arena.MaxLevel {
			return ErrStepTooLarge
		}
		expanded, err := u.arena.Expand(u.root)
		if err != nil {
			return err
		}
		u.root = expanded
	}
}

// hasEmptyPaddingRing reports whether each of the root's four corner
// children has all of its population concentrated in its own innermost
// grandchild (the one nearest the universe's center) — equivalently,
// whether at least one ring of cells around the root's live content is
// guaranteed empty. Mirrors life.rs's pad() comparing e.g.
// `root.ne().population() != root.ne().sw().sw().population()`.
func (u *Universe) hasEmptyPaddingRing() bool {
	root := u.arena.Get(u.root)
	nw := u.arena.Get(root.NW)
	ne := u.arena.Get(root.NE)
	sw := u.arena.Get(root.SW)
	se := u.arena.Get(root.SE)

	nwInner := u.arena.Get(nw.SE).SE
	neInner := u.arena.Get(ne.SW).SW
	swInner := u.arena.Get(sw.NE).NE
	seInner := u.arena.Get(se.NW).NW

	return u.arena.Population(root.NW) == u.arena.Population(nwInner) &&
		u.arena.Population(root.NE) == u.arena.Population(neInner) &&
		u.arena.Population(root.SW) == u.arena.Population(swInner) &&
		u.arena.Population(root.SE) == u.arena.Population(seInner)
}

// Step advances the universe by 2^k generations, where k is the current
// step exponent set by SetStepLog2.
func (u *Universe) Step() error {
	k := u.stepLog2
	if err := u.ensureHeadroom(k); err != nil {
		return err
	}
	preStepLevel := u.arena.Level(u.root)

	result, err := u.evolve.Evolve(u.root, k)
	if err != nil {
		return err
	}

	promoted, err := u.arena.Expand(result)
	if err != nil {
		return err
	}
	if u.arena.Level(promoted) != preStepLevel {
		return fmt.Errorf("hashlife: internal error: promoted root level %d, want %d", u.arena.Level(promoted), preStepLevel)
	}
	u.root = promoted
	u.generation.Add(u.generation, new(big.Int).Lsh(big.NewInt(1), uint(k)))
	return nil
}

// Population returns the number of live cells in the universe.
func (u *Universe) Population() *big.Int {
	return new(big.Int).SetUint64(u.arena.Population(u.root))
}

// Generation returns the total number of generations elapsed so far.
func (u *Universe) Generation() *big.Int {
	return new(big.Int).Set(u.generation)
}

// BBox is an inclusive global bounding box.
type BBox struct {
	XMin, YMin, XMax, YMax int64
}

// BoundingBox returns the tight bounding box of the universe's live
// cells in global coordinates, or ok == false if it is empty.
func (u *Universe) BoundingBox() (box BBox, ok bool) {
	local, ok := u.arena.BoundingBox(u.root)
	if !ok {
		return BBox{}, false
	}
	h := half(u.arena.Level(u.root))
	return BBox{
		XMin: local.XMin - h,
		YMin: local.YMin - h,
		XMax: local.XMax - h,
		YMax: local.YMax - h,
	}, true
}
