// Package arena implements the quadtree node store: a hash-consing table
// that assigns a dense, comparable handle to every structurally unique
// node, and a bump-allocated backing slice that owns the node records
// those handles index into.
//
// The allocation idiom (dense uint32 handle, grow-by-doubling backing
// slice, explicit exhaustion error rather than silent wraparound) follows
// the bump-arena style used for the node store this package's source was
// adapted from; unlike that store, a HashLife arena is single-version and
// monotonic, so there is no epoch/version indirection here (see
// DESIGN.md).
package arena

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/billyrieger/hashlife/internal/tile"
)

// ErrHandleExhausted is returned by Intern* when the arena cannot allocate
// another NodeId without overflowing its uint32 index space.
var ErrHandleExhausted = errors.New("arena: node handle space exhausted")

// ErrLevelMismatch is returned by InternBranch when the four children do
// not share a single level one less than the branch being built.
var ErrLevelMismatch = errors.New("arena: branch children have mismatched levels")

// NodeId is an opaque, dense handle into an Arena. The zero value refers
// to no node; Arena reserves index 0 so a zero NodeId can serve as a
// "missing" sentinel without colliding with a real node.
type NodeId uint32

// LeafLevel is the level of every leaf node (an 8x8 Tile8).
const LeafLevel = 3

// MaxLevel bounds how large a branch's level may grow; it keeps a level-ℓ
// square's half-side (2^(ℓ-1)) representable as a positive int64 so root
// coordinates never overflow, per spec.md's [-2^63, 2^63) addressable
// range.
const MaxLevel = 63

// Node is either a leaf wrapping one Tile8 or a branch with four
// same-level children. Level distinguishes the two (LeafLevel for a
// leaf); only the matching fields are meaningful.
type Node struct {
	Level      uint8
	Tile       tile.Tile8 // leaf only
	NW, NE     NodeId     // branch only
	SW, SE     NodeId     // branch only
	Population uint64
}

// IsLeaf reports whether n is a leaf (level == LeafLevel).
func (n Node) IsLeaf() bool { return n.Level == LeafLevel }

type leafKey tile.Tile8

type branchKey struct {
	level  uint8
	nw, ne NodeId
	sw, se NodeId
}

// Arena owns all node storage for one HashLife session and hash-conses
// every node interned into it: structurally identical nodes always
// resolve to the same NodeId.
type Arena struct {
	nodes []Node

	leaves   map[leafKey]NodeId
	branches map[branchKey]NodeId

	emptyByLevel []NodeId

	log *zap.Logger
}

// New creates an empty Arena. A nil logger defaults to zap.NewNop(), the
// same nil-safe convention used throughout this module's engine packages.
func New(logger *zap.Logger) *Arena {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Arena{
		// index 0 is reserved so the zero NodeId means "no node".
		nodes:    make([]Node, 1, 1024),
		leaves:   make(map[leafKey]NodeId, 1024),
		branches: make(map[branchKey]NodeId, 1024),
		log:      logger,
	}
	return a
}

// Get returns a read-only view of the node id refers to. It panics if id
// is out of range, since every NodeId handed to a caller was produced by
// this arena and should never be stale.
func (a *Arena) Get(id NodeId) Node {
	return a.nodes[id]
}

// Level returns the level of the node id refers to.
func (a *Arena) Level(id NodeId) uint8 { return a.nodes[id].Level }

// Population returns the live-cell count beneath id.
func (a *Arena) Population(id NodeId) uint64 { return a.nodes[id].Population }

// Len returns the number of distinct nodes currently interned, including
// the reserved zero slot.
func (a *Arena) Len() int { return len(a.nodes) }

func (a *Arena) alloc(n Node) (NodeId, error) {
	if len(a.nodes) >= math.MaxUint32-1 {
		return 0, ErrHandleExhausted
	}
	id := NodeId(len(a.nodes))
	a.nodes = append(a.nodes, n)
	if len(a.nodes)%(1<<16) == 0 {
		a.log.Debug("arena growth", zap.Int("nodes", len(a.nodes)))
	}
	return id, nil
}

// InternLeaf returns the NodeId for t, allocating a new leaf node only if
// an equal tile has never been interned before.
func (a *Arena) InternLeaf(t tile.Tile8) (NodeId, error) {
	key := leafKey(t)
	if id, ok := a.leaves[key]; ok {
		return id, nil
	}
	id, err := a.alloc(Node{
		Level:      LeafLevel,
		Tile:       t,
		Population: uint64(t.Population()),
	})
	if err != nil {
		return 0, err
	}
	a.leaves[key] = id
	return id, nil
}

// InternBranch returns the NodeId for a branch with the given four
// children, allocating a new branch only if that exact (level, nw, ne,
// sw, se) combination has never been interned before. All four children
// must share the same level, one less than the branch's own level.
func (a *Arena) InternBranch(nw, ne, sw, se NodeId) (NodeId, error) {
	childLevel := a.nodes[nw].Level
	if a.nodes[ne].Level != childLevel || a.nodes[sw].Level != childLevel || a.nodes[se].Level != childLevel {
		return 0, ErrLevelMismatch
	}
	level := childLevel + 1
	key := branchKey{level: level, nw: nw, ne: ne, sw: sw, se: se}
	if id, ok := a.branches[key]; ok {
		return id, nil
	}
	pop := a.nodes[nw].Population + a.nodes[ne].Population + a.nodes[sw].Population + a.nodes[se].Population
	id, err := a.alloc(Node{
		Level:      level,
		NW:         nw,
		NE:         ne,
		SW:         sw,
		SE:         se,
		Population: pop,
	})
	if err != nil {
		return 0, err
	}
	a.branches[key] = id
	return id, nil
}

// Empty returns the canonical empty node at the given level, computing
// and interning it on first request for that level (and, recursively,
// every level below it).
func (a *Arena) Empty(level uint8) (NodeId, error) {
	if int(level) < len(a.emptyByLevel) && a.emptyByLevel[level] != 0 {
		return a.emptyByLevel[level], nil
	}
	var id NodeId
	var err error
	if level == LeafLevel {
		id, err = a.InternLeaf(tile.Empty)
	} else {
		var child NodeId
		child, err = a.Empty(level - 1)
		if err != nil {
			return 0, err
		}
		id, err = a.InternBranch(child, child, child, child)
	}
	if err != nil {
		return 0, err
	}
	for int(level) >= len(a.emptyByLevel) {
		a.emptyByLevel = append(a.emptyByLevel, 0)
	}
	a.emptyByLevel[level] = id
	return id, nil
}
