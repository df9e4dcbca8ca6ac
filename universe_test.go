package hashlife

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billyrieger/hashlife/internal/arena"
)

func TestEmptyUniverse(t *testing.T) {
	u, err := New(nil)
	require.NoError(t, err)

	require.Equal(t, int64(0), u.Population().Int64())
	_, ok := u.BoundingBox()
	require.False(t, ok)

	require.NoError(t, u.Step())
	require.Equal(t, int64(0), u.Population().Int64())
	require.Equal(t, int64(1), u.Generation().Int64())
}

func TestBlockStillLife(t *testing.T) {
	u, err := New(nil)
	require.NoError(t, err)

	block := [][2]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for _, c := range block {
		require.NoError(t, u.SetCell(c[0], c[1], true))
	}

	require.NoError(t, u.SetStepLog2(0))
	for gen := 0; gen < 3; gen++ {
		require.NoError(t, u.Step())
		require.Equal(t, int64(4), u.Population().Int64())
		for _, c := range block {
			require.True(t, u.GetCell(c[0], c[1]), "gen=%d cell=%v", gen, c)
		}
	}
}

// A horizontal blinker flips to vertical and back every generation: a
// classic period-2 oscillator under B3/S23.
func TestBlinkerOscillates(t *testing.T) {
	u, err := New(nil)
	require.NoError(t, err)

	horizontal := [][2]int64{{-1, 0}, {0, 0}, {1, 0}}
	vertical := [][2]int64{{0, -1}, {0, 0}, {0, 1}}
	for _, c := range horizontal {
		require.NoError(t, u.SetCell(c[0], c[1], true))
	}

	require.NoError(t, u.SetStepLog2(0))

	require.NoError(t, u.Step())
	require.Equal(t, int64(3), u.Population().Int64())
	for _, c := range vertical {
		require.True(t, u.GetCell(c[0], c[1]), "after 1 step: %v", c)
	}
	for _, c := range horizontal {
		if c[0] == 0 && c[1] == 0 {
			continue
		}
		require.False(t, u.GetCell(c[0], c[1]), "after 1 step should be dead: %v", c)
	}

	require.NoError(t, u.Step())
	require.Equal(t, int64(3), u.Population().Int64())
	for _, c := range horizontal {
		require.True(t, u.GetCell(c[0], c[1]), "after 2 steps: %v", c)
	}
}

// Hash-consing guarantees that, within one arena, the root handle depends
// only on the final set of live cells, not the order SetCell calls built
// it in.
func TestIdempotentInterningAcrossInsertionOrder(t *testing.T) {
	cells := [][2]int64{{-2, -2}, {3, 1}, {0, 0}, {5, 5}, {-1, 3}}

	forward, err := New(nil)
	require.NoError(t, err)
	for _, c := range cells {
		require.NoError(t, forward.SetCell(c[0], c[1], true))
	}

	// reverse shares forward's arena, so the two root handles are directly
	// comparable.
	emptyRoot, err := forward.arena.Empty(arena.LeafLevel)
	require.NoError(t, err)
	reverse := &Universe{
		arena:      forward.arena,
		evolve:     forward.evolve,
		log:        forward.log,
		root:       emptyRoot,
		generation: new(big.Int),
	}
	for i := len(cells) - 1; i >= 0; i-- {
		c := cells[i]
		require.NoError(t, reverse.SetCell(c[0], c[1], true))
	}

	require.Equal(t, forward.root, reverse.root)
	require.Equal(t, forward.Population().Int64(), reverse.Population().Int64())
	fBox, fOK := forward.BoundingBox()
	rBox, rOK := reverse.BoundingBox()
	require.Equal(t, fOK, rOK)
	require.Equal(t, fBox, rBox)
}

func TestSetStepLog2RejectsTooLarge(t *testing.T) {
	u, err := New(nil)
	require.NoError(t, err)
	err = u.SetStepLog2(MaxStepLog2 + 1)
	require.ErrorIs(t, err, ErrStepTooLarge)
}

func TestGetCellOutsideRootIsDeadNotError(t *testing.T) {
	u, err := New(nil)
	require.NoError(t, err)
	require.False(t, u.GetCell(1<<40, -(1 << 40)))
}
