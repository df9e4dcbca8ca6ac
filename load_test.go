package hashlife

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromRLELoadsGlider(t *testing.T) {
	const doc = "x = 3, y = 3, rule = B3/S23\nbo$2bo$3o!\n"
	u, err := FromRLE([]byte(doc), nil)
	require.NoError(t, err)
	require.Equal(t, int64(5), u.Population().Int64())

	box, ok := u.BoundingBox()
	require.True(t, ok)
	require.Equal(t, BBox{XMin: 0, YMin: 0, XMax: 2, YMax: 2}, box)
}

func TestFromRLEWrapsParseErrors(t *testing.T) {
	_, err := FromRLE([]byte("not an rle document"), nil)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, ParseError, loadErr.Kind)
}

func TestFromRLEWrapsRuleErrors(t *testing.T) {
	const doc = "x = 1, y = 1, rule = B36/S23\no!\n"
	_, err := FromRLE([]byte(doc), nil)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, RuleUnsupported, loadErr.Kind)
}

func TestFromMacrocellLoadsSingleCell(t *testing.T) {
	const doc = "[M2]\n*\n"
	u, err := FromMacrocell([]byte(doc), nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), u.Population().Int64())
	require.True(t, u.GetCell(0, 0))
}

func TestFromMacrocellWrapsParseErrors(t *testing.T) {
	_, err := FromMacrocell([]byte("no header"), nil)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, ParseError, loadErr.Kind)
}
