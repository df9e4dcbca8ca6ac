package macrocell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRejectsMissingHeader(t *testing.T) {
	_, err := Parse([]byte("*\n"))
	require.Error(t, err)
	merr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, 1, merr.Line)
}

func TestParseSingleLeaf(t *testing.T) {
	const doc = "[M2]\n*\n"
	cells, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, []Cell{{X: 0, Y: 0}}, cells)
}

func TestParseEmptyDocumentHasNoRoot(t *testing.T) {
	const doc = "[M2]\n"
	cells, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Nil(t, cells)
}

func TestParseInteriorNodeOffsetsChildren(t *testing.T) {
	const doc = "[M2]\n" +
		"*\n" +
		".$.$.$.$.$.$.$.......*\n" +
		"4 1 0 0 2\n"

	cells, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.ElementsMatch(t, []Cell{{X: 0, Y: 0}, {X: 15, Y: 15}}, cells)
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	const doc = "[M2]\n#comment\n\n*\n"
	cells, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, []Cell{{X: 0, Y: 0}}, cells)
}
