package rle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGlider(t *testing.T) {
	const doc = "x = 3, y = 3, rule = B3/S23\n" +
		"bo$2bo$3o!\n"

	p, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, int64(3), p.Width)
	require.Equal(t, int64(3), p.Height)
	require.Equal(t, "B3/S23", p.Rule)
	require.ElementsMatch(t, []Cell{
		{X: 1, Y: 0},
		{X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}, p.Cells)
}

func TestParseRuleSynonym(t *testing.T) {
	const doc = "x = 1, y = 1, rule = 23/3\no!\n"
	p, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, []Cell{{X: 0, Y: 0}}, p.Cells)
}

func TestParseRejectsUnsupportedRule(t *testing.T) {
	const doc = "x = 1, y = 1, rule = B36/S23\no!\n"
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, RuleUnsupported, rerr.Kind)
}

func TestParseRejectsMissingHeader(t *testing.T) {
	_, err := Parse([]byte("bo$2bo$3o!\n"))
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, ParseError, rerr.Kind)
}

func TestParseRejectsUnterminatedPattern(t *testing.T) {
	_, err := Parse([]byte("x = 3, y = 3\nbo$2bo$3o\n"))
	require.Error(t, err)
}

func TestParseSkipsCommentLines(t *testing.T) {
	const doc = "#C a comment\nx = 1, y = 1\n#C another\no!\n"
	p, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, []Cell{{X: 0, Y: 0}}, p.Cells)
}

func TestParseRunLengthCounts(t *testing.T) {
	const doc = "x = 5, y = 1\n5o!\n"
	p, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, p.Cells, 5)
	for i, c := range p.Cells {
		require.Equal(t, Cell{X: int64(i), Y: 0}, c)
	}
}
