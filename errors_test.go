package hashlife

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "IoFailure", IoFailure.String())
	require.Equal(t, "ParseError", ParseError.String())
	require.Equal(t, "RuleUnsupported", RuleUnsupported.String())
	require.Equal(t, "CoordinateOutOfRange", CoordinateOutOfRange.String())
	require.Equal(t, "StepTooLarge", StepTooLarge.String())
	require.Contains(t, ErrorKind(99).String(), "99")
}

func TestLoadErrorFormatting(t *testing.T) {
	withLine := &LoadError{Kind: ParseError, Line: 7, Reason: "unexpected token"}
	require.Equal(t, "ParseError at line 7: unexpected token", withLine.Error())

	withoutLine := &LoadError{Kind: IoFailure, Reason: "disk full"}
	require.Equal(t, "IoFailure: disk full", withoutLine.Error())
}

func TestLoadErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := &LoadError{Kind: IoFailure, Reason: "read failed", Err: cause}
	require.ErrorIs(t, e, cause)
	require.Equal(t, cause, errors.Unwrap(e))
}
