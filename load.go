package hashlife

import (
	"go.uber.org/zap"

	"github.com/billyrieger/hashlife/internal/io/macrocell"
	"github.com/billyrieger/hashlife/internal/io/rle"
)

// FromRLE decodes an RLE document and returns a new universe with its
// live cells set, the decoded pattern's top-left corner placed at
// universe coordinate (0, 0). A nil logger defaults to zap.NewNop().
func FromRLE(data []byte, logger *zap.Logger) (*Universe, error) {
	pattern, err := rle.Parse(data)
	if err != nil {
		if perr, ok := err.(*rle.Error); ok {
			kind := ParseError
			if perr.Kind == rle.RuleUnsupported {
				kind = RuleUnsupported
			}
			return nil, &LoadError{Kind: kind, Line: perr.Line, Reason: perr.Reason, Err: err}
		}
		return nil, &LoadError{Kind: ParseError, Reason: err.Error(), Err: err}
	}

	u, err := New(logger)
	if err != nil {
		return nil, err
	}
	for _, c := range pattern.Cells {
		if err := u.SetCell(c.X, c.Y, true); err != nil {
			return nil, &LoadError{Kind: CoordinateOutOfRange, Reason: err.Error(), Err: err}
		}
	}
	return u, nil
}

// FromMacrocell decodes a Golly macrocell document and returns a new
// universe with its live cells set, the root node's top-left corner
// placed at universe coordinate (0, 0). A nil logger defaults to
// zap.NewNop().
func FromMacrocell(data []byte, logger *zap.Logger) (*Universe, error) {
	cells, err := macrocell.Parse(data)
	if err != nil {
		if perr, ok := err.(*macrocell.Error); ok {
			return nil, &LoadError{Kind: ParseError, Line: perr.Line, Reason: perr.Reason, Err: err}
		}
		return nil, &LoadError{Kind: ParseError, Reason: err.Error(), Err: err}
	}

	u, err := New(logger)
	if err != nil {
		return nil, err
	}
	for _, c := range cells {
		if err := u.SetCell(c.X, c.Y, true); err != nil {
			return nil, &LoadError{Kind: CoordinateOutOfRange, Reason: err.Error(), Err: err}
		}
	}
	return u, nil
}
