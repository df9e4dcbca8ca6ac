// Package rle implements a hand-written scanner for the Life
// run-length-encoded (RLE) pattern format: a header line, run-length-prefixed
// body tokens, and a terminating '!'. The grammar follows
// original_source/smeagol/src/rle.rs's comment/header/pattern-unit rules;
// that original used the nom parser-combinator crate, which has no
// widely-used Go ecosystem counterpart in this corpus, so the grammar is
// reimplemented as a small hand-written byte scanner instead (see
// DESIGN.md).
package rle

import (
	"bytes"
	"fmt"
	"strconv"
)

// Cell is a live cell's offset from the pattern's top-left corner.
type Cell struct {
	X, Y int64
}

// Pattern is a decoded RLE document: declared dimensions (informational
// only; the scanner does not reject cells outside them) and the set of
// live cells relative to the top-left corner.
type Pattern struct {
	Width, Height int64
	Rule          string
	Cells         []Cell
}

// ErrorKind mirrors the taxonomy hashlife.ErrorKind uses, without an
// import-cycle back to the root package.
type ErrorKind int

const (
	ParseError ErrorKind = iota
	RuleUnsupported
)

// Error reports a scan failure, 1-based line number, and reason.
type Error struct {
	Kind   ErrorKind
	Line   int
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("rle: line %d: %s", e.Line, e.Reason)
}

// recognizedRules lists the rule-string spellings accepted as synonyms
// for Conway's B3/S23, per spec.md §6.
var recognizedRules = map[string]bool{
	"B3/S23": true,
	"23/3":   true,
}

// Parse decodes an RLE document from data.
func Parse(data []byte) (*Pattern, error) {
	lines := bytes.Split(data, []byte("\n"))

	lineNo := 0
	var width, height int64
	var rule string
	headerFound := false

	idx := 0
	for idx < len(lines) {
		line := bytes.TrimRight(lines[idx], "\r")
		lineNo = idx + 1
		idx++
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}
		if trimmed[0] == '#' {
			continue
		}
		w, h, r, err := parseHeader(trimmed)
		if err != nil {
			return nil, &Error{Kind: ParseError, Line: lineNo, Reason: err.Error()}
		}
		width, height, rule = w, h, r
		headerFound = true
		break
	}
	if !headerFound {
		return nil, &Error{Kind: ParseError, Line: lineNo, Reason: "missing 'x = W, y = H' header"}
	}
	if rule != "" && !recognizedRules[rule] {
		return nil, &Error{Kind: RuleUnsupported, Line: lineNo, Reason: fmt.Sprintf("unsupported rule %q", rule)}
	}

	var body bytes.Buffer
	for idx < len(lines) {
		trimmed := bytes.TrimSpace(lines[idx])
		idx++
		if len(trimmed) > 0 && trimmed[0] == '#' {
			continue
		}
		body.Write(trimmed)
	}

	cells, err := scanBody(body.Bytes())
	if err != nil {
		return nil, &Error{Kind: ParseError, Line: lineNo, Reason: err.Error()}
	}

	return &Pattern{Width: width, Height: height, Rule: rule, Cells: cells}, nil
}

// parseHeader scans "x = W, y = H[, rule = R]", tolerant of whitespace
// around '=' and ','.
func parseHeader(line []byte) (width, height int64, rule string, err error) {
	s := string(line)
	fields := splitHeaderFields(s)
	for _, f := range fields {
		key, val, ok := splitKV(f)
		if !ok {
			continue
		}
		switch key {
		case "x":
			width, err = strconv.ParseInt(val, 10, 64)
			if err != nil {
				return 0, 0, "", fmt.Errorf("bad width %q", val)
			}
		case "y":
			height, err = strconv.ParseInt(val, 10, 64)
			if err != nil {
				return 0, 0, "", fmt.Errorf("bad height %q", val)
			}
		case "rule":
			rule = val
		}
	}
	if width == 0 && height == 0 {
		return 0, 0, "", fmt.Errorf("not a header line")
	}
	return width, height, rule, nil
}

func splitHeaderFields(s string) []string {
	var fields []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			fields = append(fields, s[start:i])
			start = i + 1
		}
	}
	fields = append(fields, s[start:])
	return fields
}

func splitKV(f string) (key, val string, ok bool) {
	i := -1
	for j := 0; j < len(f); j++ {
		if f[j] == '=' {
			i = j
			break
		}
	}
	if i < 0 {
		return "", "", false
	}
	key = trimSpace(f[:i])
	val = trimSpace(f[i+1:])
	return key, val, key != ""
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

// scanBody decodes the run-length-prefixed token stream into live cells,
// relative to (0, 0) at the top-left corner.
func scanBody(body []byte) ([]Cell, error) {
	var cells []Cell
	var x, y int64
	i := 0
	for i < len(body) {
		if isSpace(body[i]) {
			i++
			continue
		}
		start := i
		for i < len(body) && body[i] >= '0' && body[i] <= '9' {
			i++
		}
		reps := int64(1)
		if i > start {
			n, err := strconv.ParseInt(string(body[start:i]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad run count %q", body[start:i])
			}
			reps = n
		}
		if i >= len(body) {
			return nil, fmt.Errorf("truncated pattern, expected tag after run count")
		}
		tag := body[i]
		i++
		switch tag {
		case 'b':
			x += reps
		case 'o':
			for k := int64(0); k < reps; k++ {
				cells = append(cells, Cell{X: x, Y: y})
				x++
			}
		case '$':
			x = 0
			y += reps
		case '!':
			return cells, nil
		default:
			return nil, fmt.Errorf("unexpected tag %q", tag)
		}
	}
	return cells, fmt.Errorf("pattern not terminated with '!'")
}
