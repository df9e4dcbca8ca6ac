package evolve

import "github.com/billyrieger/hashlife/internal/tile"

// grid16 is a scratch 16x16 cell grid used only to compute the level-4 base
// case. Representing it unpacked (rather than as four Tile8 values plus
// Tile8.Step's 9-tile neighborhood) sidesteps a real correctness problem:
// Step always zeroes its outer ring, but a level-4 node's four leaf
// children share boundaries with each other, and those boundary cells are
// exactly the ones a naive per-child Step call would discard. Working
// against one 16x16 grid keeps every boundary cell live for as long as the
// level-4 margin (4 cells on every side of the returned centered 8x8)
// allows, which is all correctness requires.
type grid16 [16][16]bool

func buildGrid16(nw, ne, sw, se tile.Tile8) grid16 {
	var g grid16
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			g[r][c] = nw.Get(r, c)
			g[r][c+8] = ne.Get(r, c)
			g[r+8][c] = sw.Get(r, c)
			g[r+8][c+8] = se.Get(r, c)
		}
	}
	return g
}

func (g grid16) alive(r, c int) bool {
	if r < 0 || r > 15 || c < 0 || c > 15 {
		return false
	}
	return g[r][c]
}

// step advances g by one generation under B3/S23, treating everything
// outside the 16x16 as dead. That assumption only ever affects cells this
// package discards (see baseCase): the centered 8x8 it ultimately reads
// has at least a 4-cell margin within the grid, more than the at-most-4
// generations baseCase is ever asked for.
func (g grid16) step() grid16 {
	var out grid16
	for r := 0; r < 16; r++ {
		for c := 0; c < 16; c++ {
			count := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if g.alive(r+dr, c+dc) {
						count++
					}
				}
			}
			out[r][c] = count == 3 || (count == 2 && g[r][c])
		}
	}
	return out
}

func (g grid16) centerTile() tile.Tile8 {
	var t tile.Tile8
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if g[r+4][c+4] {
				t = t.Set(r, c, true)
			}
		}
	}
	return t
}

// baseCase advances a level-4 node's 16x16 content (given as its four leaf
// children) by 2^steps generations, steps in {0, 1, 2}, and returns the
// resulting centered 8x8 as a leaf tile.
func baseCase(nw, ne, sw, se tile.Tile8, steps uint8) tile.Tile8 {
	if steps > 2 {
		steps = 2
	}
	g := buildGrid16(nw, ne, sw, se)
	for i := 0; i < (1 << steps); i++ {
		g = g.step()
	}
	return g.centerTile()
}
