// Package render rasterizes a region of a universe to a PNG, mirroring
// the region-to-raster intent of original_source/smeagol-cli/src/views.rs
// without its interactive viewer — that role belongs to cmd/hashlife/tui.
// The encoder is the standard library's image/png: no corpus example
// carries a third-party PNG encoder, and a one-shot, infrequently-called
// batch rasterizer has nothing to gain from one (see DESIGN.md).
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Cells abstracts the parts of a universe render needs, avoiding an
// import of the root package (which would otherwise need to import this
// one back for a CLI convenience, an import cycle).
type Cells interface {
	GetCell(x, y int64) bool
}

// BBox is an inclusive region to rasterize, in the same coordinate frame
// Cells.GetCell reads from.
type BBox struct {
	XMin, YMin, XMax, YMax int64
}

var (
	liveColor = color.Black
	deadColor = color.White
)

// Write rasterizes box at zoom exponent z (each pixel covers a 2^z x 2^z
// cell block; a pixel is live iff any cell in its block is live) and
// encodes the result as a PNG to w.
func Write(w io.Writer, cells Cells, box BBox, z uint) error {
	block := int64(1) << z
	width := (box.XMax - box.XMin + 1 + block - 1) / block
	height := (box.YMax - box.YMin + 1 + block - 1) / block
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	for py := int64(0); py < height; py++ {
		for px := int64(0); px < width; px++ {
			live := blockLive(cells, box.XMin+px*block, box.YMin+py*block, block)
			c := deadColor
			if live {
				c = liveColor
			}
			img.Set(int(px), int(py), c)
		}
	}
	return png.Encode(w, img)
}

func blockLive(cells Cells, x0, y0, block int64) bool {
	for dy := int64(0); dy < block; dy++ {
		for dx := int64(0); dx < block; dx++ {
			if cells.GetCell(x0+dx, y0+dy) {
				return true
			}
		}
	}
	return false
}
