package render

import (
	"image/color"

	"seat-ca/internal/core"
)

// SeatPalette colors floor, empty seats and occupied seats, indexed by the
// cell value.
var SeatPalette = []color.RGBA{
	core.Floor:        {R: 24, G: 24, B: 28, A: 255},
	core.EmptySeat:    {R: 70, G: 150, B: 90, A: 255},
	core.OccupiedSeat: {R: 220, G: 80, B: 60, A: 255},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
