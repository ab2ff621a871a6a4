package window

import (
	"image/color"

	"github.com/sheikhrachel/go-life/model"
)

// fillBinaryRGBA converts cell states into RGBA pixels in buf, one pixel per
// cell in row-major order
func fillBinaryRGBA(buf []byte, view model.View, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	cols := view.Cols()
	view.Each(func(row, col int, alive bool) {
		base := (row*cols + col) * 4
		if alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			return
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	})
}

// cellAt maps a cursor position on the scaled board to a cell
func cellAt(x, y, scale int, view model.View) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= view.Rows() || col >= view.Cols() {
		return 0, 0, false
	}
	return row, col, true
}
