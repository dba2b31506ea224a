package skin

import "image"

const checkerCell = 16

// EditorAlpha is the translucency of the layout editor's backdrop.
const EditorAlpha = 0x90

// Checkerboard fills dst with the translucent grey backdrop shown while the
// layout editor is active.
func Checkerboard(dst *image.RGBA, alpha uint8) {
	bounds := dst.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		t := y & checkerCell
		row := dst.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := uint8(0x80)
			if (x&checkerCell)^t != 0 {
				c = 0xa0
			}
			p := row + (x-bounds.Min.X)*4
			dst.Pix[p+0] = c
			dst.Pix[p+1] = c
			dst.Pix[p+2] = c
			dst.Pix[p+3] = alpha
		}
	}
}
