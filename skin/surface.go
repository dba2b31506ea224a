// Package skin provides the overlay's presentation services: validated
// image decoding, positioned alpha-blended surfaces and a z-ordered stage
// that composites them onto the host screen.
package skin

import (
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is a positioned, z-ordered, alpha-blended pixel layer. Pixels are
// held as a plain RGBA buffer; the GPU texture is created lazily on the
// first draw so surfaces can be built and tested without a graphics context.
type Surface struct {
	x, y    int
	z       int
	alpha   int // 0..255
	visible bool

	src   *image.RGBA
	dirty bool
	tex   *ebiten.Image
}

// NewSurface creates an invisible surface at the given z-order and alpha.
func NewSurface(z, alpha int) *Surface {
	return &Surface{z: z, alpha: clampAlpha(alpha)}
}

// SetImage replaces the surface's pixel content.
func (s *Surface) SetImage(src *image.RGBA) {
	s.src = src
	s.dirty = true
}

// MoveTo repositions the surface in overlay coordinates.
func (s *Surface) MoveTo(x, y int) {
	s.x, s.y = x, y
}

// Position returns the surface's current overlay position.
func (s *Surface) Position() (int, int) { return s.x, s.y }

// SetVisible toggles whether the surface is composited.
func (s *Surface) SetVisible(visible bool) { s.visible = visible }

// SetAlpha sets the global alpha applied when compositing, 0..255.
func (s *Surface) SetAlpha(alpha int) { s.alpha = clampAlpha(alpha) }

// Alpha returns the surface's global alpha.
func (s *Surface) Alpha() int { return s.alpha }

func (s *Surface) draw(screen *ebiten.Image) {
	if !s.visible || s.src == nil {
		return
	}
	if s.tex == nil || s.dirty {
		s.tex = ebiten.NewImageFromImage(s.src)
		s.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.x), float64(s.y))
	op.ColorScale.ScaleAlpha(float32(s.alpha) / 255)
	screen.DrawImage(s.tex, op)
}

// Stage is an ordered set of surfaces composited back-to-front each frame.
type Stage struct {
	width, height int
	surfaces      []*Surface
}

// NewStage creates a stage with the given overlay dimensions.
func NewStage(width, height int) *Stage {
	return &Stage{width: width, height: height}
}

// Size returns the stage dimensions.
func (st *Stage) Size() (int, int) { return st.width, st.height }

// Add registers a surface with the stage.
func (st *Stage) Add(s *Surface) {
	st.surfaces = append(st.surfaces, s)
}

// Remove detaches a surface from the stage.
func (st *Stage) Remove(s *Surface) {
	for i, cur := range st.surfaces {
		if cur == s {
			st.surfaces = append(st.surfaces[:i], st.surfaces[i+1:]...)
			return
		}
	}
}

// Clear detaches every surface.
func (st *Stage) Clear() {
	st.surfaces = nil
}

// Draw composites all visible surfaces onto the screen in z-order.
// Registration order breaks ties.
func (st *Stage) Draw(screen *ebiten.Image) {
	sort.SliceStable(st.surfaces, func(i, j int) bool {
		return st.surfaces[i].z < st.surfaces[j].z
	})
	for _, s := range st.surfaces {
		s.draw(screen)
	}
}

func clampAlpha(alpha int) int {
	if alpha < 0 {
		return 0
	}
	if alpha > 255 {
		return 255
	}
	return alpha
}
