package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Label overlay colors: a dark plate under a shadowed white label.
var (
	plateColor  = color.NRGBA{0, 0, 0, 90}
	shadowColor = color.NRGBA{0, 0, 0, 200}
	labelColor  = color.NRGBA{255, 255, 255, 220}
)

// fontSizeFor returns the label font size in pixels for an image width.
func fontSizeFor(width int) int {
	if size := width / 40; size > 24 {
		return size
	}
	return 24
}

// paddingFor returns the label edge padding for a font size.
func paddingFor(fontSize int) int {
	if pad := fontSize / 3; pad > 12 {
		return pad
	}
	return 12
}

// shadowOffsetFor returns the drop shadow offset for a font size.
func shadowOffsetFor(fontSize int) int {
	if off := fontSize / 20; off > 1 {
		return off
	}
	return 1
}

// Watermark overlays a translucent text label in the bottom-right corner of
// src and returns the composited copy. src is never mutated.
//
// The label is rendered onto a transparent overlay the size of the source:
// a dark plate, a drop-shadowed copy of the text, then the white label
// itself. The overlay is merged over a clone of the source with the standard
// straight-alpha "over" operator, so an opaque source yields an opaque
// result.
//
// Labels wider than the image keep their computed (negative) origin; the
// plate and text are clipped at the canvas edge rather than clamped, matching
// the reference output.
func Watermark(src *image.NRGBA, text string) *image.NRGBA {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	fontSize := fontSizeFor(width)
	padding := paddingFor(fontSize)
	face := labelFace(fontSize)

	inked, _ := font.BoundString(face, text)
	textW := (inked.Max.X - inked.Min.X).Ceil()
	textH := (inked.Max.Y - inked.Min.Y).Ceil()

	x := width - textW - padding
	y := height - textH - padding

	overlay := image.NewNRGBA(image.Rect(0, 0, width, height))

	plate := image.Rect(x-padding/2, y-padding/3, x+textW+padding/2, y+textH+padding/3)
	draw.Draw(overlay, plate, image.NewUniform(plateColor), image.Point{}, draw.Src)

	offset := shadowOffsetFor(fontSize)
	drawLabel(overlay, face, inked, x+offset, y+offset, text, shadowColor)
	drawLabel(overlay, face, inked, x, y, text, labelColor)

	out := imaging.Clone(src)
	draw.Draw(out, out.Bounds(), overlay, image.Point{}, draw.Over)
	return out
}

// drawLabel renders text so the top-left corner of its inked bounds lands on
// (x, y). The dot is offset by the bound minimum, which mirrors how the
// anchor was derived from the measured bounds.
func drawLabel(dst draw.Image, face font.Face, inked fixed.Rectangle26_6, x, y int, text string, col color.NRGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x) - inked.Min.X,
			Y: fixed.I(y) - inked.Min.Y,
		},
	}
	d.DrawString(text)
}
