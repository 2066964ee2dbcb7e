package icons

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func drawGradient(img *image.NRGBA, size int) {
	for y := 0; y < size; y++ {
		t := float64(y) / float64(size)
		row := color.NRGBA{
			R: lerpChannel(gradientTop.R, gradientBottom.R, t),
			G: lerpChannel(gradientTop.G, gradientBottom.G, t),
			B: lerpChannel(gradientTop.B, gradientBottom.B, t),
			A: 255,
		}
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, row)
		}
	}
}

func lerpChannel(from, to uint8, t float64) uint8 {
	return uint8(float64(from) + (float64(to)-float64(from))*t)
}

// drawKeyGlyph draws a simplified white key: a ring for the handle, a
// shaft below it, and two teeth on the right of the shaft. All lengths
// scale with size/128.
func drawKeyGlyph(img *image.NRGBA, size int) {
	scale := float64(size) / 128
	centerX := size / 2
	centerY := size / 2

	ringRadius := 20 * scale
	ringWidth := math.Max(4*scale, 1)
	ringCenterY := float64(centerY) - 10*scale
	drawRing(img, float64(centerX), ringCenterY, ringRadius, ringWidth)

	shaftWidth := scaled(8, scale)
	shaftLength := scaled(30, scale)
	fillRect(img,
		centerX-shaftWidth/2, centerY-scaled(10, scale),
		centerX+shaftWidth/2, centerY+shaftLength,
		glyphColor,
	)

	teethWidth := scaled(4, scale)
	teethHeight := scaled(3, scale)
	for _, offset := range []int{10, 5} {
		top := centerY + shaftLength - scaled(offset, scale)
		fillRect(img,
			centerX+shaftWidth/2, top,
			centerX+shaftWidth/2+teethWidth, top+teethHeight,
			glyphColor,
		)
	}
}

func scaled(base int, scale float64) int {
	value := int(float64(base) * scale)
	if value < 1 {
		return 1
	}

	return value
}

func drawRing(img *image.NRGBA, centerX, centerY, radius, width float64) {
	bounds := img.Bounds()
	outer := radius
	inner := radius - width

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dist := math.Hypot(float64(x)+0.5-centerX, float64(y)+0.5-centerY)
			if dist <= outer && dist >= inner {
				img.SetNRGBA(x, y, glyphColor)
			}
		}
	}
}

// fillRect fills the rectangle with both corners inclusive, so a
// degenerate rect still paints a one pixel line at small icon sizes.
func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, fill color.NRGBA) {
	bounds := img.Bounds()
	for y := max(y0, bounds.Min.Y); y <= min(y1, bounds.Max.Y-1); y++ {
		for x := max(x0, bounds.Min.X); x <= min(x1, bounds.Max.X-1); x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
}

// drawLabel writes an "S" (for Session) centered in the key handle.
// A missing font face is swallowed and the icon ships without a label.
func drawLabel(img *image.NRGBA, size int) {
	face := loadLabelFace()
	if face == nil {
		return
	}

	scale := float64(size) / 128
	text := "S"

	width := font.MeasureString(face, text)
	metrics := face.Metrics()

	centerX := size / 2
	centerY := int(float64(size/2) - 10*scale)

	dot := fixed.Point26_6{
		X: fixed.I(centerX) - width/2,
		Y: fixed.I(centerY) + (metrics.Ascent-metrics.Descent)/2,
	}

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot:  dot,
	}
	drawer.DrawString(text)
}

func loadLabelFace() font.Face {
	return basicfont.Face7x13
}
