package icons

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

type iconSpec struct {
	size int
	name string
}

// The three sizes a Chrome extension manifest expects.
var iconSpecs = []iconSpec{
	{size: 16, name: "icon16.png"},
	{size: 48, name: "icon48.png"},
	{size: 128, name: "icon128.png"},
}

// Gradient endpoints, top purple to bottom darker purple, and the label
// color matching the top of the gradient.
var (
	gradientTop    = color.NRGBA{R: 102, G: 126, B: 234, A: 255}
	gradientBottom = color.NRGBA{R: 118, G: 75, B: 162, A: 255}
	glyphColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor     = gradientTop
)

const labelMinSize = 48

// Generate writes the three extension icons into dir and returns their
// paths in size order.
func Generate(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	paths := make([]string, 0, len(iconSpecs))
	for _, spec := range iconSpecs {
		path := filepath.Join(dir, spec.name)
		if err := writeIcon(path, spec.size); err != nil {
			return nil, fmt.Errorf("generate %s: %w", spec.name, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func writeIcon(path string, size int) error {
	img := drawIcon(size)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create icon file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		return fmt.Errorf("encode icon: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close icon file: %w", err)
	}

	return nil
}

func drawIcon(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	drawGradient(img, size)
	drawKeyGlyph(img, size)

	if size >= labelMinSize {
		drawLabel(img, size)
	}

	return img
}
