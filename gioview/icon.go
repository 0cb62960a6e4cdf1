package gioview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// LoadIcon decodes an image file to be drawn inside the widget.
func LoadIcon(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to open the icon: %w", err)
	}
	return img, nil
}

// fitIcon scales the image to cover a size x size square and crops
// the overflow around the center.
func fitIcon(img image.Image, size int) image.Image {
	return imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)
}

// fadeIcon returns a copy of img with every pixel's alpha scaled by alpha.
func fadeIcon(img image.Image, alpha float32) *image.NRGBA {
	if alpha >= 1 {
		return imaging.Clone(img)
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.A = uint8(float32(c.A)*alpha + 0.5)
		return c
	})
}
