package frame

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale resizes img to fit within maxWidth x maxHeight while keeping its
// aspect ratio. Images that already fit are returned untouched.
func Scale(img image.Image, maxWidth, maxHeight int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxWidth && h <= maxHeight {
		return img
	}

	rw := float64(maxWidth) / float64(w)
	rh := float64(maxHeight) / float64(h)
	r := rw
	if rh < r {
		r = rh
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*r), int(float64(h)*r)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
