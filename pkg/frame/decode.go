package frame

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
)

func NewDecoder(f Format) (Decoder, error) {
	switch f {
	case FormatJPEG:
		return decoderFunc(decodeJPEG), nil
	case FormatPNG:
		return decoderFunc(decodePNG), nil
	default:
		return nil, fmt.Errorf("%s is not supported", f)
	}
}

func decodeJPEG(frame []byte) (image.Image, func(), error) {
	img, err := jpeg.Decode(bytes.NewReader(frame))
	return img, func() {}, err
}

func decodePNG(frame []byte) (image.Image, func(), error) {
	img, err := png.Decode(bytes.NewReader(frame))
	return img, func() {}, err
}
