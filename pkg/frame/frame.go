// Package frame decodes the compressed frames a tethered camera hands back:
// liveview previews, thumbnails and preview renditions of stored files.
package frame

import "image"

type Decoder interface {
	Decode(frame []byte) (image.Image, func(), error)
}

// decoderFunc is a proxy type for Decoder
type decoderFunc func(frame []byte) (image.Image, func(), error)

func (f decoderFunc) Decode(frame []byte) (image.Image, func(), error) {
	return f(frame)
}
