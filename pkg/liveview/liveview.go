// Package liveview turns a camera's single-frame preview call into a
// continuous stream of decoded frames.
package liveview

import (
	"context"
	"errors"
	"image"
	"io"
	"sync"
	"time"

	"github.com/rickardholmberg/spiggot/pkg/frame"
)

const defaultMaxConsecutiveErrors = 5

var (
	errTooManyFailures   = errors.New("liveview: too many consecutive preview failures")
	errUnsupportedFormat = errors.New("liveview: unsupported preview format")
)

// Source yields one preview frame per call, plus the MIME type the camera
// library reported for it.
type Source interface {
	CapturePreview() ([]byte, string, error)
}

// Reader yields decoded liveview frames. The release func must be called
// once the frame is no longer used.
type Reader interface {
	Read() (image.Image, func(), error)
}

// ReaderFunc is a proxy type for Reader
type ReaderFunc func() (image.Image, func(), error)

func (f ReaderFunc) Read() (image.Image, func(), error) {
	return f()
}

// Options tune the polling loop.
type Options struct {
	// MaxFrameRate caps polling; 0 polls as fast as the camera allows.
	MaxFrameRate float64
	// MaxConsecutiveErrors is how many preview failures in a row are
	// tolerated before the reader gives up. Defaults to 5.
	MaxConsecutiveErrors int
}

// New returns a Reader that polls src for preview frames. The reader
// returns io.EOF once ctx is cancelled. Transient preview failures are
// retried; MaxConsecutiveErrors failures in a row end the stream.
func New(ctx context.Context, src Source, opts Options) Reader {
	maxErrs := opts.MaxConsecutiveErrors
	if maxErrs <= 0 {
		maxErrs = defaultMaxConsecutiveErrors
	}

	var interval time.Duration
	if opts.MaxFrameRate > 0 {
		interval = time.Duration(float64(time.Second) / opts.MaxFrameRate)
	}

	var mu sync.Mutex
	var last time.Time

	return ReaderFunc(func() (image.Image, func(), error) {
		// One poll at a time; the underlying camera session is not
		// safe for overlapping calls.
		mu.Lock()
		defer mu.Unlock()

		if interval > 0 {
			if wait := interval - time.Since(last); wait > 0 {
				select {
				case <-time.After(wait):
				case <-ctx.Done():
					return nil, nil, io.EOF
				}
			}
		}

		var lastErr error
		for i := 0; i < maxErrs; i++ {
			if ctx.Err() != nil {
				return nil, nil, io.EOF
			}

			data, mime, err := src.CapturePreview()
			if err != nil {
				lastErr = err
				continue
			}

			format, ok := frame.FromMIME(mime)
			if !ok {
				return nil, nil, errUnsupportedFormat
			}
			decoder, err := frame.NewDecoder(format)
			if err != nil {
				return nil, nil, err
			}

			img, release, err := decoder.Decode(data)
			if err != nil {
				// A torn frame; grab the next one.
				lastErr = err
				continue
			}

			last = time.Now()
			return img, release, nil
		}
		return nil, nil, errors.Join(errTooManyFailures, lastErr)
	})
}
