// Package spiggot tethers digital cameras through libgphoto2: detection,
// capture, liveview streaming, on-camera file transfer and configuration.
//
// The heavy lifting lives in the subpackages; this package is the short
// path for the common case of one connected camera:
//
//	if err := spiggot.Detect(); err != nil { ... }
//	cam, err := spiggot.OpenFirst()
//	defer cam.Close()
//	path, err := cam.Capture()
package spiggot

import (
	"github.com/rickardholmberg/spiggot/pkg/driver"
	"github.com/rickardholmberg/spiggot/pkg/driver/tether"
)

// Detect scans for connected cameras and registers each one with the
// driver manager. Safe to call again after plugging in a camera.
func Detect() error {
	return tether.Register()
}

// Cameras returns the registered camera drivers in label order, optionally
// filtered.
func Cameras(filters ...driver.FilterFn) []driver.Driver {
	return driver.GetManager().Query(filters...)
}

// OpenFirst detects cameras if none are registered yet and opens the first
// one in label order.
func OpenFirst() (driver.Driver, error) {
	cams := Cameras()
	if len(cams) == 0 {
		if err := Detect(); err != nil {
			return nil, err
		}
		cams = Cameras()
	}

	d := cams[0]
	if err := d.Open(); err != nil {
		return nil, err
	}
	return d, nil
}
