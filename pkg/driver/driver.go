// Package driver manages tethered camera sessions: registration, identity
// and lifecycle state. Adapters do the actual device work; the manager
// wraps them into Drivers that add an ID and enforce valid state
// transitions.
package driver

import (
	"github.com/rickardholmberg/spiggot/pkg/liveview"
	"github.com/rickardholmberg/spiggot/pkg/settings"
	"github.com/rickardholmberg/spiggot/pkg/storage"
)

type OpenCloser interface {
	Open() error
	Close() error
}

type Infoer interface {
	Info() Info
}

// LabelSeparator joins the model and port halves of a driver label.
const LabelSeparator = ";"

// Info describes a registered camera.
type Info struct {
	// Label is stable across reconnects as long as the camera keeps its
	// port, in the form "model;port".
	Label string
	Model string
	Port  string
}

// CapturePath locates a newly captured image on the camera's own storage.
type CapturePath struct {
	Folder string
	Name   string
}

// ImageCapturer triggers full captures.
type ImageCapturer interface {
	Capture() (CapturePath, error)
}

// PreviewStreamer runs the camera's liveview.
type PreviewStreamer interface {
	StartPreview(opts liveview.Options) (liveview.Reader, error)
	StopPreview() error
}

// StorageProvider exposes the camera's on-board filesystem.
type StorageProvider interface {
	FileSystem() storage.FileSystem
}

// Configurable exposes the camera's settings tree.
type Configurable interface {
	Settings() (*settings.Tree, error)
	// Apply pushes one value by settings path. Satisfies settings.Setter.
	Apply(path string, value interface{}) error
}

// Adapter is a full camera implementation. Operations a particular camera
// cannot do fail with the camera library's own not-supported error.
type Adapter interface {
	OpenCloser
	Infoer
	ImageCapturer
	PreviewStreamer
	StorageProvider
	Configurable
}

// Driver is a registered adapter with identity and state tracking.
type Driver interface {
	Adapter
	ID() string
	Status() State
}
