// Package tether registers cameras reachable through libgphoto2 with the
// driver manager. Each detected camera becomes one driver; opening it
// establishes a PTP (or serial/IP) session through the library.
package tether

import (
	"context"

	"github.com/rickardholmberg/spiggot/internal/logging"
	"github.com/rickardholmberg/spiggot/pkg/driver"
	"github.com/rickardholmberg/spiggot/pkg/driver/availability"
	"github.com/rickardholmberg/spiggot/pkg/gphoto2"
	"github.com/rickardholmberg/spiggot/pkg/liveview"
	"github.com/rickardholmberg/spiggot/pkg/settings"
	"github.com/rickardholmberg/spiggot/pkg/storage"
)

var logger = logging.NewLogger("tether")

// Register autodetects connected cameras and registers each one with the
// driver manager. It can be called again after plugging in a camera;
// already-registered ports are skipped. Returns availability.ErrNoDevice
// when nothing is detected.
func Register() error {
	ctx := gphoto2.NewContext()
	defer ctx.Close()

	detected, err := gphoto2.Autodetect(ctx)
	if err != nil {
		return err
	}
	if len(detected) == 0 {
		return availability.ErrNoDevice
	}

	m := driver.GetManager()
	for _, dc := range detected {
		if len(m.Query(driver.FilterPort(dc.Port), driver.FilterModel(dc.Model))) > 0 {
			continue
		}
		cam := newCamera(dc)
		m.Register(cam)
		logger.Infof("registered %s on %s", dc.Model, dc.Port)
	}
	return nil
}

// camera adapts one libgphoto2 camera to driver.Adapter.
type camera struct {
	model string
	port  string

	ctx           *gphoto2.Context
	cam           *gphoto2.Camera
	cancelPreview context.CancelFunc
}

func newCamera(dc gphoto2.DetectedCamera) *camera {
	return &camera{model: dc.Model, port: dc.Port}
}

func (c *camera) Info() driver.Info {
	return driver.Info{
		Label: c.model + driver.LabelSeparator + c.port,
		Model: c.model,
		Port:  c.port,
	}
}

func (c *camera) Open() error {
	ctx := gphoto2.NewContext()
	ctx.OnError(func(msg string) { logger.Errorf("%s: %s", c.model, msg) })
	ctx.OnStatus(func(msg string) { logger.Debugf("%s: %s", c.model, msg) })

	cam, err := gphoto2.OpenModel(ctx, c.model, c.port)
	if err != nil {
		ctx.Close()
		return err
	}

	c.ctx = ctx
	c.cam = cam
	return nil
}

func (c *camera) Close() error {
	if c.cam == nil {
		return nil
	}
	err := c.cam.Close()
	c.ctx.Close()
	c.cam = nil
	c.ctx = nil
	return err
}

func (c *camera) Capture() (driver.CapturePath, error) {
	p, err := c.cam.CapturePhoto()
	if err != nil {
		return driver.CapturePath{}, err
	}
	return driver.CapturePath{Folder: p.Folder, Name: p.Name}, nil
}

func (c *camera) StartPreview(opts liveview.Options) (liveview.Reader, error) {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancelPreview = cancel
	return liveview.New(ctx, c.cam, opts), nil
}

func (c *camera) StopPreview() error {
	if c.cancelPreview != nil {
		c.cancelPreview()
		c.cancelPreview = nil
	}
	return nil
}

func (c *camera) FileSystem() storage.FileSystem {
	return &cameraFS{cam: c.cam}
}

func (c *camera) Settings() (*settings.Tree, error) {
	root, err := c.cam.Config()
	if err != nil {
		return nil, err
	}
	defer root.Close()

	return settings.Walk(widgetNode{root})
}

func (c *camera) Apply(path string, value interface{}) error {
	return c.cam.SetValueAt(path, value)
}
