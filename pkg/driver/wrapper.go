package driver

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rickardholmberg/spiggot/pkg/liveview"
	"github.com/rickardholmberg/spiggot/pkg/settings"
	"github.com/rickardholmberg/spiggot/pkg/storage"
)

func wrapAdapter(a Adapter) Driver {
	return &adapterWrapper{
		Adapter: a,
		id:      uuid.NewString(),
		state:   StateClosed,
	}
}

// adapterWrapper adds identity and state enforcement on top of an Adapter.
// It is not safe for concurrent use; one goroutine drives a camera.
type adapterWrapper struct {
	Adapter
	id    string
	state State
}

func (w *adapterWrapper) ID() string {
	return w.id
}

func (w *adapterWrapper) Status() State {
	return w.state
}

func (w *adapterWrapper) Open() error {
	if w.state != StateClosed {
		return fmt.Errorf("invalid state: driver is already opened")
	}
	return w.state.Update(StateOpened, w.Adapter.Open)
}

func (w *adapterWrapper) Close() error {
	if w.state == StateStreaming {
		if err := w.StopPreview(); err != nil {
			return err
		}
	}
	return w.state.Update(StateClosed, w.Adapter.Close)
}

func (w *adapterWrapper) Capture() (CapturePath, error) {
	if w.state == StateClosed {
		return CapturePath{}, fmt.Errorf("invalid state: driver hasn't been opened")
	}
	return w.Adapter.Capture()
}

func (w *adapterWrapper) StartPreview(opts liveview.Options) (liveview.Reader, error) {
	var r liveview.Reader
	err := w.state.Update(StateStreaming, func() error {
		var err error
		r, err = w.Adapter.StartPreview(opts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (w *adapterWrapper) StopPreview() error {
	if w.state != StateStreaming {
		return fmt.Errorf("invalid state: preview isn't streaming")
	}
	return w.state.Update(StateOpened, w.Adapter.StopPreview)
}

func (w *adapterWrapper) FileSystem() storage.FileSystem {
	if w.state == StateClosed {
		return nil
	}
	return w.Adapter.FileSystem()
}

func (w *adapterWrapper) Settings() (*settings.Tree, error) {
	if w.state == StateClosed {
		return nil, fmt.Errorf("invalid state: driver hasn't been opened")
	}
	return w.Adapter.Settings()
}

func (w *adapterWrapper) Apply(path string, value interface{}) error {
	if w.state == StateClosed {
		return fmt.Errorf("invalid state: driver hasn't been opened")
	}
	return w.Adapter.Apply(path, value)
}
