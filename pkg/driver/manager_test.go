package driver

import (
	"testing"

	"github.com/rickardholmberg/spiggot/pkg/liveview"
	"github.com/rickardholmberg/spiggot/pkg/settings"
	"github.com/rickardholmberg/spiggot/pkg/storage"
)

// fakeAdapter is a do-nothing camera.
type fakeAdapter struct {
	info       Info
	openErr    error
	opened     bool
	previewing bool
	captures   int
}

func (a *fakeAdapter) Open() error {
	if a.openErr != nil {
		return a.openErr
	}
	a.opened = true
	return nil
}

func (a *fakeAdapter) Close() error {
	a.opened = false
	return nil
}

func (a *fakeAdapter) Info() Info { return a.info }

func (a *fakeAdapter) Capture() (CapturePath, error) {
	a.captures++
	return CapturePath{Folder: "/store_00010001/DCIM/100FAKE", Name: "IMG_0001.JPG"}, nil
}

func (a *fakeAdapter) StartPreview(liveview.Options) (liveview.Reader, error) {
	a.previewing = true
	return liveview.ReaderFunc(nil), nil
}

func (a *fakeAdapter) StopPreview() error {
	a.previewing = false
	return nil
}

func (a *fakeAdapter) FileSystem() storage.FileSystem { return nil }

func (a *fakeAdapter) Settings() (*settings.Tree, error) { return nil, nil }

func (a *fakeAdapter) Apply(string, interface{}) error { return nil }

func newTestManager() *Manager {
	return &Manager{
		drivers: make(map[string]Driver),
		logger:  noopLogger{},
	}
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}

func TestRegisterAndQuery(t *testing.T) {
	m := newTestManager()
	d1 := m.Register(&fakeAdapter{info: Info{Model: "Nikon D90", Port: "usb:001,004"}})
	m.Register(&fakeAdapter{info: Info{Model: "Canon EOS 5D", Port: "usb:001,005"}})

	if got := len(m.Query()); got != 2 {
		t.Fatalf("expected 2 drivers, got %d", got)
	}

	if got, ok := m.Lookup(d1.ID()); !ok || got != d1 {
		t.Fatal("Lookup must find the registered driver by ID")
	}

	m.Unregister(d1.ID())
	if got := len(m.Query()); got != 1 {
		t.Fatalf("expected 1 driver after Unregister, got %d", got)
	}
}

func TestQueryOrderIsStable(t *testing.T) {
	m := newTestManager()
	for _, l := range []string{
		"Nikon D90;usb:001,004",
		"Canon EOS 5D;usb:001,005",
		"Fujifilm X-T4;usb:001,006",
	} {
		m.Register(&fakeAdapter{info: Info{Label: l}})
	}

	want := []string{
		"Canon EOS 5D;usb:001,005",
		"Fujifilm X-T4;usb:001,006",
		"Nikon D90;usb:001,004",
	}
	// Repeat to catch map iteration order leaking through.
	for i := 0; i < 5; i++ {
		got := m.Query()
		if len(got) != len(want) {
			t.Fatalf("expected %d drivers, got %d", len(want), len(got))
		}
		for j, d := range got {
			if d.Info().Label != want[j] {
				t.Fatalf("Query()[%d] = %q, want %q", j, d.Info().Label, want[j])
			}
		}
	}
}

func TestQueryFilters(t *testing.T) {
	m := newTestManager()
	m.Register(&fakeAdapter{info: Info{Model: "Nikon D90", Port: "usb:001,004"}})
	m.Register(&fakeAdapter{info: Info{Model: "Canon EOS 5D", Port: "ptpip:192.168.1.2"}})

	if got := m.Query(FilterModel("nikon")); len(got) != 1 || got[0].Info().Model != "Nikon D90" {
		t.Fatalf("FilterModel(nikon) = %v", got)
	}
	if got := m.Query(FilterPort("usb:")); len(got) != 1 {
		t.Fatalf("expected 1 usb driver, got %d", len(got))
	}
	if got := m.Query(FilterNot(FilterPort("usb:"))); len(got) != 1 || got[0].Info().Model != "Canon EOS 5D" {
		t.Fatalf("FilterNot(usb) = %v", got)
	}
	if got := m.Query(FilterAnd(FilterModel("canon"), FilterPort("usb:"))); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
	if got := m.Query(FilterState(StateClosed)); len(got) != 2 {
		t.Fatalf("expected both drivers closed, got %d", len(got))
	}
}
