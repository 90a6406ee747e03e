package gphoto2

// #include <stdlib.h>
// #include <gphoto2/gphoto2.h>
import "C"
import (
	"time"
	"unsafe"
)

// Camera is an open session with a single camera. All methods go through
// the Context the camera was opened with; calls on one Camera must not
// overlap.
type Camera struct {
	ptr   *C.Camera
	ctx   *Context
	model string
	port  string
}

// Open initializes a session with the first camera the library autodetects.
func Open(ctx *Context) (*Camera, error) {
	cams, err := Autodetect(ctx)
	if err != nil {
		return nil, err
	}
	if len(cams) == 0 {
		return nil, ErrModelNotFound
	}
	return OpenModel(ctx, cams[0].Model, cams[0].Port)
}

// OpenModel initializes a session with a specific detected camera, selected
// by the model and port strings returned from Autodetect.
func OpenModel(ctx *Context, model, port string) (*Camera, error) {
	var cam *C.Camera
	if err := check(C.gp_camera_new(&cam)); err != nil {
		return nil, err
	}

	if err := setAbilities(cam, ctx, model); err != nil {
		C.gp_camera_unref(cam)
		return nil, err
	}
	if err := setPort(cam, port); err != nil {
		C.gp_camera_unref(cam)
		return nil, err
	}

	if err := check(C.gp_camera_init(cam, ctx.ptr)); err != nil {
		C.gp_camera_unref(cam)
		return nil, err
	}

	return &Camera{ptr: cam, ctx: ctx, model: model, port: port}, nil
}

// setAbilities looks up the driver abilities for model and attaches them to
// the camera handle.
func setAbilities(cam *C.Camera, ctx *Context, model string) error {
	var al *C.CameraAbilitiesList
	if err := check(C.gp_abilities_list_new(&al)); err != nil {
		return err
	}
	defer C.gp_abilities_list_free(al)

	if err := check(C.gp_abilities_list_load(al, ctx.ptr)); err != nil {
		return err
	}

	cModel := C.CString(model)
	defer C.free(unsafe.Pointer(cModel))

	idx := C.gp_abilities_list_lookup_model(al, cModel)
	if err := check(idx); err != nil {
		return err
	}

	var abilities C.CameraAbilities
	if err := check(C.gp_abilities_list_get_abilities(al, idx, &abilities)); err != nil {
		return err
	}
	return check(C.gp_camera_set_abilities(cam, abilities))
}

// setPort resolves the port path (for example "usb:020,019") and attaches
// it to the camera handle.
func setPort(cam *C.Camera, port string) error {
	var il *C.GPPortInfoList
	if err := check(C.gp_port_info_list_new(&il)); err != nil {
		return err
	}
	defer C.gp_port_info_list_free(il)

	if err := check(C.gp_port_info_list_load(il)); err != nil {
		return err
	}

	cPort := C.CString(port)
	defer C.free(unsafe.Pointer(cPort))

	idx := C.gp_port_info_list_lookup_path(il, cPort)
	if err := check(idx); err != nil {
		return err
	}

	var info C.GPPortInfo
	if err := check(C.gp_port_info_list_get_info(il, idx, &info)); err != nil {
		return err
	}
	return check(C.gp_camera_set_port_info(cam, info))
}

// Model returns the driver model name the camera was opened with.
func (c *Camera) Model() string { return c.model }

// Port returns the port path the camera was opened on.
func (c *Camera) Port() string { return c.port }

// Summary returns the camera's summary text: storage, firmware, battery and
// whatever else the driver reports.
func (c *Camera) Summary() (string, error) {
	var t C.CameraText
	if err := check(C.gp_camera_get_summary(c.ptr, &t, c.ctx.ptr)); err != nil {
		return "", err
	}
	return C.GoString(&t.text[0]), nil
}

// About returns the driver's about text.
func (c *Camera) About() (string, error) {
	var t C.CameraText
	if err := check(C.gp_camera_get_about(c.ptr, &t, c.ctx.ptr)); err != nil {
		return "", err
	}
	return C.GoString(&t.text[0]), nil
}

// Manual returns the driver's manual text. Many drivers return
// ErrNotSupported.
func (c *Camera) Manual() (string, error) {
	var t C.CameraText
	if err := check(C.gp_camera_get_manual(c.ptr, &t, c.ctx.ptr)); err != nil {
		return "", err
	}
	return C.GoString(&t.text[0]), nil
}

// CapturePhoto triggers a full capture and blocks until the camera reports
// where the new image landed on its storage.
func (c *Camera) CapturePhoto() (FilePath, error) {
	var p C.CameraFilePath
	if err := check(C.gp_camera_capture(c.ptr, C.GP_CAPTURE_IMAGE, &p, c.ctx.ptr)); err != nil {
		return FilePath{}, err
	}
	return FilePath{
		Folder: C.GoString(&p.folder[0]),
		Name:   C.GoString(&p.name[0]),
	}, nil
}

// TriggerCapture releases the shutter without waiting for the result. The
// new file shows up later as an EventFileAdded from WaitForEvent.
func (c *Camera) TriggerCapture() error {
	return check(C.gp_camera_trigger_capture(c.ptr, c.ctx.ptr))
}

// CapturePreview grabs a single liveview frame. Most drivers return JPEG;
// the MIME type reported by the library is returned alongside the data.
// The returned slice is Go-owned and stays valid after the call.
func (c *Camera) CapturePreview() ([]byte, string, error) {
	var cf *C.CameraFile
	if err := check(C.gp_file_new(&cf)); err != nil {
		return nil, "", err
	}
	defer C.gp_file_unref(cf)

	if err := check(C.gp_camera_capture_preview(c.ptr, cf, c.ctx.ptr)); err != nil {
		return nil, "", err
	}
	data, mime, err := fileContents(cf)
	if err != nil {
		return nil, "", err
	}
	return data, mime, nil
}

// EventType enumerates camera events from WaitForEvent.
type EventType int

const (
	EventUnknown     EventType = C.GP_EVENT_UNKNOWN
	EventTimeout     EventType = C.GP_EVENT_TIMEOUT
	EventFileAdded   EventType = C.GP_EVENT_FILE_ADDED
	EventFolderAdded EventType = C.GP_EVENT_FOLDER_ADDED
	EventCaptureDone EventType = C.GP_EVENT_CAPTURE_COMPLETE
	EventFileChanged EventType = C.GP_EVENT_FILE_CHANGED
)

func (t EventType) String() string {
	switch t {
	case EventTimeout:
		return "timeout"
	case EventFileAdded:
		return "file added"
	case EventFolderAdded:
		return "folder added"
	case EventCaptureDone:
		return "capture complete"
	case EventFileChanged:
		return "file changed"
	default:
		return "unknown"
	}
}

// Event is a single camera event. Path is set for file and folder events.
type Event struct {
	Type EventType
	Path FilePath
}

// WaitForEvent blocks until the camera reports an event or the timeout
// elapses (in which case the event type is EventTimeout).
func (c *Camera) WaitForEvent(timeout time.Duration) (Event, error) {
	var et C.CameraEventType
	var data unsafe.Pointer
	err := check(C.gp_camera_wait_for_event(c.ptr, C.int(timeout.Milliseconds()), &et, &data, c.ctx.ptr))
	if err != nil {
		return Event{}, err
	}

	ev := Event{Type: EventType(et)}
	switch ev.Type {
	case EventFileAdded, EventFolderAdded, EventFileChanged:
		// The library hands over a malloc'd CameraFilePath.
		p := (*C.CameraFilePath)(data)
		ev.Path = FilePath{
			Folder: C.GoString(&p.folder[0]),
			Name:   C.GoString(&p.name[0]),
		}
	}
	if data != nil {
		C.free(data)
	}
	return ev, nil
}

// Exit closes the connection to the camera but keeps the handle usable; the
// next call re-establishes the session. Useful to let other processes at
// the device.
func (c *Camera) Exit() error {
	return check(C.gp_camera_exit(c.ptr, c.ctx.ptr))
}

// Close ends the session and releases the camera handle. The camera must
// not be used afterwards.
func (c *Camera) Close() error {
	if c.ptr == nil {
		return nil
	}
	err := check(C.gp_camera_exit(c.ptr, c.ctx.ptr))
	C.gp_camera_unref(c.ptr)
	c.ptr = nil
	return err
}
