package gphoto2

// #include <gphoto2/gphoto2.h>
import "C"

// cameraList wraps the library's generic name/value list.
type cameraList struct {
	ptr *C.CameraList
}

func newCameraList() (*cameraList, error) {
	var l *C.CameraList
	if err := check(C.gp_list_new(&l)); err != nil {
		return nil, err
	}
	return &cameraList{ptr: l}, nil
}

func (l *cameraList) free() {
	if l.ptr != nil {
		C.gp_list_free(l.ptr)
		l.ptr = nil
	}
}

func (l *cameraList) count() int {
	return int(C.gp_list_count(l.ptr))
}

func (l *cameraList) name(i int) (string, error) {
	var s *C.char
	if err := check(C.gp_list_get_name(l.ptr, C.int(i), &s)); err != nil {
		return "", err
	}
	return C.GoString(s), nil
}

func (l *cameraList) value(i int) (string, error) {
	var s *C.char
	if err := check(C.gp_list_get_value(l.ptr, C.int(i), &s)); err != nil {
		return "", err
	}
	return C.GoString(s), nil
}

// names returns all entry names in list order.
func (l *cameraList) names() ([]string, error) {
	n := l.count()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name, err := l.name(i)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}

// DetectedCamera identifies a connected camera by driver model and port
// path (for example "usb:020,019").
type DetectedCamera struct {
	Model string
	Port  string
}

// Autodetect lists the cameras currently reachable through the library's
// port drivers. Cameras that are claimed by another process may be missing
// from the result.
func Autodetect(ctx *Context) ([]DetectedCamera, error) {
	l, err := newCameraList()
	if err != nil {
		return nil, err
	}
	defer l.free()

	if err := check(C.gp_camera_autodetect(l.ptr, ctx.ptr)); err != nil {
		return nil, err
	}

	n := l.count()
	cams := make([]DetectedCamera, 0, n)
	for i := 0; i < n; i++ {
		model, err := l.name(i)
		if err != nil {
			return nil, err
		}
		port, err := l.value(i)
		if err != nil {
			return nil, err
		}
		cams = append(cams, DetectedCamera{Model: model, Port: port})
	}
	return cams, nil
}
