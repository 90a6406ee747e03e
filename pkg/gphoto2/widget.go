package gphoto2

// #include <stdlib.h>
// #include <gphoto2/gphoto2.h>
import "C"
import (
	"fmt"
	"strings"
	"time"
	"unsafe"
)

// WidgetType enumerates the node kinds of a camera's configuration tree.
type WidgetType int

const (
	WidgetWindow  WidgetType = C.GP_WIDGET_WINDOW
	WidgetSection WidgetType = C.GP_WIDGET_SECTION
	WidgetText    WidgetType = C.GP_WIDGET_TEXT
	WidgetRange   WidgetType = C.GP_WIDGET_RANGE
	WidgetToggle  WidgetType = C.GP_WIDGET_TOGGLE
	WidgetRadio   WidgetType = C.GP_WIDGET_RADIO
	WidgetMenu    WidgetType = C.GP_WIDGET_MENU
	WidgetButton  WidgetType = C.GP_WIDGET_BUTTON
	WidgetDate    WidgetType = C.GP_WIDGET_DATE
)

func (t WidgetType) String() string {
	switch t {
	case WidgetWindow:
		return "window"
	case WidgetSection:
		return "section"
	case WidgetText:
		return "text"
	case WidgetRange:
		return "range"
	case WidgetToggle:
		return "toggle"
	case WidgetRadio:
		return "radio"
	case WidgetMenu:
		return "menu"
	case WidgetButton:
		return "button"
	case WidgetDate:
		return "date"
	default:
		return fmt.Sprintf("widget(%d)", int(t))
	}
}

// Leaf reports whether widgets of this type carry a value, as opposed to
// structuring the tree.
func (t WidgetType) Leaf() bool {
	return t != WidgetWindow && t != WidgetSection
}

// Widget is one node of a camera's configuration tree. The root comes from
// Camera.Config and owns the whole tree; child widgets stay valid until the
// root is closed. Value changes only reach the camera through
// Camera.SetConfig.
type Widget struct {
	ptr  *C.CameraWidget
	root *C.CameraWidget
}

// Config fetches the camera's configuration tree. The caller must Close the
// returned root.
func (c *Camera) Config() (*Widget, error) {
	var w *C.CameraWidget
	if err := check(C.gp_camera_get_config(c.ptr, &w, c.ctx.ptr)); err != nil {
		return nil, err
	}
	return &Widget{ptr: w, root: w}, nil
}

// SetConfig writes the tree w belongs to back to the camera. Only widgets
// whose values changed since Config are sent.
func (c *Camera) SetConfig(w *Widget) error {
	return check(C.gp_camera_set_config(c.ptr, w.root, c.ctx.ptr))
}

// SetValueAt fetches the configuration tree, sets the widget at path and
// writes the change back. Shorthand for Config/ChildByPath/SetValue/
// SetConfig/Close.
func (c *Camera) SetValueAt(path string, value interface{}) error {
	root, err := c.Config()
	if err != nil {
		return err
	}
	defer root.Close()

	w, err := root.ChildByPath(path)
	if err != nil {
		return err
	}
	if err := w.SetValue(value); err != nil {
		return err
	}
	return c.SetConfig(root)
}

// Close releases the tree. Valid on the root only; all widgets of the tree
// become unusable.
func (w *Widget) Close() error {
	if w.root == nil {
		return nil
	}
	err := check(C.gp_widget_free(w.root))
	w.root = nil
	w.ptr = nil
	return err
}

// Name returns the widget's machine name ("shutterspeed").
func (w *Widget) Name() (string, error) {
	var s *C.char
	if err := check(C.gp_widget_get_name(w.ptr, &s)); err != nil {
		return "", err
	}
	return C.GoString(s), nil
}

// Label returns the widget's human-readable label ("Shutter Speed").
func (w *Widget) Label() (string, error) {
	var s *C.char
	if err := check(C.gp_widget_get_label(w.ptr, &s)); err != nil {
		return "", err
	}
	return C.GoString(s), nil
}

// Type returns the widget's node kind.
func (w *Widget) Type() (WidgetType, error) {
	var t C.CameraWidgetType
	if err := check(C.gp_widget_get_type(w.ptr, &t)); err != nil {
		return 0, err
	}
	return WidgetType(t), nil
}

// ReadOnly reports whether the camera rejects writes to this widget.
func (w *Widget) ReadOnly() (bool, error) {
	var ro C.int
	if err := check(C.gp_widget_get_readonly(w.ptr, &ro)); err != nil {
		return false, err
	}
	return ro != 0, nil
}

// Changed reports whether the widget's value was modified since the tree
// was fetched.
func (w *Widget) Changed() bool {
	return C.gp_widget_changed(w.ptr) != 0
}

// CountChildren returns the number of direct children.
func (w *Widget) CountChildren() int {
	return int(C.gp_widget_count_children(w.ptr))
}

// Child returns the i-th direct child.
func (w *Widget) Child(i int) (*Widget, error) {
	var c *C.CameraWidget
	if err := check(C.gp_widget_get_child(w.ptr, C.int(i), &c)); err != nil {
		return nil, err
	}
	return &Widget{ptr: c, root: w.root}, nil
}

// Children returns all direct children in tree order.
func (w *Widget) Children() ([]*Widget, error) {
	n := w.CountChildren()
	out := make([]*Widget, 0, n)
	for i := 0; i < n; i++ {
		c, err := w.Child(i)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ChildByName finds a widget by machine name anywhere below w.
func (w *Widget) ChildByName(name string) (*Widget, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var c *C.CameraWidget
	if err := check(C.gp_widget_get_child_by_name(w.ptr, cName, &c)); err != nil {
		return nil, err
	}
	return &Widget{ptr: c, root: w.root}, nil
}

// ChildByLabel finds a widget by human-readable label anywhere below w.
func (w *Widget) ChildByLabel(label string) (*Widget, error) {
	cLabel := C.CString(label)
	defer C.free(unsafe.Pointer(cLabel))

	var c *C.CameraWidget
	if err := check(C.gp_widget_get_child_by_label(w.ptr, cLabel, &c)); err != nil {
		return nil, err
	}
	return &Widget{ptr: c, root: w.root}, nil
}

// ChildByPath walks a slash-separated path of widget names below w, for
// example "main/capturesettings/shutterspeed". A single name (no slash)
// searches the whole subtree like ChildByName.
func (w *Widget) ChildByPath(path string) (*Widget, error) {
	parts := splitConfigPath(path)
	if len(parts) == 0 {
		return nil, ErrBadParameters
	}
	if len(parts) == 1 {
		return w.ChildByName(parts[0])
	}

	cur := w
	for _, part := range parts {
		next, err := cur.childByOwnName(part)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// childByOwnName matches direct children only, unlike the library's
// recursive by-name lookup.
func (w *Widget) childByOwnName(name string) (*Widget, error) {
	n := w.CountChildren()
	for i := 0; i < n; i++ {
		c, err := w.Child(i)
		if err != nil {
			return nil, err
		}
		cn, err := c.Name()
		if err != nil {
			return nil, err
		}
		if cn == name {
			return c, nil
		}
	}
	return nil, ErrBadParameters
}

// splitConfigPath breaks a slash path into widget names, ignoring empty
// segments so "/main/actions/" and "main/actions" are equivalent.
func splitConfigPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Value returns the widget's current value. The Go type depends on the
// widget type: string for text/radio/menu, float64 for range, bool for
// toggle, time.Time for date, nil for button and non-leaf widgets.
func (w *Widget) Value() (interface{}, error) {
	t, err := w.Type()
	if err != nil {
		return nil, err
	}

	switch t {
	case WidgetText, WidgetRadio, WidgetMenu:
		var s *C.char
		if err := check(C.gp_widget_get_value(w.ptr, unsafe.Pointer(&s))); err != nil {
			return nil, err
		}
		return C.GoString(s), nil
	case WidgetRange:
		var f C.float
		if err := check(C.gp_widget_get_value(w.ptr, unsafe.Pointer(&f))); err != nil {
			return nil, err
		}
		return float64(f), nil
	case WidgetToggle:
		var i C.int
		if err := check(C.gp_widget_get_value(w.ptr, unsafe.Pointer(&i))); err != nil {
			return nil, err
		}
		return i != 0, nil
	case WidgetDate:
		var i C.int
		if err := check(C.gp_widget_get_value(w.ptr, unsafe.Pointer(&i))); err != nil {
			return nil, err
		}
		return time.Unix(int64(i), 0), nil
	default:
		return nil, nil
	}
}

// SetValue stages a new value on the widget. Strings are accepted for
// text/radio/menu, numbers for range, bools (or ints) for toggle and
// time.Time for date. The change reaches the camera on Camera.SetConfig.
func (w *Widget) SetValue(value interface{}) error {
	t, err := w.Type()
	if err != nil {
		return err
	}

	switch t {
	case WidgetText, WidgetRadio, WidgetMenu:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s widget wants a string, got %T", t, value)
		}
		cs := C.CString(s)
		defer C.free(unsafe.Pointer(cs))
		return check(C.gp_widget_set_value(w.ptr, unsafe.Pointer(cs)))
	case WidgetRange:
		f, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("range widget wants a number, got %T", value)
		}
		cf := C.float(f)
		return check(C.gp_widget_set_value(w.ptr, unsafe.Pointer(&cf)))
	case WidgetToggle:
		b, ok := toBool(value)
		if !ok {
			return fmt.Errorf("toggle widget wants a bool, got %T", value)
		}
		ci := C.int(0)
		if b {
			ci = 1
		}
		return check(C.gp_widget_set_value(w.ptr, unsafe.Pointer(&ci)))
	case WidgetDate:
		ts, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("date widget wants a time.Time, got %T", value)
		}
		ci := C.int(ts.Unix())
		return check(C.gp_widget_set_value(w.ptr, unsafe.Pointer(&ci)))
	case WidgetButton:
		// Pressing a button is toggling it on.
		ci := C.int(1)
		return check(C.gp_widget_set_value(w.ptr, unsafe.Pointer(&ci)))
	default:
		return ErrBadParameters
	}
}

// Range returns the bounds and step of a range widget.
func (w *Widget) Range() (min, max, step float64, err error) {
	var cmin, cmax, cstep C.float
	if err := check(C.gp_widget_get_range(w.ptr, &cmin, &cmax, &cstep)); err != nil {
		return 0, 0, 0, err
	}
	return float64(cmin), float64(cmax), float64(cstep), nil
}

// Choices returns the allowed values of a radio or menu widget.
func (w *Widget) Choices() ([]string, error) {
	n := int(C.gp_widget_count_choices(w.ptr))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var s *C.char
		if err := check(C.gp_widget_get_choice(w.ptr, C.int(i), &s)); err != nil {
			return nil, err
		}
		out = append(out, C.GoString(s))
	}
	return out, nil
}

// toFloat widens any Go number. YAML decoding in particular hands back
// int for whole numbers.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// toBool also accepts the strings hand-edited profiles tend to use for
// toggles.
func toBool(v interface{}) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case int:
		return b != 0, true
	case string:
		switch strings.ToLower(b) {
		case "on", "true", "1":
			return true, true
		case "off", "false", "0":
			return false, true
		}
	}
	return false, false
}
