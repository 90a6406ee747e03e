package tether

import (
	"github.com/rickardholmberg/spiggot/pkg/gphoto2"
	"github.com/rickardholmberg/spiggot/pkg/settings"
)

// widgetNode adapts a libgphoto2 widget to settings.Node.
type widgetNode struct {
	w *gphoto2.Widget
}

func (n widgetNode) Name() (string, error)  { return n.w.Name() }
func (n widgetNode) Label() (string, error) { return n.w.Label() }

func (n widgetNode) Kind() (settings.Kind, error) {
	t, err := n.w.Type()
	if err != nil {
		return "", err
	}
	switch t {
	case gphoto2.WidgetText:
		return settings.KindText, nil
	case gphoto2.WidgetRange:
		return settings.KindRange, nil
	case gphoto2.WidgetToggle:
		return settings.KindToggle, nil
	case gphoto2.WidgetRadio:
		return settings.KindRadio, nil
	case gphoto2.WidgetMenu:
		return settings.KindMenu, nil
	case gphoto2.WidgetButton:
		return settings.KindButton, nil
	case gphoto2.WidgetDate:
		return settings.KindDate, nil
	default:
		// window, section
		return "", nil
	}
}

func (n widgetNode) Children() ([]settings.Node, error) {
	children, err := n.w.Children()
	if err != nil {
		return nil, err
	}
	out := make([]settings.Node, len(children))
	for i, c := range children {
		out[i] = widgetNode{c}
	}
	return out, nil
}

func (n widgetNode) Value() (interface{}, error) {
	return n.w.Value()
}

func (n widgetNode) Choices() ([]string, error) {
	return n.w.Choices()
}

func (n widgetNode) Bounds() (min, max, step float64, err error) {
	return n.w.Range()
}

func (n widgetNode) ReadOnly() (bool, error) {
	return n.w.ReadOnly()
}
