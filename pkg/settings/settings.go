// Package settings flattens a camera's configuration widget tree into
// path-addressed, typed settings. The tree's structure and option semantics
// belong to the camera library; this package only gives them a stable
// Go-side shape.
package settings

import (
	"fmt"
	"strings"
)

// Kind mirrors the widget types that carry values.
type Kind string

const (
	KindText   Kind = "text"
	KindRange  Kind = "range"
	KindToggle Kind = "toggle"
	KindRadio  Kind = "radio"
	KindMenu   Kind = "menu"
	KindButton Kind = "button"
	KindDate   Kind = "date"
)

// Writable reports whether settings of this kind hold a persistent value
// (buttons fire, they don't hold state).
func (k Kind) Writable() bool {
	return k != KindButton
}

// Setting is one leaf of the configuration tree.
type Setting struct {
	// Path addresses the leaf from the root, slash-separated
	// ("main/capturesettings/shutterspeed").
	Path     string
	Label    string
	Kind     Kind
	Value    interface{}
	Choices  []string // radio and menu only
	Min      float64  // range only
	Max      float64
	Step     float64
	ReadOnly bool
}

// Node abstracts one widget-tree node, so flattening does not need camera
// hardware. The tether driver adapts libgphoto2 widgets onto it.
type Node interface {
	Name() (string, error)
	Label() (string, error)
	// Kind returns "" for structural nodes (window, section).
	Kind() (Kind, error)
	Children() ([]Node, error)
	Value() (interface{}, error)
	Choices() ([]string, error)
	Bounds() (min, max, step float64, err error)
	ReadOnly() (bool, error)
}

// Tree is a flattened, path-addressed view of a configuration tree,
// preserving the camera's own ordering.
type Tree struct {
	settings []Setting
	index    map[string]int
}

// Walk flattens the tree rooted at root. The root's own name is not part
// of the paths.
func Walk(root Node) (*Tree, error) {
	t := &Tree{index: make(map[string]int)}
	children, err := root.Children()
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		if err := t.walk(c, ""); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tree) walk(n Node, prefix string) error {
	name, err := n.Name()
	if err != nil {
		return err
	}
	path := name
	if prefix != "" {
		path = prefix + "/" + name
	}

	kind, err := n.Kind()
	if err != nil {
		return err
	}
	if kind == "" {
		children, err := n.Children()
		if err != nil {
			return err
		}
		for _, c := range children {
			if err := t.walk(c, path); err != nil {
				return err
			}
		}
		return nil
	}

	s := Setting{Path: path, Kind: kind}
	if s.Label, err = n.Label(); err != nil {
		return err
	}
	if s.Value, err = n.Value(); err != nil {
		return err
	}
	if s.ReadOnly, err = n.ReadOnly(); err != nil {
		return err
	}
	switch kind {
	case KindRadio, KindMenu:
		if s.Choices, err = n.Choices(); err != nil {
			return err
		}
	case KindRange:
		if s.Min, s.Max, s.Step, err = n.Bounds(); err != nil {
			return err
		}
	}

	t.index[path] = len(t.settings)
	t.settings = append(t.settings, s)
	return nil
}

// All returns every setting in tree order.
func (t *Tree) All() []Setting {
	return t.settings
}

// Len returns the number of settings.
func (t *Tree) Len() int {
	return len(t.settings)
}

// Lookup finds a setting by exact path, or, when path has no slash, by its
// final path element.
func (t *Tree) Lookup(path string) (Setting, bool) {
	if i, ok := t.index[path]; ok {
		return t.settings[i], true
	}
	if !strings.Contains(path, "/") {
		for _, s := range t.settings {
			if strings.HasSuffix(s.Path, "/"+path) {
				return s, true
			}
		}
	}
	return Setting{}, false
}

// Validate checks value against the setting's kind and constraints without
// touching the camera.
func (s Setting) Validate(value interface{}) error {
	if s.ReadOnly {
		return fmt.Errorf("%s is read-only", s.Path)
	}

	switch s.Kind {
	case KindRadio, KindMenu:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s wants a string, got %T", s.Path, value)
		}
		for _, c := range s.Choices {
			if c == v {
				return nil
			}
		}
		return fmt.Errorf("%q is not a choice of %s", v, s.Path)
	case KindRange:
		var f float64
		switch n := value.(type) {
		case float64:
			f = n
		case int:
			f = float64(n)
		default:
			return fmt.Errorf("%s wants a number, got %T", s.Path, value)
		}
		if s.Min != s.Max && (f < s.Min || f > s.Max) {
			return fmt.Errorf("%v is outside [%v, %v] for %s", f, s.Min, s.Max, s.Path)
		}
		return nil
	case KindText:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%s wants a string, got %T", s.Path, value)
		}
		return nil
	case KindToggle:
		switch v := value.(type) {
		case bool, int:
			return nil
		case string:
			// Hand-edited profiles spell toggles "on"/"off".
			switch strings.ToLower(v) {
			case "on", "off", "true", "false", "1", "0":
				return nil
			}
			return fmt.Errorf("%q is not a toggle value for %s", v, s.Path)
		}
		return fmt.Errorf("%s wants a bool, got %T", s.Path, value)
	default:
		return nil
	}
}
