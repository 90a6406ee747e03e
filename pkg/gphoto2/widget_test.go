package gphoto2

import (
	"reflect"
	"testing"
)

func TestSplitConfigPath(t *testing.T) {
	cases := map[string][]string{
		"main/capturesettings/shutterspeed":  {"main", "capturesettings", "shutterspeed"},
		"/main/capturesettings/shutterspeed": {"main", "capturesettings", "shutterspeed"},
		"/main/actions/":                     {"main", "actions"},
		"shutterspeed":                       {"shutterspeed"},
		"//":                                 nil,
		"":                                   nil,
	}
	for in, want := range cases {
		if got := splitConfigPath(in); !reflect.DeepEqual(got, want) {
			t.Errorf("splitConfigPath(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWidgetTypeString(t *testing.T) {
	cases := map[WidgetType]string{
		WidgetWindow:  "window",
		WidgetSection: "section",
		WidgetText:    "text",
		WidgetRange:   "range",
		WidgetToggle:  "toggle",
		WidgetRadio:   "radio",
		WidgetMenu:    "menu",
		WidgetButton:  "button",
		WidgetDate:    "date",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(typ), got, want)
		}
	}
}

func TestWidgetTypeLeaf(t *testing.T) {
	if WidgetWindow.Leaf() || WidgetSection.Leaf() {
		t.Error("window and section widgets must not be leaves")
	}
	for _, typ := range []WidgetType{WidgetText, WidgetRange, WidgetToggle, WidgetRadio, WidgetMenu, WidgetButton, WidgetDate} {
		if !typ.Leaf() {
			t.Errorf("%s must be a leaf", typ)
		}
	}
}

func TestFilePathString(t *testing.T) {
	cases := []struct {
		path FilePath
		want string
	}{
		{FilePath{Folder: "/store_00010001/DCIM/100CANON", Name: "IMG_0001.JPG"}, "/store_00010001/DCIM/100CANON/IMG_0001.JPG"},
		{FilePath{Folder: "/", Name: "capt0000.jpg"}, "/capt0000.jpg"},
		{FilePath{Name: "capt0000.jpg"}, "/capt0000.jpg"},
	}
	for _, c := range cases {
		if got := c.path.String(); got != c.want {
			t.Errorf("%+v.String() = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestValueCoercion(t *testing.T) {
	if f, ok := toFloat(3); !ok || f != 3 {
		t.Errorf("toFloat(3) = %v, %v", f, ok)
	}
	if f, ok := toFloat(2.5); !ok || f != 2.5 {
		t.Errorf("toFloat(2.5) = %v, %v", f, ok)
	}
	if _, ok := toFloat("2.5"); ok {
		t.Error("toFloat must reject strings")
	}
	if b, ok := toBool(1); !ok || !b {
		t.Errorf("toBool(1) = %v, %v", b, ok)
	}
	if b, ok := toBool(false); !ok || b {
		t.Errorf("toBool(false) = %v, %v", b, ok)
	}
	if b, ok := toBool("on"); !ok || !b {
		t.Errorf("toBool(on) = %v, %v", b, ok)
	}
	if b, ok := toBool("Off"); !ok || b {
		t.Errorf("toBool(Off) = %v, %v", b, ok)
	}
	if b, ok := toBool("0"); !ok || b {
		t.Errorf("toBool(0) = %v, %v", b, ok)
	}
	if _, ok := toBool("yes"); ok {
		t.Error("toBool must reject unknown strings")
	}
}
