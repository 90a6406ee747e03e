package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode builds widget trees in memory.
type fakeNode struct {
	name     string
	label    string
	kind     Kind
	value    interface{}
	choices  []string
	min, max float64
	step     float64
	readOnly bool
	children []*fakeNode
}

func (n *fakeNode) Name() (string, error)  { return n.name, nil }
func (n *fakeNode) Label() (string, error) { return n.label, nil }
func (n *fakeNode) Kind() (Kind, error)    { return n.kind, nil }
func (n *fakeNode) Children() ([]Node, error) {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out, nil
}
func (n *fakeNode) Value() (interface{}, error) { return n.value, nil }
func (n *fakeNode) Choices() ([]string, error)  { return n.choices, nil }
func (n *fakeNode) ReadOnly() (bool, error)     { return n.readOnly, nil }
func (n *fakeNode) Bounds() (float64, float64, float64, error) {
	return n.min, n.max, n.step, nil
}

func testTree(t *testing.T) *Tree {
	t.Helper()
	root := &fakeNode{name: "root", children: []*fakeNode{
		{name: "main", children: []*fakeNode{
			{name: "capturesettings", children: []*fakeNode{
				{name: "shutterspeed", label: "Shutter Speed", kind: KindRadio,
					value: "1/125", choices: []string{"1/60", "1/125", "1/250"}},
				{name: "exposurecompensation", label: "Exposure Compensation", kind: KindRange,
					value: 0.0, min: -5, max: 5, step: 0.333},
			}},
			{name: "settings", children: []*fakeNode{
				{name: "autofocus", label: "Autofocus", kind: KindToggle, value: true},
				{name: "serialnumber", label: "Serial Number", kind: KindText,
					value: "12345", readOnly: true},
			}},
			{name: "actions", children: []*fakeNode{
				{name: "autofocusdrive", label: "Drive Autofocus", kind: KindButton},
			}},
		}},
	}}

	tree, err := Walk(root)
	require.NoError(t, err)
	return tree
}

func TestWalkFlattensLeaves(t *testing.T) {
	tree := testTree(t)

	require.Equal(t, 5, tree.Len())

	var paths []string
	for _, s := range tree.All() {
		paths = append(paths, s.Path)
	}
	assert.Equal(t, []string{
		"main/capturesettings/shutterspeed",
		"main/capturesettings/exposurecompensation",
		"main/settings/autofocus",
		"main/settings/serialnumber",
		"main/actions/autofocusdrive",
	}, paths)
}

func TestLookup(t *testing.T) {
	tree := testTree(t)

	s, ok := tree.Lookup("main/capturesettings/shutterspeed")
	require.True(t, ok)
	assert.Equal(t, KindRadio, s.Kind)
	assert.Equal(t, "1/125", s.Value)
	assert.Equal(t, []string{"1/60", "1/125", "1/250"}, s.Choices)

	// Bare names match on the final path element.
	s, ok = tree.Lookup("autofocus")
	require.True(t, ok)
	assert.Equal(t, "main/settings/autofocus", s.Path)

	_, ok = tree.Lookup("main/capturesettings/iso")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	tree := testTree(t)

	shutter, _ := tree.Lookup("shutterspeed")
	assert.NoError(t, shutter.Validate("1/250"))
	assert.Error(t, shutter.Validate("1/8000"), "not a choice")
	assert.Error(t, shutter.Validate(250), "wrong type")

	exp, _ := tree.Lookup("exposurecompensation")
	assert.NoError(t, exp.Validate(1.0))
	assert.NoError(t, exp.Validate(-2))
	assert.Error(t, exp.Validate(9.0), "out of range")

	serial, _ := tree.Lookup("serialnumber")
	assert.Error(t, serial.Validate("67890"), "read-only")

	af, _ := tree.Lookup("autofocus")
	assert.NoError(t, af.Validate(false))
	assert.NoError(t, af.Validate("off"), "profile spelling")
	assert.Error(t, af.Validate("maybe"))
}

type recordingSetter struct {
	applied map[string]interface{}
}

func (r *recordingSetter) Apply(path string, value interface{}) error {
	if r.applied == nil {
		r.applied = make(map[string]interface{})
	}
	r.applied[path] = value
	return nil
}

func TestProfileRoundTrip(t *testing.T) {
	tree := testTree(t)

	p := tree.Profile("Nikon D90")
	// Buttons and read-only settings stay out of profiles.
	assert.Len(t, p.Entries, 3)
	for _, e := range p.Entries {
		assert.NotEqual(t, "main/actions/autofocusdrive", e.Path)
		assert.NotEqual(t, "main/settings/serialnumber", e.Path)
	}
}

func TestApply(t *testing.T) {
	tree := testTree(t)

	p := Profile{
		Camera: "Nikon D90",
		Entries: []Entry{
			{Path: "main/capturesettings/shutterspeed", Value: "1/250"}, // changed
			{Path: "main/settings/autofocus", Value: true},              // unchanged
			{Path: "main/capturesettings/iso", Value: "400"},            // gone on this camera
		},
	}

	set := &recordingSetter{}
	res, err := Apply(p, tree, set)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Applied)
	assert.ElementsMatch(t, []string{"main/settings/autofocus", "main/capturesettings/iso"}, res.Skipped)
	assert.Equal(t, "1/250", set.applied["main/capturesettings/shutterspeed"])
}

func TestApplyRejectsInvalidValue(t *testing.T) {
	tree := testTree(t)

	p := Profile{Entries: []Entry{
		{Path: "main/capturesettings/shutterspeed", Value: "1/8000"},
	}}

	_, err := Apply(p, tree, &recordingSetter{})
	assert.Error(t, err)
}
