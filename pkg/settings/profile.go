package settings

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile is a saveable snapshot of a camera's writable settings. Entries
// keep tree order so profiles diff cleanly.
type Profile struct {
	Camera  string    `yaml:"camera,omitempty"`
	Saved   time.Time `yaml:"saved"`
	Entries []Entry   `yaml:"settings"`
}

// Entry is one recorded setting value.
type Entry struct {
	Path  string      `yaml:"path"`
	Value interface{} `yaml:"value"`
}

// Profile snapshots the writable, non-read-only settings of the tree.
// Dates are excluded: restoring a clock snapshot is never what anyone
// wants.
func (t *Tree) Profile(camera string) Profile {
	p := Profile{Camera: camera, Saved: time.Now().UTC()}
	for _, s := range t.settings {
		if s.ReadOnly || !s.Kind.Writable() || s.Kind == KindDate {
			continue
		}
		p.Entries = append(p.Entries, Entry{Path: s.Path, Value: s.Value})
	}
	return p
}

// WriteProfile writes p as YAML.
func WriteProfile(w io.Writer, p Profile) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(p)
}

// ReadProfile parses a YAML profile.
func ReadProfile(r io.Reader) (Profile, error) {
	var p Profile
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// Setter pushes one setting value to a camera. The tether driver
// implements it.
type Setter interface {
	Apply(path string, value interface{}) error
}

// ApplyResult reports what a profile application did.
type ApplyResult struct {
	Applied int
	Skipped []string // paths missing from the current tree, or unchanged
}

// Apply pushes a profile through set. Settings absent from tree (a
// different camera, a mode-dependent option) are skipped, not errors;
// values that already match are not re-sent. The first set failure aborts.
func Apply(p Profile, tree *Tree, set Setter) (ApplyResult, error) {
	var res ApplyResult
	for _, e := range p.Entries {
		cur, ok := tree.Lookup(e.Path)
		if !ok {
			res.Skipped = append(res.Skipped, e.Path)
			continue
		}
		if cur.Value == e.Value {
			res.Skipped = append(res.Skipped, e.Path)
			continue
		}
		if err := cur.Validate(e.Value); err != nil {
			return res, err
		}
		if err := set.Apply(e.Path, e.Value); err != nil {
			return res, fmt.Errorf("apply %s: %w", e.Path, err)
		}
		res.Applied++
	}
	return res, nil
}
