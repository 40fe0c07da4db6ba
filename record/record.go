// Package record converts between trees and a nested record form
// (id, optional data, ordered children) that travels as JSON or YAML.
//
// Payload never lives in a tree: importers move each record's Data into a
// payload.Associator keyed by id, and exporters read it back from there.
package record

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMissingID indicates a record, at any depth, with an empty id.
var ErrMissingID = errors.New("record: missing id")

// Record is one node of the nested form. Children keep their order.
type Record struct {
	ID       string   `json:"id" yaml:"id"`
	Data     any      `json:"data,omitempty" yaml:"data,omitempty"`
	Children []Record `json:"children,omitempty" yaml:"children,omitempty"`
}

// Validate walks r depth-first and reports the first record without an id,
// wrapping ErrMissingID with its path, e.g. "children[1].children[0]".
// The top-level record's path is "<root>".
func Validate(r Record) error {
	return validate(r, "")
}

func validate(r Record, path string) error {
	if r.ID == "" {
		if path == "" {
			path = "<root>"
		}
		return fmt.Errorf("%w at %s", ErrMissingID, path)
	}
	for i, c := range r.Children {
		if err := validate(c, childPath(path, i)); err != nil {
			return err
		}
	}
	return nil
}

func childPath(parent string, i int) string {
	seg := "children[" + strconv.Itoa(i) + "]"
	if parent == "" {
		return seg
	}
	return parent + "." + seg
}

// Len counts r and all its descendants.
func (r Record) Len() int {
	n := 1
	for _, c := range r.Children {
		n += c.Len()
	}
	return n
}
