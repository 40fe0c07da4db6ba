package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrEmptyInput indicates Decode found no document.
var ErrEmptyInput = errors.New("record: empty input")

// Decode reads one YAML or JSON document from r and validates it.
func Decode(r io.Reader) (Record, error) {
	var rec Record
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, ErrEmptyInput
		}
		return Record{}, fmt.Errorf("record: decode: %w", err)
	}
	if err := Validate(rec); err != nil {
		return Record{}, err
	}

	return rec, nil
}

// Parse is Decode over a byte slice.
func Parse(b []byte) (Record, error) {
	return Decode(bytes.NewReader(b))
}

// EncodeJSON writes rec to w as indented JSON.
func EncodeJSON(w io.Writer, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("record: encode json: %w", err)
	}
	return nil
}

// EncodeYAML writes rec to w as YAML with two-space indentation.
func EncodeYAML(w io.Writer, rec Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("record: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("record: encode yaml: %w", err)
	}
	return nil
}
