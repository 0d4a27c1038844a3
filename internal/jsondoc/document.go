package jsondoc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var (
	// ErrNotObject is returned when a value expected to be a JSON object is not.
	ErrNotObject = errors.New("not a JSON object")

	// ErrSyntax reports data that is not a single valid JSON value.
	ErrSyntax = errors.New("invalid JSON")
)

// Two-space indent, one trailing newline. A negative width keeps every
// array element on its own line.
var prettyOptions = &pretty.Options{
	Width:    -1,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Document is a JSON object addressed with gjson path syntax, e.g.
// "jbrowse-plugin.name" or "plugins.0.url".
type Document struct {
	data []byte
}

// Parse validates data and requires the top-level value to be an object.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrSyntax
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("top-level value: %w", ErrNotObject)
	}
	return &Document{data: bytes.Clone(data)}, nil
}

// ReadFile reads and parses the JSON object stored at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read JSON file at %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse JSON file at %s, check for JSON syntax errors: %w", path, err)
	}
	return doc, nil
}

// Get returns the value at path.
func (d *Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d.data, path)
}

// String returns the string at path. ok is false when the value is absent
// or not a string.
func (d *Document) String(path string) (string, bool) {
	r := d.Get(path)
	if r.Type != gjson.String {
		return "", false
	}
	return r.Str, true
}

// Bool returns the boolean at path. ok is false for any other type.
func (d *Document) Bool(path string) (bool, bool) {
	r := d.Get(path)
	if r.Type != gjson.True && r.Type != gjson.False {
		return false, false
	}
	return r.Bool(), true
}

// Value returns the value at path as plain Go data: string, float64, bool,
// []any or map[string]any. Absent values and null are nil.
func (d *Document) Value(path string) any {
	r := d.Get(path)
	if !r.Exists() {
		return nil
	}
	return r.Value()
}

// Array returns the elements of the array at path.
func (d *Document) Array(path string) ([]gjson.Result, bool) {
	r := d.Get(path)
	if !r.IsArray() {
		return nil, false
	}
	return r.Array(), true
}

// Set writes v at path, creating missing parent objects. Existing keys keep
// their position; new keys are appended to their object.
func (d *Document) Set(path string, v any) error {
	data, err := sjson.SetBytes(d.data, path, v)
	if err != nil {
		return fmt.Errorf("setting %s: %w", path, err)
	}
	d.data = data
	return nil
}

// EnsurePath makes every object along keys exist, replacing null with an
// empty object, and returns the joined path. A scalar or array in the way
// is an error wrapping ErrNotObject.
func (d *Document) EnsurePath(keys ...string) (string, error) {
	for i := range keys {
		path := strings.Join(keys[:i+1], ".")
		r := d.Get(path)
		switch {
		case !r.Exists():
			return strings.Join(keys, "."), d.setRaw(path, "{}")
		case r.Type == gjson.Null:
			if err := d.setRaw(path, "{}"); err != nil {
				return "", err
			}
		case !r.IsObject():
			return "", fmt.Errorf("%s: %w", path, ErrNotObject)
		}
	}
	return strings.Join(keys, "."), nil
}

func (d *Document) setRaw(path, raw string) error {
	data, err := sjson.SetRawBytes(d.data, path, []byte(raw))
	if err != nil {
		return fmt.Errorf("setting %s: %w", path, err)
	}
	d.data = data
	return nil
}

// Bytes renders the document with two-space indentation and a trailing
// newline. String contents are copied verbatim, so characters such as
// U+2028 that encoding/json would escape survive a rewrite.
func (d *Document) Bytes() []byte {
	return pretty.PrettyOptions(d.data, prettyOptions)
}
