package manifest

import (
	"fmt"
	"os"

	"github.com/jbrowse-plugin-kit/plugin-setup/internal/jsondoc"
)

// Manifest is an editable package.json.
type Manifest struct {
	doc *jsondoc.Document
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read JSON file at %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse JSON file at %s, check for JSON syntax errors: %w", path, err)
	}
	return m, nil
}

// Parse parses manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	doc, err := jsondoc.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &Manifest{doc: doc}, nil
}

// Name returns the raw package name. ok is false when the field is absent
// or not a string.
func (m *Manifest) Name() (name string, ok bool) {
	return m.doc.String(FieldName)
}

// Version returns the version string, or "" when absent.
func (m *Manifest) Version() string {
	v, _ := m.doc.String(FieldVersion)
	return v
}

// Repository returns the raw "repository" field as plain Go data (string,
// map[string]any, ...), or nil.
func (m *Manifest) Repository() any {
	return m.doc.Value(FieldRepository)
}

// PluginName returns jbrowse-plugin.name, or "" when absent.
func (m *Manifest) PluginName() string {
	name, _ := m.doc.String(pluginPath(pluginFieldName))
	return name
}

// Initialized reports whether the explicit jbrowse-plugin.initialized marker
// is set.
func (m *Manifest) Initialized() bool {
	done, _ := m.doc.Bool(pluginPath(pluginFieldInitialized))
	return done
}

// SetPluginName writes name into jbrowse-plugin.name and
// config.jbrowse.plugin.name, creating the nested objects when needed.
func (m *Manifest) SetPluginName(name string) error {
	if _, err := m.doc.EnsurePath(FieldPlugin); err != nil {
		return err
	}
	if err := m.doc.Set(pluginPath(pluginFieldName), name); err != nil {
		return err
	}

	plugin, err := m.doc.EnsurePath(configPluginPath...)
	if err != nil {
		return err
	}
	return m.doc.Set(plugin+"."+pluginFieldName, name)
}

// MarkInitialized sets jbrowse-plugin.initialized to true.
func (m *Manifest) MarkInitialized() error {
	if _, err := m.doc.EnsurePath(FieldPlugin); err != nil {
		return err
	}
	return m.doc.Set(pluginPath(pluginFieldInitialized), true)
}

// Bytes renders the manifest with two-space indentation and a trailing newline.
func (m *Manifest) Bytes() []byte {
	return m.doc.Bytes()
}

func pluginPath(field string) string {
	return FieldPlugin + "." + field
}
