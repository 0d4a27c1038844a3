package manifest

// Top-level package.json fields the initializer reads or writes.
const (
	FieldName       = "name"
	FieldVersion    = "version"
	FieldRepository = "repository"
	FieldPlugin     = "jbrowse-plugin"
	FieldConfig     = "config"
)

// Fields inside the "jbrowse-plugin" block.
const (
	pluginFieldName        = "name"
	pluginFieldInitialized = "initialized"
)

// configPluginPath locates config.jbrowse.plugin.
var configPluginPath = []string{FieldConfig, "jbrowse", "plugin"}
