// Package branding provides compile-time identity values for the CLI.
//
// Forks that ship the tool under another name edit branding.yaml in this
// package; //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	ConfigFile   string `yaml:"config_file"`
	TemplateRepo string `yaml:"template_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "plugin-setup",
			DisplayName:  "Plugin Setup",
			Description:  "Personalize a freshly cloned genome-browser plugin template",
			EnvPrefix:    "PLUGIN_SETUP",
			ConfigFile:   ".plugin-setup.yaml",
			TemplateRepo: "GMOD/jbrowse-plugin-template",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "plugin-setup").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "PLUGIN_SETUP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigFile returns the name of the optional per-project settings file.
func ConfigFile() string { load(); return defaults.ConfigFile }

// TemplateRepo returns the "owner/repo" of the upstream plugin template.
func TemplateRepo() string { load(); return defaults.TemplateRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("dir") → "PLUGIN_SETUP_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
