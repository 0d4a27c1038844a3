package config

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jbrowse-plugin-kit/plugin-setup/internal/branding"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const fileType = "yaml"

// Settings holds every tunable the initializer and scaffolder read.
type Settings struct {
	Files        Files    `mapstructure:"files" yaml:"files"`
	Template     Template `mapstructure:"template" yaml:"template"`
	Workflow     Workflow `mapstructure:"workflow" yaml:"workflow"`
	DevServerURL string   `mapstructure:"dev_server_url" yaml:"dev_server_url"`
}

// Files lists project-relative paths of the files rewritten during setup.
type Files struct {
	Manifest      string `mapstructure:"manifest" yaml:"manifest"`
	EntryPoint    string `mapstructure:"entry_point" yaml:"entry_point"`
	BrowserConfig string `mapstructure:"browser_config" yaml:"browser_config"`
	FixtureConfig string `mapstructure:"fixture_config" yaml:"fixture_config"`
	Readme        string `mapstructure:"readme" yaml:"readme"`
}

// Template holds the placeholder values shipped in the pristine template.
type Template struct {
	PackageName string `mapstructure:"package_name" yaml:"package_name"`
	PluginName  string `mapstructure:"plugin_name" yaml:"plugin_name"`
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
	ClassPrefix string `mapstructure:"class_prefix" yaml:"class_prefix"`
}

// Workflow describes the CI workflow file relocated on first run and the
// badge that links to it.
type Workflow struct {
	Source      string `mapstructure:"source" yaml:"source"`
	Destination string `mapstructure:"destination" yaml:"destination"`
	BadgeName   string `mapstructure:"badge_name" yaml:"badge_name"`
	Branch      string `mapstructure:"branch" yaml:"branch"`
}

var defaultValues = map[string]any{
	"files.manifest":       "package.json",
	"files.entry_point":    filepath.Join("src", "index.ts"),
	"files.browser_config": "jbrowse_config.json",
	"files.fixture_config": filepath.Join("cypress", "fixtures", "hello_view.json"),
	"files.readme":         "README.md",

	"template.package_name": "jbrowse-plugin-template",
	"template.plugin_name":  "Template",
	"template.placeholder":  "TemplatePlugin",
	"template.class_prefix": "jbrowse-plugin-",

	"workflow.source":      "integration.yml",
	"workflow.destination": filepath.Join(".github", "workflows", "integration.yml"),
	"workflow.badge_name":  "Integration",
	"workflow.branch":      "main",

	"dev_server_url": "http://localhost:9000/dist/{{.SafeName}}.umd.development.js",
}

// Default returns the built-in settings without consulting files or env.
func Default() *Settings {
	v := viper.New()
	setDefaults(v)
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		panic(fmt.Sprintf("decoding built-in settings: %v", err))
	}
	return &s
}

// FilePath returns the path of the optional settings file for a project root.
func FilePath(root string) string {
	return filepath.Join(root, branding.ConfigFile())
}

// Load resolves settings for the project at root. An explicit file must
// exist; otherwise the project's .plugin-setup.yaml is read when present.
func Load(root, file string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case file != "":
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings file %s: %w", file, err)
		}
	default:
		path := FilePath(root)
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading settings file %s: %w", path, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate reports settings that would make the initializer misbehave.
func (s *Settings) Validate() error {
	var errs []error
	required := map[string]string{
		"files.manifest":       s.Files.Manifest,
		"files.entry_point":    s.Files.EntryPoint,
		"files.browser_config": s.Files.BrowserConfig,
		"files.fixture_config": s.Files.FixtureConfig,
		"files.readme":         s.Files.Readme,
		"template.placeholder": s.Template.Placeholder,
		"dev_server_url":       s.DevServerURL,
	}
	for _, key := range slices.Sorted(maps.Keys(required)) {
		if strings.TrimSpace(required[key]) == "" {
			errs = append(errs, fmt.Errorf("setting %s must not be empty", key))
		}
	}
	if s.DevServerURL != "" {
		if _, err := template.New("url").Parse(s.DevServerURL); err != nil {
			errs = append(errs, fmt.Errorf("setting dev_server_url: %w", err))
		}
	}
	return errors.Join(errs...)
}

// PluginURL renders the dev-server URL for a safe package name.
func (s *Settings) PluginURL(safeName string) (string, error) {
	tmpl, err := template.New("url").Option("missingkey=error").Parse(s.DevServerURL)
	if err != nil {
		return "", fmt.Errorf("parsing dev_server_url: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ SafeName string }{safeName}); err != nil {
		return "", fmt.Errorf("rendering dev_server_url: %w", err)
	}
	return buf.String(), nil
}

// BadgeURL returns the CI badge image URL for a repository web URL.
func (s *Settings) BadgeURL(repoURL string) string {
	return fmt.Sprintf("%s/workflows/%s/badge.svg?branch=%s", repoURL, s.Workflow.BadgeName, s.Workflow.Branch)
}

// Marshal renders the settings as YAML, suitable for a .plugin-setup.yaml.
func (s *Settings) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling settings: %w", err)
	}
	return out, nil
}

func setDefaults(v *viper.Viper) {
	for key, val := range defaultValues {
		v.SetDefault(key, val)
	}
}
