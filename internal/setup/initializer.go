package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jbrowse-plugin-kit/plugin-setup/internal/config"
	"github.com/jbrowse-plugin-kit/plugin-setup/internal/manifest"
	"github.com/jbrowse-plugin-kit/plugin-setup/internal/naming"
	"github.com/jbrowse-plugin-kit/plugin-setup/internal/platform"
)

var (
	// ErrNotInitialized means the manifest name is unset or still the
	// template's own name, i.e. "yarn init" has not been run.
	ErrNotInitialized = errors.New("setup has not been started")

	// ErrInvalidManifest wraps schema violations found in package.json.
	ErrInvalidManifest = errors.New("invalid package manifest")
)

// Status describes what a step did to its file.
type Status string

const (
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
	StatusSkipped   Status = "skipped"
)

// Step records the outcome of one file transform.
type Step struct {
	Name   string
	Path   string
	Status Status
	Detail string
}

// Result summarizes a run.
type Result struct {
	Names      naming.Names
	AlreadyRun bool
	BadgeURL   string
	Steps      []Step
	Warnings   []string
}

// Initializer rewrites the project rooted at a directory.
type Initializer struct {
	root     string
	settings *config.Settings
	logger   *slog.Logger
}

// New returns an Initializer for root. A nil settings uses config.Default;
// a nil logger uses slog.Default.
func New(root string, settings *config.Settings, logger *slog.Logger) *Initializer {
	if settings == nil {
		settings = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Initializer{root: root, settings: settings, logger: logger}
}

// Run executes every step in order and stops at the first failure. Nothing
// is written when the manifest name precondition fails.
func (in *Initializer) Run(ctx context.Context) (*Result, error) {
	state, err := in.load()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Names:      state.names,
		AlreadyRun: state.alreadyRun,
		Warnings:   state.warnings,
	}
	if url, ok := naming.RepoURL(state.manifest.Repository()); ok {
		result.BadgeURL = in.settings.BadgeURL(url)
	}
	for _, w := range state.warnings {
		in.logger.Warn(w, "path", state.manifestPath)
	}
	if state.alreadyRun {
		in.logger.Info("setup appears to have been run already", "plugin", state.manifest.PluginName())
	}

	steps := []func(*runState, *Result) (Step, error){
		in.rewriteManifest,
		in.rewriteEntryPoint,
		in.rewriteBrowserConfig,
		in.rewriteFixtureConfig,
		in.rewriteReadme,
		in.relocateCIWorkflow,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		s, err := step(state, result)
		if err != nil {
			in.logger.Error("setup step failed", "step", s.Name, "path", s.Path, "err", err)
			return result, err
		}
		in.logStep(s)
		result.Steps = append(result.Steps, s)
	}
	return result, nil
}

// runState is what every step needs from the manifest, computed once before
// any write.
type runState struct {
	manifest     *manifest.Manifest
	manifestPath string
	names        naming.Names
	alreadyRun   bool
	warnings     []string
}

func (in *Initializer) load() (*runState, error) {
	manifestPath := in.path(in.settings.Files.Manifest)
	m, err := manifest.Load(manifestPath)
	if err != nil {
		in.logger.Error("could not load manifest", "path", manifestPath, "err", err)
		return nil, err
	}

	raw, err := in.checkName(m)
	if err != nil {
		return nil, err
	}

	validation, err := manifest.ValidateFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", manifestPath, err)
	}
	if !validation.Valid {
		msgs := make([]string, 0, len(validation.Issues))
		for _, issue := range validation.Issues {
			msgs = append(msgs, issue.String())
		}
		return nil, fmt.Errorf("%w %s: %s", ErrInvalidManifest, manifestPath, strings.Join(msgs, "; "))
	}

	return &runState{
		manifest:     m,
		manifestPath: manifestPath,
		names:        naming.Derive(raw, in.settings.Template.ClassPrefix),
		alreadyRun:   in.alreadyRun(m),
		warnings:     validation.Warnings,
	}, nil
}

// checkName enforces that "yarn init" (or "npm init") has given the project
// its own name.
func (in *Initializer) checkName(m *manifest.Manifest) (string, error) {
	raw, ok := m.Name()
	if !ok || strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf(`%w: no name defined in %s; run "yarn init" (or "npm init") before running setup`,
			ErrNotInitialized, in.settings.Files.Manifest)
	}
	if raw == in.settings.Template.PackageName {
		return "", fmt.Errorf(`%w: %s still has the template name %q; run "yarn init" (or "npm init") before running setup`,
			ErrNotInitialized, in.settings.Files.Manifest, raw)
	}
	return raw, nil
}

// alreadyRun is true once the explicit marker is present or the plugin name
// no longer matches the template's.
func (in *Initializer) alreadyRun(m *manifest.Manifest) bool {
	return m.Initialized() || m.PluginName() != in.settings.Template.PluginName
}

func (in *Initializer) path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(in.root, rel)
}

func (in *Initializer) logStep(s Step) {
	switch s.Status {
	case StatusUpdated:
		in.logger.Info("updated", "step", s.Name, "path", s.Path)
	default:
		in.logger.Debug(string(s.Status), "step", s.Name, "path", s.Path, "detail", s.Detail)
	}
}

// Report is a read-only view of a project's setup state.
type Report struct {
	Names      naming.Names
	AlreadyRun bool
	RepoURL    string
	Warnings   []string
	Workflow   WorkflowState
}

// WorkflowState tells where the CI workflow file currently lives.
type WorkflowState struct {
	SourcePresent      bool
	DestinationPresent bool
}

// Inspect loads and validates the manifest like Run but writes nothing.
func (in *Initializer) Inspect() (*Report, error) {
	state, err := in.load()
	if err != nil {
		return nil, err
	}
	r := &Report{
		Names:      state.names,
		AlreadyRun: state.alreadyRun,
		Warnings:   state.warnings,
		Workflow: WorkflowState{
			SourcePresent:      platform.Exists(in.path(in.settings.Workflow.Source)),
			DestinationPresent: platform.Exists(in.path(in.settings.Workflow.Destination)),
		},
	}
	if url, ok := naming.RepoURL(state.manifest.Repository()); ok {
		r.RepoURL = url
	}
	return r, nil
}
