package setup

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jbrowse-plugin-kit/plugin-setup/internal/jsondoc"
	"github.com/jbrowse-plugin-kit/plugin-setup/internal/platform"
)

const (
	stepManifest      = "manifest"
	stepEntryPoint    = "entry-point"
	stepBrowserConfig = "browser-config"
	stepFixtureConfig = "fixture-config"
	stepReadme        = "readme"
	stepWorkflow      = "ci-workflow"
)

func (in *Initializer) rewriteManifest(st *runState, _ *Result) (Step, error) {
	s := Step{Name: stepManifest, Path: st.manifestPath}
	if err := st.manifest.SetPluginName(st.names.Class); err != nil {
		return s, fmt.Errorf("setting plugin name in %s: %w", s.Path, err)
	}
	if err := st.manifest.MarkInitialized(); err != nil {
		return s, fmt.Errorf("marking %s initialized: %w", s.Path, err)
	}
	return writeIfChanged(s, st.manifest.Bytes())
}

func (in *Initializer) rewriteEntryPoint(st *runState, _ *Result) (Step, error) {
	s := Step{Name: stepEntryPoint, Path: in.path(in.settings.Files.EntryPoint)}
	content, err := os.ReadFile(s.Path)
	if err != nil {
		return s, fmt.Errorf("could not read entry point at %s: %w", s.Path, err)
	}

	placeholder := in.settings.Template.Placeholder
	replacement := st.names.Class + "Plugin"
	if replacement != placeholder && strings.Contains(replacement, placeholder) &&
		strings.Contains(string(content), replacement) {
		// The class name embeds the placeholder and is already in place;
		// replacing again would grow it.
		s.Status = StatusSkipped
		s.Detail = "class name contains placeholder " + placeholder
		return s, nil
	}
	updated := strings.ReplaceAll(string(content), placeholder, replacement)
	return writeIfChanged(s, []byte(updated))
}

func (in *Initializer) rewriteBrowserConfig(st *runState, _ *Result) (Step, error) {
	return in.rewritePluginConfig(stepBrowserConfig, in.settings.Files.BrowserConfig, st)
}

func (in *Initializer) rewriteFixtureConfig(st *runState, _ *Result) (Step, error) {
	return in.rewritePluginConfig(stepFixtureConfig, in.settings.Files.FixtureConfig, st)
}

// rewritePluginConfig points the first entry of the "plugins" array at the
// development build of this plugin.
func (in *Initializer) rewritePluginConfig(name, rel string, st *runState) (Step, error) {
	s := Step{Name: name, Path: in.path(rel)}
	doc, err := jsondoc.ReadFile(s.Path)
	if err != nil {
		return s, err
	}
	plugins, ok := doc.Array("plugins")
	if !ok || len(plugins) == 0 {
		return s, fmt.Errorf("%s: \"plugins\" must be a non-empty array", s.Path)
	}
	if !plugins[0].IsObject() {
		return s, fmt.Errorf("%s: plugins[0]: %w", s.Path, jsondoc.ErrNotObject)
	}

	url, err := in.settings.PluginURL(st.names.Safe)
	if err != nil {
		return s, err
	}
	if err := doc.Set("plugins.0.name", st.names.Class); err != nil {
		return s, err
	}
	if err := doc.Set("plugins.0.url", url); err != nil {
		return s, err
	}
	return writeIfChanged(s, doc.Bytes())
}

func (in *Initializer) rewriteReadme(st *runState, result *Result) (Step, error) {
	s := Step{Name: stepReadme, Path: in.path(in.settings.Files.Readme)}
	content, err := os.ReadFile(s.Path)
	if err != nil {
		return s, fmt.Errorf("could not read README at %s: %w", s.Path, err)
	}

	badgePrefix := "![" + in.settings.Workflow.BadgeName + "]("
	updated, changed := retitleReadme(string(content), st.names.Raw, in.badgeLine(result.BadgeURL), badgePrefix, lineEnding())
	if !changed {
		s.Status = StatusSkipped
		s.Detail = "title already set"
		return s, nil
	}
	return writeIfChanged(s, []byte(updated))
}

func (in *Initializer) badgeLine(badgeURL string) string {
	if badgeURL == "" {
		return ""
	}
	return fmt.Sprintf("![%s](%s)", in.settings.Workflow.BadgeName, badgeURL)
}

func (in *Initializer) relocateCIWorkflow(st *runState, _ *Result) (Step, error) {
	src := in.path(in.settings.Workflow.Source)
	dst := in.path(in.settings.Workflow.Destination)
	s := Step{Name: stepWorkflow, Path: dst}

	switch {
	case st.alreadyRun:
		s.Status = StatusSkipped
		s.Detail = "setup already run"
	case platform.Exists(dst):
		s.Status = StatusSkipped
		s.Detail = "destination exists"
	case !platform.Exists(src):
		s.Status = StatusSkipped
		s.Detail = "source " + in.settings.Workflow.Source + " not found"
		in.logger.Warn("CI workflow not found, skipping relocation", "path", src)
	default:
		if err := platform.MoveFile(src, dst); err != nil {
			return s, fmt.Errorf("moving CI workflow: %w", err)
		}
		s.Status = StatusUpdated
		s.Detail = "moved from " + in.settings.Workflow.Source
	}
	return s, nil
}

// writeIfChanged leaves the file untouched when data matches what is on disk,
// preserving its mode otherwise.
func writeIfChanged(s Step, data []byte) (Step, error) {
	current, err := os.ReadFile(s.Path)
	if err == nil && bytes.Equal(current, data) {
		s.Status = StatusUnchanged
		return s, nil
	}
	mode := os.FileMode(0644)
	if info, statErr := os.Stat(s.Path); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(s.Path, data, mode); err != nil {
		return s, fmt.Errorf("writing %s: %w", s.Path, err)
	}
	s.Status = StatusUpdated
	return s, nil
}
