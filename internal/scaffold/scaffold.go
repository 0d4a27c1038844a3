package scaffold

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jbrowse-plugin-kit/plugin-setup/internal/manifest"
	"github.com/jbrowse-plugin-kit/plugin-setup/internal/platform"
)

const templateRoot = "template"

//go:embed template
var templateFS embed.FS

// DefaultName is the package name shipped in the pristine template.
const DefaultName = "jbrowse-plugin-template"

// Data holds the variables available to .tmpl files.
type Data struct {
	Name        string // package name, e.g. "jbrowse-plugin-cool-tool"
	Version     string // semver, e.g. "0.0.1"
	Description string
	Repository  string // optional; omitted from package.json when empty
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewData returns Data with defaults filled in. An empty name keeps the
// template's own name, which setup refuses until "yarn init" renames it.
func NewData(name, repository string) *Data {
	if name == "" {
		name = DefaultName
	}
	return &Data{
		Name:        name,
		Version:     "0.0.1",
		Description: "JBrowse plugin " + name,
		Repository:  repository,
	}
}

var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		return strings.TrimSuffix(buf.String(), "\n"), nil
	},
}

// Generate writes the template project into outputDir, which must be absent
// or empty.
func Generate(data *Data, outputDir string) (*Result, error) {
	if platform.Exists(outputDir) && !platform.IsDir(outputDir) {
		return nil, fmt.Errorf("output path %s exists and is not a directory", outputDir)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existingEntries, err := os.ReadDir(outputDir)
	if err == nil && len(existingEntries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{
		OutputDir: outputDir,
	}

	err = fs.WalkDir(templateFS, templateRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel := strings.TrimPrefix(p, templateRoot+"/")
		outName, content, err := render(p, rel, data)
		if err != nil {
			return err
		}

		outPath := filepath.Join(outputDir, filepath.FromSlash(outName))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
		}
		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, outName)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Validate the generated manifest against JSON Schema.
	manifestFile := filepath.Join(outputDir, "package.json")
	valResult, valErr := manifest.ValidateFile(manifestFile)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
		result.Warnings = append(result.Warnings, valResult.Warnings...)
	}

	return result, nil
}

// render returns the output name and content for one embedded file. Files
// ending in .tmpl are executed with text/template and lose the suffix;
// everything else, including workflow files whose ${{ }} expressions would
// confuse text/template, is copied verbatim.
func render(embedPath, rel string, data *Data) (string, []byte, error) {
	raw, err := fs.ReadFile(templateFS, embedPath)
	if err != nil {
		return "", nil, fmt.Errorf("reading template %s: %w", embedPath, err)
	}
	if !strings.HasSuffix(rel, ".tmpl") {
		return rel, raw, nil
	}

	tmpl, err := template.New(path.Base(rel)).Funcs(funcs).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return "", nil, fmt.Errorf("parsing template %s: %w", rel, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", nil, fmt.Errorf("executing template %s: %w", rel, err)
	}
	return strings.TrimSuffix(rel, ".tmpl"), buf.Bytes(), nil
}
