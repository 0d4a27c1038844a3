package manifest

import (
	"strings"
	"testing"
)

func TestValidateFile_ValidManifests(t *testing.T) {
	for _, file := range []string{"valid-template.json", "valid-scoped.json", "valid-odd-repository.json"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
			if len(result.Warnings) > 0 {
				t.Errorf("unexpected warnings: %v", result.Warnings)
			}
		})
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file string
		desc string
	}{
		{"invalid-missing-plugin.json", "missing jbrowse-plugin block"},
		{"invalid-plugin-name-type.json", "plugin name is not a string"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidate_IssueFields(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-plugin-name-type.json"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	issue := result.Issues[0]
	if issue.Path != "/jbrowse-plugin/name" {
		t.Errorf("Path = %q, want /jbrowse-plugin/name", issue.Path)
	}
	if issue.Keyword != "type" {
		t.Errorf("Keyword = %q, want type", issue.Keyword)
	}
	if issue.Message == "" {
		t.Error("Message is empty")
	}
	if !strings.HasPrefix(issue.String(), "/jbrowse-plugin/name: ") {
		t.Errorf("String() = %q", issue.String())
	}
}

func TestValidate_VersionWarning(t *testing.T) {
	result, err := ValidateFile(testPath("warning-bad-version.json"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("a bad version should not fail validation: %v", result.Issues)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], `"one"`) {
		t.Errorf("Warnings = %v, want one semver warning", result.Warnings)
	}
}

func TestValidateFile_InvalidJSON(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-json.json"))
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.json"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidate_RepositoryShapesAreNotIssues(t *testing.T) {
	for _, repo := range []string{`42`, `null`, `{"type":"git"}`, `{"url":7}`, `{"type":"git","directory":"packages/x"}`, `"git@github.com:a/b.git"`} {
		t.Run(repo, func(t *testing.T) {
			data := `{"name":"x","repository":` + repo + `,"jbrowse-plugin":{"name":"Template"}}`
			result, err := Validate([]byte(data))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if !result.Valid {
				t.Errorf("repository %s should not be a schema issue, got %v", repo, result.Issues)
			}
		})
	}
}
