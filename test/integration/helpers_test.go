//go:build integration

package integration_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to an isolated project directory.
type testEnv struct {
	ProjectDir string // scaffolded plugin project
}

// setupTestEnv creates an isolated temp directory and clears PLUGIN_SETUP_*
// variables so settings come from defaults only.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	for _, key := range []string{"PLUGIN_SETUP_DIR", "PLUGIN_SETUP_FILES_README", "PLUGIN_SETUP_TEMPLATE_PLUGIN_NAME"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return &testEnv{ProjectDir: filepath.Join(t.TempDir(), "plugin")}
}

// snapshotTree maps every file under root to its content.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file %s not to exist", path)
	}
}
