package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	code = run(context.Background(), args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestNamesTable(t *testing.T) {
	code, out, _ := execute(t, "names", "@acme/jbrowse-plugin-cool-tool", "jbrowse-plugin-msaview")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"PLUGIN CLASS", "jbrowse-plugin-cool-tool", "CoolTool", "Msaview"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNamesJSON(t *testing.T) {
	code, out, _ := execute(t, "names", "--json", "jbrowse-plugin-cool-tool")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	var got []map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0]["class"] != "CoolTool" || got[0]["safe"] != "jbrowse-plugin-cool-tool" {
		t.Errorf("names = %v", got)
	}
}

func TestNamesRequiresArgument(t *testing.T) {
	code, _, _ := execute(t, "names")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestVersionShort(t *testing.T) {
	code, out, _ := execute(t, "version", "--short")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if strings.TrimSpace(out) != buildVersion {
		t.Errorf("version = %q, want %q", out, buildVersion)
	}
}

func TestCreateThenSetup(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cool-tool")

	code, out, errOut := execute(t, "create", dir,
		"--name", "jbrowse-plugin-cool-tool",
		"--repository", "https://github.com/acme/jbrowse-plugin-cool-tool")
	if code != 0 {
		t.Fatalf("create exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "Next steps") {
		t.Errorf("create output missing next steps:\n%s", out)
	}

	code, out, errOut = execute(t, "setup", "--dir", dir)
	if code != 0 {
		t.Fatalf("setup exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "Setup complete") {
		t.Errorf("setup output:\n%s", out)
	}
	if !strings.Contains(out, "CoolTool") {
		t.Errorf("setup output missing class name:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, ".github", "workflows", "integration.yml")); err != nil {
		t.Errorf("workflow not relocated: %v", err)
	}

	code, out, errOut = execute(t, "setup", "--dir", dir)
	if code != 0 {
		t.Fatalf("second setup exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "already been run") {
		t.Errorf("second setup output:\n%s", out)
	}
}

func TestCreateWithSetupFlag(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "p")

	code, out, errOut := execute(t, "create", dir, "--name", "jbrowse-plugin-p", "--setup")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "Setup complete") {
		t.Errorf("output:\n%s", out)
	}
	index, err := os.ReadFile(filepath.Join(dir, "src", "index.ts"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "class PPlugin") {
		t.Errorf("entry point not renamed:\n%s", index)
	}
}

func TestCreateSetupRequiresName(t *testing.T) {
	code, _, errOut := execute(t, "create", filepath.Join(t.TempDir(), "p"), "--setup")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "--name") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestSetupRefusesTemplateName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tmpl")
	if code, _, errOut := execute(t, "create", dir); code != 0 {
		t.Fatalf("create exit code = %d, stderr: %s", code, errOut)
	}
	before, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatal(err)
	}

	code, _, errOut := execute(t, "setup", "--dir", dir)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "yarn init") {
		t.Errorf("stderr should tell the user to run yarn init, got %q", errOut)
	}

	after, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("package.json was modified")
	}
	if _, err := os.Stat(filepath.Join(dir, "integration.yml")); err != nil {
		t.Errorf("workflow should not move: %v", err)
	}
}

func TestStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "s")
	if code, _, errOut := execute(t, "create", dir, "--name", "jbrowse-plugin-s"); code != 0 {
		t.Fatalf("create exit code = %d, stderr: %s", code, errOut)
	}

	code, out, errOut := execute(t, "status", "--dir", dir)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "setup has not been run") {
		t.Errorf("status output:\n%s", out)
	}
	if !strings.Contains(out, "CI workflow waiting") {
		t.Errorf("status output:\n%s", out)
	}
}

func TestConfigShow(t *testing.T) {
	dir := t.TempDir()
	settings := "files:\n  readme: docs/README.md\n"
	if err := os.WriteFile(filepath.Join(dir, ".plugin-setup.yaml"), []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := execute(t, "config", "show", "--dir", dir)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "readme: docs/README.md") {
		t.Errorf("override not applied:\n%s", out)
	}
	if !strings.Contains(out, "manifest: package.json") {
		t.Errorf("defaults missing:\n%s", out)
	}
}
