package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestExists(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "present.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !Exists(path) {
		t.Error("Exists(present) = false")
	}
	if Exists(filepath.Join(tmp, "absent.txt")) {
		t.Error("Exists(absent) = true")
	}
	if !IsDir(tmp) {
		t.Error("IsDir(tmp) = false")
	}
	if IsDir(path) {
		t.Error("IsDir(file) = true")
	}
}

func TestMoveFile_CreatesParents(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "integration.yml")
	dst := filepath.Join(tmp, ".github", "workflows", "integration.yml")
	if err := os.WriteFile(src, []byte("name: Integration\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile failed: %v", err)
	}

	if Exists(src) {
		t.Error("source still exists after move")
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading destination: %v", err)
	}
	if string(data) != "name: Integration\n" {
		t.Errorf("destination content = %q", data)
	}
}

func TestMoveFile_DestinationExists(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "a.yml")
	dst := filepath.Join(tmp, "b.yml")
	os.WriteFile(src, []byte("a"), 0644)
	os.WriteFile(dst, []byte("b"), 0644)

	err := MoveFile(src, dst)
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("MoveFile error = %v, want ErrDestinationExists", err)
	}
	if data, _ := os.ReadFile(dst); string(data) != "b" {
		t.Errorf("destination overwritten: %q", data)
	}
	if !Exists(src) {
		t.Error("source removed despite failed move")
	}
}

func TestMoveFile_MissingSource(t *testing.T) {
	tmp := t.TempDir()
	err := MoveFile(filepath.Join(tmp, "nope"), filepath.Join(tmp, "dst"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("MoveFile error = %v, want os.ErrNotExist", err)
	}
}

func TestCopyFile_PreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.sh")
	dst := filepath.Join(tmp, "dst.sh")
	os.WriteFile(src, []byte("#!/bin/sh\n"), 0755)

	if err := copyFile(src, dst, 0755); err != nil {
		t.Fatalf("copyFile failed: %v", err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Errorf("mode = %o, want executable bit", info.Mode().Perm())
	}
}
