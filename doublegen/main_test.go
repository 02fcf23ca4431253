package main

import (
	"testing"
)

// TestRealPackageLoader verifies that the production loader can parse the
// package it runs in. The generator itself is covered by the run package
// tests; this only exercises the os-backed wiring.
func TestRealPackageLoader(t *testing.T) {
	t.Parallel()

	loader := &realPackageLoader{}

	files, fset, err := loader.Load(".")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if fset == nil {
		t.Error("Expected non-nil FileSet")
	}

	if len(files) == 0 {
		t.Error("Expected at least one parsed file")
	}
}

// TestRealFileSystem_RoundTrip verifies the os-backed file system writes what
// it is told to and can read it back.
func TestRealFileSystem_RoundTrip(t *testing.T) {
	t.Parallel()

	fileSys := &realFileSystem{}
	path := t.TempDir() + "/roundtrip.txt"

	if err := fileSys.WriteFile(path, []byte("payload"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fileSys.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(data) != "payload" {
		t.Errorf("read back %q, want %q", string(data), "payload")
	}
}
