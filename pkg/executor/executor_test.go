package executor

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX commands")
	}
	ctx := context.Background()
	e := New()

	out, err := e.Execute(ctx, "echo", "hola")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hola" {
		t.Errorf("Execute() = %q", out)
	}

	if _, err := e.Execute(ctx, "sh", "-c", "echo boom >&2; exit 3"); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Execute() error = %v, want stderr in message", err)
	}
}

func TestExecuteInDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX commands")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	out, err := New().ExecuteInDir(context.Background(), dir, "ls")
	if err != nil {
		t.Fatalf("ExecuteInDir() error = %v", err)
	}
	if !strings.Contains(out, "marker.txt") {
		t.Errorf("ExecuteInDir() = %q, want marker.txt listed", out)
	}
}
