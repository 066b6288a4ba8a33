package scratch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewCreatesDirectory(t *testing.T) {
	d, err := New("scratch-test-")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer d.Remove()

	info, err := os.Stat(d.Root())
	if err != nil {
		t.Fatalf("stat %s: %v", d.Root(), err)
	}
	if !info.IsDir() {
		t.Errorf("Root() = %s, not a directory", d.Root())
	}
}

func TestPathJoinsSegments(t *testing.T) {
	d, err := New("scratch-test-")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer d.Remove()

	want := filepath.Join(d.Root(), "a", "b.txt")
	if got := d.Path("a", "b.txt"); got != want {
		t.Errorf("Path(a, b.txt) = %s, want %s", got, want)
	}
}

func TestExists(t *testing.T) {
	d, err := New("scratch-test-")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer d.Remove()

	ok, err := d.Exists("missing.txt")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if ok {
		t.Error("Exists(missing.txt) = true, want false")
	}

	if err := os.WriteFile(d.Path("present.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	ok, err = d.Exists("present.txt")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !ok {
		t.Error("Exists(present.txt) = false, want true")
	}
}

func TestRemoveDeletesTree(t *testing.T) {
	d, err := New("scratch-test-")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	os.MkdirAll(d.Path("sub", "deep"), 0o755)
	os.WriteFile(d.Path("sub", "deep", "f.txt"), []byte("x"), 0o644)

	if err := d.Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(d.Root()); !os.IsNotExist(err) {
		t.Errorf("stat after Remove = %v, want not-exist", err)
	}

	// Second Remove is a no-op.
	if err := d.Remove(); err != nil {
		t.Errorf("second Remove() error = %v", err)
	}
}
