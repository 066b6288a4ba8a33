package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/mrityunjaygr8/rfe/pkg/source"
)

// fakeReader serves templates from a map and reports missing files the
// way source.ContentReader does.
type fakeReader map[string]string

func (f fakeReader) ReadFile(name string) (string, error) {
	body, ok := f[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, source.ErrFileNotFound)
	}
	return body, nil
}

var testTemplates = fakeReader{
	"devenv.yaml": "inputs:\n  nixpkgs:\n    url: github:cachix/devenv-nixpkgs/rolling\n",
	"devenv.nix":  "{ pkgs, ... }: { }\n",
	".gitignore":  "# Devenv\n.devenv*\ndevenv.local.nix\n",
	".envrc":      "use devenv\n",
}

func TestRunWritesAllFiles(t *testing.T) {
	dir := t.TempDir()

	res, err := Run(dir, DefaultFiles, nil, testTemplates)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !slices.Equal(res.Written, DefaultFiles) {
		t.Errorf("Written = %v, want %v", res.Written, DefaultFiles)
	}
	if len(res.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", res.Skipped)
	}

	for _, name := range DefaultFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if string(data) != testTemplates[name] {
			t.Errorf("%s = %q, want template contents", name, data)
		}
	}
}

func TestRunSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "devenv.nix"), []byte("hand-edited\n"), 0o644)

	res, err := Run(dir, []string{"devenv.nix", "devenv.yaml"}, nil, testTemplates)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !slices.Equal(res.Skipped, []string{"devenv.nix"}) {
		t.Errorf("Skipped = %v, want [devenv.nix]", res.Skipped)
	}
	if !slices.Equal(res.Written, []string{"devenv.yaml"}) {
		t.Errorf("Written = %v, want [devenv.yaml]", res.Written)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "devenv.nix"))
	if string(data) != "hand-edited\n" {
		t.Errorf("devenv.nix overwritten: %q", data)
	}
}

func TestRunOverwritesWhenRequested(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "devenv.nix"), []byte("hand-edited\n"), 0o644)

	res, err := Run(dir, []string{"devenv.nix"}, map[string]bool{"devenv.nix": true}, testTemplates)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !slices.Equal(res.Written, []string{"devenv.nix"}) {
		t.Errorf("Written = %v, want [devenv.nix]", res.Written)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "devenv.nix"))
	if string(data) != testTemplates["devenv.nix"] {
		t.Errorf("devenv.nix = %q, want template contents", data)
	}
}

func TestRunMergesGitignore(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("node_modules\n.devenv*\n"), 0o644)

	res, err := Run(dir, []string{".gitignore"}, nil, testTemplates)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(res.Written, []string{".gitignore"}) {
		t.Errorf("Written = %v, want [.gitignore]", res.Written)
	}

	data, _ := os.ReadFile(filepath.Join(dir, ".gitignore"))
	got := string(data)
	if !strings.Contains(got, "node_modules") {
		t.Error("existing entry lost")
	}
	if strings.Count(got, ".devenv*") != 1 {
		t.Errorf("'.devenv*' duplicated:\n%s", got)
	}
	if !strings.Contains(got, "devenv.local.nix") {
		t.Errorf("missing entry not appended:\n%s", got)
	}
}

func TestRunGitignoreAlreadyComplete(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(".devenv*\ndevenv.local.nix\n"), 0o644)

	res, err := Run(dir, []string{".gitignore"}, nil, testTemplates)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(res.Skipped, []string{".gitignore"}) {
		t.Errorf("Skipped = %v, want [.gitignore]", res.Skipped)
	}
}

func TestRunMissingTemplate(t *testing.T) {
	_, err := Run(t.TempDir(), []string{"flake.nix"}, nil, testTemplates)
	if !errors.Is(err, source.ErrFileNotFound) {
		t.Errorf("Run() error = %v, want ErrFileNotFound", err)
	}
}

func TestExisting(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "devenv.nix"), []byte("x\n"), 0o644)
	os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("x\n"), 0o644)

	got := Existing(dir, DefaultFiles)
	if !slices.Equal(got, []string{"devenv.nix"}) {
		t.Errorf("Existing() = %v, want [devenv.nix] (.gitignore excluded)", got)
	}
}

func TestLoadManifest(t *testing.T) {
	tests := map[string]struct {
		reader  fakeReader
		want    []string
		wantErr bool
	}{
		"manifest lists files": {
			reader: fakeReader{ManifestFile: "files:\n  - devenv.nix\n  - .envrc\n"},
			want:   []string{"devenv.nix", ".envrc"},
		},
		"missing manifest falls back to defaults": {
			reader: fakeReader{},
			want:   DefaultFiles,
		},
		"empty manifest falls back to defaults": {
			reader: fakeReader{ManifestFile: "files: []\n"},
			want:   DefaultFiles,
		},
		"comments-only manifest falls back to defaults": {
			reader: fakeReader{ManifestFile: "# nothing declared\n"},
			want:   DefaultFiles,
		},
		"malformed manifest errors": {
			reader:  fakeReader{ManifestFile: "files: [unclosed\n"},
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := LoadManifest(tc.reader)
			if tc.wantErr {
				if err == nil {
					t.Fatal("LoadManifest() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadManifest() error = %v", err)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("LoadManifest() = %v, want %v", got, tc.want)
			}
		})
	}
}
