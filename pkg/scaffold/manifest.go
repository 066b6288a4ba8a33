package scaffold

import (
	"errors"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/mrityunjaygr8/rfe/pkg/source"
)

// ManifestFile is the optional manifest a template source may ship to
// declare which files it scaffolds.
const ManifestFile = "rfe.yaml"

// DefaultFiles is the scaffold list used when no manifest is found
// anywhere, not even in the default bundle.
var DefaultFiles = []string{"devenv.yaml", "devenv.nix", ".gitignore", ".envrc"}

// Manifest is the parsed rfe.yaml.
type Manifest struct {
	Files []string `json:"files"`
}

// LoadManifest reads the scaffold file list through r. The manifest is
// read like any other template file, so a source without one falls
// back to the bundled rfe.yaml. A missing or empty manifest yields
// DefaultFiles.
func LoadManifest(r FileReader) ([]string, error) {
	body, err := r.ReadFile(ManifestFile)
	if err != nil {
		if errors.Is(err, source.ErrFileNotFound) {
			return DefaultFiles, nil
		}
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal([]byte(body), &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}

	if len(m.Files) == 0 {
		return DefaultFiles, nil
	}
	return m.Files, nil
}
