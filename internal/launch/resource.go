package launch

import (
	"fmt"
	"net/url"
	"strings"
)

// ResourceDir converts the fmuResourceLocation URI an importer passes to
// Instantiate (spec.md §6: "fmu_resource_location") into a filesystem path
// to the FMU's resources directory, where launch.toml lives. FMI importers
// commonly pass a file:// URI; a bare path is accepted as-is for importers
// that don't.
func ResourceDir(fmuResourceLocation string) (string, error) {
	if fmuResourceLocation == "" {
		return "", fmt.Errorf("launch: empty resource location")
	}

	if !strings.Contains(fmuResourceLocation, "://") {
		return fmuResourceLocation, nil
	}

	u, err := url.Parse(fmuResourceLocation)
	if err != nil {
		return "", fmt.Errorf("launch: parsing resource location %q: %w", fmuResourceLocation, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("launch: unsupported resource location scheme %q", u.Scheme)
	}

	path := u.Path
	if path == "" {
		path = u.Opaque
	}
	if path == "" {
		return "", fmt.Errorf("launch: resource location %q has no path", fmuResourceLocation)
	}

	return path, nil
}
