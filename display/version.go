package display

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// BuildVersion returns "name vX.Y.Z". An empty version is inferred from the
// main module's build info.
func BuildVersion(name, version string) string {
	if version == "" {
		infered, err := inferVersion()
		if err != nil {
			return "No version specified"
		}
		version = infered
	}

	if name != "" {
		name = name + " "
	}
	return fmt.Sprintf("%sv%s", name, strings.TrimPrefix(version, "v"))
}

// inferVersion attempts to infer the main module version from build info.
func inferVersion() (string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", fmt.Errorf("unable to read build info")
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}

	return "", fmt.Errorf("no version info found in build metadata")
}
