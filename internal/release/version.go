package release

import (
	"fmt"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"

	shipiterrors "shipit.dev/shipit/internal/errors"
)

// versionShape is the only accepted release version shape: exactly
// MAJOR.MINOR.PATCH with an optional leading v.
var versionShape = regexp.MustCompile(`^v?\d+\.\d+\.\d+$`)

// NormalizeVersion validates a version string and ensures the leading v.
// Any other shape is rejected.
func NormalizeVersion(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if !versionShape.MatchString(trimmed) {
		return "", shipiterrors.NewInvalidVersionError(input)
	}
	if !strings.HasPrefix(trimmed, "v") {
		trimmed = "v" + trimmed
	}
	return trimmed, nil
}

// NextPatchVersion computes the default next version: the latest tag with its
// patch component incremented. An absent or unparsable latest tag yields
// v0.0.1.
func NextPatchVersion(latestTag string) string {
	if latestTag == "" {
		return "v0.0.1"
	}
	parsed, err := goversion.NewVersion(strings.TrimPrefix(latestTag, "v"))
	if err != nil {
		return "v0.0.1"
	}
	segments := parsed.Segments()
	if len(segments) < 3 {
		return "v0.0.1"
	}
	return fmt.Sprintf("v%d.%d.%d", segments[0], segments[1], segments[2]+1)
}
