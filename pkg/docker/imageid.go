package docker

import (
	"strings"

	"github.com/skiff-ml/skiff/pkg/errors"
)

// ImageID is an opaque identifier for a built image. IDs come only from
// ParseImageID; nothing else in the pipeline synthesizes one.
type ImageID string

// ParseImageID recovers the image ID from the output of a successful
// docker build: the last token of the last non-empty line, which docker
// currently prints as "Successfully built <id>".
//
// This is scraping a human-readable message and is brittle across docker
// versions. It lives behind this one function so a machine-readable
// strategy (e.g. --iidfile) can replace it without touching the driver.
func ParseImageID(output string) (ImageID, error) {
	lines := strings.Split(output, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		fields := strings.Fields(lines[i])
		if len(fields) > 0 {
			return ImageID(fields[len(fields)-1]), nil
		}
	}
	return "", errors.ParseFailure("no image ID found in build output")
}
