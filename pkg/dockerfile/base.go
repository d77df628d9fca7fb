package dockerfile

import (
	"fmt"
	"sort"
	"strings"

	version "github.com/hashicorp/go-version"

	"github.com/skiff-ml/skiff/pkg/config"
	"github.com/skiff-ml/skiff/pkg/errors"
	"github.com/skiff-ml/skiff/pkg/util/files"
)

// DevContainerRoot is the repository holding the default skiff base images,
// tagged :cpu and :gpu.
const DevContainerRoot = "gcr.io/skiff-ml/skiff-dev"

// tensorflowVersions are the upstream tensorflow/tensorflow tags we know
// produce working images. https://hub.docker.com/r/tensorflow/tensorflow/tags
var tensorflowVersions = map[string]bool{
	"1.12.3": true,
	"1.14.0": true,
	"1.15.0": true,
	"2.0.0":  true,
}

// BaseImage returns the default base image for the given mode.
func BaseImage(mode config.Mode) string {
	return DevContainerRoot + ":" + string(mode)
}

// TensorFlowBaseImage returns an upstream TensorFlow image reference for
// building base images on top of, GPU-suffixed when the mode calls for it.
// Unknown or malformed versions are a configuration error.
func TensorFlowBaseImage(mode config.Mode, tensorflowVersion string) (string, error) {
	if _, err := version.NewVersion(tensorflowVersion); err != nil {
		return "", errors.InvalidOptions("%q is not a valid tensorflow version: %s", tensorflowVersion, err)
	}
	if !tensorflowVersions[tensorflowVersion] {
		return "", errors.InvalidOptions("%q is not a supported tensorflow version. Try one of: %s",
			tensorflowVersion, strings.Join(sortedVersions(), ", "))
	}

	gpu := ""
	if mode == config.GPU {
		gpu = "-gpu"
	}
	return fmt.Sprintf("tensorflow/tensorflow:%s%s-py3", tensorflowVersion, gpu), nil
}

// AutoExtras resolves the setup.py extras to install. If setupPath doesn't
// exist it returns nil (no setup-based install). Otherwise the mode-matching
// extra (cpu or gpu) is prepended to the user's extras unless already listed,
// so projects can key hardware-specific dependencies off extras_require.
func AutoExtras(mode config.Mode, setupPath string, extras []string) ([]string, error) {
	exists, err := files.Exists(setupPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	modeExtra := string(mode)
	for _, e := range extras {
		if e == modeExtra {
			return append([]string{}, extras...), nil
		}
	}
	return append([]string{modeExtra}, extras...), nil
}

func sortedVersions() []string {
	versions := make([]string, 0, len(tensorflowVersions))
	for v := range tensorflowVersions {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}
