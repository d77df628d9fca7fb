package docker

import (
	"fmt"

	"github.com/skiff-ml/skiff/pkg/errors"
	"github.com/skiff-ml/skiff/pkg/util/console"
)

// RegistryHost is where published images live.
const RegistryHost = "gcr.io"

// Push tags image under the registry-qualified project and pushes it,
// returning the fully qualified tag. A failed tag aborts before the push;
// a failed push surfaces as-is. No partial-success state exists.
//
// No existence check is made first: tags are immutable, so re-pushing an
// already-present tag is wasted work but harmless.
func (c *Client) Push(projectID string, image ImageID) (string, error) {
	tag := fmt.Sprintf("%s/%s/%s:latest", RegistryHost, projectID, image)

	if out, err := c.command.Output("", []string{"tag", string(image), tag}); err != nil {
		return "", errors.EngineFailure(err, out)
	}
	if err := c.command.Stream([]string{"push", tag}); err != nil {
		return "", errors.EngineFailure(err, "")
	}

	console.Infof("Pushed %s", tag)
	return tag, nil
}
