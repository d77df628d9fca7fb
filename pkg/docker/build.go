package docker

import (
	"github.com/skiff-ml/skiff/pkg/config"
	"github.com/skiff-ml/skiff/pkg/dockerfile"
	"github.com/skiff-ml/skiff/pkg/errors"
	"github.com/skiff-ml/skiff/pkg/util/console"
	"github.com/skiff-ml/skiff/pkg/util/files"
)

// Build composes a Dockerfile from opts and feeds it to docker build over
// stdin, with the current directory as the build context. On success it
// returns the ID parsed from the build output; on a non-zero exit the
// captured output is surfaced verbatim in the error. Builds are never
// retried: a bad Dockerfile fails the same way every time.
func (c *Client) Build(mode config.Mode, opts config.Options) (ImageID, error) {
	env, err := config.CurrentHostEnv()
	if err != nil {
		return "", errors.InvalidOptions("%s", err)
	}
	return c.build(mode, opts, env)
}

func (c *Client) build(mode config.Mode, opts config.Options, env config.HostEnv) (ImageID, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	// Build against a scoped copy of the credentials so the original can't
	// change mid-build and is never referenced from the image metadata.
	// The copy is removed on every exit path.
	credPath, cleanup, err := files.TempCopy(opts.CredentialsPath)
	if err != nil {
		return "", errors.InvalidOptions("%s", err)
	}
	defer cleanup()
	opts.CredentialsPath = credPath

	contents := dockerfile.Generate(mode, opts, env)
	args := []string{"build", "--rm", "-f-", env.Cwd}

	console.Infof("Building %s image in %s", mode, env.Cwd)

	out, err := c.command.Output(contents, args)
	if err != nil {
		return "", errors.EngineFailure(err, out)
	}
	return ParseImageID(out)
}
