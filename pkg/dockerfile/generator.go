// Package dockerfile composes a complete Dockerfile from a config.Options
// bundle. The preamble sets up the base image and a build user mirroring the
// host identity; after it, a fixed, ordered list of conditional fragments is
// appended. Composition itself cannot fail: it only emits text, and any
// problem with that text surfaces later when docker interprets it.
package dockerfile

import (
	"fmt"

	"github.com/skiff-ml/skiff/pkg/config"
)

// fragment pairs a predicate over the options with the renderer to invoke
// when it holds. The composer walks the table in order, which is the single
// place the relative order of Dockerfile sections is decided.
type fragment struct {
	name   string
	when   func(config.Options) bool
	render func(config.Options, config.HostEnv) string
}

func always(config.Options) bool { return true }

// fragments, in the order they appear in the generated Dockerfile. The
// ordering is load-bearing: dependencies install before code is copied so
// code edits don't bust the dependency layer cache, user and environment
// setup precedes anything that relies on it, and the package fragment is
// last because it declares the entrypoint and nothing may alter user or
// environment state after it.
var fragments = []fragment{
	{
		name:   "dependencies",
		when:   always,
		render: dependencyEntries,
	},
	{
		name:   "notebook",
		when:   func(o config.Options) bool { return o.InjectNotebook },
		render: notebookEntries,
	},
	{
		name:   "credentials",
		when:   func(o config.Options) bool { return o.CredentialsPath != "" },
		render: credentialsEntries,
	},
	{
		name:   "extra-dirs",
		when:   func(o config.Options) bool { return len(o.ExtraDirs) > 0 },
		render: extraDirEntries,
	},
	{
		name:   "shell",
		when:   always,
		render: customShellEntries,
	},
	{
		name:   "package",
		when:   func(o config.Options) bool { return o.Package != nil },
		render: packageEntries,
	},
}

// Generate composes the Dockerfile for the given mode, options and captured
// host environment. Same inputs, same output: the host identity is part of
// env, not read ambiently.
func Generate(mode config.Mode, opts config.Options, env config.HostEnv) string {
	ret := preamble(mode, opts, env)
	for _, f := range fragments {
		if f.when(opts) {
			ret += f.render(opts, env)
		}
	}
	return ret
}

func preamble(mode config.Mode, opts config.Options, env config.HostEnv) string {
	baseImageFn := opts.BaseImage
	if baseImageFn == nil {
		baseImageFn = BaseImage
	}

	return fmt.Sprintf(`FROM %s

# Create the same group we're using on the host machine.
RUN groupadd --gid %d %d

# Create the user by name.
RUN useradd --no-create-home -u %d -g %d --shell /bin/bash %s

# The directories are created by root. This sets permissions so that any user
# can access them.
RUN mkdir -m 777 %s %s /home/%s

ENV HOME=/home/%s

WORKDIR %s

USER %s
`,
		baseImageFn(mode),
		env.GID, env.GID,
		env.UID, env.GID, env.Username,
		opts.WorkdirOrDefault(), opts.CredsDirOrDefault(), env.Username,
		env.Username,
		opts.WorkdirOrDefault(),
		env.Owner())
}
