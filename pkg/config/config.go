// Package config holds the declarative inputs to an image build or run:
// the CPU/GPU mode, the package descriptor for the user's code, and the
// option bundle the Dockerfile is composed from.
package config

import (
	version "github.com/hashicorp/go-version"

	"github.com/skiff-ml/skiff/pkg/errors"
)

// Mode selects between CPU-only and GPU-enabled base images and runtime
// flags. The string value doubles as the default base image tag suffix.
type Mode string

const (
	CPU Mode = "cpu"
	GPU Mode = "gpu"
)

const (
	// DefaultWorkdir is where the user's code lives inside the image.
	DefaultWorkdir = "/usr/app"

	// DefaultCredsDir is where credentials are copied inside the image.
	DefaultCredsDir = "/.creds"

	// DefaultShellPath is the shell used when nothing better is known.
	DefaultShellPath = "/bin/bash"
)

// Package describes the user code copied into the image: the directory to
// copy, the executable vector, and the module or script the entrypoint runs.
// Exactly one of MainModule and ScriptPath must be set. Packages arrive
// already resolved and are never mutated.
type Package struct {
	Path       string   // directory copied into the image, relative to the build context
	Executable []string // e.g. ["python", "-m"]
	MainModule string   // module executed by the entrypoint
	ScriptPath string   // script executed by the entrypoint
}

// Arg returns the final entrypoint argument, whichever of module or script
// is set.
func (p Package) Arg() string {
	if p.MainModule != "" {
		return p.MainModule
	}
	return p.ScriptPath
}

func (p Package) validate() error {
	if p.Path == "" {
		return errors.InvalidOptions("package has no path to copy")
	}
	if len(p.Executable) == 0 {
		return errors.InvalidOptions("package has no executable")
	}
	if (p.MainModule == "") == (p.ScriptPath == "") {
		return errors.InvalidOptions("package must set exactly one of a main module or a script path")
	}
	return nil
}

// Options is the full set of recognized build options. Every field is
// optional; a zero field means the corresponding Dockerfile fragment is
// omitted. Options are passed by value and never mutated by the composer.
type Options struct {
	// Workdir is the working directory inside the image. Defaults to
	// DefaultWorkdir.
	Workdir string

	// BaseImage overrides the mode-keyed default base image.
	BaseImage func(Mode) string

	// Package is the user code to copy in, plus the entrypoint to declare.
	Package *Package

	// RequirementsPath installs dependencies from a requirements file.
	RequirementsPath string

	// SetupExtras installs the project from its setup.py. nil means no
	// setup-based install; an empty, non-nil slice means a plain install
	// with no extras.
	SetupExtras []string

	// CredentialsPath is a service account key file to copy into the image.
	CredentialsPath string

	// CredentialsDir is where the key is copied inside the image. Defaults
	// to DefaultCredsDir.
	CredentialsDir string

	// InjectNotebook installs jupyter support, optionally pinned to
	// JupyterVersion.
	InjectNotebook bool
	JupyterVersion string

	// ShellCmd installs a custom shell, if it's one we know how to install.
	ShellCmd string

	// ExtraDirs are additional directories copied into the image, in order.
	ExtraDirs []string
}

// WorkdirOrDefault returns the configured working directory, or
// DefaultWorkdir when unset.
func (o Options) WorkdirOrDefault() string {
	if o.Workdir != "" {
		return o.Workdir
	}
	return DefaultWorkdir
}

// CredsDirOrDefault returns the configured in-container credentials
// directory, or DefaultCredsDir when unset.
func (o Options) CredsDirOrDefault() string {
	if o.CredentialsDir != "" {
		return o.CredentialsDir
	}
	return DefaultCredsDir
}

// Validate rejects option bundles that could never produce a working image.
// It runs before any docker process is started.
func (o Options) Validate() error {
	if o.Package != nil {
		if err := o.Package.validate(); err != nil {
			return err
		}
	}
	if o.JupyterVersion != "" {
		if _, err := version.NewVersion(o.JupyterVersion); err != nil {
			return errors.InvalidOptions("%q is not a valid jupyter version pin: %s", o.JupyterVersion, err)
		}
	}
	return nil
}
