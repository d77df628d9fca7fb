package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/skiff-ml/skiff/pkg/config"
	"github.com/skiff-ml/skiff/pkg/dockerfile"
	"github.com/skiff-ml/skiff/pkg/util/files"
)

// buildFlags are the flags shared by every command that may trigger an
// image build. They assemble into a config.Options bundle; everything past
// that point is handled by pkg/docker.
type buildFlags struct {
	nogpu        bool
	workdir      string
	requirements string
	extras       []string
	credentials  string
	extraDirs    []string
	tfVersion    string
}

func (f *buildFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.nogpu, "nogpu", false, "Build a CPU-only image (GPU is the default)")
	fs.StringVar(&f.workdir, "workdir", "", "Working directory inside the image (default "+config.DefaultWorkdir+")")
	fs.StringVar(&f.requirements, "requirements", "", "Requirements file to install (default requirements.txt when present)")
	fs.StringArrayVarP(&f.extras, "extras", "e", nil, "setup.py extras_require sets to install (repeatable)")
	fs.StringVar(&f.credentials, "credentials", "", "Service account key file to bake into the image")
	fs.StringArrayVarP(&f.extraDirs, "dir", "d", nil, "Extra directory to copy into the image (repeatable)")
	fs.StringVar(&f.tfVersion, "tensorflow-version", "", "Build on an upstream TensorFlow base image at this version")
}

func (f *buildFlags) mode() config.Mode {
	if f.nogpu {
		return config.CPU
	}
	return config.GPU
}

// options assembles the build option bundle: explicit flags first, then
// discovery of requirements.txt and setup.py in the current directory.
func (f *buildFlags) options(mode config.Mode) (config.Options, error) {
	opts := config.Options{
		Workdir:         f.workdir,
		CredentialsPath: f.credentials,
		ExtraDirs:       f.extraDirs,
	}

	requirements := f.requirements
	if requirements == "" {
		exists, err := files.Exists("requirements.txt")
		if err != nil {
			return opts, err
		}
		if exists {
			requirements = "requirements.txt"
		}
	}
	opts.RequirementsPath = requirements

	extras, err := dockerfile.AutoExtras(mode, "setup.py", f.extras)
	if err != nil {
		return opts, err
	}
	opts.SetupExtras = extras

	if f.tfVersion != "" {
		image, err := dockerfile.TensorFlowBaseImage(mode, f.tfVersion)
		if err != nil {
			return opts, err
		}
		opts.BaseImage = func(config.Mode) string { return image }
	}

	return opts, nil
}

// resolvePackage turns a command-line target into a package descriptor:
// a path ending in .py runs as a script, anything else as a module.
func resolvePackage(target string) *config.Package {
	if strings.HasSuffix(target, ".py") {
		return &config.Package{
			Path:       filepath.Dir(target),
			Executable: []string{"python"},
			ScriptPath: target,
		}
	}
	return &config.Package{
		Path:       strings.SplitN(target, ".", 2)[0],
		Executable: []string{"python", "-m"},
		MainModule: target,
	}
}
