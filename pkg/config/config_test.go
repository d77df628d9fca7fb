package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skiff-ml/skiff/pkg/errors"
)

func TestPackageArg(t *testing.T) {
	require.Equal(t, "trainer.train", Package{MainModule: "trainer.train"}.Arg())
	require.Equal(t, "train.py", Package{ScriptPath: "train.py"}.Arg())
}

func TestValidatePackage(t *testing.T) {
	valid := Options{Package: &Package{
		Path:       "trainer",
		Executable: []string{"python", "-m"},
		MainModule: "trainer.train",
	}}
	require.NoError(t, valid.Validate())

	for _, tt := range []struct {
		name string
		pkg  Package
	}{
		{
			name: "no path",
			pkg:  Package{Executable: []string{"python"}, ScriptPath: "train.py"},
		},
		{
			name: "no executable",
			pkg:  Package{Path: "trainer", ScriptPath: "train.py"},
		},
		{
			name: "neither module nor script",
			pkg:  Package{Path: "trainer", Executable: []string{"python"}},
		},
		{
			name: "both module and script",
			pkg: Package{
				Path:       "trainer",
				Executable: []string{"python"},
				MainModule: "trainer.train",
				ScriptPath: "train.py",
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			pkg := tt.pkg
			err := Options{Package: &pkg}.Validate()
			require.Error(t, err)
			require.True(t, errors.IsInvalidOptions(err))
		})
	}
}

func TestValidateJupyterVersion(t *testing.T) {
	require.NoError(t, Options{JupyterVersion: "2.2.9"}.Validate())

	err := Options{JupyterVersion: "not-a-version"}.Validate()
	require.Error(t, err)
	require.True(t, errors.IsInvalidOptions(err))
}

func TestWorkdirAndCredsDirDefaults(t *testing.T) {
	require.Equal(t, DefaultWorkdir, Options{}.WorkdirOrDefault())
	require.Equal(t, "/app", Options{Workdir: "/app"}.WorkdirOrDefault())
	require.Equal(t, DefaultCredsDir, Options{}.CredsDirOrDefault())
	require.Equal(t, "/secrets", Options{CredentialsDir: "/secrets"}.CredsDirOrDefault())
}

func TestDefaultShell(t *testing.T) {
	require.Equal(t, "/bin/zsh", HostEnv{Shell: "/bin/zsh"}.DefaultShell())
	require.Equal(t, DefaultShellPath, HostEnv{}.DefaultShell())
}
