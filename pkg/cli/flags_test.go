package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skiff-ml/skiff/pkg/config"
	"github.com/skiff-ml/skiff/pkg/errors"
)

func TestMode(t *testing.T) {
	require.Equal(t, config.GPU, (&buildFlags{}).mode())
	require.Equal(t, config.CPU, (&buildFlags{nogpu: true}).mode())
}

func TestResolvePackageModule(t *testing.T) {
	pkg := resolvePackage("trainer.train")
	require.Equal(t, "trainer", pkg.Path)
	require.Equal(t, []string{"python", "-m"}, pkg.Executable)
	require.Equal(t, "trainer.train", pkg.MainModule)
	require.Empty(t, pkg.ScriptPath)
}

func TestResolvePackageScript(t *testing.T) {
	pkg := resolvePackage("scripts/train.py")
	require.Equal(t, "scripts", pkg.Path)
	require.Equal(t, []string{"python"}, pkg.Executable)
	require.Equal(t, "scripts/train.py", pkg.ScriptPath)
	require.Empty(t, pkg.MainModule)
}

func TestOptionsDiscoversProjectFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/requirements.txt", []byte("numpy\n"), 0o644))
	require.NoError(t, os.WriteFile(dir+"/setup.py", []byte("from setuptools import setup"), 0o644))
	chdir(t, dir)

	opts, err := (&buildFlags{extras: []string{"viz"}}).options(config.GPU)
	require.NoError(t, err)
	require.Equal(t, "requirements.txt", opts.RequirementsPath)
	require.Equal(t, []string{"gpu", "viz"}, opts.SetupExtras)
}

func TestOptionsEmptyDirectory(t *testing.T) {
	chdir(t, t.TempDir())

	opts, err := (&buildFlags{}).options(config.CPU)
	require.NoError(t, err)
	require.Empty(t, opts.RequirementsPath)
	require.Nil(t, opts.SetupExtras)
}

func TestOptionsRejectsBadTensorFlowVersion(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := (&buildFlags{tfVersion: "0.1.0"}).options(config.CPU)
	require.Error(t, err)
	require.True(t, errors.IsInvalidOptions(err))
}

func TestOptionsTensorFlowBaseImageOverride(t *testing.T) {
	chdir(t, t.TempDir())

	opts, err := (&buildFlags{tfVersion: "2.0.0"}).options(config.GPU)
	require.NoError(t, err)
	require.NotNil(t, opts.BaseImage)
	require.Equal(t, "tensorflow/tensorflow:2.0.0-gpu-py3", opts.BaseImage(config.GPU))
}

// chdir mirrors testing.T.Chdir (Go 1.24+), unavailable on this toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}
