package docker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skiff-ml/skiff/pkg/config"
)

func TestRunArgs(t *testing.T) {
	require.Equal(t,
		[]string{"run", "--ipc", "host"},
		runArgs(config.CPU, nil))
	require.Equal(t,
		[]string{"run", "--runtime", "nvidia", "--ipc", "host"},
		runArgs(config.GPU, nil))
	require.Equal(t,
		[]string{"run", "--ipc", "host", "-e", "FOO=bar"},
		runArgs(config.CPU, []string{"-e", "FOO=bar"}))
}

func TestRunWithSuppliedImageSkipsBuild(t *testing.T) {
	c, fake := newFakeClient("")

	err := c.run(config.CPU, RunOptions{
		Image:      "ab12cd34",
		ScriptArgs: []string{"--epochs", "10"},
	}, testEnv)
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	require.Equal(t,
		[]string{"run", "--ipc", "host", "ab12cd34", "--epochs", "10"},
		fake.calls[0].args)
}

func TestRunBuildsWhenNoImageSupplied(t *testing.T) {
	c, fake := newFakeClient("Successfully built ab12cd34")

	err := c.run(config.GPU, RunOptions{}, testEnv)
	require.NoError(t, err)

	require.Len(t, fake.calls, 2)
	require.Equal(t, "build", fake.calls[0].args[0])
	require.Equal(t,
		[]string{"run", "--runtime", "nvidia", "--ipc", "host", "ab12cd34"},
		fake.calls[1].args)
}

func TestResolveShell(t *testing.T) {
	env := testEnv
	env.Shell = "/usr/bin/fish"

	// Explicit shell always wins.
	require.Equal(t, "/bin/zsh",
		resolveShell(InteractiveOptions{Shell: "/bin/zsh", DisableHomeMount: true}, env))

	// Home mounted: the caller's environment shell.
	require.Equal(t, "/usr/bin/fish",
		resolveShell(InteractiveOptions{}, env))

	// No home mount: the stock fallback, regardless of $SHELL. A custom
	// shell is useless without the profile that configures it.
	require.Equal(t, config.DefaultShellPath,
		resolveShell(InteractiveOptions{DisableHomeMount: true}, env))
}

func TestRunInteractiveMountsAndEntrypoint(t *testing.T) {
	c, fake := newFakeClient("")

	err := c.runInteractive(config.CPU, InteractiveOptions{
		RunOptions: RunOptions{Image: "ab12cd34"},
	}, testEnv)
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	args := fake.calls[0].args
	require.Equal(t, []string{
		"run", "--ipc", "host",
		"-w", "/usr/app",
		"-u", "1000:1000",
		"-v", "/work:/usr/app",
		"-it",
		"--entrypoint", "/bin/bash",
		"-v", "/home/sam:/home/sam",
		"ab12cd34",
	}, args)
}

func TestRunInteractiveNoHomeMount(t *testing.T) {
	env := testEnv
	env.Shell = "/usr/bin/fish"
	c, fake := newFakeClient("")

	err := c.runInteractive(config.CPU, InteractiveOptions{
		RunOptions:       RunOptions{Image: "ab12cd34"},
		DisableHomeMount: true,
	}, env)
	require.NoError(t, err)

	args := fake.calls[0].args
	require.NotContains(t, args, "/home/sam:/home/sam")
	require.Contains(t, args, "--entrypoint")
	require.Contains(t, args, config.DefaultShellPath)
	require.NotContains(t, args, "/usr/bin/fish")
}

func TestRunInteractiveForwardsShellIntoBuild(t *testing.T) {
	c, fake := newFakeClient("Successfully built ab12cd34")

	err := c.runInteractive(config.CPU, InteractiveOptions{
		Shell: "/bin/zsh",
	}, testEnv)
	require.NoError(t, err)

	require.Len(t, fake.calls, 2)
	// The build's Dockerfile installs the requested shell.
	require.Contains(t, fake.calls[0].stdin, "zsh")
}

func TestRunNotebookDefaults(t *testing.T) {
	c, fake := newFakeClient("")

	err := c.runNotebook(config.CPU, NotebookOptions{
		InteractiveOptions: InteractiveOptions{
			RunOptions: RunOptions{Image: "ab12cd34"},
		},
	}, testEnv)
	require.NoError(t, err)

	args := fake.calls[0].args
	requireSubsequence(t, args, "-p", "8888:8888")
	requireSubsequence(t, args, "--entrypoint", notebookInterpreter)
	requireSubsequence(t, args, "-m", "jupyter", "notebook", "--ip=0.0.0.0", "--port=8888", "--no-browser")
}

func TestRunNotebookLabAndCustomPort(t *testing.T) {
	c, fake := newFakeClient("")

	err := c.runNotebook(config.CPU, NotebookOptions{
		InteractiveOptions: InteractiveOptions{
			RunOptions: RunOptions{Image: "ab12cd34"},
		},
		Port: 9999,
		Lab:  true,
	}, testEnv)
	require.NoError(t, err)

	args := fake.calls[0].args
	requireSubsequence(t, args, "-p", "9999:9999")
	requireSubsequence(t, args, "-m", "jupyter", "lab")
	require.Contains(t, args, "--port=9999")
}

func TestRunNotebookIgnoresEntrypointOverride(t *testing.T) {
	c, fake := newFakeClient("")

	err := c.runNotebook(config.CPU, NotebookOptions{
		InteractiveOptions: InteractiveOptions{
			RunOptions: RunOptions{Image: "ab12cd34"},
			Entrypoint: "/bin/sh",
		},
	}, testEnv)
	require.NoError(t, err)

	args := fake.calls[0].args
	requireSubsequence(t, args, "--entrypoint", notebookInterpreter)
	require.NotContains(t, args, "/bin/sh")
}

func TestRunNotebookInjectsNotebookIntoBuild(t *testing.T) {
	c, fake := newFakeClient("Successfully built ab12cd34")

	err := c.runNotebook(config.CPU, NotebookOptions{
		JupyterVersion: "2.2.9",
	}, testEnv)
	require.NoError(t, err)

	require.Len(t, fake.calls, 2)
	require.Contains(t, fake.calls[0].stdin, "pip install jupyterlab==2.2.9")
}

// requireSubsequence asserts that want appears contiguously inside got.
func requireSubsequence(t *testing.T, got []string, want ...string) {
	t.Helper()
	for i := 0; i+len(want) <= len(got); i++ {
		match := true
		for j := range want {
			if got[i+j] != want[j] {
				match = false
				break
			}
		}
		if match {
			return
		}
	}
	require.Failf(t, "subsequence not found", "wanted %v contiguously within %v", want, got)
}
