package dockerfile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skiff-ml/skiff/pkg/config"
)

// Fragments are the isolated, independently renderable blocks the Dockerfile
// is composed from. Each is a pure function of the options and the captured
// host environment; ordering is owned by the composer, not by the fragments.

// extrasString renders the argument to pip install for a setup.py based
// install: "." alone, or ".[a,b]" when extras are requested.
func extrasString(extras []string) string {
	ret := "."
	if len(extras) > 0 {
		ret += "[" + strings.Join(extras, ",") + "]"
	}
	return ret
}

// dependencyEntries installs project dependencies. A non-nil SetupExtras
// triggers a setup.py install (an empty slice means no extras), and a
// requirements path triggers an install from that file. Both may appear;
// setup.py first.
func dependencyEntries(opts config.Options, env config.HostEnv) string {
	workdir := opts.WorkdirOrDefault()
	ret := ""

	if opts.SetupExtras != nil {
		ret += fmt.Sprintf(`
COPY --chown=%s setup.py %s
RUN /bin/bash -c "pip install %s"
`, env.Owner(), workdir, extrasString(opts.SetupExtras))
	}

	if opts.RequirementsPath != "" {
		ret += fmt.Sprintf(`
COPY --chown=%s %s %s
RUN /bin/bash -c "pip install -r %s"
`, env.Owner(), opts.RequirementsPath, workdir, opts.RequirementsPath)
	}

	return ret
}

// packageEntries copies the package directory into the image and declares
// the entrypoint that runs it. The entrypoint is rendered as JSON so that
// arguments with embedded spaces or quotes survive intact, and so Docker
// gets the exec form rather than a shell string.
func packageEntries(opts config.Options, env config.HostEnv) string {
	pkg := *opts.Package
	workdir := opts.WorkdirOrDefault()

	entrypoint, err := json.Marshal(append(append([]string{}, pkg.Executable...), pkg.Arg()))
	if err != nil {
		// A []string can't fail to marshal.
		panic(err)
	}

	return fmt.Sprintf(`
# Copy project code into the container.
COPY --chown=%s %s %s/%s

# Declare an entrypoint that actually runs the container.
ENTRYPOINT %s
`, env.Owner(), pkg.Path, workdir, pkg.Path, entrypoint)
}

// credentialsEntries copies a service account key into the image, activates
// it, and exports the well-known variable so tools inside the container can
// authenticate without prompting.
func credentialsEntries(opts config.Options, env config.HostEnv) string {
	containerCreds := opts.CredsDirOrDefault() + "/credentials.json"

	return fmt.Sprintf(`
COPY --chown=%s %s %s

# Use the credentials file to activate gcloud, gsutil inside the container.
RUN gcloud auth activate-service-account --key-file=%s

ENV GOOGLE_APPLICATION_CREDENTIALS=%s
`, env.Owner(), opts.CredentialsPath, containerCreds, containerCreds, containerCreds)
}

// notebookEntries installs jupyter support, optionally pinned to an exact
// version.
func notebookEntries(opts config.Options, env config.HostEnv) string {
	versionSuffix := ""
	if opts.JupyterVersion != "" {
		versionSuffix = "==" + opts.JupyterVersion
	}

	return fmt.Sprintf(`
RUN pip install jupyterlab%s
`, versionSuffix)
}

// shellInstalls maps a shell path to the package install commands needed
// before that shell can run inside the image. Shells missing from the table
// render nothing: the image's stock shell is used instead.
var shellInstalls = map[string]string{
	"/bin/zsh": `apt-get update && \
      apt-get install -y --no-install-recommends zsh && \
      rm -rf /var/lib/apt/lists/*`,
}

// customShellEntries installs the requested shell, switching to root for the
// install and back to the build user afterwards.
func customShellEntries(opts config.Options, env config.HostEnv) string {
	install, ok := shellInstalls[opts.ShellCmd]
	if !ok {
		return ""
	}

	return fmt.Sprintf(`
USER root

RUN %s

USER %s
`, install, env.Owner())
}

// extraDirEntries copies each extra directory into the image in list order,
// one independent COPY block per directory.
func extraDirEntries(opts config.Options, env config.HostEnv) string {
	ret := ""
	for _, dir := range opts.ExtraDirs {
		ret += "\n" + copyDirEntry(opts.WorkdirOrDefault(), env.Owner(), dir)
	}
	return ret
}

func copyDirEntry(workdir, owner, dir string) string {
	return fmt.Sprintf(`# Copy %s into the container.
COPY --chown=%s %s %s/%s
`, dir, owner, dir, workdir, dir)
}
