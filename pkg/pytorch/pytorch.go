package pytorch

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"rocmclean/pkg/log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// torchProbe asks the Python interpreter where the torch package lives.
// spec.origin points at .../site-packages/torch/__init__.py.
const torchProbe = "import importlib.util; spec = importlib.util.find_spec('torch'); print((spec.origin or '') if spec else '')"

// RunCommandFunc runs a command and returns its standard output. It exists
// so tests can fake the Python interpreter.
type RunCommandFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Discoverer locates the PyTorch installation directory on a host.
type Discoverer struct {
	fs         afero.Fs
	virtualEnv string
	runCmd     RunCommandFunc
}

// New creates a Discoverer. virtualEnv is the active Python virtual
// environment, usually $VIRTUAL_ENV, and may be empty. A nil runCmd uses the
// real Python interpreter.
func New(fs afero.Fs, virtualEnv string, runCmd RunCommandFunc) *Discoverer {
	if runCmd == nil {
		runCmd = runCommand
	}

	return &Discoverer{
		fs:         fs,
		virtualEnv: virtualEnv,
		runCmd:     runCmd,
	}
}

// Discover returns the PyTorch installation directory, or an empty string
// when PyTorch is not installed. A non-empty override skips discovery but
// must name an existing directory. An absent interpreter or a probe failure
// is not an error; discovery falls back to well known site-packages
// locations.
func (d *Discoverer) Discover(ctx context.Context, override string) (string, error) {
	logger := log.GetLogger(ctx)

	if override != "" {
		exists, err := afero.DirExists(d.fs, override)
		if err != nil {
			return "", fmt.Errorf("checking torch directory %s: %w", override, err)
		}

		if !exists {
			return "", fmt.Errorf("torch directory %s does not exist", override)
		}

		return override, nil
	}

	if dir := d.probe(ctx, logger); dir != "" {
		return dir, nil
	}

	return d.glob(logger)
}

// probe asks python3 for the torch package location. Any failure is logged
// and reported as not found so the glob fallback can run.
func (d *Discoverer) probe(ctx context.Context, logger *logrus.Entry) string {
	out, err := d.runCmd(ctx, "python3", "-c", torchProbe)
	if err != nil {
		logger.WithError(err).Debug("python probe for torch failed")

		return ""
	}

	origin := strings.TrimSpace(string(out))
	if origin == "" {
		logger.Debug("python reports no torch installation")

		return ""
	}

	dir := filepath.Dir(origin)

	exists, err := afero.DirExists(d.fs, dir)
	if err != nil || !exists {
		logger.WithField("dir", dir).Debug("probed torch directory does not exist")

		return ""
	}

	logger.WithField("dir", dir).Debug("torch found via python probe")

	return dir
}

// glob scans well known site-packages locations for a torch directory.
func (d *Discoverer) glob(logger *logrus.Entry) (string, error) {
	patterns := []string{}

	if d.virtualEnv != "" {
		patterns = append(patterns,
			filepath.Join(d.virtualEnv, "lib", "python*", "site-packages", "torch"))
	}

	patterns = append(patterns,
		"/usr/lib/python*/site-packages/torch",
		"/usr/lib64/python*/site-packages/torch",
		"/usr/local/lib/python*/site-packages/torch",
	)

	for _, pattern := range patterns {
		matches, err := afero.Glob(d.fs, pattern)
		if err != nil {
			return "", fmt.Errorf("globbing %s: %w", pattern, err)
		}

		for _, match := range matches {
			isDir, err := afero.DirExists(d.fs, match)
			if err != nil {
				return "", fmt.Errorf("checking %s: %w", match, err)
			}

			if isDir {
				logger.WithField("dir", match).Debug("torch found via site-packages scan")

				return match, nil
			}
		}
	}

	return "", nil
}

// runCommand is the default RunCommandFunc. The child's stderr is forwarded
// line by line into the log so interpreter noise does not land on the
// terminal.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	stderr := log.NewLineWriter(log.GetLogger(ctx).WithField("exec", name), logrus.ErrorLevel)
	defer stderr.Close()

	cmd.Stderr = stderr

	return cmd.Output()
}
