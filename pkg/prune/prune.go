package prune

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"rocmclean/pkg/isa"
	"rocmclean/pkg/log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	// torchPlaceholder in a base directory template expands to the PyTorch
	// installation directory.
	torchPlaceholder = "{torch}"
	// shortVersionPlaceholder in a directory tree template expands to a
	// coarse gfx version such as "gfx9".
	shortVersionPlaceholder = "{shortversion}"
)

// gfxTokenRE extracts the gfx token embedded in a support file name, e.g.
// "gfx90a" out of "TensileLibrary_lazy_gfx90a.dat". Feature suffixes like
// "-xnack-" are not part of the token.
var gfxTokenRE = regexp.MustCompile(`gfx[0-9]+[0-9a-z]*`)

// Config holds the directories a Pruner operates on.
type Config struct {
	// BaseDirs are templates of directories that hold per-ISA support
	// files. Templates may contain {torch}.
	BaseDirs []string
	// DirTrees are templates of whole directory trees named after a coarse
	// gfx version. Templates contain {shortversion}.
	DirTrees []string
	// TorchDir is the PyTorch installation directory. Empty means PyTorch
	// is not installed and {torch} templates are skipped.
	TorchDir string
}

// Pruner plans and applies the removal of GPU support files that a target
// resolution does not keep.
type Pruner struct {
	config   *Config
	registry *isa.Registry
	fs       afero.Fs
}

// New creates a Pruner for the given directories and registry.
func New(cfg *Config, registry *isa.Registry, fs afero.Fs) *Pruner {
	return &Pruner{
		config:   cfg,
		registry: registry,
		fs:       fs,
	}
}

// Plan walks the configured directories and collects everything the
// resolution does not keep. Directories that do not exist are skipped. The
// filesystem is not modified.
func (p *Pruner) Plan(ctx context.Context, res *isa.Resolution) (*Plan, error) {
	logger := log.GetLogger(ctx).WithField("action", "plan")
	plan := &Plan{}

	for _, dir := range p.baseDirs() {
		if err := p.planBaseDir(logger, plan, dir, res); err != nil {
			return nil, err
		}
	}

	for _, template := range p.config.DirTrees {
		if err := p.planDirTree(logger, plan, template, res); err != nil {
			return nil, err
		}
	}

	logger.WithFields(logrus.Fields{
		"actions": len(plan.Actions),
		"bytes":   plan.TotalSize(),
	}).Debug("removal plan complete")

	return plan, nil
}

// Apply executes a plan. Paths that are already gone count as done; any
// other failure aborts immediately, so the returned result reflects what
// was removed before the error.
func (p *Pruner) Apply(ctx context.Context, plan *Plan) (*Result, error) {
	logger := log.GetLogger(ctx).WithField("action", "apply")
	result := &Result{}

	for _, action := range plan.Actions {
		switch action.Kind {
		case ActionRemoveFile:
			if err := p.fs.Remove(action.Path); err != nil {
				if os.IsNotExist(err) {
					continue
				}

				return result, fmt.Errorf("removing file %s: %w", action.Path, err)
			}

			result.RemovedFiles++
		case ActionRemoveTree:
			if err := p.fs.RemoveAll(action.Path); err != nil {
				return result, fmt.Errorf("removing tree %s: %w", action.Path, err)
			}

			result.RemovedTrees++
		default:
			return result, fmt.Errorf("unknown action kind %q for %s", action.Kind, action.Path)
		}

		result.Reclaimed += action.Size
		logger.WithFields(logrus.Fields{
			"path": action.Path,
			"size": action.Size,
		}).Debug("removed")
	}

	return result, nil
}

// baseDirs expands the base directory templates. Templates that need a
// PyTorch directory are dropped when none was discovered.
func (p *Pruner) baseDirs() []string {
	dirs := make([]string, 0, len(p.config.BaseDirs))

	for _, template := range p.config.BaseDirs {
		if strings.Contains(template, torchPlaceholder) {
			if p.config.TorchDir == "" {
				continue
			}

			template = strings.ReplaceAll(template, torchPlaceholder, p.config.TorchDir)
		}

		dirs = append(dirs, template)
	}

	return dirs
}

func (p *Pruner) planBaseDir(logger *logrus.Entry, plan *Plan, dir string, res *isa.Resolution) error {
	exists, err := afero.DirExists(p.fs, dir)
	if err != nil {
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}

	if !exists {
		logger.Debugf("directory %s does not exist, skipping", dir)

		return nil
	}

	walkErr := afero.Walk(p.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		token := gfxTokenRE.FindString(info.Name())
		if token == "" || res.HasShortISA(token) {
			return nil
		}

		logger.WithFields(logrus.Fields{
			"path":  path,
			"token": token,
		}).Trace("support file not kept")

		plan.Actions = append(plan.Actions, Action{
			Kind:  ActionRemoveFile,
			Path:  path,
			Size:  info.Size(),
			Token: token,
		})

		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("walking %s: %w", dir, walkErr)
	}

	return nil
}

// planDirTree expands a tree template once per known coarse gfx version and
// marks the trees whose version the resolution does not keep. Versions the
// registry does not know are never touched.
func (p *Pruner) planDirTree(logger *logrus.Entry, plan *Plan, template string, res *isa.Resolution) error {
	for _, version := range p.registry.ShortVersions() {
		if res.HasShortVersion(version) {
			continue
		}

		dir := strings.ReplaceAll(template, shortVersionPlaceholder, version)

		exists, err := afero.DirExists(p.fs, dir)
		if err != nil {
			return fmt.Errorf("checking directory %s: %w", dir, err)
		}

		if !exists {
			continue
		}

		size, err := p.treeSize(dir)
		if err != nil {
			return fmt.Errorf("sizing tree %s: %w", dir, err)
		}

		logger.WithFields(logrus.Fields{
			"path":  dir,
			"token": version,
		}).Trace("directory tree not kept")

		plan.Actions = append(plan.Actions, Action{
			Kind:  ActionRemoveTree,
			Path:  dir,
			Size:  size,
			Token: version,
		})
	}

	return nil
}

func (p *Pruner) treeSize(dir string) (int64, error) {
	var size int64

	err := afero.Walk(p.fs, dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.Mode().IsRegular() {
			size += info.Size()
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return size, nil
}
