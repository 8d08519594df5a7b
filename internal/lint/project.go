// Package lint implements the quality gate: resolving the project and its
// target paths, running the ordered checks (imports, style, format,
// copyright) and collecting the results into a report.
package lint

import (
	"os"
	"path/filepath"

	"github.com/aflah02/pyqa/internal/config"
	"github.com/aflah02/pyqa/internal/fsh"
	"github.com/aflah02/pyqa/internal/validator"
)

// RootDirEnvVar names the project root directory when no --project flag is given.
const RootDirEnvVar = "PYQA_PROJECT_DIR"

// Project represents the Python project the quality gate runs against.
type Project struct {
	rootDirectory string
	config        *config.Config
	compiler      validator.Compiler
	pathResolver  fsh.PathResolver
	envProvider   fsh.EnvProvider
}

// NewProject creates a new Project rooted at rootDirectory.
// If rootDirectory is empty, the PYQA_PROJECT_DIR environment variable is
// used; if that is empty too, the current directory. The project
// configuration is loaded from .pyqa.yml in the root, falling back to the
// built-in defaults when the file is absent.
func NewProject(
	rootDirectory string,
	compiler validator.Compiler,
	pathResolver fsh.PathResolver,
	envProvider fsh.EnvProvider,
) (*Project, error) {
	rd, err := initRootDirectory(rootDirectory, pathResolver, envProvider)
	if err != nil {
		return nil, err
	}

	cfg, err := config.New(rd, compiler)
	if err != nil {
		return nil, err
	}

	return &Project{
		rootDirectory: rd,
		config:        cfg,
		compiler:      compiler,
		pathResolver:  pathResolver,
		envProvider:   envProvider,
	}, nil
}

// Reset reloads the configuration from disk. The watcher calls this when
// .pyqa.yml changes so the next run picks up the new settings.
func (p *Project) Reset() error {
	cfg, err := config.New(p.rootDirectory, p.compiler)
	if err != nil {
		return err
	}
	p.config = cfg
	return nil
}

// initRootDirectory attempts to initialise the project root directory.
// An empty rd falls back to PYQA_PROJECT_DIR, and an empty value there
// resolves to the current directory.
func initRootDirectory(rd string, pathResolver fsh.PathResolver, envProvider fsh.EnvProvider) (string, error) {
	if rd == "" {
		rd = envProvider.Get(RootDirEnvVar)
	}

	rdc, err := pathResolver.CanonicalPath(rd)
	if err != nil {
		return "", &ProjectInitError{Path: rd, Err: err}
	}
	rd = rdc

	info, err := os.Stat(rd)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", &ProjectRootNotFolderError{Path: rd}
	}
	return rd, nil
}

// RootDirectory returns the root directory of the project.
func (p *Project) RootDirectory() string {
	return p.rootDirectory
}

// Config returns the project configuration.
func (p *Project) Config() *config.Config {
	return p.config
}

// SettingsPath returns the absolute path of the shared tool settings file.
func (p *Project) SettingsPath() string {
	return filepath.Join(p.rootDirectory, p.config.SettingsFile)
}

// CheckSettingsFile verifies the shared settings file exists. The tool checks
// hand its path to isort and flake8, which fail with confusing diagnostics
// when it is missing.
func (p *Project) CheckSettingsFile() error {
	path := p.SettingsPath()
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &SettingsFileNotFoundError{Path: path}
	}
	return nil
}
