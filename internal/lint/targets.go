package lint

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Target is one resolved entry of the target path set. Path is relative to
// the project root, which keeps tool arguments and report output short.
type Target struct {
	Path  string
	IsDir bool
}

// TargetSet is the ordered, deduplicated resolution of the configured target
// entries against the project root.
type TargetSet struct {
	root    string
	targets []Target
	dropped []string
}

// ResolveTargets expands the configured target entries. An entry containing
// glob characters is matched against the project root and yields the regular
// files it matches; a glob matching nothing is recorded as dropped. A plain
// entry names a file or directory that must exist.
func (p *Project) ResolveTargets() (*TargetSet, error) {
	ts := &TargetSet{root: p.rootDirectory}
	seen := make(map[string]bool)

	add := func(path string, isDir bool) {
		if seen[path] {
			return
		}
		seen[path] = true
		ts.targets = append(ts.targets, Target{Path: path, IsDir: isDir})
	}

	for _, entry := range p.config.Targets {
		if !isGlobPattern(entry) {
			info, err := os.Stat(filepath.Join(p.rootDirectory, entry))
			if err != nil {
				if os.IsNotExist(err) {
					return nil, &TargetNotFoundError{Target: entry}
				}
				return nil, err
			}
			add(filepath.Clean(entry), info.IsDir())
			continue
		}

		matches, err := filepath.Glob(filepath.Join(p.rootDirectory, entry))
		if err != nil {
			return nil, &InvalidTargetPatternError{Pattern: entry, Err: err}
		}
		if len(matches) == 0 {
			ts.dropped = append(ts.dropped, entry)
			continue
		}
		for _, match := range matches {
			info, sErr := os.Stat(match)
			if sErr != nil || info.IsDir() {
				continue
			}
			rel, rErr := filepath.Rel(p.rootDirectory, match)
			if rErr != nil {
				return nil, rErr
			}
			add(rel, false)
		}
	}

	return ts, nil
}

// isGlobPattern reports whether the entry contains filepath.Match syntax.
func isGlobPattern(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// Root returns the project root the targets were resolved against.
func (ts *TargetSet) Root() string {
	return ts.root
}

// Targets returns the resolved targets in order.
func (ts *TargetSet) Targets() []Target {
	return ts.targets
}

// Dropped returns the glob entries that matched nothing.
func (ts *TargetSet) Dropped() []string {
	return ts.dropped
}

// Paths returns the target paths in tool-argument form, relative to the
// project root.
func (ts *TargetSet) Paths() []string {
	paths := make([]string, len(ts.targets))
	for i, t := range ts.targets {
		paths[i] = t.Path
	}
	return paths
}

// PythonFiles enumerates every .py file in the target set: file targets
// first, then each directory target walked in lexical order with
// dot-directories skipped. Paths are relative to the project root and
// deduplicated.
func (ts *TargetSet) PythonFiles(ctx context.Context) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if seen[path] {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, t := range ts.targets {
		if ce := ctx.Err(); ce != nil {
			return nil, ce
		}

		if !t.IsDir {
			if strings.HasSuffix(t.Path, ".py") {
				add(t.Path)
			}
			continue
		}

		dir := filepath.Join(ts.root, t.Path)
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") && path != dir {
					return filepath.SkipDir
				}
				return nil
			}
			if ce := ctx.Err(); ce != nil {
				return ce
			}
			if !strings.HasSuffix(d.Name(), ".py") {
				return nil
			}
			rel, rErr := filepath.Rel(ts.root, path)
			if rErr != nil {
				return rErr
			}
			add(rel)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
