// Package project locates and loads lus.toml manifests, which describe a
// Lustre project: its name, the entry file and where its sources live.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "lus.toml"

// Project is a loaded manifest.
type Project struct {
	Name  string `toml:"name"`
	Entry string `toml:"entry"`

	RootDir string `toml:"-"`
}

// Load reads the manifest in the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom reads rootDir/lus.toml. The name defaults to the directory name
// and the entry file to main.lus.
func LoadFrom(rootDir string) (*Project, error) {
	path := filepath.Join(rootDir, ManifestName)
	var p Project
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	p.RootDir = rootDir

	if p.Name == "" {
		abs, err := filepath.Abs(rootDir)
		if err != nil {
			return nil, err
		}
		p.Name = filepath.Base(abs)
	}
	if p.Entry == "" {
		p.Entry = "main.lus"
	}
	return &p, nil
}

// EntryPath returns the path of the entry file, relative to where the
// manifest was loaded from.
func (p *Project) EntryPath() string {
	return filepath.Join(p.RootDir, p.Entry)
}

// SourceFiles returns every .lus file under the project root, sorted.
func (p *Project) SourceFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(p.RootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".lus") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan sources in %s: %w", p.RootDir, err)
	}
	sort.Strings(files)
	return files, nil
}

// Find walks upward from dir looking for a manifest, returning the first
// project found.
func Find(dir string) (*Project, error) {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		if _, err := os.Stat(filepath.Join(cur, ManifestName)); err == nil {
			return LoadFrom(cur)
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, fmt.Errorf("no %s found above %s", ManifestName, dir)
		}
		cur = parent
	}
}
