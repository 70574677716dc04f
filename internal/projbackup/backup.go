// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package projbackup saves and restores the files deplio generates in a
// project, so that upgrades can be repeated against the same starting
// point.
package projbackup

import (
	"os"
	"path/filepath"
	"time"

	"github.com/juju/clock"
	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/naturalsort"
	"github.com/juju/utils/v4"
	"gopkg.in/yaml.v3"

	"github.com/deplio/deplio/appconfig"
)

var logger = loggo.GetLogger("deplio.projbackup")

const (
	// BackupDir is the directory, relative to the project, holding the
	// backup.
	BackupDir = ".deplio-backup"

	// ManifestFile lists the files held in the backup.
	ManifestFile = "manifest.yaml"
)

// WorkflowsDir holds the generated CI workflows, relative to the project.
var WorkflowsDir = filepath.Join(".github", "workflows")

// Manifest describes a backup.
type Manifest struct {
	Created time.Time `yaml:"created"`
	Files   []string  `yaml:"files"`
}

// ProjectFiles returns the generated files present in dir, as paths
// relative to dir in natural sort order.
func ProjectFiles(dir string) ([]string, error) {
	files := set.NewStrings()
	if info, err := os.Stat(filepath.Join(dir, appconfig.FileName)); err == nil && info.Mode().IsRegular() {
		files.Add(appconfig.FileName)
	} else if err != nil && !os.IsNotExist(err) {
		return nil, errors.Trace(err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, WorkflowsDir))
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Annotate(err, "reading workflows")
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files.Add(filepath.Join(WorkflowsDir, entry.Name()))
		}
	}
	if files.IsEmpty() {
		return nil, errors.NotFoundf("project files in %q", dir)
	}
	return naturalsort.Sort(files.Values()), nil
}

// Create replaces any existing backup in dir with a copy of the current
// project files.
func Create(dir string, clk clock.Clock) (*Manifest, error) {
	files, err := ProjectFiles(dir)
	if err != nil {
		return nil, errors.Trace(err)
	}
	backupDir := filepath.Join(dir, BackupDir)
	if err := os.RemoveAll(backupDir); err != nil {
		return nil, errors.Annotate(err, "removing previous backup")
	}
	for _, file := range files {
		if err := copyFile(filepath.Join(backupDir, file), filepath.Join(dir, file)); err != nil {
			return nil, errors.Trace(err)
		}
	}
	manifest := &Manifest{
		Created: clk.Now().UTC(),
		Files:   files,
	}
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err := utils.AtomicWriteFile(filepath.Join(backupDir, ManifestFile), data, 0644); err != nil {
		return nil, errors.Annotate(err, "writing backup manifest")
	}
	logger.Infof("backed up %d files to %s", len(files), backupDir)
	return manifest, nil
}

// ReadManifest returns the manifest of the backup in dir.
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, BackupDir, ManifestFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NotFoundf("backup in %q", dir)
	} else if err != nil {
		return nil, errors.Trace(err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Annotatef(err, "parsing %s", path)
	}
	return &manifest, nil
}

// Restore copies the files listed in the backup manifest back into dir.
// If purge is true the backup is removed afterwards.
func Restore(dir string, purge bool) (*Manifest, error) {
	manifest, err := ReadManifest(dir)
	if err != nil {
		return nil, errors.Trace(err)
	}
	backupDir := filepath.Join(dir, BackupDir)
	for _, file := range manifest.Files {
		if !filepath.IsLocal(file) {
			return nil, errors.NotValidf("backup file %q", file)
		}
		if err := copyFile(filepath.Join(dir, file), filepath.Join(backupDir, file)); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if purge {
		if err := os.RemoveAll(backupDir); err != nil {
			return nil, errors.Annotate(err, "removing backup")
		}
		logger.Debugf("removed %s", backupDir)
	}
	return manifest, nil
}

func copyFile(dest, source string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Trace(err)
	}
	if err := utils.CopyFile(dest, source); err != nil {
		return errors.Annotatef(err, "copying %s", source)
	}
	return nil
}
