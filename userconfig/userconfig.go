// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package userconfig reads and creates the per-user deplio settings file.
package userconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/juju/utils/v4"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

var logger = loggo.GetLogger("deplio.userconfig")

// FileName is the name of the settings file in the home directory.
const FileName = ".deplio"

// ErrDeserialization is raised when the settings file is not valid TOML.
const ErrDeserialization = errors.ConstError("deserialization failed")

// Template is written by Create. Every setting is commented out so that
// a fresh file loads as empty settings.
const Template = `# deplio user configuration.
#
# Values in [defaults] are used by "deplio init" when the matching
# option is not given on the command line.

[defaults]
# deplio_server = "https://deplio.example.com"
# owner = "my-organisation"

[debug]
# synth_working_dir = "~/deplio/synth"
# override_params = "--verbose"
`

// Settings holds the user settings.
type Settings struct {
	Defaults Defaults `toml:"defaults" yaml:"defaults" json:"defaults"`
	Debug    Debug    `toml:"debug" yaml:"debug" json:"debug"`
}

// Defaults holds fallback values for project initialisation.
type Defaults struct {
	DeplioServer string `toml:"deplio_server,omitempty" yaml:"deplio-server,omitempty" json:"deplio-server,omitempty"`
	Owner        string `toml:"owner,omitempty" yaml:"owner,omitempty" json:"owner,omitempty"`
}

// Debug holds settings used while developing deplio itself.
type Debug struct {
	SynthWorkingDir string `toml:"synth_working_dir,omitempty" yaml:"synth-working-dir,omitempty" json:"synth-working-dir,omitempty"`
	OverrideParams  string `toml:"override_params,omitempty" yaml:"override-params,omitempty" json:"override-params,omitempty"`
}

// WorkingDir returns the synthesised project directory with any leading
// "~" expanded, or the empty string if none is configured.
func (d Debug) WorkingDir() (string, error) {
	if d.SynthWorkingDir == "" {
		return "", nil
	}
	dir, err := homedir.Expand(d.SynthWorkingDir)
	return dir, errors.Trace(err)
}

// DeserializationError wraps a TOML decoding error.
type DeserializationError struct {
	Path string
	Err  error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.Path, e.Err)
}

// Is implements errors.Is.
func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

// Unwrap returns the decoding error.
func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// Path returns the location of the settings file for the given home
// directory.
func Path(home string) string {
	return filepath.Join(home, FileName)
}

// Load reads the settings file in home. A missing file yields empty
// settings.
func Load(home string) (*Settings, error) {
	path := Path(home)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Debugf("no settings file at %s, using defaults", path)
		return &Settings{}, nil
	} else if err != nil {
		return nil, errors.Annotatef(err, "reading %s", path)
	}
	var settings Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, &DeserializationError{Path: path, Err: err}
	}
	return &settings, nil
}

// Create writes Template to the settings file in home. An existing file is
// only replaced if overwrite is true. It reports whether the file was
// written.
func Create(home string, overwrite bool) (bool, error) {
	path := Path(home)
	_, err := os.Stat(path)
	switch {
	case err == nil && !overwrite:
		return false, nil
	case err != nil && !os.IsNotExist(err):
		return false, errors.Annotatef(err, "accessing %s", path)
	}
	if err := utils.AtomicWriteFile(path, []byte(Template), 0600); err != nil {
		return false, errors.Annotatef(err, "writing %s", path)
	}
	logger.Infof("wrote settings template to %s", path)
	return true, nil
}
