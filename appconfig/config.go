// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package appconfig holds the project configuration written by deplio
// init into each deployment project, along with the helpers that create,
// read and upgrade it.
package appconfig

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// CurrentVersion is the schema version written by this release.
	CurrentVersion = "1.0.0"

	// FileName is the name of the project configuration file.
	FileName = "deplio.toml"
)

const (
	// ErrVersionMismatch is raised when the configuration is not at
	// CurrentVersion.
	ErrVersionMismatch = errors.ConstError("version mismatch")

	// ErrDeserialization is raised when the configuration is not valid
	// TOML or does not match the schema.
	ErrDeserialization = errors.ConstError("deserialization failed")
)

// AppConfig is the project configuration at schema version 1.0.0.
type AppConfig struct {
	Deplio DeplioSection `toml:"deplio"`
	Server ServerSection `toml:"server"`
	App    AppSection    `toml:"app"`
}

// DeplioSection records the schema version of the file.
type DeplioSection struct {
	Version string `toml:"version"`
}

// ServerSection identifies the deplio server and the project owner.
type ServerSection struct {
	DeplioServer string `toml:"deplio_server"`
	Owner        string `toml:"owner"`
}

// AppSection describes the application being deployed.
type AppSection struct {
	Name   string  `toml:"name"`
	Charts []Chart `toml:"charts"`
	SDLC   string  `toml:"sdlc"`
}

// Chart is a helm chart deployed with the application.
type Chart struct {
	Name      string `toml:"name"`
	URL       string `toml:"url"`
	Namespace string `toml:"namespace"`
}

// VersionMismatchError records the version found in a configuration that
// is not at the expected version. Found is empty if the configuration
// has no version.
type VersionMismatchError struct {
	Expected string
	Found    string
}

func (e *VersionMismatchError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("version mismatch: expected %s, no version found", e.Expected)
	}
	return fmt.Sprintf("version mismatch: expected %s, got %s", e.Expected, e.Found)
}

// Is implements errors.Is.
func (e *VersionMismatchError) Is(target error) bool {
	return target == ErrVersionMismatch
}

// DeserializationError wraps the error raised while decoding or checking
// a configuration.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to deserialize app config: %v", e.Err)
}

// Is implements errors.Is.
func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

// Unwrap returns the underlying error.
func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// ReadVersion returns the schema version recorded in the [deplio] section
// of data. It returns a NotFound error if there is no version.
func ReadVersion(data string) (string, error) {
	var header struct {
		Deplio struct {
			Version *string `toml:"version"`
		} `toml:"deplio"`
	}
	if err := toml.Unmarshal([]byte(data), &header); err != nil {
		return "", &DeserializationError{Err: err}
	}
	if header.Deplio.Version == nil {
		return "", errors.NotFoundf("deplio version")
	}
	return *header.Deplio.Version, nil
}

// Deserialize decodes a configuration at CurrentVersion. Configurations at
// any other version must be upgraded first.
func Deserialize(data string) (*AppConfig, error) {
	version, err := ReadVersion(data)
	if errors.IsNotFound(err) {
		return nil, &VersionMismatchError{Expected: CurrentVersion}
	} else if err != nil {
		return nil, errors.Trace(err)
	}
	if version != CurrentVersion {
		return nil, &VersionMismatchError{Expected: CurrentVersion, Found: version}
	}

	var attrs map[string]interface{}
	if err := toml.Unmarshal([]byte(data), &attrs); err != nil {
		return nil, &DeserializationError{Err: err}
	}
	if err := Validate(attrs); err != nil {
		return nil, &DeserializationError{Err: err}
	}

	var cfg AppConfig
	if err := toml.Unmarshal([]byte(data), &cfg); err != nil {
		return nil, &DeserializationError{Err: err}
	}
	return &cfg, nil
}
