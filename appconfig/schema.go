// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package appconfig

import (
	"github.com/juju/errors"
	"github.com/juju/schema"
)

var chartChecker = schema.FieldMap(
	schema.Fields{
		"name":      schema.String(),
		"url":       schema.String(),
		"namespace": schema.String(),
	},
	schema.Defaults{
		"namespace": schema.Omit,
	},
)

var configChecker = schema.FieldMap(
	schema.Fields{
		"deplio": schema.FieldMap(
			schema.Fields{
				"version": schema.String(),
			},
			nil,
		),
		"server": schema.FieldMap(
			schema.Fields{
				"deplio_server": schema.String(),
				"owner":         schema.String(),
			},
			nil,
		),
		"app": schema.FieldMap(
			schema.Fields{
				"name":   schema.String(),
				"sdlc":   schema.String(),
				"charts": schema.List(chartChecker),
			},
			schema.Defaults{
				"charts": schema.Omit,
			},
		),
	},
	nil,
)

// Validate checks decoded configuration attributes against the 1.0.0
// schema. Unknown attributes are ignored.
func Validate(attrs map[string]interface{}) error {
	if _, err := configChecker.Coerce(attrs, nil); err != nil {
		return errors.Annotate(err, "invalid app config")
	}
	return nil
}
