// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

// Package version carries the interpreter's semver-tagged language
// version and the compatibility gate a loaded config's
// min_language_version constraint checks against.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// LanguageVersion is the interpreter's own semver tag. It advances when
// THE CORE's observable semantics change (a new special form, a changed
// error kind), not on every ambient-stack release.
const LanguageVersion = "1.0.0"

// Parsed returns LanguageVersion as a *semver.Version.
func Parsed() *semver.Version {
	v := semver.MustParse(LanguageVersion)
	return v
}

// Satisfies reports whether LanguageVersion satisfies the given semver
// constraint string (e.g. ">=1.0.0, <2.0.0"), used to gate a config
// file's optional min_language_version setting.
func Satisfies(constraint string) (bool, error) {
	if constraint == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}
	return c.Check(Parsed()), nil
}
