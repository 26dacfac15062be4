// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package profile resolves the build profile that gates debug-only behaviour.
// The compile-time default comes from the "debug" build tag and may be overridden
// once at startup by a command-line flag or the DEBUG environment variable.
package profile

import (
	"fmt"
	"strings"
)

// Profile is the debug/release distinction.
type Profile int

const (
	// Release is the default profile of an untagged build.
	Release Profile = iota
	// Debug enables the embedded-view console sink and the devtools self-test.
	Debug
)

// String returns the lowercase profile name.
func (p Profile) String() string {
	switch p {
	case Debug:
		return "debug"
	case Release:
		return "release"
	default:
		return fmt.Sprintf("profile(%d)", int(p))
	}
}

// IsDebug reports whether p is the debug profile.
func (p Profile) IsDebug() bool { return p == Debug }

// Default returns the profile this binary was compiled with.
func Default() Profile { return compiled }

// Parse converts a profile name into a Profile. It is case insensitive.
func Parse(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug", "dev":
		return Debug, nil
	case "release", "prod":
		return Release, nil
	default:
		return Release, fmt.Errorf("unknown build profile %q", name)
	}
}

// Resolve picks the active profile. A non-empty flag value wins, then the DEBUG
// environment value ("true"/"false", "1"/"0"), then the compiled default.
func Resolve(flagValue, debugEnv string) (Profile, error) {
	if flagValue != "" {
		return Parse(flagValue)
	}

	switch strings.ToLower(strings.TrimSpace(debugEnv)) {
	case "":
		return compiled, nil
	case "true", "1", "yes":
		return Debug, nil
	case "false", "0", "no":
		return Release, nil
	default:
		return Release, fmt.Errorf("invalid DEBUG value %q", debugEnv)
	}
}
