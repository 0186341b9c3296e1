/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package template

import "fmt"

// Mode selects the resolution behavior for fields whose bindings are
// missing at render time.
type Mode int

const (
	// Partial leaves missing fields untouched for later resolution.
	Partial Mode = iota

	// Glob replaces missing fields with a wildcard marker.
	Glob

	// Default replaces missing fields with their inline default value.
	// Fields without an inline default behave as in Partial mode.
	Default
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Partial:
		return "partial"
	case Glob:
		return "glob"
	case Default:
		return "default"
	default:
		return "unknown"
	}
}

// ModeFromString returns the mode named by s.
func ModeFromString(s string) (Mode, error) {
	switch s {
	case "partial":
		return Partial, nil
	case "glob":
		return Glob, nil
	case "default":
		return Default, nil
	default:
		return Partial, fmt.Errorf("unrecognized mode: %s", s)
	}
}
