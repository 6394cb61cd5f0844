// Package platform describes the operating environment insofar as it affects
// what is rendered, i.e. which modifier glyph keyboard shortcuts use.
package platform

import (
	"fmt"
	"runtime"
)

type Platform int

const (
	Other Platform = iota
	Mac
)

// Auto is the config value requesting the platform be detected.
const Auto = "auto"

// Choices lists the valid config values for a platform, Auto first.
func Choices() []string {
	return []string{Auto, Mac.String(), Other.String()}
}

// Detect returns the platform the program is running on.
func Detect() Platform {
	if runtime.GOOS == "darwin" {
		return Mac
	}
	return Other
}

// Parse parses a config value into a platform. Auto detects the platform.
func Parse(s string) (Platform, error) {
	switch s {
	case Auto, "":
		return Detect(), nil
	case Mac.String():
		return Mac, nil
	case Other.String():
		return Other, nil
	default:
		return Other, fmt.Errorf("invalid platform: %s", s)
	}
}

func (p Platform) String() string {
	if p == Mac {
		return "mac"
	}
	return "other"
}

// Modifier is the prefix of an accelerator, e.g. "⌘" in "⌘1".
func (p Platform) Modifier() string {
	if p == Mac {
		return "⌘"
	}
	return "Ctrl+"
}
