package main

import "strings"

// Profile represents the logical graphics profile derived from the name of
// the active alternative.
type Profile int

const (
	ProfileUnknown Profile = iota
	ProfileIntel
	ProfileNvidia
)

func (p Profile) String() string {
	switch p {
	case ProfileIntel:
		return "intel"
	case ProfileNvidia:
		return "nvidia"
	}
	return "unknown"
}

// ClassifyProfile derives the profile from a simplified alternative name.
// The rules are ordered: a name carrying the prime marker classifies as the
// intel profile even though it also names nvidia, because PRIME offload means
// the GL consumer effectively runs on the open driver. That precedence is
// load-bearing for compatibility and must stay ahead of the bare-nvidia rule.
func ClassifyProfile(name string) Profile {
	switch {
	case strings.Contains(name, "nvidia") && strings.Contains(name, "prime"):
		return ProfileIntel
	case strings.Contains(name, "nvidia"):
		return ProfileNvidia
	default:
		return ProfileUnknown
	}
}
