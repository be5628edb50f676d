package main

import (
	"fmt"
	"strings"
)

// Architecture represents a dpkg architecture supported for alternatives
// switching.
type Architecture int

const (
	ArchAMD64 Architecture = iota
	ArchI386
)

// ArchitectureFromString maps a dpkg architecture tag to an Architecture.
// Returns false for anything outside the two supported tags.
func ArchitectureFromString(a string) (Architecture, bool) {
	switch a {
	case "amd64":
		return ArchAMD64, true
	case "i386":
		return ArchI386, true
	default:
		return -1, false
	}
}

// MultiarchTag returns the multiarch tuple used to build alternative group
// names for this architecture.
func (a Architecture) MultiarchTag() string {
	switch a {
	case ArchAMD64:
		return "x86_64-linux-gnu"
	case ArchI386:
		return "i386-linux-gnu"
	}
	return ""
}

// Secondary returns the companion 32-bit architecture and whether one exists.
// Only amd64 hosts carry a secondary architecture.
func (a Architecture) Secondary() (Architecture, bool) {
	if a == ArchAMD64 {
		return ArchI386, true
	}
	return -1, false
}

func (a Architecture) String() string {
	switch a {
	case ArchAMD64:
		return "amd64"
	case ArchI386:
		return "i386"
	}
	return "unknown"
}

// ProbeArchitecture asks dpkg for the host's package architecture.
func ProbeArchitecture(runner Runner, dpkg string) (Architecture, error) {
	out, err := runner.Output(dpkg, "--print-architecture")
	if err != nil {
		return -1, fmt.Errorf("probing package architecture: %w", err)
	}

	tag := strings.TrimSpace(string(out))
	arch, ok := ArchitectureFromString(tag)
	if !ok {
		return -1, fmt.Errorf("unsupported platform architecture %q", tag)
	}
	return arch, nil
}
