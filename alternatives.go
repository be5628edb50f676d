package main

import (
	"fmt"
	"strings"
)

// Alternatives accesses one update-alternatives group, identified by its
// master link name. One instance exists per (architecture, interface) pair.
type Alternatives struct {
	master   string
	tool     string
	ldconfig string
	runner   Runner
}

// NewAlternatives returns an accessor for the group registered under master.
func NewAlternatives(runner Runner, cfg *ResolvedConfig, master string) *Alternatives {
	return &Alternatives{
		master:   master,
		tool:     cfg.Alternatives,
		ldconfig: cfg.Ldconfig,
		runner:   runner,
	}
}

// Master returns the group's master link name.
func (a *Alternatives) Master() string {
	return a.master
}

// ListProviders returns the installed provider paths for this group, in the
// order the alternatives tool prints them. An unknown group or a tool failure
// yields an empty list, not an error.
func (a *Alternatives) ListProviders() []string {
	out, err := a.runner.Output(a.tool, "--list", a.master)
	if err != nil {
		return nil
	}

	var providers []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		providers = append(providers, line)
	}
	return providers
}

// Current returns the group's current selection from the tool's query
// output: the "Status:" line when checkStatus is set, the "Value:" line
// otherwise. An unconfigured group or a tool failure yields "".
func (a *Alternatives) Current(checkStatus bool) string {
	out, err := a.runner.Output(a.tool, "--query", a.master)
	if err != nil {
		return ""
	}

	prefix := "Value:"
	if checkStatus {
		prefix = "Status:"
	}

	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return ""
}

// ProviderByName finds the installed provider path whose name matches name
// exactly. A provider's name is the second-to-last segment of its path
// (".../nvidia-current/ld.so.conf" is named "nvidia-current"). When
// ignorePattern is non-empty it is stripped from name first. Returns "" when
// no provider matches.
func (a *Alternatives) ProviderByName(name, ignorePattern string) string {
	if ignorePattern != "" {
		name = strings.ReplaceAll(name, ignorePattern, "")
	}

	for _, provider := range a.ListProviders() {
		if providerName(provider) == name {
			return provider
		}
	}
	return ""
}

// SetProvider makes path the group's active provider and rebuilds the
// dynamic-linker cache. Both steps must succeed.
func (a *Alternatives) SetProvider(path string) error {
	if err := a.runner.Run(a.tool, "--set", a.master, path); err != nil {
		return fmt.Errorf("setting %s to %s: %w", a.master, path, err)
	}
	if err := a.runner.Run(a.ldconfig); err != nil {
		return fmt.Errorf("rebuilding linker cache: %w", err)
	}
	return nil
}

// providerName extracts the second-to-last path segment, the conventional
// name of an alternative provider.
func providerName(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

// groupName builds the master link name for an architecture and interface,
// e.g. "x86_64-linux-gnu_gl_conf".
func groupName(arch Architecture, iface string) string {
	return fmt.Sprintf("%s_%s_conf", arch.MultiarchTag(), iface)
}
