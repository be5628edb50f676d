package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ifaceGL  = "gl"
	ifaceEGL = "egl"
)

// archGroups bundles the GL and EGL alternatives groups for one architecture.
type archGroups struct {
	arch Architecture
	gl   *Alternatives
	egl  *Alternatives
}

func newArchGroups(runner Runner, cfg *ResolvedConfig, arch Architecture) archGroups {
	return archGroups{
		arch: arch,
		gl:   NewAlternatives(runner, cfg, groupName(arch, ifaceGL)),
		egl:  NewAlternatives(runner, cfg, groupName(arch, ifaceEGL)),
	}
}

// currentAlternatives holds the simplified names of the active GL and EGL
// alternatives for one architecture. An empty field means the group is not
// configured.
type currentAlternatives struct {
	GL  string
	EGL string
}

// Switcher orchestrates the alternatives groups of the primary and, on
// dual-architecture hosts, the secondary architecture.
type Switcher struct {
	primary   archGroups
	secondary *archGroups // nil unless the host is dual-architecture

	cfg    *ResolvedConfig
	runner Runner

	// Out receives machine-readable results (the query profile line);
	// Errw receives operator progress and warnings.
	Out  io.Writer
	Errw io.Writer
}

// NewSwitcher probes the host architecture and wires the alternatives groups.
func NewSwitcher(runner Runner, cfg *ResolvedConfig) (*Switcher, error) {
	arch, err := ProbeArchitecture(runner, cfg.Dpkg)
	if err != nil {
		return nil, err
	}

	s := &Switcher{
		primary: newArchGroups(runner, cfg, arch),
		cfg:     cfg,
		runner:  runner,
		Out:     os.Stdout,
		Errw:    os.Stderr,
	}

	if sec, ok := arch.Secondary(); ok {
		groups := newArchGroups(runner, cfg, sec)
		s.secondary = &groups
	}

	return s, nil
}

// Query prints the active profile of the primary GL alternative as a single
// stdout line. Secondary-architecture state is not consulted.
func (s *Switcher) Query() error {
	current := s.primary.gl.Current(false)
	if current == "" {
		return errors.New("no usable GL alternative found")
	}

	fmt.Fprintln(s.Out, ClassifyProfile(providerName(current)))
	return nil
}

// Switch moves both interfaces of every architecture to the target profile.
// The primary architecture gates success; the secondary one is best-effort.
func (s *Switcher) Switch(target Profile) error {
	if target != ProfileIntel && target != ProfileNvidia {
		return fmt.Errorf("cannot switch to profile %q", target)
	}

	primary := snapshot(&s.primary)
	s.report(&s.primary, primary)
	if s.secondary != nil {
		s.report(s.secondary, snapshot(s.secondary))
	}

	providers := s.primary.gl.ListProviders()
	if !hasPrimeProvider(providers) {
		return errors.New("PRIME is not supported on this installation")
	}

	if primary.GL == "" && primary.EGL == "" {
		return errors.New("no alternatives found")
	}

	if profileActive(target, primary.GL) {
		fmt.Fprintf(s.Errw, "Profile %s already active\n", target)
		return nil
	}

	name := findTarget(target, providers)
	if name == "" {
		return fmt.Errorf("no %s alternative found among installed providers", target)
	}

	if !s.apply(&s.primary, name) {
		return fmt.Errorf("failed to enable alternative %s", name)
	}

	if s.secondary != nil && !s.apply(s.secondary, name) {
		fmt.Fprintf(s.Errw, "Warning: could not switch %s alternatives to %s\n", s.secondary.arch, name)
	}

	if err := WritePowerFlag(s.cfg.PowerFlag, target); err != nil {
		return err
	}

	s.updateInitramfs()
	return nil
}

// snapshot reads the simplified names of one architecture's active
// alternatives.
func snapshot(g *archGroups) currentAlternatives {
	names := currentAlternatives{}
	if v := g.gl.Current(false); v != "" {
		names.GL = providerName(v)
	}
	if v := g.egl.Current(false); v != "" {
		names.EGL = providerName(v)
	}
	return names
}

// report prints the pre-switch state of one architecture for the operator.
func (s *Switcher) report(g *archGroups, names currentAlternatives) {
	fmt.Fprintf(s.Errw, "Current GL alternative (%s): %s\n", g.arch, orNone(names.GL))
	fmt.Fprintf(s.Errw, "Current EGL alternative (%s): %s\n", g.arch, orNone(names.EGL))
}

func orNone(name string) string {
	if name == "" {
		return "(none)"
	}
	return name
}

// hasPrimeProvider reports whether any installed provider carries the prime
// marker. Without one the installation cannot switch profiles at all.
func hasPrimeProvider(providers []string) bool {
	for _, p := range providers {
		if strings.Contains(providerName(p), "prime") {
			return true
		}
	}
	return false
}

// profileActive reports whether the current GL alternative name already
// matches the target profile.
func profileActive(target Profile, glName string) bool {
	switch target {
	case ProfileIntel:
		return strings.Contains(glName, "prime")
	case ProfileNvidia:
		return strings.Contains(glName, "nvidia") && !strings.Contains(glName, "prime")
	}
	return false
}

// findTarget picks the first provider matching the target profile, in the
// order the alternatives tool listed them, and returns its simplified name.
func findTarget(target Profile, providers []string) string {
	for _, p := range providers {
		name := providerName(p)
		switch target {
		case ProfileIntel:
			if strings.Contains(name, "prime") {
				return name
			}
		case ProfileNvidia:
			if strings.Contains(name, "nvidia") && !strings.Contains(name, "prime") {
				return name
			}
		}
	}
	return ""
}

// apply sets the named provider on both interfaces of one architecture.
// The name does not have to resolve in both groups; one successful set is
// enough.
func (s *Switcher) apply(g *archGroups, name string) bool {
	ok := false
	for _, alt := range []*Alternatives{g.gl, g.egl} {
		path := alt.ProviderByName(name, "")
		if path == "" {
			fmt.Fprintf(s.Errw, "Warning: no alternative named %s in %s\n", name, alt.Master())
			continue
		}
		if err := alt.SetProvider(path); err != nil {
			fmt.Fprintf(s.Errw, "Warning: %v\n", err)
			continue
		}
		fmt.Fprintf(s.Errw, "Selecting %s for %s\n", path, alt.Master())
		ok = true
	}
	return ok
}

// updateInitramfs regenerates the initramfs after a successful switch.
// Failures do not affect the switch outcome.
func (s *Switcher) updateInitramfs() {
	if err := s.runner.Run(s.cfg.Initramfs, "-u"); err != nil {
		fmt.Fprintf(s.Errw, "Warning: initramfs update failed: %v\n", err)
	}
}
