package main

import (
	"errors"

	"github.com/alecthomas/kong"
	"golang.org/x/sys/unix"
)

var version = "0.8.17"

// CLI defines the command-line interface structure
type CLI struct {
	Nvidia  NvidiaCmd        `cmd:"" help:"Switch to the proprietary NVIDIA profile (requires root)"`
	Intel   IntelCmd         `cmd:"" help:"Switch to the open PRIME profile (requires root)"`
	Query   QueryCmd         `cmd:"" help:"Print the active profile: nvidia, intel, or unknown"`
	Version kong.VersionFlag `help:"Print version and exit"`
}

// NvidiaCmd switches to the proprietary NVIDIA profile
type NvidiaCmd struct{}

func (c *NvidiaCmd) Run() error {
	return runSwitch(ProfileNvidia)
}

// IntelCmd switches to the open PRIME profile
type IntelCmd struct{}

func (c *IntelCmd) Run() error {
	return runSwitch(ProfileIntel)
}

// QueryCmd prints the active profile
type QueryCmd struct{}

func (c *QueryCmd) Run() error {
	sw, err := newSwitcher()
	if err != nil {
		return err
	}
	return sw.Query()
}

func runSwitch(target Profile) error {
	if err := requireRoot(); err != nil {
		return err
	}

	sw, err := newSwitcher()
	if err != nil {
		return err
	}
	return sw.Switch(target)
}

// requireRoot refuses to proceed without elevation. Checked before any
// external tool is invoked.
var requireRoot = defaultRequireRoot

func defaultRequireRoot() error {
	if unix.Geteuid() != 0 {
		return errors.New("switching profiles requires root privileges")
	}
	return nil
}

func newSwitcher() (*Switcher, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, err
	}
	return NewSwitcher(NewRunner(cfg.ExecPath), cfg)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("prime-select"),
		kong.Description("Select the active graphics driver profile on hybrid NVIDIA systems"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
