package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional /etc/prime-select.yaml configuration file
type Config struct {
	Tools     ToolsConfig `yaml:"tools"`
	PowerFlag string      `yaml:"power_flag,omitempty"`
	ExecPath  string      `yaml:"exec_path,omitempty"`
}

// ToolsConfig overrides the names (or absolute paths) of the host tools
type ToolsConfig struct {
	Alternatives string `yaml:"alternatives,omitempty"`
	Ldconfig     string `yaml:"ldconfig,omitempty"`
	Dpkg         string `yaml:"dpkg,omitempty"`
	Initramfs    string `yaml:"initramfs,omitempty"`
}

// ResolvedConfig holds the fully resolved configuration
type ResolvedConfig struct {
	Alternatives string // update-alternatives tool
	Ldconfig     string // dynamic-linker cache rebuilder
	Dpkg         string // package-architecture probe
	Initramfs    string // initramfs regeneration tool
	PowerFlag    string // power-profile flag file
	ExecPath     string // PATH handed to every external invocation
}

// ConfigPath returns the path to the system config file.
var ConfigPath = defaultConfigPath

func defaultConfigPath() string {
	if p := os.Getenv("PRIME_SELECT_CONFIG"); p != "" {
		return p
	}
	return "/etc/prime-select.yaml"
}

// LoadConfig reads the config file. Returns zero-value config if missing.
func LoadConfig() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// ResolveConfig resolves the configuration: env vars > config file > defaults.
func ResolveConfig() (*ResolvedConfig, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return &ResolvedConfig{
		Alternatives: resolveValue("", cfg.Tools.Alternatives, "update-alternatives"),
		Ldconfig:     resolveValue("", cfg.Tools.Ldconfig, "ldconfig"),
		Dpkg:         resolveValue("", cfg.Tools.Dpkg, "dpkg"),
		Initramfs:    resolveValue("", cfg.Tools.Initramfs, "update-initramfs"),
		PowerFlag:    resolveValue(os.Getenv("PRIME_SELECT_POWER_FLAG"), cfg.PowerFlag, "/etc/prime-discrete"),
		ExecPath:     resolveValue(os.Getenv("PRIME_SELECT_EXEC_PATH"), cfg.ExecPath, "/usr/bin:/bin:/usr/sbin:/sbin"),
	}, nil
}

// resolveValue returns the first non-empty value from the chain.
func resolveValue(envVal, cfgVal, defaultVal string) string {
	if envVal != "" {
		return envVal
	}
	if cfgVal != "" {
		return cfgVal
	}
	return defaultVal
}
