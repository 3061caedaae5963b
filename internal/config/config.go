package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config captures CLI options sourced from config files or flags.
type Config struct {
	PlaybooksDir string   `yaml:"playbooks_dir"`
	RolesDir     string   `yaml:"roles_dir"`
	VarsFile     string   `yaml:"vars_file"`
	Files        []string `yaml:"files"`
	Format       string   `yaml:"format"`

	MacOSIndicatorPatterns []string `yaml:"macos_indicator_patterns"`

	Warn WarnConfig `yaml:"warn"`
}

// WarnConfig controls additional warning behaviour.
type WarnConfig struct {
	AnsibleVersion string `yaml:"ansible_version"`
}

// Default returns the baseline configuration used when no flags or config file specify values.
func Default() Config {
	return Config{
		PlaybooksDir: "playbooks",
		RolesDir:     "roles",
		VarsFile:     filepath.Join("inventory", "group_vars", "all.yml"),
		Format:       FormatPretty,
	}
}

const (
	// FormatPretty renders human readable output.
	FormatPretty = "pretty"
	// FormatJSON renders machine readable output.
	FormatJSON = "json"
)

// Load reads .playcheck.yml from the scanned root when present. Missing files are ignored.
func Load(root string) (Config, error) {
	cfg := Default()
	path := filepath.Join(root, ".playcheck.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	cfg = merge(cfg, fileCfg)
	return cfg, nil
}

func merge(base, override Config) Config {
	out := base

	if override.PlaybooksDir != "" {
		out.PlaybooksDir = override.PlaybooksDir
	}
	if override.RolesDir != "" {
		out.RolesDir = override.RolesDir
	}
	if override.VarsFile != "" {
		out.VarsFile = override.VarsFile
	}
	if len(override.Files) > 0 {
		out.Files = append([]string{}, override.Files...)
	}
	if len(override.MacOSIndicatorPatterns) > 0 {
		out.MacOSIndicatorPatterns = append([]string{}, override.MacOSIndicatorPatterns...)
	}
	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Warn.AnsibleVersion != "" {
		out.Warn.AnsibleVersion = override.Warn.AnsibleVersion
	}

	return out
}

// ApplyFlags mutates cfg by applying values from CLI flags when they are present.
func ApplyFlags(cfg *Config, flags FlagValues) {
	if len(flags.Files.Values) > 0 {
		cfg.Files = append([]string{}, flags.Files.Values...)
	}
	if flags.Format.Set {
		cfg.Format = flags.Format.Value
	}
}

// FlagValues captures CLI flag state with knowledge of whether each flag was set explicitly.
type FlagValues struct {
	Files  SliceFlag
	Format StringFlag
}

// StringFlag represents a string flag and whether it was set.
type StringFlag struct {
	Value string
	Set   bool
}

// SliceFlag represents a slice flag and whether it captured values via CLI.
type SliceFlag struct {
	Values []string
}
