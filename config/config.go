/*
File    : loxmix/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads loxmix's one optional configuration file,
// .loxmixrc.yaml. Its presence is entirely optional — absence is not an
// error, and every field defaults to the same value the driver would
// use with no config file at all.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a user may override via .loxmixrc.yaml.
type Config struct {
	// ColorEnabled toggles fatih/color diagnostics in the REPL and CLI
	// error output.
	ColorEnabled bool `yaml:"color_enabled"`
	// Prompt is the string the REPL prints before reading each line.
	Prompt string `yaml:"prompt"`
}

// Default returns the configuration loxmix uses when no config file is
// present or a field is left unset.
func Default() Config {
	return Config{
		ColorEnabled: true,
		Prompt:       "loxmix> ",
	}
}

// Load reads and parses the YAML config file at path, starting from
// Default() so a partial file only overrides the fields it sets. A
// missing file is not an error; it simply yields the default config.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// configEnvVar names the environment variable that, if set, overrides
// where LoadDefault looks for the config file.
const configEnvVar = "LOXMIX_CONFIG"

// LoadDefault resolves and loads loxmix's config file the way the driver
// does on every invocation: if $LOXMIX_CONFIG names a path, that path is
// read; otherwise .loxmixrc.yaml is read from the current directory.
// Neither source existing is an error — it simply yields Default().
func LoadDefault() (Config, error) {
	if path := os.Getenv(configEnvVar); path != "" {
		return Load(path)
	}
	return Load(".loxmixrc.yaml")
}
