// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Caesar CaesarConfig `toml:"caesar"`
	XOR    XORConfig    `toml:"xor"`
	DTMF   DTMFConfig   `toml:"dtmf"`
	RSA    RSAConfig    `toml:"rsa"`
}

// CaesarConfig maps Caesar encoder and cracker settings.
type CaesarConfig struct {
	Shift *int    `toml:"shift"`
	Top   *int    `toml:"top"`
	Dict  *string `toml:"dict"`
}

// XORConfig maps XOR cipher settings.
type XORConfig struct {
	WarnWeak *bool `toml:"warn-weak"`
}

// DTMFConfig maps tone synthesis settings.
type DTMFConfig struct {
	Speed      *string `toml:"speed"`
	SampleRate *int    `toml:"sample-rate"`
}

// RSAConfig maps key generation settings.
type RSAConfig struct {
	Bits *int `toml:"bits"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
