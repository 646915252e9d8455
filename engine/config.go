// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the engine configuration, decodable from TOML or YAML by
// file extension.
type Config struct {

	// Capacity is the hard limit on live pool instances.
	Capacity int `toml:"capacity" yaml:"capacity"`

	// QueueSize is the capacity of the pending parameter update queue.
	QueueSize int `toml:"queue-size" yaml:"queue-size"`

	// Caching enables geometry dataset memoization.
	Caching bool `toml:"caching" yaml:"caching"`

	// Morphing enables blended geometry morphs; off means hard
	// switching.
	Morphing bool `toml:"morphing" yaml:"morphing"`

	// Params are initial parameter overrides, applied through normal
	// validated writes at startup and on config reload.
	Params map[string]float64 `toml:"params" yaml:"params"`
}

// Defaults sets default configuration values.
func (cf *Config) Defaults() {
	cf.Capacity = 20
	cf.QueueSize = 128
	cf.Caching = true
	cf.Morphing = true
}

// OpenConfig reads a config file, decoding TOML or YAML by extension.
// Missing fields keep their defaults.
func OpenConfig(filename string) (*Config, error) {
	cf := &Config{}
	cf.Defaults()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cf)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cf)
	default:
		return nil, fmt.Errorf("engine: unsupported config extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("engine: decoding %s: %w", filename, err)
	}
	return cf, nil
}

// SaveConfig writes the config as TOML or YAML by extension.
func SaveConfig(cf *Config, filename string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		b, err = toml.Marshal(cf)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(cf)
	default:
		return fmt.Errorf("engine: unsupported config extension %q", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
