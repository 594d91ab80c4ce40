// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the settings file. JSON and YAML share
// the same keys.
type fileConfig struct {
	Hiera struct {
		Binary            string            `json:"binary" yaml:"binary"`
		ConfigPath        string            `json:"config_path" yaml:"config_path"`
		Timeout           Duration          `json:"timeout" yaml:"timeout"`
		ArgStyle          string            `json:"arg_style" yaml:"arg_style"`
		Vars              map[string]string `json:"vars" yaml:"vars"`
		NotFoundSentinels []string          `json:"not_found_sentinels" yaml:"not_found_sentinels"`
	} `json:"hiera" yaml:"hiera"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`
}

// parseFile reads the settings file at path. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		Hiera: Hiera{
			Binary:            fileCfg.Hiera.Binary,
			ConfigPath:        fileCfg.Hiera.ConfigPath,
			Timeout:           time.Duration(fileCfg.Hiera.Timeout),
			ArgStyle:          fileCfg.Hiera.ArgStyle,
			Vars:              fileCfg.Hiera.Vars,
			NotFoundSentinels: fileCfg.Hiera.NotFoundSentinels,
		},
		Log: Log{
			Level: fileCfg.Log.Level,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h", "30s" or from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return d.parse(raw)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) parse(raw string) error {
	if nanos, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*d = Duration(nanos)
		return nil
	}

	tmp, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
