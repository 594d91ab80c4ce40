// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-hiera-client/hiera"
)

// validate checks that the final merged [StructuredConfig] can be turned
// into a lookup client and a logger.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Hiera.ConfigPath) == "" {
		return fmt.Errorf("%w: hierarchy config path is empty", ErrInvalidHieraConfigs)
	}

	if strings.TrimSpace(cfg.Hiera.Binary) == "" {
		return fmt.Errorf("%w: hiera binary is empty", ErrInvalidHieraConfigs)
	}

	if cfg.Hiera.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidHieraConfigs, cfg.Hiera.Timeout)
	}

	if _, err := hiera.ParseArgStyle(cfg.Hiera.ArgStyle); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHieraConfigs, err)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}
