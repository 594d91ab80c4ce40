package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot be used.
var (
	// ErrInvalidHieraConfigs indicates invalid lookup client settings
	// (for example, missing hierarchy config path or a zero timeout).
	ErrInvalidHieraConfigs = errors.New("invalid hiera configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
