// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hiera

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-hiera-client/models"
)

// Client resolves keys against a hierarchy by running the hierarchy tool
// once per lookup. A Client is immutable after [New] and safe for
// concurrent use.
type Client struct {
	configPath string
	vars       map[string]string

	binary            string
	timeout           time.Duration
	executor          Executor
	logger            zerolog.Logger
	argStyle          ArgStyle
	notFoundSentinels []string
	notFoundMarkers   []string
	stopOnError       bool
}

// New builds a client for the hierarchy defined in configPath. vars holds
// the default context variables used to fill the hierarchy placeholders;
// it is copied, so later changes to the caller's map are not observed.
//
// New returns a [*ConfigurationError] when configPath is blank, when a
// variable name cannot be passed on the command line, or when an option is
// invalid. The config file itself is only checked when
// [WithConfigFileCheck] is set.
func New(configPath string, vars map[string]string, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if strings.TrimSpace(configPath) == "" {
		return nil, &ConfigurationError{Reason: "hierarchy config path is empty"}
	}
	if reason := checkVars(vars); reason != "" {
		return nil, &ConfigurationError{Reason: reason}
	}
	if strings.TrimSpace(o.binary) == "" {
		return nil, &ConfigurationError{Reason: "hiera binary is empty"}
	}
	if o.timeout <= 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("timeout must be positive, got %s", o.timeout)}
	}
	if o.executor == nil {
		return nil, &ConfigurationError{Reason: "executor is nil"}
	}
	if !o.argStyle.valid() {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown arg style %q", o.argStyle)}
	}
	if o.checkConfigFile {
		if err := checkConfigFile(configPath); err != nil {
			return nil, &ConfigurationError{Reason: "hierarchy config is not usable", Err: err}
		}
	}

	c := &Client{
		configPath:        configPath,
		vars:              maps.Clone(vars),
		binary:            o.binary,
		timeout:           o.timeout,
		executor:          o.executor,
		logger:            o.logger,
		argStyle:          o.argStyle,
		notFoundSentinels: slices.Clone(o.notFoundSentinels),
		notFoundMarkers:   lowerAll(o.notFoundMarkers),
		stopOnError:       o.stopOnError,
	}
	if c.vars == nil {
		c.vars = map[string]string{}
	}

	c.logger.Debug().Stringer("client", c).Msg("new hiera client")
	return c, nil
}

// ConfigPath returns the hierarchy config path the client was built with.
func (c *Client) ConfigPath() string {
	return c.configPath
}

// Vars returns a copy of the default context variables.
func (c *Client) Vars() map[string]string {
	return maps.Clone(c.vars)
}

// String implements [fmt.Stringer].
func (c *Client) String() string {
	return fmt.Sprintf("Client(config=%q, binary=%q, vars=%v)", c.configPath, c.binary, c.vars)
}

// Get resolves key. overrides, which may be nil, are applied on top of the
// client's default variables for this call only.
//
// The returned value is the tool's stdout with surrounding whitespace
// trimmed. Failures are reported as:
//   - [*InvalidArgumentError] for a blank key or a bad override name;
//     nothing is spawned;
//   - [*ExecutionError] when the tool cannot be started or is killed on
//     timeout or cancellation;
//   - [*LookupError] when the tool exits non-zero;
//   - [*KeyNotFoundError] when the tool resolves no value.
func (c *Client) Get(ctx context.Context, key string, overrides map[string]string) (string, error) {
	req, err := c.newRequest(key, overrides)
	if err != nil {
		return "", err
	}

	return c.lookup(ctx, req)
}

// Command returns the argv that [Client.Get] would run for key and
// overrides, binary first. Nothing is spawned.
func (c *Client) Command(key string, overrides map[string]string) ([]string, error) {
	req, err := c.newRequest(key, overrides)
	if err != nil {
		return nil, err
	}

	args := c.argStyle.args(req.ConfigPath, req.Key, req.Variables)
	return append([]string{c.binary}, args...), nil
}

func (c *Client) newRequest(key string, overrides map[string]string) (models.LookupRequest, error) {
	if reason := checkKey(key); reason != "" {
		return models.LookupRequest{}, &InvalidArgumentError{Argument: "key", Reason: reason}
	}
	if reason := checkVars(overrides); reason != "" {
		return models.LookupRequest{}, &InvalidArgumentError{Argument: "overrides", Reason: reason}
	}

	return models.LookupRequest{
		ID:         newLookupID(),
		ConfigPath: c.configPath,
		Key:        key,
		Variables:  mergeVars(c.vars, overrides),
	}, nil
}

func (c *Client) lookup(ctx context.Context, req models.LookupRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	log := c.logger.With().
		Str("lookup_id", req.ID).
		Str("key", req.Key).
		Logger()

	args := c.argStyle.args(req.ConfigPath, req.Key, req.Variables)
	log.Debug().Str("binary", c.binary).Strs("args", args).Msg("running hiera lookup")

	out, err := c.executor.Execute(ctx, c.binary, args)
	if err != nil {
		execErr := &ExecutionError{
			Key:     req.Key,
			Binary:  c.binary,
			Timeout: errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded),
			Err:     err,
		}
		log.Warn().Err(err).Bool("timeout", execErr.Timeout).Msg("hiera lookup could not run")
		return "", execErr
	}

	log.Debug().
		Int("exit_code", out.ExitCode).
		Dur("duration", out.Duration).
		Msg("hiera lookup finished")

	return c.parse(req.Key, out)
}

func (c *Client) parse(key string, out models.ProcessOutput) (string, error) {
	if out.ExitCode != 0 {
		if c.isNotFoundDiagnostic(out.Stderr) {
			return "", &KeyNotFoundError{Key: key}
		}
		return "", &LookupError{Key: key, ExitCode: out.ExitCode, Stderr: strings.TrimSpace(out.Stderr)}
	}

	value := strings.TrimSpace(out.Stdout)
	if value == "" || slices.Contains(c.notFoundSentinels, value) {
		return "", &KeyNotFoundError{Key: key}
	}

	return value, nil
}

func (c *Client) isNotFoundDiagnostic(stderr string) bool {
	stderr = strings.ToLower(stderr)
	for _, marker := range c.notFoundMarkers {
		if marker != "" && strings.Contains(stderr, marker) {
			return true
		}
	}
	return false
}

// newLookupID returns a time-ordered UUIDv7 so lookup IDs sort by start
// time in logs, falling back to a random UUID.
func newLookupID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func checkConfigFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}
