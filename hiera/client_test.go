// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hiera_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-hiera-client/hiera"
	"github.com/MKhiriev/go-hiera-client/internal/mock"
	"github.com/MKhiriev/go-hiera-client/models"
)

const testConfig = "/etc/hiera.yaml"

// newMockedClient builds a client whose process boundary is a gomock
// executor.
func newMockedClient(t *testing.T, vars map[string]string, opts ...hiera.Option) (*hiera.Client, *mock.MockExecutor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	exec := mock.NewMockExecutor(ctrl)

	client, err := hiera.New(testConfig, vars, append([]hiera.Option{hiera.WithExecutor(exec)}, opts...)...)
	require.NoError(t, err)
	return client, exec
}

// ── New ──────────────────────────────────────────────────────────────────────

func TestNew_Defaults(t *testing.T) {
	client, err := hiera.New("my-config.yml", nil)
	require.NoError(t, err)

	assert.Equal(t, "my-config.yml", client.ConfigPath())
	assert.Empty(t, client.Vars())
	assert.Equal(t, `Client(config="my-config.yml", binary="hiera", vars=map[])`, client.String())
}

func TestNew_CopiesVars(t *testing.T) {
	vars := map[string]string{"environment": "dev"}
	client, err := hiera.New("my-config.yml", vars)
	require.NoError(t, err)

	vars["environment"] = "prod"
	assert.Equal(t, map[string]string{"environment": "dev"}, client.Vars())

	got := client.Vars()
	got["environment"] = "stage"
	assert.Equal(t, map[string]string{"environment": "dev"}, client.Vars())
}

func TestNew_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		vars       map[string]string
		opts       []hiera.Option
	}{
		{name: "empty config path", configPath: ""},
		{name: "blank config path", configPath: "  \t"},
		{name: "empty variable name", configPath: testConfig, vars: map[string]string{"": "x"}},
		{name: "variable name with equals", configPath: testConfig, vars: map[string]string{"a=b": "x"}},
		{name: "variable name with space", configPath: testConfig, vars: map[string]string{"a b": "x"}},
		{name: "empty binary", configPath: testConfig, opts: []hiera.Option{hiera.WithBinary("")}},
		{name: "zero timeout", configPath: testConfig, opts: []hiera.Option{hiera.WithTimeout(0)}},
		{name: "negative timeout", configPath: testConfig, opts: []hiera.Option{hiera.WithTimeout(-time.Second)}},
		{name: "nil executor", configPath: testConfig, opts: []hiera.Option{hiera.WithExecutor(nil)}},
		{name: "unknown arg style", configPath: testConfig, opts: []hiera.Option{hiera.WithArgStyle("weird")}},
		{
			name:       "missing config file with check",
			configPath: filepath.Join(os.TempDir(), "definitely", "missing", "hiera.yaml"),
			opts:       []hiera.Option{hiera.WithConfigFileCheck()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := hiera.New(tt.configPath, tt.vars, tt.opts...)
			assert.Nil(t, client)
			require.Error(t, err)
			assert.ErrorIs(t, err, hiera.ErrConfiguration)

			var cfgErr *hiera.ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestNew_ConfigFileCheck(t *testing.T) {
	dir := t.TempDir()

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(dir, "hiera.yaml")
		require.NoError(t, os.WriteFile(path, []byte("---\nversion: 5\n"), 0o644))

		_, err := hiera.New(path, nil, hiera.WithConfigFileCheck())
		assert.NoError(t, err)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := hiera.New(dir, nil, hiera.WithConfigFileCheck())
		assert.ErrorIs(t, err, hiera.ErrConfiguration)
	})

	t.Run("missing file without check", func(t *testing.T) {
		_, err := hiera.New(filepath.Join(dir, "missing.yaml"), nil)
		assert.NoError(t, err)
	})
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestGet_Success(t *testing.T) {
	client, exec := newMockedClient(t, map[string]string{"environment": "dev"})

	exec.EXPECT().
		Execute(gomock.Any(), "hiera", []string{"-c", "environment=dev", testConfig, "db_host"}).
		Return(models.ProcessOutput{Stdout: "db.dev.internal\n"}, nil)

	value, err := client.Get(context.Background(), "db_host", nil)
	require.NoError(t, err)
	assert.Equal(t, "db.dev.internal", value)
}

func TestGet_TrimsWhitespace(t *testing.T) {
	client, exec := newMockedClient(t, nil)

	exec.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ProcessOutput{Stdout: "  \t\n\r\nsome-value   "}, nil)

	value, err := client.Get(context.Background(), "some-key", nil)
	require.NoError(t, err)
	assert.Equal(t, "some-value", value)
}

func TestGet_OverridesWinOverDefaults(t *testing.T) {
	defaults := map[string]string{"environment": "dev", "osfamily": "Debian"}
	client, exec := newMockedClient(t, defaults)

	exec.EXPECT().
		Execute(gomock.Any(), "hiera", []string{
			"-c", "environment=prod",
			"-c", "fqdn=web01",
			"-c", "osfamily=Debian",
			testConfig, "db_host",
		}).
		Return(models.ProcessOutput{Stdout: "db.prod.internal"}, nil)

	value, err := client.Get(context.Background(), "db_host", map[string]string{"environment": "prod", "fqdn": "web01"})
	require.NoError(t, err)
	assert.Equal(t, "db.prod.internal", value)
	assert.Equal(t, defaults, client.Vars(), "overrides must not leak into the defaults")
}

func TestGet_HieraArgStyle(t *testing.T) {
	client, exec := newMockedClient(t,
		map[string]string{"environment": "unittest", "fqdn": "ima-superstar"},
		hiera.WithArgStyle(hiera.ArgStyleHiera),
		hiera.WithBinary("/opt/puppetlabs/bin/hiera"),
	)

	exec.EXPECT().
		Execute(gomock.Any(), "/opt/puppetlabs/bin/hiera", []string{
			"--config", testConfig, "some-key", "environment=unittest", "fqdn=ima-superstar",
		}).
		Return(models.ProcessOutput{Stdout: "some-value\n"}, nil)

	value, err := client.Get(context.Background(), "some-key", nil)
	require.NoError(t, err)
	assert.Equal(t, "some-value", value)
}

func TestGet_KeyNotFound(t *testing.T) {
	tests := []struct {
		name string
		out  models.ProcessOutput
		opts []hiera.Option
	}{
		{name: "empty stdout", out: models.ProcessOutput{}},
		{name: "whitespace stdout", out: models.ProcessOutput{Stdout: " \n\t"}},
		{name: "nil sentinel", out: models.ProcessOutput{Stdout: "nil\n"}},
		{
			name: "custom sentinel",
			out:  models.ProcessOutput{Stdout: "undef"},
			opts: []hiera.Option{hiera.WithNotFoundSentinels("undef")},
		},
		{
			name: "non-zero exit with not-found diagnostic",
			out: models.ProcessOutput{
				ExitCode: 1,
				Stderr:   "Error: Could not find a value for key 'missing_key'",
			},
		},
		{
			name: "custom not-found marker",
			out:  models.ProcessOutput{ExitCode: 2, Stderr: "LOOKUP MISS: missing_key"},
			opts: []hiera.Option{hiera.WithNotFoundMarkers("lookup miss")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, exec := newMockedClient(t, nil, tt.opts...)
			exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.out, nil)

			value, err := client.Get(context.Background(), "missing_key", nil)
			assert.Empty(t, value)
			require.ErrorIs(t, err, hiera.ErrKeyNotFound)

			var notFound *hiera.KeyNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, "missing_key", notFound.Key)
		})
	}
}

func TestGet_CustomSentinelsReplaceDefault(t *testing.T) {
	client, exec := newMockedClient(t, nil, hiera.WithNotFoundSentinels("undef"))
	exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.ProcessOutput{Stdout: "nil"}, nil)

	value, err := client.Get(context.Background(), "literal", nil)
	require.NoError(t, err)
	assert.Equal(t, "nil", value)
}

func TestGet_LookupError(t *testing.T) {
	client, exec := newMockedClient(t, nil)

	exec.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ProcessOutput{ExitCode: 3, Stderr: "Error: malformed hierarchy config\n"}, nil)

	_, err := client.Get(context.Background(), "db_host", nil)
	require.ErrorIs(t, err, hiera.ErrLookup)
	assert.NotErrorIs(t, err, hiera.ErrKeyNotFound)

	var lookupErr *hiera.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "db_host", lookupErr.Key)
	assert.Equal(t, 3, lookupErr.ExitCode)
	assert.Equal(t, "Error: malformed hierarchy config", lookupErr.Stderr)
	assert.Contains(t, err.Error(), "exit code 3")
	assert.Contains(t, err.Error(), "malformed hierarchy config")
}

func TestGet_ExecutionError(t *testing.T) {
	client, exec := newMockedClient(t, nil)
	cause := os.ErrPermission

	exec.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ProcessOutput{}, cause)

	_, err := client.Get(context.Background(), "db_host", nil)
	require.ErrorIs(t, err, hiera.ErrExecution)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.NotErrorIs(t, err, hiera.ErrTimeout)

	var execErr *hiera.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.False(t, execErr.Timeout)
	assert.Equal(t, "hiera", execErr.Binary)
	assert.Equal(t, "db_host", execErr.Key)
}

func TestGet_TimeoutIsExecutionError(t *testing.T) {
	client, exec := newMockedClient(t, nil)

	exec.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ProcessOutput{}, context.DeadlineExceeded)

	_, err := client.Get(context.Background(), "db_host", nil)
	assert.ErrorIs(t, err, hiera.ErrExecution)
	assert.ErrorIs(t, err, hiera.ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGet_AppliesTimeoutToContext(t *testing.T) {
	client, exec := newMockedClient(t, nil, hiera.WithTimeout(time.Minute))

	exec.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ []string) (models.ProcessOutput, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok, "lookup context must carry a deadline")
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return models.ProcessOutput{Stdout: "ok"}, nil
		})

	_, err := client.Get(context.Background(), "db_host", nil)
	require.NoError(t, err)
}

func TestGet_InvalidArgumentsDoNotSpawn(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		overrides map[string]string
	}{
		{name: "empty key", key: ""},
		{name: "blank key", key: "   "},
		{name: "flag-like key", key: "--help"},
		{name: "empty override name", key: "db_host", overrides: map[string]string{"": "prod"}},
		{name: "override name with equals", key: "db_host", overrides: map[string]string{"env=x": "prod"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no EXPECT: any Execute call fails the test
			client, _ := newMockedClient(t, nil)

			_, err := client.Get(context.Background(), tt.key, tt.overrides)
			require.ErrorIs(t, err, hiera.ErrInvalidArgument)

			var argErr *hiera.InvalidArgumentError
			assert.ErrorAs(t, err, &argErr)
		})
	}
}

// ── Command ──────────────────────────────────────────────────────────────────

func TestCommand(t *testing.T) {
	client, _ := newMockedClient(t, map[string]string{"environment": "dev"})

	argv, err := client.Command("db_host", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"hiera", "-c", "environment=dev", testConfig, "db_host"}, argv)

	argv, err = client.Command("db_host", map[string]string{"environment": "prod"})
	require.NoError(t, err)
	assert.Equal(t, []string{"hiera", "-c", "environment=prod", testConfig, "db_host"}, argv)
}

func TestCommand_InvalidKey(t *testing.T) {
	client, _ := newMockedClient(t, nil)

	argv, err := client.Command("", nil)
	assert.Nil(t, argv)
	assert.True(t, errors.Is(err, hiera.ErrInvalidArgument))
}
