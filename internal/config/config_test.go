package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "kurlar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "https://www.tcmb.gov.tr/kurlar/", cfg.BaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, uint64(0), cfg.RetryNum)
	require.Equal(t, time.Second, cfg.RetryDuration)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "forex", cfg.RateClass)
	require.Empty(t, cfg.UserAgent)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
base_url: http://localhost:8080/kurlar/
request_timeout: 3s
retry_num: 2
retry_duration: 250ms
rate_class: banknote
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8080/kurlar/", cfg.BaseURL)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	require.Equal(t, uint64(2), cfg.RetryNum)
	require.Equal(t, 250*time.Millisecond, cfg.RetryDuration)
	require.Equal(t, "banknote", cfg.RateClass)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "log_level: info\nretry_num: 1\n")

	t.Setenv("KURLAR_LOG_LEVEL", "debug")
	t.Setenv("KURLAR_RETRY_NUM", "5")
	t.Setenv("KURLAR_USER_AGENT", "kurlar-cli")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, uint64(5), cfg.RetryNum)
	require.Equal(t, "kurlar-cli", cfg.UserAgent)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name: "test_missing_file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.yaml")
			},
		},
		{
			name: "test_broken_yaml",
			path: func(t *testing.T) string {
				return writeFile(t, "base_url: [unclosed\n")
			},
		},
		{
			name: "test_empty_base_url",
			path: func(t *testing.T) string {
				return writeFile(t, "base_url: \"\"\n")
			},
			wantErr: ErrConfigNotValid,
		},
		{
			name: "test_negative_timeout",
			path: func(t *testing.T) string {
				return writeFile(t, "request_timeout: -1s\n")
			},
			wantErr: ErrConfigNotValid,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path(t))
			require.Error(t, err)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
