package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"remote": map[string]any{
			"baseURL":   "",
			"companyID": 0,
		},
		"snapshot": map[string]any{
			"bucketURL": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REMOTE_BASEURL", want: "remote.baseURL"},
		{envKey: "REMOTE_COMPANYID", want: "remote.companyID"},
		{envKey: "SNAPSHOT_BUCKETURL", want: "snapshot.bucketURL"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
remote:
  baseURL: http://yaml.example
  username: demo
  password: secret
  companyID: 3
  timeout: 5s
snapshot:
  driver: memory
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600))

	t.Chdir(dir)
	t.Setenv("REMOTE_BASEURL", "http://env.example/")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	cfg.ApplyDefaults()

	assert.Equal(t, "http://env.example", cfg.Remote.BaseURL)
	assert.Equal(t, 3, cfg.Remote.CompanyID)
	assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, defaultArticleLimit, cfg.Remote.ArticleLimit)
	assert.Equal(t, defaultPlaceholderImage, cfg.Snapshot.PlaceholderImage)
	require.NoError(t, cfg.Validate())
}

func TestLoadWithEnv_BareDurationsAreMilliseconds(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
remote:
  baseURL: http://yaml.example
  username: demo
  password: secret
  companyID: 3
  timeout: 30000
sync:
  interval: 15m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.Sync.Interval)

	t.Setenv("REMOTE_TIMEOUT", "45000")

	cfg, err = LoadWithEnv[Config]("config")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, cfg.Remote.Timeout)

	t.Setenv("REMOTE_TIMEOUT", "2s")

	cfg, err = LoadWithEnv[Config]("config")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Remote.Timeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{
			Remote: &RemoteConfig{
				BaseURL:   "http://remote.example",
				Username:  "demo",
				Password:  "secret",
				CompanyID: 1,
			},
		}
		cfg.ApplyDefaults()

		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing credentials", func(t *testing.T) {
		cfg := valid()
		cfg.Remote.Password = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("blob driver needs bucket", func(t *testing.T) {
		cfg := valid()
		cfg.Snapshot.Driver = "blob"
		assert.Error(t, cfg.Validate())

		cfg.Snapshot.BucketURL = "mem://"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := valid()
		cfg.Snapshot.Driver = "redis"
		assert.Error(t, cfg.Validate())
	})

	t.Run("postgres driver needs postgres section", func(t *testing.T) {
		cfg := valid()
		cfg.Snapshot.Driver = "postgres"
		assert.Error(t, cfg.Validate())
	})
}

func TestResolveFiscalYear(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2026, (&RemoteConfig{}).ResolveFiscalYear(now))
	assert.Equal(t, 2024, (&RemoteConfig{FiscalYear: 2024}).ResolveFiscalYear(now))
}
