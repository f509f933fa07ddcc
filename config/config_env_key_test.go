package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"legacy": map[string]any{
			"fallbackEnabled": true,
		},
		"minio": map[string]any{
			"publicBaseUrl": "",
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
		{envKey: "LEGACY_FALLBACKENABLED", want: "legacy.fallbackEnabled"},
		{envKey: "MINIO_PUBLICBASEURL", want: "minio.publicBaseUrl"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Legacy.FallbackEnabled)
	assert.Equal(t, IDStrategyMax, cfg.IDs.Strategy)
	assert.Equal(t, 3, cfg.IDs.MaxAttempts)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Legacy: &LegacyConfig{FallbackEnabled: false},
		IDs:    &IDsConfig{Strategy: IDStrategyCounter, MaxAttempts: 7},
	}
	applyDefaults(cfg)

	assert.False(t, cfg.Legacy.FallbackEnabled)
	assert.Equal(t, IDStrategyCounter, cfg.IDs.Strategy)
	assert.Equal(t, 7, cfg.IDs.MaxAttempts)
}
