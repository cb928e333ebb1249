package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantErr  bool
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "valores padrão",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://graph.facebook.com/v22.0", cfg.Meta.URL)
				assert.Equal(t, []int{4, 17}, cfg.Meta.RateLimitCodes)
				assert.Equal(t, 300*time.Millisecond, cfg.RequestScheduler.InterCallDelay)
				assert.Equal(t, 600*time.Millisecond, cfg.RequestScheduler.BackoffDelay)
				assert.Equal(t, 3, cfg.RequestScheduler.MaxAttempts)
				assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
				assert.Equal(t, 30*time.Second, cfg.Comments.PollInterval)
				assert.Equal(t, 2.0, cfg.Geo.BaselineCTR)
				assert.False(t, cfg.Geo.EstimateGrowth)
				assert.Empty(t, cfg.Meta.AccessToken)
				assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
			},
		},
		{
			name: "variáveis de ambiente sobrescrevem os padrões",
			env: map[string]string{
				"META_REQUEST_DELAY":    "1s",
				"META_RATE_LIMIT_CODES": "4,17,613",
				"META_ACCESS_TOKEN":     "token-de-teste",
				"GEO_ESTIMATE_GROWTH":   "true",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, time.Second, cfg.RequestScheduler.InterCallDelay)
				assert.Equal(t, []int{4, 17, 613}, cfg.Meta.RateLimitCodes)
				assert.True(t, cfg.Meta.IsRateLimitCode(613))
				assert.False(t, cfg.Meta.IsRateLimitCode(100))
				assert.Equal(t, "token-de-teste", cfg.Meta.AccessToken)
				assert.True(t, cfg.Geo.EstimateGrowth)
			},
		},
		{
			name:    "comentários habilitados sem conta",
			env:     map[string]string{"COMMENTS_ENABLED": "true"},
			wantErr: true,
		},
		{
			name:    "tentativas inválidas",
			env:     map[string]string{"META_MAX_ATTEMPTS": "0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}
