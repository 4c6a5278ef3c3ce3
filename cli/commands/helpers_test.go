package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satishbabariya/classql/cli/internal/config"
)

func TestStoreLocation(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.Config
		dbFlag       string
		wantProvider string
		wantDSN      string
	}{
		{
			name:         "flag wins over everything",
			cfg:          config.Config{Provider: "postgresql", DatabaseURL: "postgres://x", DatabasePath: "cfg.db"},
			dbFlag:       "flag.db",
			wantProvider: "sqlite",
			wantDSN:      "flag.db",
		},
		{
			name:         "configured external provider",
			cfg:          config.Config{Provider: "postgresql", DatabaseURL: "postgres://db.internal/app", DatabasePath: "cfg.db"},
			wantProvider: "postgresql",
			wantDSN:      "postgres://db.internal/app",
		},
		{
			name:         "external provider without url falls back to sqlite",
			cfg:          config.Config{Provider: "postgresql", DatabasePath: "cfg.db"},
			wantProvider: "sqlite",
			wantDSN:      "cfg.db",
		},
		{
			name:         "sqlite default",
			cfg:          config.Config{Provider: "sqlite", DatabasePath: "classql.db"},
			wantProvider: "sqlite",
			wantDSN:      "classql.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, dsn := storeLocation(&tt.cfg, tt.dbFlag)
			assert.Equal(t, tt.wantProvider, provider)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}
