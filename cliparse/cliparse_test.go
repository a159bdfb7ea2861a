package cliparse

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("IP_HASH_SALT", "")
	t.Setenv("SENDGRID_API_KEY", "")
	t.Setenv("SENDGRID_FROM_EMAIL", "")

	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "all flags",
			args: []string{"-p", "9000", "-d", "postgres://x", "-t", "postgres", "-ip-salt", "s1"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 9000 || cfg.DatabaseURL != "postgres://x" || cfg.IPHashSalt != "s1" {
					t.Errorf("unexpected config: %+v", cfg)
				}
			},
		},
		{
			name: "env fallback with defaults",
			args: nil,
			env: map[string]string{
				"DATABASE_URL": "postgres://env",
				"IP_HASH_SALT": "env-salt",
			},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 8344 {
					t.Errorf("default port = %d, want 8344", cfg.Port)
				}
				if cfg.DatabaseType != "postgres" {
					t.Errorf("default type = %s, want postgres", cfg.DatabaseType)
				}
				if cfg.SendGridFrom != "info@n-blk.com" {
					t.Errorf("default from = %s", cfg.SendGridFrom)
				}
				if cfg.DeliveryConfigured() {
					t.Error("delivery should be unconfigured without an API key")
				}
			},
		},
		{
			name: "sqlite type",
			args: []string{"-d", "stability.db", "-t", "sqlite", "-ip-salt", "s"},
			check: func(t *testing.T, cfg Config) {
				if cfg.DatabaseType != "sqlite" {
					t.Errorf("type = %s, want sqlite", cfg.DatabaseType)
				}
			},
		},
		{
			name:    "missing database URL",
			args:    []string{"-ip-salt", "s"},
			wantErr: true,
		},
		{
			name:    "missing ip salt",
			args:    []string{"-d", "postgres://x"},
			wantErr: true,
		},
		{
			name:    "bad database type",
			args:    []string{"-d", "x", "-t", "mysql", "-ip-salt", "s"},
			wantErr: true,
		},
		{
			name:    "bad PORT env",
			args:    []string{"-d", "x", "-ip-salt", "s"},
			env:     map[string]string{"PORT": "nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got config %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags failed: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestDeliveryConfigured(t *testing.T) {
	if (Config{}).DeliveryConfigured() {
		t.Error("empty config should not be delivery-configured")
	}
	if !(Config{SendGridAPIKey: "k"}).DeliveryConfigured() {
		t.Error("config with API key should be delivery-configured")
	}
}
