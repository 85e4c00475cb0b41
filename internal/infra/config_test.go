package infra

import (
	"os"
	"path/filepath"
	"testing"
)

const testYAML = `
app:
  name: "Signal Relay"
server:
  port: 8080
api:
  coinbase:
    rest_url: "https://api.coinbase.com"
trade:
  size_usd: 1000
journal:
  enabled: false
logging:
  level: "info"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func setTestCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("CB_API_KEY", "key")
	t.Setenv("CB_API_SECRET", "c2VjcmV0")
	t.Setenv("CB_API_PASSPHRASE", "pass")
}

func TestLoadConfig(t *testing.T) {
	setTestCredentials(t)
	path := writeTestConfig(t, testYAML)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.API.Coinbase.AccessKey != "key" {
		t.Errorf("AccessKey = %q, want env override", cfg.API.Coinbase.AccessKey)
	}
	if cfg.Trade.SizeUSD.String() != "1000" {
		t.Errorf("SizeUSD = %s, want 1000", cfg.Trade.SizeUSD)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	setTestCredentials(t)
	t.Setenv("TRADE_SIZE", "250.50")
	t.Setenv("PORT", "9999")
	path := writeTestConfig(t, testYAML)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Trade.SizeUSD.String() != "250.5" {
		t.Errorf("SizeUSD = %s, want 250.5", cfg.Trade.SizeUSD)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Server.Port)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setTestCredentials(t)
	path := writeTestConfig(t, `
trade:
  size_usd: 1000
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.API.Coinbase.RestURL != "https://api.coinbase.com" {
		t.Errorf("RestURL default = %q", cfg.API.Coinbase.RestURL)
	}
	if cfg.Server.Port != 10000 {
		t.Errorf("Port default = %d, want 10000", cfg.Server.Port)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{"missing credentials", testYAML, map[string]string{"CB_API_KEY": "", "CB_API_SECRET": "", "CB_API_PASSPHRASE": ""}},
		{"zero trade size", `
trade:
  size_usd: 0
`, nil},
		{"negative trade size", `
trade:
  size_usd: -5
`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env == nil {
				setTestCredentials(t)
			} else {
				for k, v := range tt.env {
					t.Setenv(k, v)
				}
			}
			path := writeTestConfig(t, tt.yaml)

			if _, err := LoadConfig(path); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}
