package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "filechat" {
		t.Errorf("App.Name = %q, want filechat", cfg.App.Name)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.Database.MaxRetries != 5 || cfg.Database.RetryDelay != 5 {
		t.Errorf("Database retry = (%d, %d), want (5, 5)", cfg.Database.MaxRetries, cfg.Database.RetryDelay)
	}
	if cfg.AI.Provider != "anthropic" {
		t.Errorf("AI.Provider = %q, want anthropic", cfg.AI.Provider)
	}
	if cfg.AI.MaxTokens != 1024 {
		t.Errorf("AI.MaxTokens = %d, want 1024", cfg.AI.MaxTokens)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
server:
  port: 9090
database:
  driver: sqlite
  dbname: ":memory:"
ai:
  provider: openai
  model: gpt-4o
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.AI.Provider != "openai" || cfg.AI.Model != "gpt-4o" {
		t.Errorf("AI = %+v", cfg.AI)
	}
	// 未覆盖的键保留默认值
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FILECHAT_SERVER_PORT", "7070")
	t.Setenv("FILECHAT_AI_APIKEY", "sk-test")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.AI.APIKey != "sk-test" {
		t.Errorf("AI.APIKey = %q, want sk-test", cfg.AI.APIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestGetDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "sqlite uses dbname as path",
			cfg:  DatabaseConfig{Driver: "sqlite", DBName: "/tmp/filechat.db"},
			want: "/tmp/filechat.db",
		},
		{
			name: "postgres keyword dsn",
			cfg: DatabaseConfig{
				Driver: "postgres", Host: "localhost", Port: 5432,
				User: "postgres", Password: "secret", DBName: "filechat", SSLMode: "disable",
			},
			want: "host=localhost port=5432 user=postgres password=secret dbname=filechat sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.GetDSN(); got != tt.want {
				t.Errorf("GetDSN() = %q, want %q", got, tt.want)
			}
		})
	}
}
