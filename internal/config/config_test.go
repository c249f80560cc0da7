package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Storage.Driver != DriverBadger {
		t.Fatalf("expected default driver %q got %q", DriverBadger, cfg.Storage.Driver)
	}
	if cfg.Storage.Key != "reports" {
		t.Fatalf("expected default key reports got %q", cfg.Storage.Key)
	}
	if cfg.Http.Port != ":8080" {
		t.Fatalf("expected :8080 got %q", cfg.Http.Port)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("HTTP_READ_TIMEOUT", "3s")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Storage.Driver != DriverSQLite || cfg.Storage.SQLitePath != "/tmp/x.db" {
		t.Fatalf("storage overrides not applied: %+v", cfg.Storage)
	}
	if cfg.Http.ReadTimeout != 3*time.Second {
		t.Fatalf("expected 3s got %v", cfg.Http.ReadTimeout)
	}
	if cfg.Redis.DB != 0 {
		t.Fatalf("invalid int must fall back to default, got %d", cfg.Redis.DB)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	base := func() Config {
		return Config{
			Http:     HttpConfig{Port: ":8080"},
			Storage:  StorageConfig{Driver: DriverBadger, Key: "reports", BadgerPath: "data"},
			Postgres: PostgresConfig{Host: "db", Table: "kv_store"},
			Redis:    RedisConfig{Addr: "localhost:6379"},
		}
	}

	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"ok", func(c *Config) {}, false},
		{"port_without_colon", func(c *Config) { c.Http.Port = "8080" }, true},
		{"blank_key", func(c *Config) { c.Storage.Key = " " }, true},
		{"unknown_driver", func(c *Config) { c.Storage.Driver = "mongo" }, true},
		{"badger_in_memory_without_path", func(c *Config) {
			c.Storage.BadgerPath = ""
			c.Storage.BadgerInMemory = true
		}, false},
		{"postgres_bad_table", func(c *Config) {
			c.Storage.Driver = DriverPostgres
			c.Postgres.Table = "kv; DROP TABLE x"
		}, true},
		{"redis_without_addr", func(c *Config) {
			c.Storage.Driver = DriverRedis
			c.Redis.Addr = ""
		}, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			cfg := base()
			c.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != c.wantErr {
				t.Fatalf("wantErr=%v got %v", c.wantErr, err)
			}
		})
	}
}
