package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dsa.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[log]
service = "dsa"
level = "debug"

[snapshot]
dir = "/tmp/dsa-snapshots"

[redis]
addr = "127.0.0.1:6379"
db = 1
ttl = "1h"
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg := m.Config()

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Module != "dsa" {
		t.Errorf("Log.Module = %q, want default dsa", cfg.Log.Module)
	}
	if cfg.Snapshot.Dir != "/tmp/dsa-snapshots" {
		t.Errorf("Snapshot.Dir = %q", cfg.Snapshot.Dir)
	}
	if cfg.Redis.Addr != "127.0.0.1:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
	if cfg.Redis.DB != 1 {
		t.Errorf("Redis.DB = %d, want 1", cfg.Redis.DB)
	}
	if cfg.Redis.TTL != time.Hour {
		t.Errorf("Redis.TTL = %v, want 1h", cfg.Redis.TTL)
	}
	// 未配置项回落到缺省值。
	if cfg.Redis.DialTimeout != 3*time.Second {
		t.Errorf("Redis.DialTimeout = %v, want default 3s", cfg.Redis.DialTimeout)
	}
	if cfg.Redis.PoolSize != 8 {
		t.Errorf("Redis.PoolSize = %d, want default 8", cfg.Redis.PoolSize)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad level", "[log]\nservice = \"dsa\"\nlevel = \"loud\"\n[snapshot]\ndir = \"/tmp/x\"\n[redis]\naddr = \"127.0.0.1:6379\"\n"},
		{"missing snapshot dir", "[log]\nservice = \"dsa\"\n[redis]\naddr = \"127.0.0.1:6379\"\n"},
		{"bad redis addr", "[log]\nservice = \"dsa\"\n[snapshot]\ndir = \"/tmp/x\"\n[redis]\naddr = \"not-an-addr\"\n"},
	}
	for _, tc := range cases {
		path := writeConfig(t, tc.content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: Load succeeded, want validation error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load succeeded on missing file")
	}
}
