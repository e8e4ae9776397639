package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnv_NotExist(t *testing.T) {
	t.Setenv(EnvBasePath, t.TempDir())

	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("expected empty map, got %v", m)
	}
}

func TestLoadDotEnv_ParsesKeyValue(t *testing.T) {
	base := t.TempDir()
	t.Setenv(EnvBasePath, base)

	body := "# comment\nOPENAI_API_KEY=sk-test\nEMPTY_IGNORED\nORG = spaced\n"
	if err := os.WriteFile(filepath.Join(base, ".env"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if m["OPENAI_API_KEY"] != "sk-test" {
		t.Fatalf("OPENAI_API_KEY mismatch: %q", m["OPENAI_API_KEY"])
	}
	if m["ORG"] != " spaced" {
		t.Fatalf("value should be taken as-is, got %q", m["ORG"])
	}
	if _, ok := m["EMPTY_IGNORED"]; ok {
		t.Fatalf("lines without '=' must be skipped")
	}
}

func TestGetConfigValue_EnvWins(t *testing.T) {
	base := t.TempDir()
	t.Setenv(EnvBasePath, base)
	if err := os.WriteFile(filepath.Join(base, ".env"), []byte("MY_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MY_KEY", "from-env")
	v, err := GetConfigValue("MY_KEY")
	if err != nil {
		t.Fatalf("GetConfigValue: %v", err)
	}
	if v != "from-env" {
		t.Fatalf("process env should win, got %q", v)
	}

	t.Setenv("MY_KEY", "")
	v, err = GetConfigValue("MY_KEY")
	if err != nil {
		t.Fatalf("GetConfigValue: %v", err)
	}
	if v != "from-dotenv" {
		t.Fatalf("dotenv fallback mismatch: %q", v)
	}
}
