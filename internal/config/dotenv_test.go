package config

import (
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"
)

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_PATH", "surveys/")
	t.Setenv("TIME_ZONE", "Asia/Tokyo")
	t.Setenv("ADMIN_PER_PAGE", "25")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Fatalf("expected addr :9090, got %q", cfg.Addr)
	}
	if cfg.BasePath != "/surveys" {
		t.Fatalf("expected base path /surveys, got %q", cfg.BasePath)
	}
	if cfg.Location().String() != "Asia/Tokyo" {
		t.Fatalf("expected Asia/Tokyo location, got %s", cfg.Location())
	}
	if cfg.AdminPerPage != 25 {
		t.Fatalf("expected admin per page 25, got %d", cfg.AdminPerPage)
	}
	if !cfg.AutoMigrate {
		t.Fatalf("expected auto migrate to be enabled")
	}
	if cfg.DBMaxOpenConns != 3 {
		t.Fatalf("expected 3 open conns, got %d", cfg.DBMaxOpenConns)
	}
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("PORT", "abc")
	t.Setenv("TIME_ZONE", "Mars/Olympus")
	t.Setenv("ADMIN_PER_PAGE", "-1")

	cfg := Load()
	defaults := Default()
	if cfg.Addr != defaults.Addr {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.TimeZone != defaults.TimeZone {
		t.Fatalf("expected default time zone, got %q", cfg.TimeZone)
	}
	if cfg.AdminPerPage != defaults.AdminPerPage {
		t.Fatalf("expected default admin per page, got %d", cfg.AdminPerPage)
	}
}

func TestEmptyBasePathMountsAtRoot(t *testing.T) {
	t.Setenv("BASE_PATH", "/")
	if got := Load().BasePath; got != "" {
		t.Fatalf("expected empty base path, got %q", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("POLLS_TEST_KEEP=file\nPOLLS_TEST_NEW=file\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("POLLS_TEST_KEEP", "env")
	t.Cleanup(func() { _ = os.Unsetenv("POLLS_TEST_NEW") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load env file: %v", err)
	}
	if got := os.Getenv("POLLS_TEST_KEEP"); got != "env" {
		t.Fatalf("expected existing value to win, got %q", got)
	}
	if got := os.Getenv("POLLS_TEST_NEW"); got != "file" {
		t.Fatalf("expected value from file, got %q", got)
	}
}
