package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv unsets a key for the test and restores the previous value after.
// t.Setenv is not enough here: an empty-but-present key would stop the
// dotenv loader from applying the file value.
func clearEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

// chdir changes into dir for the test and restores the previous working
// directory after. t.Chdir needs Go 1.24; this toolchain is older.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestNewReadsDotenvFile(t *testing.T) {
	dir := t.TempDir()
	content := "JWT_SECRET=from-dotenv\nPORT=9999\nTOKEN_EXPIRY_DAYS=2\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("writing .env: %v", err)
	}
	for _, key := range []string{"JWT_SECRET", "PORT", "TOKEN_EXPIRY_DAYS"} {
		clearEnv(t, key)
	}
	chdir(t, dir)

	cfg := New()
	if cfg.JWTSecret != "from-dotenv" {
		t.Errorf("JWTSecret = %q, want the .env value", cfg.JWTSecret)
	}
	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999 from .env", cfg.Port)
	}
	if cfg.TokenExpiry != 2*24*time.Hour {
		t.Errorf("TokenExpiry = %v, want 48h from .env", cfg.TokenExpiry)
	}
}

func TestNewProcessEnvWinsOverDotenv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9999\n"), 0o600); err != nil {
		t.Fatalf("writing .env: %v", err)
	}
	clearEnv(t, "PORT")
	os.Setenv("PORT", "7777")
	chdir(t, dir)

	if cfg := New(); cfg.Port != "7777" {
		t.Errorf("Port = %q, want the process env to win over .env", cfg.Port)
	}
}

func TestNewDefaultsWithoutEnv(t *testing.T) {
	for _, key := range []string{"PORT", "MONGO_DB", "GEMINI_MODEL", "TOKEN_EXPIRY_DAYS"} {
		clearEnv(t, key)
	}
	chdir(t, t.TempDir())

	cfg := New()
	if cfg.Port != "5000" {
		t.Errorf("default Port = %q, want 5000", cfg.Port)
	}
	if cfg.MongoDatabase != "aptirise" {
		t.Errorf("default MongoDatabase = %q, want aptirise", cfg.MongoDatabase)
	}
	if cfg.TokenExpiry != 7*24*time.Hour {
		t.Errorf("default TokenExpiry = %v, want 7 days", cfg.TokenExpiry)
	}
}
