package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom(missing) = %v, want nil", err)
	}
	if cfg.GitBin != "git" {
		t.Errorf("GitBin = %q, want %q", cfg.GitBin, "git")
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestLoadFrom_FullConfig(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
git_bin = "/usr/local/bin/git"
default_repo = "/srv/repos/main"
timeout = "30s"

[log]
file = "/var/log/gitmcp.log"
max_size = 5
max_backups = 1
max_age = 7
compress = true
`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() = %v, want nil", err)
	}
	if cfg.GitBin != "/usr/local/bin/git" {
		t.Errorf("GitBin = %q", cfg.GitBin)
	}
	if cfg.DefaultRepo != "/srv/repos/main" {
		t.Errorf("DefaultRepo = %q", cfg.DefaultRepo)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.Log.File != "/var/log/gitmcp.log" {
		t.Errorf("Log.File = %q", cfg.Log.File)
	}
	if cfg.Log.MaxSize != 5 || cfg.Log.MaxBackups != 1 || cfg.Log.MaxAge != 7 || !cfg.Log.Compress {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadFrom_TimeoutZeroDisables(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `timeout = "0"`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() = %v, want nil", err)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", cfg.Timeout)
	}
}

func TestLoadFrom_InvalidTimeout(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `timeout = "banana"`)
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom(invalid timeout) = nil, want error")
	}
}

func TestLoadFrom_RelativeRepoRejected(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `default_repo = "../repos"`)
	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom(relative default_repo) = nil, want error")
	}
	if !strings.Contains(err.Error(), "default_repo") {
		t.Errorf("error = %v, want mention of default_repo", err)
	}
}

func TestLoadFrom_TildeExpansion(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `default_repo = "~/repos"`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() = %v, want nil", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() = %v", err)
	}
	want := filepath.Join(home, "repos")
	if cfg.DefaultRepo != want {
		t.Errorf("DefaultRepo = %q, want %q", cfg.DefaultRepo, want)
	}
}

func TestLoadFrom_MalformedTOML(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `git_bin = [broken`)
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom(malformed) = nil, want error")
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty ok", "", false},
		{"absolute ok", "/srv/repos", false},
		{"tilde ok", "~/repos", false},
		{"relative rejected", "repos", true},
		{"dot rejected", ".", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePath(tt.path, "field")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
