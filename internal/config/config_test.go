// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqlens.yaml")
	data := `blast_url: https://blast.example/Blast.cgi
databases:
  - nt
  - refseq_genomes
relays:
  - direct
  - proxy=https://relay.example/?url=
max_hits: 10
submit_timeout: 10s
poll_interval: 5s
poll_budget: 45s
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.BlastURL != "https://blast.example/Blast.cgi" {
		t.Errorf("BlastURL = %q", f.BlastURL)
	}
	if len(f.Databases) != 2 || f.Databases[0] != "nt" {
		t.Errorf("Databases = %v", f.Databases)
	}
	if f.MaxHits != 10 {
		t.Errorf("MaxHits = %d, want 10", f.MaxHits)
	}
	if time.Duration(f.PollBudget) != 45*time.Second {
		t.Errorf("PollBudget = %v, want 45s", time.Duration(f.PollBudget))
	}
}

func TestLoadEmptyPath(t *testing.T) {
	f, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if f.BlastURL != "" || len(f.Databases) != 0 {
		t.Errorf("Load(\"\") = %+v, want zero value", f)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("Load(missing) = nil error, want error")
	}
}

func TestLoadBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("poll_budget: soon\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load(bad duration) = nil error, want error")
	}
}
